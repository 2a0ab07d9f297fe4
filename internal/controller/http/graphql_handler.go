package http

import (
	"net/http"

	gql "blog-api/internal/controller/graphql"
	"blog-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

type GraphQLHandler struct {
	server *gql.Server
	logger *logger.Logger
}

func NewGraphQLHandler(server *gql.Server, logger *logger.Logger) *GraphQLHandler {
	return &GraphQLHandler{
		server: server,
		logger: logger,
	}
}

// Execute runs one GraphQL operation. Field errors travel inside the 200 response body.
func (h *GraphQLHandler) Execute(c *gin.Context) {
	var req gql.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must contain a GraphQL query"})
		return
	}

	result := h.server.Execute(c.Request.Context(), c.GetHeader("Authorization"), req)
	if result.HasErrors() {
		h.logger.Debug("GraphQL operation %q returned %d error(s)", req.OperationName, len(result.Errors))
	}

	c.JSON(http.StatusOK, result)
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
