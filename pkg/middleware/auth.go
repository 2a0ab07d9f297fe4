package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthenticateFunc resolves an Authorization header to the caller's id and role.
type AuthenticateFunc func(ctx context.Context, header string) (userID, role string, err error)

// AuthMiddleware rejects requests without a valid bearer token and stores
// user_id and user_role on the gin context.
func AuthMiddleware(authenticate AuthenticateFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		userID, role, err := authenticate(c.Request.Context(), authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("user_role", role)
		c.Next()
	}
}
