package http

import (
	"context"
	"net/http"

	"blog-api/internal/apperror"
	"blog-api/internal/auth"
	"blog-api/internal/entity"
	"blog-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
)

// OAuthCompleter turns a provider profile into a signed-in payload.
type OAuthCompleter interface {
	CompleteOAuth(ctx context.Context, profile entity.OAuthProfile) (*auth.Payload, error)
}

// OAuthHandler drives the browser redirect flow through gothic.
type OAuthHandler struct {
	completer OAuthCompleter
	logger    *logger.Logger

	beginAuth        func(w http.ResponseWriter, r *http.Request)
	completeUserAuth func(w http.ResponseWriter, r *http.Request) (goth.User, error)
}

func NewOAuthHandler(completer OAuthCompleter, logger *logger.Logger) *OAuthHandler {
	return &OAuthHandler{
		completer:        completer,
		logger:           logger,
		beginAuth:        gothic.BeginAuthHandler,
		completeUserAuth: gothic.CompleteUserAuth,
	}
}

// withProvider exposes the :provider path param where gothic looks for it.
func withProvider(c *gin.Context) *http.Request {
	q := c.Request.URL.Query()
	q.Set("provider", c.Param("provider"))
	c.Request.URL.RawQuery = q.Encode()
	return c.Request
}

// Begin redirects to the provider's consent page.
func (h *OAuthHandler) Begin(c *gin.Context) {
	h.beginAuth(c.Writer, withProvider(c))
}

// Callback finishes the handshake and returns the same payload as the login mutations.
func (h *OAuthHandler) Callback(c *gin.Context) {
	user, err := h.completeUserAuth(c.Writer, withProvider(c))
	if err != nil {
		h.logger.Warn("OAuth callback for %s failed: %v", c.Param("provider"), err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": auth.MessageGoogleLoginFailed})
		return
	}

	payload, err := h.completer.CompleteOAuth(c.Request.Context(), auth.ProfileFromGothUser(user))
	if err != nil {
		public := apperror.Public(err)
		if public.Code == apperror.CodeInternal {
			h.logger.Error("Failed to complete OAuth sign-in: %v", err)
		}
		c.JSON(public.Status, gin.H{"error": public.Message})
		return
	}

	c.JSON(http.StatusOK, formatAuthPayload(payload))
}
