package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-api/internal/apperror"
	"blog-api/internal/auth"
	"blog-api/internal/entity"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupOAuthRouter(handler *OAuthHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auth/:provider", handler.Begin)
	router.GET("/auth/:provider/callback", handler.Callback)
	return router
}

func TestOAuthBegin_PassesProvider(t *testing.T) {
	handler := NewOAuthHandler(new(MockOAuthCompleter), testLogger())
	var provider string
	handler.beginAuth = func(w http.ResponseWriter, r *http.Request) {
		provider = r.URL.Query().Get("provider")
		http.Redirect(w, r, "https://accounts.google.com/o/oauth2/auth", http.StatusTemporaryRedirect)
	}

	w := httptest.NewRecorder()
	setupOAuthRouter(handler).ServeHTTP(w, httptest.NewRequest("GET", "/auth/google", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "google", provider)
}

func TestOAuthCallback_Success(t *testing.T) {
	completer := new(MockOAuthCompleter)
	handler := NewOAuthHandler(completer, testLogger())
	handler.completeUserAuth = func(w http.ResponseWriter, r *http.Request) (goth.User, error) {
		return goth.User{Provider: "google", UserID: "g-1", Email: "g@example.com", Name: "G"}, nil
	}

	created := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	completer.On("CompleteOAuth", mock.Anything, mock.MatchedBy(func(p entity.OAuthProfile) bool {
		return p.Email == "g@example.com" && p.ProviderAccountID == "g-1"
	})).Return(&auth.Payload{
		Token:        "access",
		RefreshToken: "refresh",
		User:         &entity.User{ID: "user-1", Email: "g@example.com", Role: entity.RoleUser, CreatedAt: created, UpdatedAt: created},
	}, nil)

	w := httptest.NewRecorder()
	setupOAuthRouter(handler).ServeHTTP(w, httptest.NewRequest("GET", "/auth/google/callback?code=abc", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "access", response["token"])
	assert.Equal(t, "refresh", response["refreshToken"])
	user := response["user"].(map[string]interface{})
	assert.Equal(t, "user-1", user["id"])
	assert.Equal(t, "2024-03-01T00:00:00.000Z", user["createdAt"])
}

func TestOAuthCallback_ProviderError(t *testing.T) {
	handler := NewOAuthHandler(new(MockOAuthCompleter), testLogger())
	handler.completeUserAuth = func(w http.ResponseWriter, r *http.Request) (goth.User, error) {
		return goth.User{}, errors.New("state mismatch")
	}

	w := httptest.NewRecorder()
	setupOAuthRouter(handler).ServeHTTP(w, httptest.NewRequest("GET", "/auth/google/callback", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Google login failed"}`, w.Body.String())
}

func TestOAuthCallback_StorageErrorIsHidden(t *testing.T) {
	completer := new(MockOAuthCompleter)
	handler := NewOAuthHandler(completer, testLogger())
	handler.completeUserAuth = func(w http.ResponseWriter, r *http.Request) (goth.User, error) {
		return goth.User{Email: "g@example.com"}, nil
	}
	completer.On("CompleteOAuth", mock.Anything, mock.Anything).
		Return(nil, apperror.Storage("user.upsert_oauth", errors.New("connection reset")))

	w := httptest.NewRecorder()
	setupOAuthRouter(handler).ServeHTTP(w, httptest.NewRequest("GET", "/auth/google/callback", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"An internal server error occurred."}`, w.Body.String())
}
