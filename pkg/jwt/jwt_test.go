package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testIdentity = Identity{ID: "user-123", Email: "user@example.com", Role: "USER"}

func TestNewService(t *testing.T) {
	secretKey := "test-secret-key"
	service := NewService(secretKey)

	assert.NotNil(t, service)
	assert.Equal(t, []byte(secretKey), service.secretKey)
	assert.Equal(t, time.Hour, service.accessTTL)
	assert.Equal(t, 7*24*time.Hour, service.refreshTTL)
}

func TestIssuePair(t *testing.T) {
	service := NewService("test-secret-key")

	pair, err := service.IssuePair(testIdentity)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	access, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.ID, access.UserID)
	assert.Equal(t, testIdentity.Email, access.Email)
	assert.Equal(t, testIdentity.Role, access.Role)
	assert.Equal(t, TokenTypeAccess, access.Type)

	refresh, err := service.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, testIdentity.ID, refresh.UserID)
	assert.Equal(t, TokenTypeRefresh, refresh.Type)
}

func TestIssuePair_Expiry(t *testing.T) {
	service := NewService("test-secret-key")

	pair, err := service.IssuePair(testIdentity)
	require.NoError(t, err)

	access, err := service.ValidateToken(pair.AccessToken)
	require.NoError(t, err)
	refresh, err := service.ValidateToken(pair.RefreshToken)
	require.NoError(t, err)

	accessTTL := access.ExpiresAt.Sub(access.IssuedAt.Time)
	refreshTTL := refresh.ExpiresAt.Sub(refresh.IssuedAt.Time)
	assert.Equal(t, AccessTokenTTL, accessTTL)
	assert.Equal(t, RefreshTokenTTL, refreshTTL)
}

func TestValidateAccessToken_RejectsRefreshToken(t *testing.T) {
	service := NewService("test-secret-key")

	refresh, err := service.GenerateToken(testIdentity, TokenTypeRefresh)
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(refresh)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateRefreshToken_RejectsAccessToken(t *testing.T) {
	service := NewService("test-secret-key")

	access, err := service.GenerateToken(testIdentity, TokenTypeAccess)
	require.NoError(t, err)

	_, err = service.ValidateRefreshToken(access)
	assert.ErrorIs(t, err, ErrWrongTokenType)
}

func TestValidateToken_InvalidToken(t *testing.T) {
	service := NewService("test-secret-key")

	// Invalid token format
	_, err := service.ValidateToken("invalid-token")
	assert.Error(t, err)
}

func TestValidateToken_EmptyToken(t *testing.T) {
	service := NewService("test-secret-key")

	_, err := service.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	service1 := NewService("secret-key-1")
	service2 := NewService("secret-key-2")

	token, err := service1.GenerateToken(testIdentity, TokenTypeAccess)
	require.NoError(t, err)

	_, err = service2.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_ExpiredToken(t *testing.T) {
	service := NewService("test-secret-key")
	service.accessTTL = -time.Minute

	token, err := service.GenerateToken(testIdentity, TokenTypeAccess)
	require.NoError(t, err)

	_, err = service.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidateToken_UnexpectedSigningMethod(t *testing.T) {
	service := NewService("test-secret-key")

	claims := Claims{UserID: "user-123", Type: TokenTypeAccess}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = service.ValidateToken(signed)
	assert.Error(t, err)
}
