package app

import (
	"testing"

	"blog-api/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp_RequiresJWTSecret(t *testing.T) {
	_, err := NewApp(&config.Config{JWTSecret: config.DefaultJWTSecret})
	require.ErrorIs(t, err, ErrMissingJWTSecret)

	_, err = NewApp(&config.Config{})
	require.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestCorsConfig_Wildcard(t *testing.T) {
	c := corsConfig([]string{"*"})
	assert.True(t, c.AllowAllOrigins)
	assert.False(t, c.AllowCredentials)
	assert.Empty(t, c.AllowOrigins)
	assert.NoError(t, c.Validate())
}

func TestCorsConfig_ExplicitOrigins(t *testing.T) {
	c := corsConfig([]string{"https://blog.example.com"})
	assert.False(t, c.AllowAllOrigins)
	assert.True(t, c.AllowCredentials)
	assert.Equal(t, []string{"https://blog.example.com"}, c.AllowOrigins)
	assert.NoError(t, c.Validate())
}
