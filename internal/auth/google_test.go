package auth

import (
	"testing"
	"time"

	"blog-api/internal/entity"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFromGothUser(t *testing.T) {
	expires := time.Unix(1700000000, 0)
	profile := ProfileFromGothUser(goth.User{
		Provider:    "google",
		UserID:      "12345",
		Email:       "g@example.com",
		NickName:    "gee",
		AvatarURL:   "https://lh3.example.com/a.png",
		AccessToken: "at",
		IDToken:     "idt",
		ExpiresAt:   expires,
	})

	assert.Equal(t, entity.ProviderGoogle, profile.Provider)
	assert.Equal(t, "12345", profile.ProviderAccountID)
	assert.Equal(t, "gee", profile.Name)
	assert.Equal(t, "https://lh3.example.com/a.png", profile.Image)
	require.NotNil(t, profile.ExpiresAt)
	assert.Equal(t, 1700000000, *profile.ExpiresAt)

	empty := ProfileFromGothUser(goth.User{Email: "x@example.com"})
	assert.Equal(t, entity.ProviderGoogle, empty.Provider)
	assert.Nil(t, empty.ExpiresAt)
}
