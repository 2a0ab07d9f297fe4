package auth

import (
	"context"

	"blog-api/internal/entity"

	"github.com/markbates/goth"
	"github.com/markbates/goth/providers/google"
)

// GoogleProfileFetcher reads the Google userinfo endpoint through goth.
type GoogleProfileFetcher struct {
	provider *google.Provider
}

func NewGoogleProvider(clientID, clientSecret, callbackURL string) *google.Provider {
	return google.New(clientID, clientSecret, callbackURL, "email", "profile")
}

func NewGoogleProfileFetcher(provider *google.Provider) *GoogleProfileFetcher {
	return &GoogleProfileFetcher{provider: provider}
}

func (f *GoogleProfileFetcher) FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error) {
	user, err := f.provider.FetchUser(&google.Session{AccessToken: accessToken})
	if err != nil {
		return nil, err
	}
	profile := ProfileFromGothUser(user)
	return &profile, nil
}

// ProfileFromGothUser converts a goth user into the provider-neutral profile.
func ProfileFromGothUser(user goth.User) entity.OAuthProfile {
	profile := entity.OAuthProfile{
		Provider:          user.Provider,
		ProviderAccountID: user.UserID,
		Email:             user.Email,
		Name:              user.Name,
		Image:             user.AvatarURL,
		AccessToken:       user.AccessToken,
		RefreshToken:      user.RefreshToken,
		IDToken:           user.IDToken,
	}
	if profile.Provider == "" {
		profile.Provider = entity.ProviderGoogle
	}
	if profile.Name == "" {
		profile.Name = user.NickName
	}
	if !user.ExpiresAt.IsZero() {
		expires := int(user.ExpiresAt.Unix())
		profile.ExpiresAt = &expires
	}
	return profile
}
