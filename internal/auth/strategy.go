package auth

import (
	"context"
	"strings"
	"sync"

	"blog-api/internal/apperror"
	"blog-api/internal/entity"
	"blog-api/internal/repo/persistent"
	"blog-api/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost used for every stored password hash.
const BcryptCost = 10

// BearerStrategy authenticates an "Authorization: Bearer <jwt>" header. The
// token's email and role must still match the stored user.
type BearerStrategy struct {
	users  persistent.UserRepository
	tokens *jwt.Service
}

func NewBearerStrategy(users persistent.UserRepository, tokens *jwt.Service) *BearerStrategy {
	return &BearerStrategy{users: users, tokens: tokens}
}

func (s *BearerStrategy) Authenticate(ctx context.Context, header string) (*entity.User, error) {
	token, ok := BearerToken(header)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.checkClaims(ctx, claims)
}

func (s *BearerStrategy) checkClaims(ctx context.Context, claims *jwt.Claims) (*entity.User, error) {
	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	if user.Email != claims.Email || string(user.Role) != claims.Role {
		return nil, ErrInvalidToken
	}
	return user, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// LocalStrategy checks an email and password against the local credentials account.
type LocalStrategy struct {
	users persistent.UserRepository
}

func NewLocalStrategy(users persistent.UserRepository) *LocalStrategy {
	return &LocalStrategy{users: users}
}

func (s *LocalStrategy) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return nil, err
		}
		compareDummy(password)
		return nil, ErrInvalidCredentials
	}

	var hash string
	for _, account := range user.Accounts {
		if account.IsLocalCredentials() && account.AccessToken != nil {
			hash = *account.AccessToken
			break
		}
	}
	if hash == "" {
		compareDummy(password)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// compareDummy spends one bcrypt comparison so unknown emails take as long as wrong passwords.
func compareDummy(password string) {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), BcryptCost)
	})
	_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
}

// ProfileFetcher resolves an OAuth access token to the provider's user profile.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error)
}

// GoogleStrategy upserts the user behind a Google access token.
type GoogleStrategy struct {
	users   persistent.UserRepository
	fetcher ProfileFetcher
}

func NewGoogleStrategy(users persistent.UserRepository, fetcher ProfileFetcher) *GoogleStrategy {
	return &GoogleStrategy{users: users, fetcher: fetcher}
}

func (s *GoogleStrategy) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	if s.fetcher == nil || accessToken == "" {
		return nil, ErrGoogleLoginFailed
	}

	profile, err := s.fetcher.FetchProfile(ctx, accessToken)
	if err != nil || profile == nil || profile.Email == "" {
		return nil, ErrGoogleLoginFailed
	}

	return s.Upsert(ctx, *profile)
}

// Upsert links profile to a user, creating both when the email is new.
func (s *GoogleStrategy) Upsert(ctx context.Context, profile entity.OAuthProfile) (*entity.User, error) {
	if profile.Email == "" {
		return nil, ErrGoogleLoginFailed
	}
	if profile.Provider == "" {
		profile.Provider = entity.ProviderGoogle
	}
	return s.users.UpsertOAuth(ctx, profile)
}
