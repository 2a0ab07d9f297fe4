// Package auth holds the authentication strategies and token issuance.
package auth

import (
	"context"

	"blog-api/internal/apperror"
	"blog-api/internal/entity"
	"blog-api/internal/repo/persistent"
	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// Payload is returned by every successful sign-in.
type Payload struct {
	Token        string
	RefreshToken string
	User         *entity.User
}

// RegisterParams carries an already validated registration.
type RegisterParams struct {
	Email    string
	Name     *string
	Password string
}

type Service struct {
	users  persistent.UserRepository
	tokens *jwt.Service
	logger *logger.Logger

	bearer *BearerStrategy
	local  *LocalStrategy
	google *GoogleStrategy
}

// NewService wires the strategies. fetcher may be nil when Google sign-in is not configured.
func NewService(users persistent.UserRepository, tokens *jwt.Service, fetcher ProfileFetcher, logger *logger.Logger) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		logger: logger,
		bearer: NewBearerStrategy(users, tokens),
		local:  NewLocalStrategy(users),
		google: NewGoogleStrategy(users, fetcher),
	}
}

// Identify resolves the caller behind an optional Authorization header.
// Anonymous or rejected requests yield nil.
func (s *Service) Identify(ctx context.Context, header string) *entity.User {
	if header == "" {
		return nil
	}
	user, err := s.bearer.Authenticate(ctx, header)
	if err != nil {
		if apperror.KindOf(err) != apperror.KindAuth {
			s.logger.Error("Failed to identify request: %v", err)
		}
		return nil
	}
	return user
}

// Authenticate is Identify for routes that require a caller.
func (s *Service) Authenticate(ctx context.Context, header string) (*entity.User, error) {
	return s.bearer.Authenticate(ctx, header)
}

func (s *Service) Register(ctx context.Context, params RegisterParams) (*Payload, error) {
	_, err := s.users.GetByEmail(ctx, params.Email)
	if err == nil {
		return nil, apperror.Conflict(MessageEmailInUse)
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), BcryptCost)
	if err != nil {
		return nil, apperror.Internal("failed to hash password", err)
	}

	hashed := string(hash)

	user := &entity.User{
		Email: params.Email,
		Name:  params.Name,
		Role:  entity.RoleUser,
	}
	account := &entity.Account{
		Type:              entity.AccountTypeCredentials,
		Provider:          entity.ProviderLocal,
		ProviderAccountID: params.Email,
		AccessToken:       &hashed,
	}

	if err := s.users.CreateWithAccount(ctx, user, account); err != nil {
		return nil, err
	}

	s.logger.Info("Registered user %s", user.ID)
	return s.issue(user)
}

func (s *Service) Login(ctx context.Context, email, password string) (*Payload, error) {
	user, err := s.local.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

func (s *Service) LoginWithGoogle(ctx context.Context, accessToken string) (*Payload, error) {
	user, err := s.google.Authenticate(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// CompleteOAuth finishes the browser redirect flow for an already fetched profile.
func (s *Service) CompleteOAuth(ctx context.Context, profile entity.OAuthProfile) (*Payload, error) {
	user, err := s.google.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Refresh exchanges a refresh token for a new pair after re-checking the stored user.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Payload, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}

	user, err := s.bearer.checkClaims(ctx, claims)
	if err != nil {
		if apperror.KindOf(err) == apperror.KindAuth {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}
	return s.issue(user)
}

func (s *Service) issue(user *entity.User) (*Payload, error) {
	pair, err := s.tokens.IssuePair(jwt.Identity{
		ID:    user.ID,
		Email: user.Email,
		Role:  string(user.Role),
	})
	if err != nil {
		return nil, apperror.Internal("failed to issue tokens", err)
	}

	return &Payload{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user,
	}, nil
}
