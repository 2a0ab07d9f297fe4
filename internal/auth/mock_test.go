package auth

import (
	"context"
	"time"

	"blog-api/internal/entity"

	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindOrCreate(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetPostsByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockUserRepository) GetCommentsByUserID(ctx context.Context, userID string) ([]*entity.Comment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockUserRepository) GetLikesByUserID(ctx context.Context, userID string) ([]*entity.Like, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Like), args.Error(1)
}

func (m *MockUserRepository) GetMediaByUserID(ctx context.Context, userID string) ([]*entity.Media, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*entity.Media), args.Error(1)
}

func (m *MockUserRepository) CreateWithAccount(ctx context.Context, user *entity.User, account *entity.Account) error {
	args := m.Called(ctx, user, account)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) MarkEmailVerified(ctx context.Context, email string, at time.Time) error {
	args := m.Called(ctx, email, at)
	return args.Error(0)
}

func (m *MockUserRepository) UpsertOAuth(ctx context.Context, profile entity.OAuthProfile) (*entity.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type fakeFetcher struct {
	profile *entity.OAuthProfile
	err     error
}

func (f *fakeFetcher) FetchProfile(ctx context.Context, accessToken string) (*entity.OAuthProfile, error) {
	return f.profile, f.err
}
