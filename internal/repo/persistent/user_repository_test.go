package persistent

import (
	"context"
	"testing"
	"time"

	"blog-api/internal/apperror"
	"blog-api/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateWithAccount(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	hash := "hashed"
	user := &entity.User{Email: "ada@example.com", Role: entity.RoleUser}
	account := &entity.Account{
		Type:              entity.AccountTypeCredentials,
		Provider:          entity.ProviderLocal,
		ProviderAccountID: "ada@example.com",
		AccessToken:       &hash,
	}

	require.NoError(t, repos.Users.CreateWithAccount(ctx, user, account))
	assert.NotEmpty(t, user.ID)
	require.Len(t, user.Accounts, 1)
	assert.Equal(t, user.ID, user.Accounts[0].UserID)

	found, err := repos.Users.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	require.Len(t, found.Accounts, 1)
	assert.True(t, found.Accounts[0].IsLocalCredentials())
	assert.Equal(t, "hashed", *found.Accounts[0].AccessToken)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	seedUser(t, repos, "dup@example.com")

	err := repos.Users.CreateWithAccount(context.Background(), &entity.User{Email: "dup@example.com"}, nil)
	require.Error(t, err)
	assert.True(t, apperror.IsStorage(err))
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	repos := NewRepositories(newTestDB(t))

	user, err := repos.Users.GetByID(context.Background(), "missing")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepository_FindOrCreate(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	first, err := repos.Users.FindOrCreate(ctx, "new@example.com")
	require.NoError(t, err)
	second, err := repos.Users.FindOrCreate(ctx, "new@example.com")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entity.RoleUser, second.Role)

	_, err = repos.Users.FindOrCreate(ctx, "")
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestUserRepository_UpdateProfileAndDelete(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, repos, "grace@example.com")

	name := "Grace"
	admin := entity.RoleAdmin
	updated, err := repos.Users.UpdateProfile(ctx, user.ID, entity.UserUpdate{Name: &name, Role: &admin})
	require.NoError(t, err)
	assert.Equal(t, "Grace", *updated.Name)
	assert.Equal(t, entity.RoleAdmin, updated.Role)

	_, err = repos.Users.UpdateProfile(ctx, "missing", entity.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, repos.Users.Delete(ctx, user.ID))
	assert.ErrorIs(t, repos.Users.Delete(ctx, user.ID), apperror.ErrNotFound)
}

func TestUserRepository_MarkEmailVerified(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, repos, "verify@example.com")

	require.NoError(t, repos.Users.MarkEmailVerified(ctx, "verify@example.com", time.Now()))

	found, err := repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.EmailVerified)

	assert.ErrorIs(t, repos.Users.MarkEmailVerified(ctx, "nobody@example.com", time.Now()), apperror.ErrNotFound)
}

func TestUserRepository_UpsertOAuth(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()

	profile := entity.OAuthProfile{
		Provider:          entity.ProviderGoogle,
		ProviderAccountID: "google-123",
		Email:             "oauth@example.com",
		Name:              "OAuth User",
		AccessToken:       "token-1",
	}

	created, err := repos.Users.UpsertOAuth(ctx, profile)
	require.NoError(t, err)
	require.Len(t, created.Accounts, 1)
	assert.Equal(t, entity.AccountTypeOAuth, created.Accounts[0].Type)
	assert.Equal(t, "OAuth User", *created.Name)

	profile.AccessToken = "token-2"
	profile.Name = "Renamed"
	updated, err := repos.Users.UpsertOAuth(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", *updated.Name)
	require.Len(t, updated.Accounts, 1)
	assert.Equal(t, "token-2", *updated.Accounts[0].AccessToken)
}

func TestUserRepository_UpsertOAuth_LinksExistingUser(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, repos, "local@example.com")

	linked, err := repos.Users.UpsertOAuth(ctx, entity.OAuthProfile{
		Provider:          entity.ProviderGoogle,
		ProviderAccountID: "google-456",
		Email:             "local@example.com",
		AccessToken:       "token",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, linked.ID)
	require.Len(t, linked.Accounts, 1)
	assert.Equal(t, entity.ProviderGoogle, linked.Accounts[0].Provider)
}

func TestUserRepository_RelationLists(t *testing.T) {
	repos := NewRepositories(newTestDB(t))
	ctx := context.Background()
	user := seedUser(t, repos, "author@example.com")
	post := seedPost(t, repos, user.ID)

	require.NoError(t, repos.Comments.Create(ctx, &entity.Comment{Content: "hi", PostID: post.ID, UserID: user.ID}))
	require.NoError(t, repos.Likes.Create(ctx, &entity.Like{PostID: post.ID, UserID: user.ID}))
	require.NoError(t, repos.Media.Create(ctx, &entity.Media{URL: "http://cdn/x.png", Type: "image", UserID: &user.ID}))

	posts, err := repos.Users.GetPostsByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, posts, 1)

	comments, err := repos.Users.GetCommentsByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)

	likes, err := repos.Users.GetLikesByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 1)

	media, err := repos.Users.GetMediaByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, media, 1)

	full, err := repos.Users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, full.Posts, 1)
	assert.Len(t, full.Comments, 1)
	assert.Len(t, full.Likes, 1)
	assert.Len(t, full.Media, 1)

	accounts, err := repos.Accounts.ListByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	_, err = repos.Accounts.GetByUserID(ctx, user.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
