package persistent

import (
	"context"
	"fmt"
	"testing"

	"blog-api/internal/entity"
	"blog-api/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return db
}

func seedUser(t *testing.T, repos *Repositories, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Role: entity.RoleUser}
	require.NoError(t, repos.Users.CreateWithAccount(context.Background(), user, nil))
	return user
}

func seedPost(t *testing.T, repos *Repositories, authorID string) *entity.Post {
	t.Helper()

	post := &entity.Post{Title: "Hello", Content: "World", AuthorID: authorID}
	require.NoError(t, repos.Posts.Create(context.Background(), post))
	return post
}
