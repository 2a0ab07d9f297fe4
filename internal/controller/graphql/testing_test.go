package graphql

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"blog-api/internal/auth"
	"blog-api/internal/entity"
	"blog-api/internal/model"
	"blog-api/internal/repo/persistent"
	"blog-api/internal/validation"
	"blog-api/pkg/jwt"
	"blog-api/pkg/logger"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type recordedEvent struct {
	Type    string
	Payload map[string]interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *recordingPublisher) PublishEvent(_ context.Context, eventType string, payload map[string]interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Type: eventType, Payload: payload})
	return nil
}

func (p *recordingPublisher) Events() []recordedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedEvent(nil), p.events...)
}

type testEnv struct {
	db     *gorm.DB
	repos  *persistent.Repositories
	tokens *jwt.Service
	events *recordingPublisher
	server *Server
}

func newTestEnv(t *testing.T) *testEnv {
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

	return newTestEnvWithRepos(t, db, persistent.NewRepositories(db))
}

func newTestEnvWithRepos(t *testing.T, db *gorm.DB, repos *persistent.Repositories) *testEnv {
	t.Helper()

	log := logger.NewWithCore(zapcore.NewNopCore())
	tokens := jwt.NewService("test-secret")
	authService := auth.NewService(repos.Users, tokens, nil, log)
	events := &recordingPublisher{}

	server, err := NewServer(
		NewResolver(validation.New(), events, log),
		NewContextBuilder(repos, authService),
	)
	require.NoError(t, err)

	return &testEnv{db: db, repos: repos, tokens: tokens, events: events, server: server}
}

func (e *testEnv) do(t *testing.T, authorization, query string, variables map[string]interface{}) *graphql.Result {
	t.Helper()
	return e.server.Execute(context.Background(), authorization, Request{Query: query, Variables: variables})
}

func (e *testEnv) seedUser(t *testing.T, email string, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, Role: role}
	require.NoError(t, e.repos.Users.CreateWithAccount(context.Background(), user, nil))
	return user
}

func (e *testEnv) bearer(t *testing.T, user *entity.User) string {
	t.Helper()

	pair, err := e.tokens.IssuePair(jwt.Identity{ID: user.ID, Email: user.Email, Role: string(user.Role)})
	require.NoError(t, err)
	return "Bearer " + pair.AccessToken
}

func dataOf(t *testing.T, res *graphql.Result) map[string]interface{} {
	t.Helper()

	data, ok := res.Data.(map[string]interface{})
	require.True(t, ok, "unexpected data %#v", res.Data)
	return data
}

func field(t *testing.T, v interface{}, name string) interface{} {
	t.Helper()

	m, ok := v.(map[string]interface{})
	require.True(t, ok, "expected an object, got %#v", v)
	return m[name]
}
