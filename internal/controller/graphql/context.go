package graphql

import (
	"context"

	"blog-api/internal/auth"
	"blog-api/internal/entity"
	"blog-api/internal/repo/persistent"
)

// RequestContext is built once per request and handed to every resolver.
type RequestContext struct {
	User  *entity.User
	Repos *persistent.Repositories
	Auth  *auth.Service
}

type requestContextKey struct{}

func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

func RequestContextFrom(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc
}

// ContextBuilder identifies the caller and attaches the DAOs and services.
type ContextBuilder struct {
	repos *persistent.Repositories
	auth  *auth.Service
}

func NewContextBuilder(repos *persistent.Repositories, authService *auth.Service) *ContextBuilder {
	return &ContextBuilder{repos: repos, auth: authService}
}

// Build never fails: a missing or rejected token leaves the request anonymous.
func (b *ContextBuilder) Build(ctx context.Context, authorization string) context.Context {
	return WithRequestContext(ctx, &RequestContext{
		User:  b.auth.Identify(ctx, authorization),
		Repos: b.repos,
		Auth:  b.auth,
	})
}
