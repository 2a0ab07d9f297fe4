// Package graphql exposes the blog API as a graphql-go schema.
package graphql

import (
	"context"
	"time"

	"blog-api/internal/validation"
	"blog-api/pkg/logger"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "blog-api/internal/controller/graphql"

// Event names published after successful writes.
const (
	EventUserRegistered        = "user_registered"
	EventPostCreated           = "post_created"
	EventCommentCreated        = "comment_created"
	EventLikeCreated           = "like_created"
	EventVerificationRequested = "verification_requested"
)

// VerificationTTL is how long an email verification token stays valid.
const VerificationTTL = 24 * time.Hour

// EventPublisher is satisfied by the RabbitMQ client.
type EventPublisher interface {
	PublishEvent(ctx context.Context, eventType string, payload map[string]interface{}) error
}

type Resolver struct {
	validator   *validation.Validator
	events      EventPublisher
	logger      *logger.Logger
	tracer      trace.Tracer
	fieldErrors metric.Int64Counter
	now         func() time.Time
}

// NewResolver builds the field resolvers. events may be nil.
func NewResolver(validator *validation.Validator, events EventPublisher, logger *logger.Logger) *Resolver {
	meter := otel.Meter(instrumentationName)
	fieldErrors, _ := meter.Int64Counter("graphql.field.errors",
		metric.WithDescription("Total number of GraphQL field errors returned to callers"),
		metric.WithUnit("{error}"),
	)

	return &Resolver{
		validator:   validator,
		events:      events,
		logger:      logger,
		tracer:      otel.Tracer(instrumentationName),
		fieldErrors: fieldErrors,
		now:         time.Now,
	}
}

// publish sends an event in the background; failures are only logged.
func (r *Resolver) publish(eventType string, payload map[string]interface{}) {
	if r.events == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := r.events.PublishEvent(ctx, eventType, payload); err != nil {
			r.logger.Error("[EVENTS] Failed to publish %s: %v", eventType, err)
			return
		}
		r.logger.Debug("[EVENTS] Published %s", eventType)
	}()
}
