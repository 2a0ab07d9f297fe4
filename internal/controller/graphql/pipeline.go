package graphql

import (
	"context"
	"encoding/json"

	"blog-api/internal/apperror"
	"blog-api/internal/auth"

	"github.com/graphql-go/graphql"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

// policy decides what a field returns when storage fails or the row is absent.
type policy int

const (
	failError policy = iota
	failNull
	failEmptyList
	failFalse
)

func (p policy) fallback(err error) (interface{}, bool) {
	if !apperror.IsNotFound(err) && !apperror.IsStorage(err) {
		return nil, false
	}
	switch p {
	case failNull:
		return nil, true
	case failEmptyList:
		return []interface{}{}, true
	case failFalse:
		return false, true
	}
	return nil, false
}

type runFunc[In any] func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, in *In) (interface{}, error)

// op declares one field. Every op runs through the same chain:
// span, authorize, decode and validate, run, shape, normalize error.
type op[In any] struct {
	name   string
	auth   bool
	arg    string
	policy policy
	run    runFunc[In]
	shape  func(interface{}) interface{}
}

type noInput struct{}

func handle[In any](r *Resolver, o op[In]) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		ctx, span := r.tracer.Start(p.Context, "graphql."+o.name)
		defer span.End()

		out, err := execute(ctx, r, o, p)
		if err == nil {
			if o.shape != nil {
				out = o.shape(out)
			}
			return out, nil
		}

		if value, ok := o.policy.fallback(err); ok {
			if apperror.IsStorage(err) {
				r.logger.Warn("graphql %s: %v", o.name, err)
			}
			return value, nil
		}

		span.RecordError(err)
		span.SetStatus(codes.Error, o.name)
		r.fieldErrors.Add(ctx, 1, metric.WithAttributes(attribute.String("graphql.field", o.name)))
		return nil, r.normalize(o.name, err)
	}
}

func execute[In any](ctx context.Context, r *Resolver, o op[In], p graphql.ResolveParams) (interface{}, error) {
	req := RequestContextFrom(ctx)
	if req == nil {
		return nil, apperror.Internal("request context missing", nil)
	}

	if o.auth && req.User == nil {
		return nil, auth.ErrNotAuthenticated
	}

	in := new(In)
	if o.arg != "" {
		if err := decodeArg(p.Args, o.arg, in); err != nil {
			return nil, err
		}
		if err := r.validator.Struct(in); err != nil {
			return nil, err
		}
	}

	return o.run(ctx, req, p, in)
}

// decodeArg copies an input object argument into its typed struct via the json tags.
func decodeArg(args map[string]interface{}, name string, out interface{}) error {
	raw, err := json.Marshal(args[name])
	if err != nil {
		return apperror.Internal("failed to encode argument "+name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return apperror.Internal("failed to decode argument "+name, err)
	}
	return nil
}

func (r *Resolver) normalize(field string, err error) error {
	public := apperror.Public(err)
	switch public.Code {
	case apperror.CodeInternal:
		r.logger.Error("graphql %s failed: %v", field, err)
	case apperror.CodeBadUserInput:
		r.logger.Debug("graphql %s rejected input: %v", field, err)
	default:
		r.logger.Info("graphql %s: %s", field, public.Message)
	}
	return public
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
