package graphql

import (
	"context"

	"github.com/graphql-go/graphql"
)

// NewSchema assembles the Query and Mutation roots.
func (r *Resolver) NewSchema() (graphql.Schema, error) {
	t := r.newTypes()

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Query",
			Fields: r.queryFields(t),
		}),
		Mutation: graphql.NewObject(graphql.ObjectConfig{
			Name:   "Mutation",
			Fields: r.mutationFields(t),
		}),
	})
}

// Request is the standard GraphQL-over-HTTP body.
type Request struct {
	Query         string                 `json:"query" binding:"required"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

type Server struct {
	schema   graphql.Schema
	contexts *ContextBuilder
}

func NewServer(resolver *Resolver, contexts *ContextBuilder) (*Server, error) {
	schema, err := resolver.NewSchema()
	if err != nil {
		return nil, err
	}
	return &Server{schema: schema, contexts: contexts}, nil
}

// Execute identifies the caller from the Authorization header and runs one operation.
func (s *Server) Execute(ctx context.Context, authorization string, req Request) *graphql.Result {
	return graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        s.contexts.Build(ctx, authorization),
	})
}
