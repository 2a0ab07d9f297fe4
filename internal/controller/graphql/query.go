package graphql

import (
	"context"

	"blog-api/internal/apperror"
	"blog-api/internal/auth"
	"blog-api/internal/entity"

	"github.com/graphql-go/graphql"
)

// canAccessUser allows the user themselves and privileged roles.
func canAccessUser(caller *entity.User, userID string) error {
	if caller.ID == userID || caller.Role.Privileged() {
		return nil
	}
	return apperror.Forbidden("Not allowed to access this user")
}

func (r *Resolver) queryFields(t *schemaTypes) graphql.Fields {
	return graphql.Fields{
		"me": &graphql.Field{
			Type: nonNull(t.user),
			Resolve: handle(r, op[noInput]{
				name: "Query.me",
				auth: true,
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, _ *noInput) (interface{}, error) {
					user, err := req.Repos.Users.GetByID(ctx, req.User.ID)
					if apperror.IsNotFound(err) {
						return nil, apperror.NotFound(auth.MessageUserNotFound)
					}
					return user, err
				},
				shape: as(shapeUser),
			}),
		},
		"user": &graphql.Field{
			Type: t.user,
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Query.user",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Users.GetByID(ctx, stringArg(p, "id"))
				},
				shape: as(shapeUser),
			}),
		},
		"account": &graphql.Field{
			Type: t.account,
			Args: graphql.FieldConfigArgument{
				"userId": &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
			},
			Resolve: handle(r, op[noInput]{
				name:   "Query.account",
				auth:   true,
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					userID := stringArg(p, "userId")
					if err := canAccessUser(req.User, userID); err != nil {
						return nil, err
					}
					return req.Repos.Accounts.GetByUserID(ctx, userID)
				},
				shape: as(shapeAccount),
			}),
		},
		"category": &graphql.Field{
			Type: t.category,
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Query.category",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Categories.GetByID(ctx, stringArg(p, "id"))
				},
				shape: as(shapeCategory),
			}),
		},
		"categories": &graphql.Field{
			Type: listOf(t.category),
			Resolve: handle(r, op[noInput]{
				name:   "Query.categories",
				policy: failEmptyList,
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Categories.List(ctx)
				},
				shape: as(shapeCategory),
			}),
		},
		"comment": &graphql.Field{
			Type: t.comment,
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Query.comment",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Comments.GetByID(ctx, stringArg(p, "id"))
				},
				shape: as(shapeComment),
			}),
		},
		"post": &graphql.Field{
			Type: t.post,
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Query.post",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Posts.GetByID(ctx, stringArg(p, "id"))
				},
				shape: as(shapePost),
			}),
		},
		"posts": &graphql.Field{
			Type: listOf(t.post),
			Resolve: handle(r, op[noInput]{
				name:   "Query.posts",
				policy: failEmptyList,
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Posts.List(ctx)
				},
				shape: as(shapePost),
			}),
		},
		"getPostCategories": &graphql.Field{
			Type: listOf(t.postCategory),
			Args: graphql.FieldConfigArgument{
				"postId": &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
			},
			Resolve: handle(r, op[noInput]{
				name:   "Query.getPostCategories",
				policy: failEmptyList,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.PostCategories.ListByPostID(ctx, stringArg(p, "postId"))
				},
				shape: as(shapePostCategory),
			}),
		},
		"getPostTags": &graphql.Field{
			Type: listOf(t.postTag),
			Args: graphql.FieldConfigArgument{
				"postId": &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
			},
			Resolve: handle(r, op[noInput]{
				name:   "Query.getPostTags",
				policy: failEmptyList,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.PostTags.ListByPostID(ctx, stringArg(p, "postId"))
				},
				shape: as(shapePostTag),
			}),
		},
		"getPostTagsByTag": &graphql.Field{
			Type: listOf(t.postTag),
			Args: graphql.FieldConfigArgument{
				"tagId": &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
			},
			Resolve: handle(r, op[noInput]{
				name:   "Query.getPostTagsByTag",
				policy: failEmptyList,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.PostTags.ListByTagID(ctx, stringArg(p, "tagId"))
				},
				shape: as(shapePostTag),
			}),
		},
		"getTagById": &graphql.Field{
			Type: t.tag,
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Query.getTagById",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Tags.GetByID(ctx, stringArg(p, "id"))
				},
				shape: as(shapeTag),
			}),
		},
		"tags": &graphql.Field{
			Type: listOf(t.tag),
			Resolve: handle(r, op[noInput]{
				name:   "Query.tags",
				policy: failEmptyList,
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Tags.List(ctx)
				},
				shape: as(shapeTag),
			}),
		},
		"media": &graphql.Field{
			Type: t.media,
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Query.media",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Repos.Media.GetByID(ctx, stringArg(p, "id"))
				},
				shape: as(shapeMedia),
			}),
		},
	}
}
