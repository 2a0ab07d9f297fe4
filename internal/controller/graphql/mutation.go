package graphql

import (
	"context"

	"blog-api/internal/apperror"
	"blog-api/internal/auth"
	"blog-api/internal/entity"
	"blog-api/internal/validation"

	"github.com/google/uuid"
	"github.com/graphql-go/graphql"
)

const (
	MessageTagSlugTaken      = "Tag with this slug already exists"
	MessageCategorySlugTaken = "Category with this slug already exists"
)

func (r *Resolver) mutationFields(t *schemaTypes) graphql.Fields {
	return graphql.Fields{
		"register": &graphql.Field{
			Type: nonNull(t.authPayload),
			Args: dataArg(t.registerInput),
			Resolve: handle(r, op[validation.RegisterInput]{
				name: "Mutation.register",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.RegisterInput) (interface{}, error) {
					// provider and type are validated only; sign-up always creates local credentials.
					payload, err := req.Auth.Register(ctx, auth.RegisterParams{
						Email:    in.Email,
						Name:     in.Name,
						Password: in.Password,
					})
					if err != nil {
						return nil, err
					}
					r.publish(EventUserRegistered, map[string]interface{}{
						"user_id": payload.User.ID,
						"email":   payload.User.Email,
					})
					return payload, nil
				},
				shape: as(shapeAuthPayload),
			}),
		},
		"login": &graphql.Field{
			Type: nonNull(t.authPayload),
			Args: dataArg(t.loginInput),
			Resolve: handle(r, op[validation.LoginInput]{
				name: "Mutation.login",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.LoginInput) (interface{}, error) {
					return req.Auth.Login(ctx, in.Email, in.Password)
				},
				shape: as(shapeAuthPayload),
			}),
		},
		"loginWithGoogle": &graphql.Field{
			Type: nonNull(t.authPayload),
			Args: graphql.FieldConfigArgument{
				"accessToken": &graphql.ArgumentConfig{Type: nonNull(graphql.String)},
			},
			Resolve: handle(r, op[noInput]{
				name: "Mutation.loginWithGoogle",
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Auth.LoginWithGoogle(ctx, stringArg(p, "accessToken"))
				},
				shape: as(shapeAuthPayload),
			}),
		},
		"refreshToken": &graphql.Field{
			Type: nonNull(t.authPayload),
			Args: graphql.FieldConfigArgument{
				"token": &graphql.ArgumentConfig{Type: nonNull(graphql.String)},
			},
			Resolve: handle(r, op[noInput]{
				name: "Mutation.refreshToken",
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					return req.Auth.Refresh(ctx, stringArg(p, "token"))
				},
				shape: as(shapeAuthPayload),
			}),
		},
		"createPost": &graphql.Field{
			Type: nonNull(t.post),
			Args: dataArg(t.createPostInput),
			Resolve: handle(r, op[validation.CreatePostInput]{
				name: "Mutation.createPost",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreatePostInput) (interface{}, error) {
					post := &entity.Post{
						Title:    in.Title,
						Content:  in.Content,
						ImageURL: in.ImageURL,
						AuthorID: in.AuthorID,
					}
					if err := req.Repos.Posts.Create(ctx, post); err != nil {
						return nil, err
					}
					r.publish(EventPostCreated, map[string]interface{}{
						"post_id":   post.ID,
						"author_id": post.AuthorID,
						"title":     post.Title,
					})
					return post, nil
				},
				shape: as(shapePost),
			}),
		},
		"updatePost": &graphql.Field{
			Type: t.post,
			Args: graphql.FieldConfigArgument{
				"id":   &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
				"data": &graphql.ArgumentConfig{Type: nonNull(t.updatePostInput)},
			},
			Resolve: handle(r, op[validation.UpdatePostInput]{
				name:   "Mutation.updatePost",
				arg:    "data",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, in *validation.UpdatePostInput) (interface{}, error) {
					return req.Repos.Posts.Update(ctx, stringArg(p, "id"), entity.PostUpdate{
						Title:    in.Title,
						Content:  in.Content,
						ImageURL: in.ImageURL,
						AuthorID: in.AuthorID,
					})
				},
				shape: as(shapePost),
			}),
		},
		"deletePost": &graphql.Field{
			Type: nonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Mutation.deletePost",
				policy: failFalse,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					if err := req.Repos.Posts.Delete(ctx, stringArg(p, "id")); err != nil {
						return nil, err
					}
					return true, nil
				},
			}),
		},
		"createPostCategory": &graphql.Field{
			Type: nonNull(t.postCategory),
			Args: dataArg(t.createPostCategoryInput),
			Resolve: handle(r, op[validation.CreatePostCategoryInput]{
				name: "Mutation.createPostCategory",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreatePostCategoryInput) (interface{}, error) {
					return req.Repos.PostCategories.Create(ctx, in.PostID, in.CategoryID)
				},
				shape: as(shapePostCategory),
			}),
		},
		"createComment": &graphql.Field{
			Type: nonNull(t.comment),
			Args: dataArg(t.createCommentInput),
			Resolve: handle(r, op[validation.CreateCommentInput]{
				name: "Mutation.createComment",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreateCommentInput) (interface{}, error) {
					comment := &entity.Comment{
						Content: in.Content,
						PostID:  in.PostID,
						UserID:  in.UserID,
					}
					if err := req.Repos.Comments.Create(ctx, comment); err != nil {
						return nil, err
					}
					r.publish(EventCommentCreated, map[string]interface{}{
						"comment_id": comment.ID,
						"post_id":    comment.PostID,
						"user_id":    comment.UserID,
					})
					return comment, nil
				},
				shape: as(shapeComment),
			}),
		},
		"deleteComment": &graphql.Field{
			Type: nonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Mutation.deleteComment",
				policy: failFalse,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					if err := req.Repos.Comments.Delete(ctx, stringArg(p, "id")); err != nil {
						return nil, err
					}
					return true, nil
				},
			}),
		},
		"createLike": &graphql.Field{
			Type: nonNull(t.like),
			Args: dataArg(t.createLikeInput),
			Resolve: handle(r, op[validation.CreateLikeInput]{
				name: "Mutation.createLike",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreateLikeInput) (interface{}, error) {
					// Repeated likes for the same post and user are stored as separate rows.
					like := &entity.Like{PostID: in.PostID, UserID: in.UserID}
					if err := req.Repos.Likes.Create(ctx, like); err != nil {
						return nil, err
					}
					r.publish(EventLikeCreated, map[string]interface{}{
						"like_id": like.ID,
						"post_id": like.PostID,
						"user_id": like.UserID,
					})
					return like, nil
				},
				shape: as(shapeLike),
			}),
		},
		"deleteLike": &graphql.Field{
			Type: nonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Mutation.deleteLike",
				policy: failFalse,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					if err := req.Repos.Likes.Delete(ctx, stringArg(p, "id")); err != nil {
						return nil, err
					}
					return true, nil
				},
			}),
		},
		"createPostTag": &graphql.Field{
			Type: nonNull(t.postTag),
			Args: dataArg(t.createPostTagInput),
			Resolve: handle(r, op[validation.CreatePostTagInput]{
				name: "Mutation.createPostTag",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreatePostTagInput) (interface{}, error) {
					return req.Repos.PostTags.Create(ctx, in.PostID, in.TagID)
				},
				shape: as(shapePostTag),
			}),
		},
		"createTag": &graphql.Field{
			Type: nonNull(t.tag),
			Args: dataArg(t.createTagInput),
			Resolve: handle(r, op[validation.CreateTagInput]{
				name: "Mutation.createTag",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreateTagInput) (interface{}, error) {
					existing, err := req.Repos.Tags.GetBySlug(ctx, in.Slug)
					if err != nil && !apperror.IsNotFound(err) {
						return nil, err
					}
					if existing != nil {
						return nil, apperror.Conflict(MessageTagSlugTaken)
					}

					tag := &entity.Tag{Name: in.Name, Slug: in.Slug}
					if err := req.Repos.Tags.Create(ctx, tag); err != nil {
						return nil, err
					}
					return tag, nil
				},
				shape: as(shapeTag),
			}),
		},
		"createCategory": &graphql.Field{
			Type: nonNull(t.category),
			Args: dataArg(t.createCategoryInput),
			Resolve: handle(r, op[validation.CreateCategoryInput]{
				name: "Mutation.createCategory",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreateCategoryInput) (interface{}, error) {
					existing, err := req.Repos.Categories.GetBySlug(ctx, in.Slug)
					if err != nil && !apperror.IsNotFound(err) {
						return nil, err
					}
					if existing != nil {
						return nil, apperror.Conflict(MessageCategorySlugTaken)
					}

					category := &entity.Category{Name: in.Name, Slug: in.Slug}
					if err := req.Repos.Categories.Create(ctx, category); err != nil {
						return nil, err
					}
					return category, nil
				},
				shape: as(shapeCategory),
			}),
		},
		"createMedia": &graphql.Field{
			Type: nonNull(t.media),
			Args: dataArg(t.createMediaInput),
			Resolve: handle(r, op[validation.CreateMediaInput]{
				name: "Mutation.createMedia",
				arg:  "data",
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, in *validation.CreateMediaInput) (interface{}, error) {
					media := &entity.Media{
						URL:    in.URL,
						Type:   in.Type,
						PostID: in.PostID,
						UserID: in.UserID,
					}
					if err := req.Repos.Media.Create(ctx, media); err != nil {
						return nil, err
					}
					return media, nil
				},
				shape: as(shapeMedia),
			}),
		},
		"updateUser": &graphql.Field{
			Type: t.user,
			Args: graphql.FieldConfigArgument{
				"id":   &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
				"data": &graphql.ArgumentConfig{Type: nonNull(t.updateUserInput)},
			},
			Resolve: handle(r, op[validation.UpdateUserInput]{
				name:   "Mutation.updateUser",
				auth:   true,
				arg:    "data",
				policy: failNull,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, in *validation.UpdateUserInput) (interface{}, error) {
					id := stringArg(p, "id")
					if err := canAccessUser(req.User, id); err != nil {
						return nil, err
					}

					if in.Email != nil {
						owner, err := req.Repos.Users.GetByEmail(ctx, *in.Email)
						if err != nil && !apperror.IsNotFound(err) {
							return nil, err
						}
						if owner != nil && owner.ID != id {
							return nil, apperror.Conflict(auth.MessageEmailInUse)
						}
					}

					return req.Repos.Users.UpdateProfile(ctx, id, entity.UserUpdate{
						Name:  in.Name,
						Image: in.Image,
						Email: in.Email,
					})
				},
				shape: as(shapeUser),
			}),
		},
		"deleteUser": &graphql.Field{
			Type: nonNull(graphql.Boolean),
			Args: idArg(),
			Resolve: handle(r, op[noInput]{
				name:   "Mutation.deleteUser",
				auth:   true,
				policy: failFalse,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					id := stringArg(p, "id")
					if err := canAccessUser(req.User, id); err != nil {
						return nil, err
					}
					if err := req.Repos.Users.Delete(ctx, id); err != nil {
						return nil, err
					}
					return true, nil
				},
			}),
		},
		"requestEmailVerification": &graphql.Field{
			Type: nonNull(graphql.Boolean),
			Resolve: handle(r, op[noInput]{
				name: "Mutation.requestEmailVerification",
				auth: true,
				run: func(ctx context.Context, req *RequestContext, _ graphql.ResolveParams, _ *noInput) (interface{}, error) {
					token, err := req.Repos.Verification.Create(ctx, req.User.Email, uuid.NewString(), r.now().Add(VerificationTTL))
					if err != nil {
						return nil, err
					}
					// The token only leaves the service through the event consumer that mails it.
					r.publish(EventVerificationRequested, map[string]interface{}{
						"identifier": token.Identifier,
						"token":      token.Token,
						"expires":    formatTime(token.Expires),
					})
					return true, nil
				},
			}),
		},
		"verifyEmail": &graphql.Field{
			Type: nonNull(graphql.Boolean),
			Args: graphql.FieldConfigArgument{
				"identifier": &graphql.ArgumentConfig{Type: nonNull(graphql.String)},
				"token":      &graphql.ArgumentConfig{Type: nonNull(graphql.String)},
			},
			Resolve: handle(r, op[noInput]{
				name:   "Mutation.verifyEmail",
				policy: failFalse,
				run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
					identifier, value := stringArg(p, "identifier"), stringArg(p, "token")

					token, err := req.Repos.Verification.Get(ctx, identifier, value)
					if err != nil {
						return nil, err
					}
					if token.Expired(r.now()) {
						if err := req.Repos.Verification.Delete(ctx, identifier, value); err != nil {
							r.logger.Warn("Failed to delete expired verification token: %v", err)
						}
						return false, nil
					}

					if err := req.Repos.Users.MarkEmailVerified(ctx, identifier, r.now()); err != nil {
						return nil, err
					}
					if err := req.Repos.Verification.Delete(ctx, identifier, value); err != nil {
						r.logger.Warn("Failed to delete used verification token: %v", err)
					}
					return true, nil
				},
			}),
		},
	}
}
