package graphql

import (
	"context"

	"blog-api/internal/entity"

	"github.com/graphql-go/graphql"
)

// Relation fields reuse eager-loaded data when present and fall back to a DAO call.

func (r *Resolver) userPosts() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "User.posts",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			u := sourceOf[entity.User](p)
			if u == nil {
				return []interface{}{}, nil
			}
			if u.Posts != nil {
				return shapeValues(u.Posts, shapePost), nil
			}
			posts, err := req.Repos.Users.GetPostsByUserID(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(posts, shapePost), nil
		},
	})
}

func (r *Resolver) userComments() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "User.comments",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			u := sourceOf[entity.User](p)
			if u == nil {
				return []interface{}{}, nil
			}
			if u.Comments != nil {
				return shapeValues(u.Comments, shapeComment), nil
			}
			comments, err := req.Repos.Users.GetCommentsByUserID(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(comments, shapeComment), nil
		},
	})
}

func (r *Resolver) userLikes() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "User.likes",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			u := sourceOf[entity.User](p)
			if u == nil {
				return []interface{}{}, nil
			}
			if u.Likes != nil {
				return shapeValues(u.Likes, shapeLike), nil
			}
			likes, err := req.Repos.Users.GetLikesByUserID(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(likes, shapeLike), nil
		},
	})
}

func (r *Resolver) userMedia() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "User.media",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			u := sourceOf[entity.User](p)
			if u == nil {
				return []interface{}{}, nil
			}
			if u.Media != nil {
				return shapeValues(u.Media, shapeMedia), nil
			}
			media, err := req.Repos.Users.GetMediaByUserID(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(media, shapeMedia), nil
		},
	})
}

func (r *Resolver) userAccounts() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "User.accounts",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			u := sourceOf[entity.User](p)
			if u == nil || req.User == nil || canAccessUser(req.User, u.ID) != nil {
				return []interface{}{}, nil
			}
			if u.Accounts != nil {
				return shapeValues(u.Accounts, shapeAccount), nil
			}
			accounts, err := req.Repos.Accounts.ListByUserID(ctx, u.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(accounts, shapeAccount), nil
		},
	})
}

func (r *Resolver) postAuthor() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name: "Post.author",
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			post := sourceOf[entity.Post](p)
			if post == nil {
				return nil, nil
			}
			if post.Author != nil {
				return shapeUser(post.Author), nil
			}
			user, err := req.Repos.Users.GetByID(ctx, post.AuthorID)
			if err != nil {
				return nil, err
			}
			return shapeUser(user), nil
		},
	})
}

func (r *Resolver) postComments() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Post.comments",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			post := sourceOf[entity.Post](p)
			if post == nil {
				return []interface{}{}, nil
			}
			if post.Comments != nil {
				return shapeValues(post.Comments, shapeComment), nil
			}
			comments, err := req.Repos.Comments.ListByPostID(ctx, post.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(comments, shapeComment), nil
		},
	})
}

func (r *Resolver) postLikes() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Post.likes",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			post := sourceOf[entity.Post](p)
			if post == nil {
				return []interface{}{}, nil
			}
			if post.Likes != nil {
				return shapeValues(post.Likes, shapeLike), nil
			}
			likes, err := req.Repos.Likes.ListByPostID(ctx, post.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(likes, shapeLike), nil
		},
	})
}

func (r *Resolver) postTags() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Post.tags",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			post := sourceOf[entity.Post](p)
			if post == nil {
				return []interface{}{}, nil
			}
			if post.Tags != nil {
				return shapeValues(post.Tags, shapeTag), nil
			}
			links, err := req.Repos.PostTags.ListByPostID(ctx, post.ID)
			if err != nil {
				return nil, err
			}
			ids := make([]string, 0, len(links))
			for _, link := range links {
				ids = append(ids, link.TagID)
			}
			tags, err := req.Repos.Tags.ListByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return shapeList(tags, shapeTag), nil
		},
	})
}

func (r *Resolver) postCategories() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Post.categories",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			post := sourceOf[entity.Post](p)
			if post == nil {
				return []interface{}{}, nil
			}
			if post.Categories != nil {
				return shapeValues(post.Categories, shapeCategory), nil
			}
			links, err := req.Repos.PostCategories.ListByPostID(ctx, post.ID)
			if err != nil {
				return nil, err
			}
			ids := make([]string, 0, len(links))
			for _, link := range links {
				ids = append(ids, link.CategoryID)
			}
			categories, err := req.Repos.Categories.ListByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return shapeList(categories, shapeCategory), nil
		},
	})
}

func (r *Resolver) postMedia() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Post.media",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			post := sourceOf[entity.Post](p)
			if post == nil {
				return []interface{}{}, nil
			}
			if post.Media != nil {
				return shapeValues(post.Media, shapeMedia), nil
			}
			media, err := req.Repos.Media.ListByPostID(ctx, post.ID)
			if err != nil {
				return nil, err
			}
			return shapeList(media, shapeMedia), nil
		},
	})
}

// postByID and userByID back the single-object relations.
func postByID(ctx context.Context, req *RequestContext, id *string) (interface{}, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	post, err := req.Repos.Posts.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	return shapePost(post), nil
}

func userByID(ctx context.Context, req *RequestContext, id *string) (interface{}, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	user, err := req.Repos.Users.GetByID(ctx, *id)
	if err != nil {
		return nil, err
	}
	return shapeUser(user), nil
}

func (r *Resolver) commentPost() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name: "Comment.post",
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if c := sourceOf[entity.Comment](p); c != nil {
				return postByID(ctx, req, &c.PostID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) commentUser() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name: "Comment.user",
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if c := sourceOf[entity.Comment](p); c != nil {
				return userByID(ctx, req, &c.UserID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) likePost() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name: "Like.post",
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if l := sourceOf[entity.Like](p); l != nil {
				return postByID(ctx, req, &l.PostID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) likeUser() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name: "Like.user",
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if l := sourceOf[entity.Like](p); l != nil {
				return userByID(ctx, req, &l.UserID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) mediaPost() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Media.post",
		policy: failNull,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if m := sourceOf[entity.Media](p); m != nil {
				return postByID(ctx, req, m.PostID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) mediaUser() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Media.user",
		policy: failNull,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if m := sourceOf[entity.Media](p); m != nil {
				return userByID(ctx, req, m.UserID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) tagPosts() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Tag.posts",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			tag := sourceOf[entity.Tag](p)
			if tag == nil {
				return []interface{}{}, nil
			}
			links, err := req.Repos.PostTags.ListByTagID(ctx, tag.ID)
			if err != nil {
				return nil, err
			}
			ids := make([]string, 0, len(links))
			for _, link := range links {
				ids = append(ids, link.PostID)
			}
			posts, err := req.Repos.Posts.ListByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return shapeList(posts, shapePost), nil
		},
	})
}

func (r *Resolver) categoryPosts() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "Category.posts",
		policy: failEmptyList,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			category := sourceOf[entity.Category](p)
			if category == nil {
				return []interface{}{}, nil
			}
			links, err := req.Repos.PostCategories.ListByCategoryID(ctx, category.ID)
			if err != nil {
				return nil, err
			}
			ids := make([]string, 0, len(links))
			for _, link := range links {
				ids = append(ids, link.PostID)
			}
			posts, err := req.Repos.Posts.ListByIDs(ctx, ids)
			if err != nil {
				return nil, err
			}
			return shapeList(posts, shapePost), nil
		},
	})
}

func (r *Resolver) postTagPost() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "PostTag.post",
		policy: failNull,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if pt := sourceOf[entity.PostTag](p); pt != nil {
				return postByID(ctx, req, &pt.PostID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) postTagTag() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "PostTag.tag",
		policy: failNull,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			pt := sourceOf[entity.PostTag](p)
			if pt == nil {
				return nil, nil
			}
			tag, err := req.Repos.Tags.GetByID(ctx, pt.TagID)
			if err != nil {
				return nil, err
			}
			return shapeTag(tag), nil
		},
	})
}

func (r *Resolver) postCategoryPost() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "PostCategory.post",
		policy: failNull,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			if pc := sourceOf[entity.PostCategory](p); pc != nil {
				return postByID(ctx, req, &pc.PostID)
			}
			return nil, nil
		},
	})
}

func (r *Resolver) postCategoryCategory() graphql.FieldResolveFn {
	return handle(r, op[noInput]{
		name:   "PostCategory.category",
		policy: failNull,
		run: func(ctx context.Context, req *RequestContext, p graphql.ResolveParams, _ *noInput) (interface{}, error) {
			pc := sourceOf[entity.PostCategory](p)
			if pc == nil {
				return nil, nil
			}
			category, err := req.Repos.Categories.GetByID(ctx, pc.CategoryID)
			if err != nil {
				return nil, err
			}
			return shapeCategory(category), nil
		},
	})
}
