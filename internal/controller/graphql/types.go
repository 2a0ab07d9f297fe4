package graphql

import "github.com/graphql-go/graphql"

type schemaTypes struct {
	role              *graphql.Enum
	user              *graphql.Object
	account           *graphql.Object
	post              *graphql.Object
	comment           *graphql.Object
	like              *graphql.Object
	tag               *graphql.Object
	category          *graphql.Object
	postTag           *graphql.Object
	postCategory      *graphql.Object
	media             *graphql.Object
	verificationToken *graphql.Object
	authPayload       *graphql.Object

	registerInput           *graphql.InputObject
	loginInput              *graphql.InputObject
	createPostInput         *graphql.InputObject
	updatePostInput         *graphql.InputObject
	createPostCategoryInput *graphql.InputObject
	createPostTagInput      *graphql.InputObject
	createCommentInput      *graphql.InputObject
	createLikeInput         *graphql.InputObject
	createTagInput          *graphql.InputObject
	createCategoryInput     *graphql.InputObject
	createMediaInput        *graphql.InputObject
	updateUserInput         *graphql.InputObject
}

func nonNull(t graphql.Type) graphql.Type {
	return graphql.NewNonNull(t)
}

func listOf(t graphql.Type) graphql.Type {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: nonNull(graphql.ID)},
	}
}

func dataArg(input *graphql.InputObject) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"data": &graphql.ArgumentConfig{Type: nonNull(input)},
	}
}

func inputFields(fields map[string]graphql.Input) graphql.InputObjectConfigFieldMap {
	out := graphql.InputObjectConfigFieldMap{}
	for name, t := range fields {
		out[name] = &graphql.InputObjectFieldConfig{Type: t}
	}
	return out
}

func newInput(name string, fields map[string]graphql.Input) *graphql.InputObject {
	return graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   name,
		Fields: inputFields(fields),
	})
}

// newTypes declares every object and input type. Relation fields are attached
// through thunks because the object graph is cyclic.
func (r *Resolver) newTypes() *schemaTypes {
	t := &schemaTypes{}

	t.role = graphql.NewEnum(graphql.EnumConfig{
		Name: "Role",
		Values: graphql.EnumValueConfigMap{
			"USER":       &graphql.EnumValueConfig{Value: "USER"},
			"ADMIN":      &graphql.EnumValueConfig{Value: "ADMIN"},
			"SUPERADMIN": &graphql.EnumValueConfig{Value: "SUPERADMIN"},
		},
	})

	t.account = graphql.NewObject(graphql.ObjectConfig{
		Name: "Account",
		Fields: graphql.Fields{
			"id":                &graphql.Field{Type: nonNull(graphql.ID)},
			"userId":            &graphql.Field{Type: nonNull(graphql.ID)},
			"type":              &graphql.Field{Type: nonNull(graphql.String)},
			"provider":          &graphql.Field{Type: nonNull(graphql.String)},
			"providerAccountId": &graphql.Field{Type: nonNull(graphql.String)},
			"expires_at":        &graphql.Field{Type: graphql.Int},
			"token_type":        &graphql.Field{Type: graphql.String},
			"scope":             &graphql.Field{Type: graphql.String},
			"session_state":     &graphql.Field{Type: graphql.String},
			"createdAt":         &graphql.Field{Type: nonNull(graphql.String)},
			"updatedAt":         &graphql.Field{Type: nonNull(graphql.String)},
		},
	})

	t.verificationToken = graphql.NewObject(graphql.ObjectConfig{
		Name: "VerificationToken",
		Fields: graphql.Fields{
			"identifier": &graphql.Field{Type: nonNull(graphql.String)},
			"token":      &graphql.Field{Type: nonNull(graphql.String)},
			"expires":    &graphql.Field{Type: nonNull(graphql.String)},
		},
	})

	t.user = graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":            &graphql.Field{Type: nonNull(graphql.ID)},
				"email":         &graphql.Field{Type: nonNull(graphql.String)},
				"name":          &graphql.Field{Type: graphql.String},
				"image":         &graphql.Field{Type: graphql.String},
				"role":          &graphql.Field{Type: nonNull(t.role)},
				"emailVerified": &graphql.Field{Type: graphql.String},
				"createdAt":     &graphql.Field{Type: nonNull(graphql.String)},
				"updatedAt":     &graphql.Field{Type: nonNull(graphql.String)},
				"posts":         &graphql.Field{Type: listOf(t.post), Resolve: r.userPosts()},
				"comments":      &graphql.Field{Type: listOf(t.comment), Resolve: r.userComments()},
				"likes":         &graphql.Field{Type: listOf(t.like), Resolve: r.userLikes()},
				"media":         &graphql.Field{Type: listOf(t.media), Resolve: r.userMedia()},
				"accounts":      &graphql.Field{Type: listOf(t.account), Resolve: r.userAccounts()},
			}
		}),
	})

	t.post = graphql.NewObject(graphql.ObjectConfig{
		Name: "Post",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":         &graphql.Field{Type: nonNull(graphql.ID)},
				"title":      &graphql.Field{Type: nonNull(graphql.String)},
				"content":    &graphql.Field{Type: nonNull(graphql.String)},
				"imageUrl":   &graphql.Field{Type: graphql.String},
				"createdAt":  &graphql.Field{Type: nonNull(graphql.String)},
				"updatedAt":  &graphql.Field{Type: nonNull(graphql.String)},
				"author":     &graphql.Field{Type: nonNull(t.user), Resolve: r.postAuthor()},
				"comments":   &graphql.Field{Type: listOf(t.comment), Resolve: r.postComments()},
				"likes":      &graphql.Field{Type: listOf(t.like), Resolve: r.postLikes()},
				"tags":       &graphql.Field{Type: listOf(t.tag), Resolve: r.postTags()},
				"categories": &graphql.Field{Type: listOf(t.category), Resolve: r.postCategories()},
				"media":      &graphql.Field{Type: listOf(t.media), Resolve: r.postMedia()},
			}
		}),
	})

	t.comment = graphql.NewObject(graphql.ObjectConfig{
		Name: "Comment",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":        &graphql.Field{Type: nonNull(graphql.ID)},
				"content":   &graphql.Field{Type: nonNull(graphql.String)},
				"createdAt": &graphql.Field{Type: nonNull(graphql.String)},
				"post":      &graphql.Field{Type: nonNull(t.post), Resolve: r.commentPost()},
				"user":      &graphql.Field{Type: nonNull(t.user), Resolve: r.commentUser()},
			}
		}),
	})

	t.like = graphql.NewObject(graphql.ObjectConfig{
		Name: "Like",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":        &graphql.Field{Type: nonNull(graphql.ID)},
				"createdAt": &graphql.Field{Type: nonNull(graphql.String)},
				"post":      &graphql.Field{Type: nonNull(t.post), Resolve: r.likePost()},
				"user":      &graphql.Field{Type: nonNull(t.user), Resolve: r.likeUser()},
			}
		}),
	})

	t.tag = graphql.NewObject(graphql.ObjectConfig{
		Name: "Tag",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":    &graphql.Field{Type: nonNull(graphql.ID)},
				"name":  &graphql.Field{Type: nonNull(graphql.String)},
				"slug":  &graphql.Field{Type: nonNull(graphql.String)},
				"posts": &graphql.Field{Type: listOf(t.post), Resolve: r.tagPosts()},
			}
		}),
	})

	t.category = graphql.NewObject(graphql.ObjectConfig{
		Name: "Category",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":    &graphql.Field{Type: nonNull(graphql.ID)},
				"name":  &graphql.Field{Type: nonNull(graphql.String)},
				"slug":  &graphql.Field{Type: nonNull(graphql.String)},
				"posts": &graphql.Field{Type: listOf(t.post), Resolve: r.categoryPosts()},
			}
		}),
	})

	t.postTag = graphql.NewObject(graphql.ObjectConfig{
		Name: "PostTag",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"postId":     &graphql.Field{Type: nonNull(graphql.ID)},
				"tagId":      &graphql.Field{Type: nonNull(graphql.ID)},
				"assignedAt": &graphql.Field{Type: nonNull(graphql.String)},
				"post":       &graphql.Field{Type: t.post, Resolve: r.postTagPost()},
				"tag":        &graphql.Field{Type: t.tag, Resolve: r.postTagTag()},
			}
		}),
	})

	t.postCategory = graphql.NewObject(graphql.ObjectConfig{
		Name: "PostCategory",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"postId":     &graphql.Field{Type: nonNull(graphql.ID)},
				"categoryId": &graphql.Field{Type: nonNull(graphql.ID)},
				"assignedAt": &graphql.Field{Type: nonNull(graphql.String)},
				"post":       &graphql.Field{Type: t.post, Resolve: r.postCategoryPost()},
				"category":   &graphql.Field{Type: t.category, Resolve: r.postCategoryCategory()},
			}
		}),
	})

	t.media = graphql.NewObject(graphql.ObjectConfig{
		Name: "Media",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"id":        &graphql.Field{Type: nonNull(graphql.ID)},
				"url":       &graphql.Field{Type: nonNull(graphql.String)},
				"type":      &graphql.Field{Type: nonNull(graphql.String)},
				"createdAt": &graphql.Field{Type: nonNull(graphql.String)},
				"post":      &graphql.Field{Type: t.post, Resolve: r.mediaPost()},
				"user":      &graphql.Field{Type: t.user, Resolve: r.mediaUser()},
			}
		}),
	})

	t.authPayload = graphql.NewObject(graphql.ObjectConfig{
		Name: "AuthPayload",
		Fields: graphql.FieldsThunk(func() graphql.Fields {
			return graphql.Fields{
				"token":        &graphql.Field{Type: nonNull(graphql.String)},
				"refreshToken": &graphql.Field{Type: nonNull(graphql.String)},
				"user":         &graphql.Field{Type: nonNull(t.user)},
			}
		}),
	})

	t.registerInput = newInput("RegisterInput", map[string]graphql.Input{
		"email":           nonNull(graphql.String),
		"name":            graphql.String,
		"password":        nonNull(graphql.String),
		"confirmPassword": nonNull(graphql.String),
		"provider":        graphql.String,
		"type":            graphql.String,
	})
	t.loginInput = newInput("LoginInput", map[string]graphql.Input{
		"email":    nonNull(graphql.String),
		"password": nonNull(graphql.String),
	})
	t.createPostInput = newInput("CreatePostInput", map[string]graphql.Input{
		"title":    nonNull(graphql.String),
		"content":  nonNull(graphql.String),
		"imageUrl": graphql.String,
		"authorId": nonNull(graphql.ID),
	})
	t.updatePostInput = newInput("UpdatePostInput", map[string]graphql.Input{
		"title":    graphql.String,
		"content":  graphql.String,
		"imageUrl": graphql.String,
		"authorId": graphql.ID,
	})
	t.createPostCategoryInput = newInput("CreatePostCategoryInput", map[string]graphql.Input{
		"postId":     nonNull(graphql.ID),
		"categoryId": nonNull(graphql.ID),
	})
	t.createPostTagInput = newInput("CreatePostTagInput", map[string]graphql.Input{
		"postId": nonNull(graphql.ID),
		"tagId":  nonNull(graphql.ID),
	})
	t.createCommentInput = newInput("CreateCommentInput", map[string]graphql.Input{
		"content": nonNull(graphql.String),
		"postId":  nonNull(graphql.ID),
		"userId":  nonNull(graphql.ID),
	})
	t.createLikeInput = newInput("CreateLikeInput", map[string]graphql.Input{
		"postId": nonNull(graphql.ID),
		"userId": nonNull(graphql.ID),
	})
	t.createTagInput = newInput("CreateTagInput", map[string]graphql.Input{
		"name": nonNull(graphql.String),
		"slug": nonNull(graphql.String),
	})
	t.createCategoryInput = newInput("CreateCategoryInput", map[string]graphql.Input{
		"name": nonNull(graphql.String),
		"slug": nonNull(graphql.String),
	})
	t.createMediaInput = newInput("CreateMediaInput", map[string]graphql.Input{
		"url":    nonNull(graphql.String),
		"type":   nonNull(graphql.String),
		"postId": graphql.ID,
		"userId": graphql.ID,
	})
	t.updateUserInput = newInput("UpdateUserInput", map[string]graphql.Input{
		"name":  graphql.String,
		"image": graphql.String,
		"email": graphql.String,
	})

	return t
}
