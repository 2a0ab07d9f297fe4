package persistent

import (
	"blog-api/internal/entity"
	"blog-api/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	user := &entity.User{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		Image:         m.Image,
		Role:          entity.Role(m.Role),
		EmailVerified: m.EmailVerified,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}

	if len(m.Posts) > 0 {
		user.Posts = make([]entity.Post, len(m.Posts))
		for i := range m.Posts {
			user.Posts[i] = *ToPostEntity(&m.Posts[i])
		}
	}
	if len(m.Comments) > 0 {
		user.Comments = make([]entity.Comment, len(m.Comments))
		for i := range m.Comments {
			user.Comments[i] = *ToCommentEntity(&m.Comments[i])
		}
	}
	if len(m.Likes) > 0 {
		user.Likes = make([]entity.Like, len(m.Likes))
		for i := range m.Likes {
			user.Likes[i] = *ToLikeEntity(&m.Likes[i])
		}
	}
	if len(m.Media) > 0 {
		user.Media = make([]entity.Media, len(m.Media))
		for i := range m.Media {
			user.Media[i] = *ToMediaEntity(&m.Media[i])
		}
	}
	if len(m.Accounts) > 0 {
		user.Accounts = make([]entity.Account, len(m.Accounts))
		for i := range m.Accounts {
			user.Accounts[i] = *ToAccountEntity(&m.Accounts[i])
		}
	}

	return user
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	user := &model.UserModel{
		ID:            e.ID,
		Email:         e.Email,
		Name:          e.Name,
		Image:         e.Image,
		Role:          string(e.Role),
		EmailVerified: e.EmailVerified,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if user.Role == "" {
		user.Role = string(entity.RoleUser)
	}

	if len(e.Accounts) > 0 {
		user.Accounts = make([]model.AccountModel, len(e.Accounts))
		for i := range e.Accounts {
			user.Accounts[i] = *ToAccountModel(&e.Accounts[i])
		}
	}

	return user
}

func ToAccountEntity(m *model.AccountModel) *entity.Account {
	if m == nil {
		return nil
	}

	return &entity.Account{
		ID:                m.ID,
		UserID:            m.UserID,
		Type:              m.Type,
		Provider:          m.Provider,
		ProviderAccountID: m.ProviderAccountID,
		RefreshToken:      m.RefreshToken,
		AccessToken:       m.AccessToken,
		ExpiresAt:         m.ExpiresAt,
		TokenType:         m.TokenType,
		Scope:             m.Scope,
		IDToken:           m.IDToken,
		SessionState:      m.SessionState,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToAccountModel(e *entity.Account) *model.AccountModel {
	if e == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                e.ID,
		UserID:            e.UserID,
		Type:              e.Type,
		Provider:          e.Provider,
		ProviderAccountID: e.ProviderAccountID,
		RefreshToken:      e.RefreshToken,
		AccessToken:       e.AccessToken,
		ExpiresAt:         e.ExpiresAt,
		TokenType:         e.TokenType,
		Scope:             e.Scope,
		IDToken:           e.IDToken,
		SessionState:      e.SessionState,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	post := &entity.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		AuthorID:  m.AuthorID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		Author:    ToUserEntity(m.Author),
	}

	if m.Comments != nil {
		post.Comments = make([]entity.Comment, len(m.Comments))
		for i := range m.Comments {
			post.Comments[i] = *ToCommentEntity(&m.Comments[i])
		}
	}
	if m.Likes != nil {
		post.Likes = make([]entity.Like, len(m.Likes))
		for i := range m.Likes {
			post.Likes[i] = *ToLikeEntity(&m.Likes[i])
		}
	}
	if m.PostTags != nil {
		post.Tags = make([]entity.Tag, 0, len(m.PostTags))
		for _, pt := range m.PostTags {
			if pt.Tag != nil {
				post.Tags = append(post.Tags, *ToTagEntity(pt.Tag))
			}
		}
	}
	if m.PostCategories != nil {
		post.Categories = make([]entity.Category, 0, len(m.PostCategories))
		for _, pc := range m.PostCategories {
			if pc.Category != nil {
				post.Categories = append(post.Categories, *ToCategoryEntity(pc.Category))
			}
		}
	}
	if m.Media != nil {
		post.Media = make([]entity.Media, len(m.Media))
		for i := range m.Media {
			post.Media[i] = *ToMediaEntity(&m.Media[i])
		}
	}

	return post
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:        e.ID,
		Title:     e.Title,
		Content:   e.Content,
		ImageURL:  e.ImageURL,
		AuthorID:  e.AuthorID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *model.CommentModel) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		Content:   m.Content,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *model.CommentModel {
	if e == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        e.ID,
		Content:   e.Content,
		PostID:    e.PostID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToLikeEntity(m *model.LikeModel) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func ToLikeModel(e *entity.Like) *model.LikeModel {
	if e == nil {
		return nil
	}

	return &model.LikeModel{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}

func ToTagEntity(m *model.TagModel) *entity.Tag {
	if m == nil {
		return nil
	}
	return &entity.Tag{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

func ToTagModel(e *entity.Tag) *model.TagModel {
	if e == nil {
		return nil
	}
	return &model.TagModel{ID: e.ID, Name: e.Name, Slug: e.Slug}
}

func ToCategoryEntity(m *model.CategoryModel) *entity.Category {
	if m == nil {
		return nil
	}
	return &entity.Category{ID: m.ID, Name: m.Name, Slug: m.Slug}
}

func ToCategoryModel(e *entity.Category) *model.CategoryModel {
	if e == nil {
		return nil
	}
	return &model.CategoryModel{ID: e.ID, Name: e.Name, Slug: e.Slug}
}

func ToPostTagEntity(m *model.PostTagModel) *entity.PostTag {
	if m == nil {
		return nil
	}
	return &entity.PostTag{PostID: m.PostID, TagID: m.TagID, AssignedAt: m.AssignedAt}
}

func ToPostCategoryEntity(m *model.PostCategoryModel) *entity.PostCategory {
	if m == nil {
		return nil
	}
	return &entity.PostCategory{PostID: m.PostID, CategoryID: m.CategoryID, AssignedAt: m.AssignedAt}
}

func ToMediaEntity(m *model.MediaModel) *entity.Media {
	if m == nil {
		return nil
	}

	return &entity.Media{
		ID:        m.ID,
		URL:       m.URL,
		Type:      m.Type,
		PostID:    m.PostID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
	}
}

func ToMediaModel(e *entity.Media) *model.MediaModel {
	if e == nil {
		return nil
	}

	return &model.MediaModel{
		ID:        e.ID,
		URL:       e.URL,
		Type:      e.Type,
		PostID:    e.PostID,
		UserID:    e.UserID,
		CreatedAt: e.CreatedAt,
	}
}

func ToVerificationTokenEntity(m *model.VerificationTokenModel) *entity.VerificationToken {
	if m == nil {
		return nil
	}
	return &entity.VerificationToken{Identifier: m.Identifier, Token: m.Token, Expires: m.Expires}
}
