package persistent

import (
	"context"

	"blog-api/internal/entity"
	"blog-api/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id string) (*entity.Post, error)
	Update(ctx context.Context, id string, update entity.PostUpdate) (*entity.Post, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Post, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Post, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withRelations preloads author, comments, likes and tags.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC")
		}).
		Preload("Likes").
		Preload("PostTags.Tag")
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)

	db := r.db.WithContext(ctx)
	if err := db.Create(postModel).Error; err != nil {
		return wrapErr("post.create", err)
	}

	if err := db.Preload("Author").Where("id = ?", postModel.ID).First(postModel).Error; err != nil {
		return wrapErr("post.create", err)
	}

	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := withRelations(r.db.WithContext(ctx)).Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, wrapErr("post.get_by_id", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Update(ctx context.Context, id string, update entity.PostUpdate) (*entity.Post, error) {
	updates := map[string]interface{}{}
	if update.Title != nil {
		updates["title"] = *update.Title
	}
	if update.Content != nil {
		updates["content"] = *update.Content
	}
	if update.ImageURL != nil {
		updates["image_url"] = *update.ImageURL
	}
	if update.AuthorID != nil {
		updates["author_id"] = *update.AuthorID
	}

	db := r.db.WithContext(ctx)
	if len(updates) > 0 {
		if err := affected("post.update", db.Model(&model.PostModel{}).Where("id = ?", id).Updates(updates)); err != nil {
			return nil, err
		}
	}

	var postModel model.PostModel
	if err := db.Where("id = ?", id).First(&postModel).Error; err != nil {
		return nil, wrapErr("post.update", err)
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	return affected("post.delete", r.db.WithContext(ctx).Delete(&model.PostModel{}, "id = ?", id))
}

func (r *postRepository) List(ctx context.Context) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := withRelations(r.db.WithContext(ctx)).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, wrapErr("post.list", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) ListByIDs(ctx context.Context, ids []string) ([]*entity.Post, error) {
	if len(ids) == 0 {
		return []*entity.Post{}, nil
	}

	var postModels []model.PostModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, wrapErr("post.list_by_ids", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}
