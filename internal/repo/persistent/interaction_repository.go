package persistent

import (
	"context"

	"blog-api/internal/entity"
	"blog-api/internal/model"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	GetByID(ctx context.Context, id string) (*entity.Comment, error)
	Delete(ctx context.Context, id string) error
	ListByPostID(ctx context.Context, postID string) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	if err := r.db.WithContext(ctx).Create(commentModel).Error; err != nil {
		return wrapErr("comment.create", err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id string) (*entity.Comment, error) {
	var commentModel model.CommentModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&commentModel).Error; err != nil {
		return nil, wrapErr("comment.get_by_id", err)
	}
	return ToCommentEntity(&commentModel), nil
}

func (r *commentRepository) Delete(ctx context.Context, id string) error {
	return affected("comment.delete", r.db.WithContext(ctx).Delete(&model.CommentModel{}, "id = ?", id))
}

func (r *commentRepository) ListByPostID(ctx context.Context, postID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, wrapErr("comment.list_by_post", err)
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

// LikeRepository does not deduplicate: the same user may like a post more than once.
type LikeRepository interface {
	Create(ctx context.Context, like *entity.Like) error
	GetByID(ctx context.Context, id string) (*entity.Like, error)
	Delete(ctx context.Context, id string) error
	ListByPostID(ctx context.Context, postID string) ([]*entity.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, like *entity.Like) error {
	likeModel := ToLikeModel(like)
	if err := r.db.WithContext(ctx).Create(likeModel).Error; err != nil {
		return wrapErr("like.create", err)
	}
	*like = *ToLikeEntity(likeModel)
	return nil
}

func (r *likeRepository) GetByID(ctx context.Context, id string) (*entity.Like, error) {
	var likeModel model.LikeModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&likeModel).Error; err != nil {
		return nil, wrapErr("like.get_by_id", err)
	}
	return ToLikeEntity(&likeModel), nil
}

func (r *likeRepository) Delete(ctx context.Context, id string) error {
	return affected("like.delete", r.db.WithContext(ctx).Delete(&model.LikeModel{}, "id = ?", id))
}

func (r *likeRepository) ListByPostID(ctx context.Context, postID string) ([]*entity.Like, error) {
	var likeModels []model.LikeModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&likeModels).Error; err != nil {
		return nil, wrapErr("like.list_by_post", err)
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}
