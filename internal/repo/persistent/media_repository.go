package persistent

import (
	"context"
	"time"

	"blog-api/internal/entity"
	"blog-api/internal/model"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(ctx context.Context, media *entity.Media) error
	GetByID(ctx context.Context, id string) (*entity.Media, error)
	ListByPostID(ctx context.Context, postID string) ([]*entity.Media, error)
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, media *entity.Media) error {
	mediaModel := ToMediaModel(media)
	if err := r.db.WithContext(ctx).Create(mediaModel).Error; err != nil {
		return wrapErr("media.create", err)
	}
	*media = *ToMediaEntity(mediaModel)
	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*entity.Media, error) {
	var mediaModel model.MediaModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mediaModel).Error; err != nil {
		return nil, wrapErr("media.get_by_id", err)
	}
	return ToMediaEntity(&mediaModel), nil
}

func (r *mediaRepository) ListByPostID(ctx context.Context, postID string) ([]*entity.Media, error) {
	var mediaModels []model.MediaModel
	if err := r.db.WithContext(ctx).Where("post_id = ?", postID).Order("created_at ASC").Find(&mediaModels).Error; err != nil {
		return nil, wrapErr("media.list_by_post", err)
	}

	media := make([]*entity.Media, len(mediaModels))
	for i := range mediaModels {
		media[i] = ToMediaEntity(&mediaModels[i])
	}
	return media, nil
}

type VerificationTokenRepository interface {
	Create(ctx context.Context, identifier, token string, expires time.Time) (*entity.VerificationToken, error)
	Get(ctx context.Context, identifier, token string) (*entity.VerificationToken, error)
	Delete(ctx context.Context, identifier, token string) error
}

type verificationTokenRepository struct {
	db *gorm.DB
}

func NewVerificationTokenRepository(db *gorm.DB) VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

func (r *verificationTokenRepository) Create(ctx context.Context, identifier, token string, expires time.Time) (*entity.VerificationToken, error) {
	tokenModel := &model.VerificationTokenModel{Identifier: identifier, Token: token, Expires: expires}
	if err := r.db.WithContext(ctx).Create(tokenModel).Error; err != nil {
		return nil, wrapErr("verification_token.create", err)
	}
	return ToVerificationTokenEntity(tokenModel), nil
}

func (r *verificationTokenRepository) Get(ctx context.Context, identifier, token string) (*entity.VerificationToken, error) {
	var tokenModel model.VerificationTokenModel
	if err := r.db.WithContext(ctx).Where("identifier = ? AND token = ?", identifier, token).First(&tokenModel).Error; err != nil {
		return nil, wrapErr("verification_token.get", err)
	}
	return ToVerificationTokenEntity(&tokenModel), nil
}

func (r *verificationTokenRepository) Delete(ctx context.Context, identifier, token string) error {
	return affected("verification_token.delete", r.db.WithContext(ctx).
		Where("identifier = ? AND token = ?", identifier, token).
		Delete(&model.VerificationTokenModel{}))
}
