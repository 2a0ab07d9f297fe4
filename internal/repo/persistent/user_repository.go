package persistent

import (
	"context"
	"errors"
	"time"

	"blog-api/internal/apperror"
	"blog-api/internal/entity"
	"blog-api/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindOrCreate(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetPostsByUserID(ctx context.Context, userID string) ([]*entity.Post, error)
	GetCommentsByUserID(ctx context.Context, userID string) ([]*entity.Comment, error)
	GetLikesByUserID(ctx context.Context, userID string) ([]*entity.Like, error)
	GetMediaByUserID(ctx context.Context, userID string) ([]*entity.Media, error)
	CreateWithAccount(ctx context.Context, user *entity.User, account *entity.Account) error
	UpdateProfile(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id string) error
	MarkEmailVerified(ctx context.Context, email string, at time.Time) error
	UpsertOAuth(ctx context.Context, profile entity.OAuthProfile) (*entity.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindOrCreate(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, apperror.ErrNotFound
	}

	userModel := model.UserModel{Email: email, Role: string(entity.RoleUser)}
	if err := r.db.WithContext(ctx).Where("email = ?", email).FirstOrCreate(&userModel).Error; err != nil {
		return nil, wrapErr("user.find_or_create", err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.UserModel
	err := r.db.WithContext(ctx).
		Preload("Posts").
		Preload("Comments").
		Preload("Likes").
		Preload("Media").
		Preload("Accounts").
		Where("id = ?", id).
		First(&userModel).Error
	if err != nil {
		return nil, wrapErr("user.get_by_id", err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.WithContext(ctx).Preload("Accounts").Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, wrapErr("user.get_by_email", err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetPostsByUserID(ctx context.Context, userID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.WithContext(ctx).Where("author_id = ?", userID).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, wrapErr("user.posts", err)
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *userRepository) GetCommentsByUserID(ctx context.Context, userID string) ([]*entity.Comment, error) {
	var commentModels []model.CommentModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&commentModels).Error; err != nil {
		return nil, wrapErr("user.comments", err)
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}

func (r *userRepository) GetLikesByUserID(ctx context.Context, userID string) ([]*entity.Like, error) {
	var likeModels []model.LikeModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&likeModels).Error; err != nil {
		return nil, wrapErr("user.likes", err)
	}

	likes := make([]*entity.Like, len(likeModels))
	for i := range likeModels {
		likes[i] = ToLikeEntity(&likeModels[i])
	}
	return likes, nil
}

func (r *userRepository) GetMediaByUserID(ctx context.Context, userID string) ([]*entity.Media, error) {
	var mediaModels []model.MediaModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&mediaModels).Error; err != nil {
		return nil, wrapErr("user.media", err)
	}

	media := make([]*entity.Media, len(mediaModels))
	for i := range mediaModels {
		media[i] = ToMediaEntity(&mediaModels[i])
	}
	return media, nil
}

// CreateWithAccount inserts the user and its first account with a single nested create.
func (r *userRepository) CreateWithAccount(ctx context.Context, user *entity.User, account *entity.Account) error {
	userModel := ToUserModel(user)
	if account != nil {
		userModel.Accounts = []model.AccountModel{*ToAccountModel(account)}
	}

	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		return wrapErr("user.create", err)
	}

	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id string, update entity.UserUpdate) (*entity.User, error) {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Image != nil {
		updates["image"] = *update.Image
	}
	if update.Email != nil {
		updates["email"] = *update.Email
	}
	if update.Role != nil {
		updates["role"] = string(*update.Role)
	}
	if update.EmailVerified != nil {
		updates["email_verified"] = *update.EmailVerified
	}

	db := r.db.WithContext(ctx)
	if len(updates) > 0 {
		if err := affected("user.update", db.Model(&model.UserModel{}).Where("id = ?", id).Updates(updates)); err != nil {
			return nil, err
		}
	}

	var userModel model.UserModel
	if err := db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, wrapErr("user.update", err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return affected("user.delete", r.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", id))
}

func (r *userRepository) MarkEmailVerified(ctx context.Context, email string, at time.Time) error {
	return affected("user.mark_verified", r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", email).
		Update("email_verified", at))
}

// UpsertOAuth creates the user and a linked provider account when the email is
// unknown. Otherwise it refreshes the profile and the linked account's tokens,
// linking a new account if the user signed up another way.
func (r *userRepository) UpsertOAuth(ctx context.Context, profile entity.OAuthProfile) (*entity.User, error) {
	var result model.UserModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account := oauthAccountModel(profile)

		err := tx.Where("email = ?", profile.Email).First(&result).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result = model.UserModel{
				Email:    profile.Email,
				Name:     optional(profile.Name),
				Image:    optional(profile.Image),
				Role:     string(entity.RoleUser),
				Accounts: []model.AccountModel{account},
			}
			return tx.Create(&result).Error
		}
		if err != nil {
			return err
		}

		profileUpdates := map[string]interface{}{}
		if profile.Name != "" {
			profileUpdates["name"] = profile.Name
		}
		if profile.Image != "" {
			profileUpdates["image"] = profile.Image
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&result).Updates(profileUpdates).Error; err != nil {
				return err
			}
		}

		var existing model.AccountModel
		err = tx.Where("user_id = ? AND provider = ?", result.ID, profile.Provider).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			account.UserID = result.ID
			return tx.Create(&account).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&existing).Updates(map[string]interface{}{
			"access_token":  account.AccessToken,
			"refresh_token": account.RefreshToken,
			"id_token":      account.IDToken,
			"expires_at":    account.ExpiresAt,
		}).Error
	})
	if err != nil {
		return nil, wrapErr("user.upsert_oauth", err)
	}

	if err := r.db.WithContext(ctx).Preload("Accounts").Where("id = ?", result.ID).First(&result).Error; err != nil {
		return nil, wrapErr("user.upsert_oauth", err)
	}
	return ToUserEntity(&result), nil
}

func oauthAccountModel(profile entity.OAuthProfile) model.AccountModel {
	return model.AccountModel{
		Type:              entity.AccountTypeOAuth,
		Provider:          profile.Provider,
		ProviderAccountID: profile.ProviderAccountID,
		AccessToken:       optional(profile.AccessToken),
		RefreshToken:      optional(profile.RefreshToken),
		IDToken:           optional(profile.IDToken),
		ExpiresAt:         profile.ExpiresAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
