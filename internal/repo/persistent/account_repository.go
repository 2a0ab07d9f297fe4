package persistent

import (
	"context"

	"blog-api/internal/entity"
	"blog-api/internal/model"

	"gorm.io/gorm"
)

type AccountRepository interface {
	GetByUserID(ctx context.Context, userID string) (*entity.Account, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// GetByUserID returns the user's oldest account.
func (r *accountRepository) GetByUserID(ctx context.Context, userID string) (*entity.Account, error) {
	var accountModel model.AccountModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").First(&accountModel).Error; err != nil {
		return nil, wrapErr("account.get_by_user", err)
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *accountRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Account, error) {
	var accountModels []model.AccountModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at ASC").Find(&accountModels).Error; err != nil {
		return nil, wrapErr("account.list_by_user", err)
	}

	accounts := make([]*entity.Account, len(accountModels))
	for i := range accountModels {
		accounts[i] = ToAccountEntity(&accountModels[i])
	}
	return accounts, nil
}
