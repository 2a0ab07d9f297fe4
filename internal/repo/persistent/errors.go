package persistent

import (
	"errors"

	"blog-api/internal/apperror"

	"gorm.io/gorm"
)

// wrapErr maps gorm's not-found sentinel to apperror.ErrNotFound and tags
// everything else as a storage failure of op.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.ErrNotFound
	}
	return apperror.Storage(op, err)
}

// affected turns a zero-row delete or update into ErrNotFound.
func affected(op string, res *gorm.DB) error {
	if res.Error != nil {
		return wrapErr(op, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperror.ErrNotFound
	}
	return nil
}
