package infra

import (
	"context"

	"gorm.io/gorm"
)

// WithTransaction runs fn in one transaction, committing when it returns nil.
func WithTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn)
}
