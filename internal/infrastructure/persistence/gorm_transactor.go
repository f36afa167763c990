package persistence

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTransactor struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTransactor creates a Transactor that opens one GORM transaction per unit of work
func NewGormTransactor(db *gorm.DB, logger logger.Logger) (store.Transactor, error) {
	return &gormTransactor{
		db:     db,
		logger: logger,
	}, nil
}

func (t *gormTransactor) Repositories() store.Repositories {
	return newRepositories(t.db, t.logger)
}

// WithinTransaction rolls back when fn fails. Errors that do not already carry an
// apperr kind, such as a failed commit, are reported as apperr.ErrPersistence.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, newRepositories(tx, t.logger))
	})
	return apperr.Classify(err)
}

func newRepositories(db *gorm.DB, logger logger.Logger) store.Repositories {
	return store.Repositories{
		CarModels: &gormCarModelRepository{db: db, logger: logger},
		Lookups:   &gormLookupRepository{db: db, logger: logger},
		Images:    &gormImageRepository{db: db, logger: logger},
	}
}
