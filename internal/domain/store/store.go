// Package store defines the unit of work that spans the catalog and image repositories.
package store

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
)

// Repositories bundles the repositories that share one database session
type Repositories struct {
	CarModels catalog.CarModelRepository
	Lookups   catalog.LookupRepository
	Images    images.ImageRepository
}

// Transactor runs work against repositories bound to a single transaction.
type Transactor interface {
	// WithinTransaction calls fn with transaction-bound repositories. The transaction
	// commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	// Repositories returns repositories that are not bound to a transaction.
	Repositories() Repositories
}
