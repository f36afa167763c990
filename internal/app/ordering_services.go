package app

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
)

// carModelOrderingService implements the OrderingService interface
type carModelOrderingService struct {
	transactor store.Transactor
	logger     logger.Logger
}

// NewCarModelOrderingService creates a new instance of OrderingService
func NewCarModelOrderingService(transactor store.Transactor, logger logger.Logger) (catalog.OrderingService, error) {
	return &carModelOrderingService{
		transactor: transactor,
		logger:     logger,
	}, nil
}

// Reconcile reads the active set, computes the new positions and writes the changed
// ones inside a single transaction.
func (s *carModelOrderingService) Reconcile(ctx context.Context, updates []catalog.SortOrderUpdate) error {
	if len(updates) == 0 {
		return apperr.Validation("at least one sort order update is required")
	}

	var changed map[int64]int
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		carModels, err := repos.CarModels.ListAll(ctx)
		if err != nil {
			return err
		}

		orders, err := catalog.ReconcileSortOrder(carModels, updates)
		if err != nil {
			return err
		}

		changed = catalog.ChangedSortOrders(carModels, orders)
		if len(changed) == 0 {
			return nil
		}
		return repos.CarModels.UpdateSortOrders(ctx, changed)
	})
	if err != nil {
		s.logger.Warn("Failed to reconcile sort order", "updates", len(updates), "error", err)
		return err
	}

	s.logger.Info("Reconciled sort order", "requested", len(updates), "changed", len(changed))
	return nil
}
