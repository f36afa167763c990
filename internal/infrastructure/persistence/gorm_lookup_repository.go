package persistence

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormLookupRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormLookupRepository creates a new GORM-based LookupRepository implementation
func NewGormLookupRepository(db *gorm.DB, logger logger.Logger) (catalog.LookupRepository, error) {
	return &gormLookupRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormLookupRepository) ListBrands(ctx context.Context) ([]*catalog.Brand, error) {
	var modelList []*models.BrandModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, apperr.Persistence(err, "failed to fetch brands")
	}

	brands := make([]*catalog.Brand, len(modelList))
	for i, model := range modelList {
		brands[i] = model.ToDomain()
	}
	return brands, nil
}

func (r *gormLookupRepository) ListClasses(ctx context.Context) ([]*catalog.Class, error) {
	var modelList []*models.ClassModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, apperr.Persistence(err, "failed to fetch classes")
	}

	classes := make([]*catalog.Class, len(modelList))
	for i, model := range modelList {
		classes[i] = model.ToDomain()
	}
	return classes, nil
}

func (r *gormLookupRepository) BrandExists(ctx context.Context, brandID int64) (bool, error) {
	return r.exists(ctx, &models.BrandModel{}, brandID)
}

func (r *gormLookupRepository) ClassExists(ctx context.Context, classID int64) (bool, error) {
	return r.exists(ctx, &models.ClassModel{}, classID)
}

func (r *gormLookupRepository) exists(ctx context.Context, model any, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Persistence(err, "failed to check lookup reference")
	}
	return count > 0, nil
}
