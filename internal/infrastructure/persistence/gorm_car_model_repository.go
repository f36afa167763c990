package persistence

import (
	"context"
	"errors"
	"sort"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCarModelRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCarModelRepository creates a new GORM-based CarModelRepository implementation
func NewGormCarModelRepository(db *gorm.DB, logger logger.Logger) (catalog.CarModelRepository, error) {
	return &gormCarModelRepository{
		db:     db,
		logger: logger,
	}, nil
}

// notDeleted restricts a query to the active set
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

func (r *gormCarModelRepository) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&models.CarModelModel{}).Scopes(notDeleted)
}

func (r *gormCarModelRepository) Create(ctx context.Context, carModel *catalog.CarModel) error {
	model := &models.CarModelModel{}
	model.FromDomain(carModel)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperr.Persistence(err, "failed to create car model")
	}
	carModel.ID = model.ID

	r.logger.Info("Created car model", "modelID", carModel.ID, "code", carModel.Code)
	return nil
}

// editableColumns are written by Update. sort_order belongs to the ordering service and
// is_deleted to SoftDeleteByID.
var editableColumns = []string{
	"brand_id", "class_id", "name", "code", "description", "features",
	"price", "date_of_manufacturing", "is_active",
}

func (r *gormCarModelRepository) Update(ctx context.Context, carModel *catalog.CarModel) error {
	model := &models.CarModelModel{}
	model.FromDomain(carModel)

	result := r.db.WithContext(ctx).
		Model(&models.CarModelModel{ID: carModel.ID}).
		Scopes(notDeleted).
		Select(editableColumns).
		Updates(model)
	if result.Error != nil {
		return apperr.Persistence(result.Error, "failed to update car model")
	}
	if result.RowsAffected == 0 {
		// MySQL reports 0 for a row whose values did not change
		if _, err := r.GetByID(ctx, carModel.ID); err != nil {
			return err
		}
	}

	r.logger.Info("Updated car model", "modelID", carModel.ID)
	return nil
}

func (r *gormCarModelRepository) GetByID(ctx context.Context, modelID int64) (*catalog.CarModel, error) {
	var model models.CarModelModel
	if err := r.active(ctx).Where("id = ?", modelID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("car model with ID %d not found", modelID)
		}
		return nil, apperr.Persistence(err, "failed to fetch car model")
	}
	return model.ToDomain(), nil
}

func (r *gormCarModelRepository) List(ctx context.Context, query *catalog.CarModelQuery) ([]*catalog.CarModel, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery := r.active(ctx)

	if query.Name != "" {
		dbQuery = dbQuery.Where("name LIKE ?", "%"+query.Name+"%")
	}
	if query.BrandID > 0 {
		dbQuery = dbQuery.Where("brand_id = ?", query.BrandID)
	}
	if query.ClassID > 0 {
		dbQuery = dbQuery.Where("class_id = ?", query.ClassID)
	}

	var modelList []*models.CarModelModel
	err := dbQuery.
		Order("sort_order asc").
		Order("id asc").
		Offset(query.Skip).
		Limit(query.Take).
		Find(&modelList).Error
	if err != nil {
		return nil, apperr.Persistence(err, "failed to fetch car models")
	}

	return toCarModels(modelList), nil
}

func (r *gormCarModelRepository) ListAll(ctx context.Context) ([]*catalog.CarModel, error) {
	var modelList []*models.CarModelModel
	if err := r.active(ctx).Order("sort_order asc").Order("id asc").Find(&modelList).Error; err != nil {
		return nil, apperr.Persistence(err, "failed to fetch car models")
	}
	return toCarModels(modelList), nil
}

func (r *gormCarModelRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	var count int64
	dbQuery := r.active(ctx).Where("code = ?", code)
	if excludeID > 0 {
		dbQuery = dbQuery.Where("id <> ?", excludeID)
	}
	if err := dbQuery.Count(&count).Error; err != nil {
		return false, apperr.Persistence(err, "failed to check car model code")
	}
	return count > 0, nil
}

func (r *gormCarModelRepository) MaxSortOrder(ctx context.Context) (int, error) {
	var maxOrder int
	if err := r.active(ctx).Select("COALESCE(MAX(sort_order), 0)").Scan(&maxOrder).Error; err != nil {
		return 0, apperr.Persistence(err, "failed to read max sort order")
	}
	return maxOrder, nil
}

func (r *gormCarModelRepository) UpdateSortOrders(ctx context.Context, orders map[int64]int) error {
	ids := make([]int64, 0, len(orders))
	for id := range orders {
		ids = append(ids, id)
	}
	// stable row order keeps lock acquisition deterministic
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		if err := r.active(ctx).Where("id = ?", id).Update("sort_order", orders[id]).Error; err != nil {
			return apperr.Persistence(err, "failed to update sort order")
		}
	}

	r.logger.Info("Updated sort orders", "count", len(ids))
	return nil
}

func (r *gormCarModelRepository) SoftDeleteByID(ctx context.Context, modelID int64) error {
	result := r.active(ctx).Where("id = ?", modelID).Update("is_deleted", true)
	if result.Error != nil {
		return apperr.Persistence(result.Error, "failed to delete car model")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("car model with ID %d not found", modelID)
	}

	r.logger.Info("Soft-deleted car model", "modelID", modelID)
	return nil
}

func toCarModels(modelList []*models.CarModelModel) []*catalog.CarModel {
	domainList := make([]*catalog.CarModel, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
