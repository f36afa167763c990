package persistence

import (
	"context"
	"errors"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormImageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormImageRepository creates a new GORM-based ImageRepository implementation
func NewGormImageRepository(db *gorm.DB, logger logger.Logger) (images.ImageRepository, error) {
	return &gormImageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormImageRepository) Create(ctx context.Context, image *images.Image) error {
	if err := image.Validate(); err != nil {
		return err
	}

	model := &models.ImageModel{}
	model.FromDomain(image)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return apperr.Persistence(err, "failed to create image")
	}
	image.ID = model.ID

	r.logger.Info("Created image", "imageID", image.ID, "modelID", image.ModelID, "default", image.IsDefault)
	return nil
}

func (r *gormImageRepository) GetByID(ctx context.Context, imageID int64) (*images.Image, error) {
	var model models.ImageModel
	if err := r.db.WithContext(ctx).Where("id = ?", imageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("image with ID %d not found", imageID)
		}
		return nil, apperr.Persistence(err, "failed to fetch image")
	}
	return model.ToDomain(), nil
}

func (r *gormImageRepository) ListByModel(ctx context.Context, modelID int64) ([]*images.Image, error) {
	var modelList []*models.ImageModel
	if err := r.db.WithContext(ctx).Where("model_id = ?", modelID).Order("id asc").Find(&modelList).Error; err != nil {
		return nil, apperr.Persistence(err, "failed to fetch images")
	}
	return toImages(modelList), nil
}

func (r *gormImageRepository) ListDefaultsByModelIDs(ctx context.Context, modelIDs []int64) (map[int64]*images.Image, error) {
	defaults := make(map[int64]*images.Image, len(modelIDs))
	if len(modelIDs) == 0 {
		return defaults, nil
	}

	var modelList []*models.ImageModel
	err := r.db.WithContext(ctx).
		Where("model_id IN ?", modelIDs).
		Where("is_default = ?", true).
		Order("id asc").
		Find(&modelList).Error
	if err != nil {
		return nil, apperr.Persistence(err, "failed to fetch default images")
	}

	for _, model := range modelList {
		if _, ok := defaults[model.ModelID]; !ok {
			defaults[model.ModelID] = model.ToDomain()
		}
	}
	return defaults, nil
}

func (r *gormImageRepository) ListFileNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&models.ImageModel{}).Pluck("file_name", &names).Error; err != nil {
		return nil, apperr.Persistence(err, "failed to fetch image file names")
	}
	return names, nil
}

func (r *gormImageRepository) ClearDefaults(ctx context.Context, modelID int64) error {
	err := r.db.WithContext(ctx).
		Model(&models.ImageModel{}).
		Where("model_id = ? AND is_default = ?", modelID, true).
		Update("is_default", false).Error
	if err != nil {
		return apperr.Persistence(err, "failed to clear default images")
	}
	return nil
}

func (r *gormImageRepository) MarkDefault(ctx context.Context, imageID int64) error {
	result := r.db.WithContext(ctx).
		Model(&models.ImageModel{}).
		Where("id = ?", imageID).
		Update("is_default", true)
	if result.Error != nil {
		return apperr.Persistence(result.Error, "failed to set default image")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("image with ID %d not found", imageID)
	}

	r.logger.Info("Set default image", "imageID", imageID)
	return nil
}

func (r *gormImageRepository) DeleteByID(ctx context.Context, imageID int64) error {
	result := r.db.WithContext(ctx).Where("id = ?", imageID).Delete(&models.ImageModel{})
	if result.Error != nil {
		return apperr.Persistence(result.Error, "failed to delete image")
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("image with ID %d not found", imageID)
	}

	r.logger.Info("Deleted image", "imageID", imageID)
	return nil
}

func toImages(modelList []*models.ImageModel) []*images.Image {
	domainList := make([]*images.Image, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList
}
