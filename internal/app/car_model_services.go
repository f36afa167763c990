package app

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
)

// carModelService implements the CarModelService interface
type carModelService struct {
	transactor    store.Transactor
	imageSettings config.ImageSettings
	logger        logger.Logger
}

// NewCarModelService creates a new instance of CarModelService
func NewCarModelService(transactor store.Transactor, imageSettings config.ImageSettings, logger logger.Logger) (catalog.CarModelService, error) {
	return &carModelService{
		transactor:    transactor,
		imageSettings: imageSettings,
		logger:        logger,
	}, nil
}

func (s *carModelService) List(ctx context.Context, query *catalog.CarModelQuery) ([]*catalog.CarModelView, error) {
	if query == nil {
		query = catalog.NewCarModelQuery()
	}
	if query.Take == 0 {
		query.Take = catalog.DefaultTake
	}

	repos := s.transactor.Repositories()
	carModels, err := repos.CarModels.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return s.toViews(ctx, repos, carModels)
}

func (s *carModelService) GetByID(ctx context.Context, modelID int64) (*catalog.CarModelView, error) {
	repos := s.transactor.Repositories()
	carModel, err := repos.CarModels.GetByID(ctx, modelID)
	if err != nil {
		return nil, err
	}

	views, err := s.toViews(ctx, repos, []*catalog.CarModel{carModel})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

// Create appends the new model after the current last position
func (s *carModelService) Create(ctx context.Context, input *catalog.CarModelInput) (*catalog.CarModelView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	carModel := &catalog.CarModel{IsActive: true}
	input.Apply(carModel)

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		if err := s.checkReferences(ctx, repos, input, 0); err != nil {
			return err
		}

		maxOrder, err := repos.CarModels.MaxSortOrder(ctx)
		if err != nil {
			return err
		}
		carModel.SortOrder = maxOrder + 1

		return repos.CarModels.Create(ctx, carModel)
	})
	if err != nil {
		s.logger.Warn("Failed to create car model", "code", input.Code, "error", err)
		return nil, err
	}

	return s.GetByID(ctx, carModel.ID)
}

func (s *carModelService) Update(ctx context.Context, modelID int64, input *catalog.CarModelInput) (*catalog.CarModelView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		carModel, err := repos.CarModels.GetByID(ctx, modelID)
		if err != nil {
			return err
		}
		if err := s.checkReferences(ctx, repos, input, modelID); err != nil {
			return err
		}

		input.Apply(carModel)
		return repos.CarModels.Update(ctx, carModel)
	})
	if err != nil {
		s.logger.Warn("Failed to update car model", "modelID", modelID, "error", err)
		return nil, err
	}

	return s.GetByID(ctx, modelID)
}

func (s *carModelService) Delete(ctx context.Context, modelID int64) error {
	if err := s.transactor.Repositories().CarModels.SoftDeleteByID(ctx, modelID); err != nil {
		s.logger.Warn("Failed to delete car model", "modelID", modelID, "error", err)
		return err
	}
	return nil
}

func (s *carModelService) ListBrands(ctx context.Context) ([]*catalog.Brand, error) {
	return s.transactor.Repositories().Lookups.ListBrands(ctx)
}

func (s *carModelService) ListClasses(ctx context.Context) ([]*catalog.Class, error) {
	return s.transactor.Repositories().Lookups.ListClasses(ctx)
}

// checkReferences verifies brand and class exist and that no other active model uses the code
func (s *carModelService) checkReferences(ctx context.Context, repos store.Repositories, input *catalog.CarModelInput, excludeID int64) error {
	exists, err := repos.Lookups.BrandExists(ctx, input.BrandID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("brand %d does not exist", input.BrandID)
	}

	exists, err = repos.Lookups.ClassExists(ctx, input.ClassID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.Validation("class %d does not exist", input.ClassID)
	}

	taken, err := repos.CarModels.ExistsByCode(ctx, input.Code, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Validation("model code %q is already in use", input.Code)
	}
	return nil
}

func (s *carModelService) toViews(ctx context.Context, repos store.Repositories, carModels []*catalog.CarModel) ([]*catalog.CarModelView, error) {
	brands, err := repos.Lookups.ListBrands(ctx)
	if err != nil {
		return nil, err
	}
	classes, err := repos.Lookups.ListClasses(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(carModels))
	for i, m := range carModels {
		ids[i] = m.ID
	}
	defaults, err := repos.Images.ListDefaultsByModelIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	brandNames := make(map[int64]string, len(brands))
	for _, b := range brands {
		brandNames[b.ID] = b.Name
	}
	classNames := make(map[int64]string, len(classes))
	for _, c := range classes {
		classNames[c.ID] = c.Name
	}

	views := make([]*catalog.CarModelView, len(carModels))
	for i, m := range carModels {
		view := &catalog.CarModelView{
			CarModel:        *m,
			DefaultImageURL: s.imageSettings.FallbackURL,
		}
		if m.BrandID != nil {
			view.BrandName = brandNames[*m.BrandID]
		}
		if m.ClassID != nil {
			view.ClassName = classNames[*m.ClassID]
		}
		if image, ok := defaults[m.ID]; ok {
			view.DefaultImageURL = s.imageURL(image)
		}
		views[i] = view
	}
	return views, nil
}

func (s *carModelService) imageURL(image *images.Image) string {
	return s.imageSettings.URLFor(image.FileName)
}
