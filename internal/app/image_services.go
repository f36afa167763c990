package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
)

// imageService implements the ImageService interface
type imageService struct {
	transactor store.Transactor
	imageStore images.ImageStore
	settings   config.ImageSettings
	logger     logger.Logger
}

// NewImageService creates a new instance of ImageService
func NewImageService(transactor store.Transactor, imageStore images.ImageStore, settings config.ImageSettings, logger logger.Logger) (images.ImageService, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &imageService{
		transactor: transactor,
		imageStore: imageStore,
		settings:   settings,
		logger:     logger,
	}, nil
}

// UploadBatch validates every file up front, then stores files and inserts rows inside one
// transaction. Files written before a failure are removed again after the rollback.
func (s *imageService) UploadBatch(ctx context.Context, modelID int64, files []*images.ImageFile, makeFirstDefault bool) ([]int64, error) {
	if err := s.validateFiles(files); err != nil {
		return nil, err
	}

	stored := make([]string, 0, len(files))
	committed := false
	defer func() {
		if !committed {
			s.compensate(ctx, stored)
		}
	}()

	imageIDs := make([]int64, 0, len(files))
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		if _, err := repos.CarModels.GetByID(ctx, modelID); err != nil {
			return err
		}

		if makeFirstDefault {
			if err := repos.Images.ClearDefaults(ctx, modelID); err != nil {
				return err
			}
		}

		for i, file := range files {
			name, err := s.imageStore.Save(ctx, file.Content, strings.ToLower(filepath.Ext(file.Name)))
			if err != nil {
				return apperr.Persistence(err, "failed to store image "+file.Name)
			}
			stored = append(stored, name)

			image := &images.Image{
				ModelID:   modelID,
				FileName:  name,
				IsDefault: makeFirstDefault && i == 0,
			}
			if err := repos.Images.Create(ctx, image); err != nil {
				return err
			}
			imageIDs = append(imageIDs, image.ID)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Image upload failed", "modelID", modelID, "files", len(files), "error", err)
		return nil, err
	}
	committed = true

	s.logger.Info("Uploaded images", "modelID", modelID, "count", len(imageIDs), "default", makeFirstDefault)
	return imageIDs, nil
}

// Delete removes the row first. A file that cannot be removed afterwards is only logged
// and is left for the orphan sweeper.
func (s *imageService) Delete(ctx context.Context, imageID int64) error {
	var image *images.Image
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		image, err = repos.Images.GetByID(ctx, imageID)
		if err != nil {
			return err
		}
		return repos.Images.DeleteByID(ctx, imageID)
	})
	if err != nil {
		return err
	}

	if err := s.imageStore.Delete(ctx, image.FileName); err != nil {
		s.logger.Warn("Failed to delete image file", "imageID", imageID, "file", image.FileName, "error", err)
	}

	s.logger.Info("Deleted image", "imageID", imageID, "modelID", image.ModelID)
	return nil
}

func (s *imageService) SetDefault(ctx context.Context, imageID, modelID int64) error {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context, repos store.Repositories) error {
		image, err := repos.Images.GetByID(ctx, imageID)
		if err != nil {
			return err
		}
		if _, err := repos.CarModels.GetByID(ctx, modelID); err != nil {
			return err
		}
		if image.ModelID != modelID {
			return apperr.Validation("image %d does not belong to car model %d", imageID, modelID)
		}

		if err := repos.Images.ClearDefaults(ctx, modelID); err != nil {
			return err
		}
		return repos.Images.MarkDefault(ctx, imageID)
	})
	if err != nil {
		s.logger.Warn("Failed to set default image", "imageID", imageID, "modelID", modelID, "error", err)
		return err
	}

	s.logger.Info("Set default image", "imageID", imageID, "modelID", modelID)
	return nil
}

func (s *imageService) ListByModel(ctx context.Context, modelID int64) ([]*images.Image, error) {
	repos := s.transactor.Repositories()
	if _, err := repos.CarModels.GetByID(ctx, modelID); err != nil {
		return nil, err
	}
	return repos.Images.ListByModel(ctx, modelID)
}

func (s *imageService) GetDefault(ctx context.Context, modelID int64) (*images.Image, error) {
	repos := s.transactor.Repositories()
	if _, err := repos.CarModels.GetByID(ctx, modelID); err != nil {
		return nil, err
	}

	defaults, err := repos.Images.ListDefaultsByModelIDs(ctx, []int64{modelID})
	if err != nil {
		return nil, err
	}
	image, ok := defaults[modelID]
	if !ok {
		return nil, apperr.NotFound("car model %d has no default image", modelID)
	}
	return image, nil
}

func (s *imageService) validateFiles(files []*images.ImageFile) error {
	if len(files) == 0 {
		return apperr.Validation("at least one image is required")
	}

	for _, file := range files {
		if file == nil || len(file.Content) == 0 {
			return apperr.Validation("image file must not be empty")
		}
		ext := filepath.Ext(file.Name)
		if !s.settings.IsAllowedExtension(ext) {
			return apperr.Validation("file type %q of %s is not allowed", ext, file.Name)
		}
		if file.Size() > s.settings.MaxSizeBytes {
			return apperr.Validation("image %s exceeds the maximum size of %d bytes", file.Name, s.settings.MaxSizeBytes)
		}
	}
	return nil
}

// compensate removes files of a failed batch. It keeps going after a failed delete so
// the remaining files are still cleaned up.
func (s *imageService) compensate(ctx context.Context, names []string) {
	ctx = context.WithoutCancel(ctx)
	for _, name := range names {
		if err := s.imageStore.Delete(ctx, name); err != nil {
			s.logger.Error("Failed to remove image file of rolled back upload", "file", name, "error", err)
			continue
		}
		s.logger.Debug("Removed image file of rolled back upload", "file", name)
	}
}
