package connector

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
)

// NewImageConnector creates the ImageStore selected by settings.Type
func NewImageConnector(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (images.ImageStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	switch settings.Type {
	case config.StorageTypeLocal:
		return NewLocalImageConnector(settings.Root, logger)
	case config.StorageTypeS3:
		return NewS3ImageConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", settings.Type)
	}
}
