package persistence

import (
	"fmt"

	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const defaultImageIndex = "ux_images_default_per_model"

// Migrate creates or updates the catalog schema. On PostgreSQL and SQLite it also
// creates a partial unique index that allows at most one default image per model.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	switch db.Dialector.Name() {
	case "postgres", "sqlite":
		stmt := fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON images (model_id) WHERE is_default",
			defaultImageIndex,
		)
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", defaultImageIndex, err)
		}
	}
	return nil
}
