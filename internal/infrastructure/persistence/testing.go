//go:build integration
// +build integration

package persistence

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	Transactor   store.Transactor
	CarModelRepo catalog.CarModelRepository
	LookupRepo   catalog.LookupRepository
	ImageRepo    images.ImageRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type:   config.SqliteDbType,
			DSN:    filepath.Join(t.TempDir(), "test.db"),
			DBName: "test",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type:   config.PostgresDbType,
			DSN:    "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			DBName: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)

	transactor, err := NewGormTransactor(db, logger)
	require.NoError(t, err, "Failed to create transactor")

	carModelRepo, err := NewGormCarModelRepository(db, logger)
	require.NoError(t, err, "Failed to create car model repository")

	lookupRepo, err := NewGormLookupRepository(db, logger)
	require.NoError(t, err, "Failed to create lookup repository")

	imageRepo, err := NewGormImageRepository(db, logger)
	require.NoError(t, err, "Failed to create image repository")

	return &TestContext{
		DB:           db,
		Transactor:   transactor,
		CarModelRepo: carModelRepo,
		LookupRepo:   lookupRepo,
		ImageRepo:    imageRepo,
	}
}

// SeedLookups inserts one brand and one class and returns their IDs
func SeedLookups(t *testing.T, db *gorm.DB) (brandID, classID int64) {
	t.Helper()

	brand := &models.BrandModel{Name: "Toyota"}
	require.NoError(t, db.Create(brand).Error)

	class := &models.ClassModel{Name: "Sedan"}
	require.NoError(t, db.Create(class).Error)

	return brand.ID, class.ID
}

// CreateTestCarModel inserts an active car model with the given sort order
func CreateTestCarModel(t *testing.T, repo catalog.CarModelRepository, code string, sortOrder int) *catalog.CarModel {
	t.Helper()

	carModel := &catalog.CarModel{
		Name:      fmt.Sprintf("Model %s", code),
		Code:      code,
		Price:     decimal.NewFromInt(20000),
		SortOrder: sortOrder,
		IsActive:  true,
	}
	require.NoError(t, repo.Create(context.Background(), carModel))
	return carModel
}

// CreateTestImage inserts an image record for modelID
func CreateTestImage(t *testing.T, repo images.ImageRepository, modelID int64, fileName string, isDefault bool) *images.Image {
	t.Helper()

	image := &images.Image{ModelID: modelID, FileName: fileName, IsDefault: isDefault}
	require.NoError(t, repo.Create(context.Background(), image))
	return image
}
