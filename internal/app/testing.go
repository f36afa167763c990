//go:build integration
// +build integration

package app

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/connector"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// errInjected is returned by FlakyImageStore when a failure is armed
var errInjected = errors.New("injected storage failure")

// FlakyImageStore wraps an ImageStore and fails the n-th Save call when armed
type FlakyImageStore struct {
	images.ImageStore
	mu         sync.Mutex
	saves      int
	failOnSave int
}

// FailOnSave arms the store to fail the n-th (1-based) Save call from now on
func (f *FlakyImageStore) FailOnSave(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = 0
	f.failOnSave = n
}

func (f *FlakyImageStore) Save(ctx context.Context, data []byte, ext string) (string, error) {
	f.mu.Lock()
	f.saves++
	fail := f.failOnSave > 0 && f.saves == f.failOnSave
	f.mu.Unlock()

	if fail {
		return "", errInjected
	}
	return f.ImageStore.Save(ctx, data, ext)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	CarModelService catalog.CarModelService
	OrderingService catalog.OrderingService
	ImageService    images.ImageService
	OrphanSweeper   images.OrphanSweeper

	ImageStore *FlakyImageStore
	ImageRoot  string
	BrandID    int64
	ClassID    int64
	DBContext  *persistence.TestContext
}

// SetupTestServices initializes all application services against a sqlite database
// and a local image directory
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)
	brandID, classID := persistence.SeedLookups(t, dbContext.DB)

	imageRoot := t.TempDir()
	localStore, err := connector.NewLocalImageConnector(imageRoot, logger)
	require.NoError(t, err, "Failed to create image connector")
	imageStore := &FlakyImageStore{ImageStore: localStore}

	imageSettings := config.DefaultImageSettings()

	carModelService, err := NewCarModelService(dbContext.Transactor, imageSettings, logger)
	require.NoError(t, err, "Failed to create CarModelService")

	orderingService, err := NewCarModelOrderingService(dbContext.Transactor, logger)
	require.NoError(t, err, "Failed to create OrderingService")

	imageService, err := NewImageService(dbContext.Transactor, imageStore, imageSettings, logger)
	require.NoError(t, err, "Failed to create ImageService")

	sweeper, err := NewOrphanSweeper(dbContext.Transactor, imageStore, time.Hour, logger, imageSettings.FallbackFileName())
	require.NoError(t, err, "Failed to create OrphanSweeper")

	return &TestServices{
		CarModelService: carModelService,
		OrderingService: orderingService,
		ImageService:    imageService,
		OrphanSweeper:   sweeper,
		ImageStore:      imageStore,
		ImageRoot:       imageRoot,
		BrandID:         brandID,
		ClassID:         classID,
		DBContext:       dbContext,
	}
}

// SortOrders returns the sort order of every non-deleted model keyed by ID
func (s *TestServices) SortOrders(t *testing.T) map[int64]int {
	t.Helper()

	all, err := s.DBContext.CarModelRepo.ListAll(context.Background())
	require.NoError(t, err)

	orders := make(map[int64]int, len(all))
	for _, m := range all {
		orders[m.ID] = m.SortOrder
	}
	return orders
}

// Defaults returns the IDs of the default images of modelID
func (s *TestServices) Defaults(t *testing.T, modelID int64) []int64 {
	t.Helper()

	list, err := s.DBContext.ImageRepo.ListByModel(context.Background(), modelID)
	require.NoError(t, err)

	var ids []int64
	for _, image := range list {
		if image.IsDefault {
			ids = append(ids, image.ID)
		}
	}
	return ids
}

// TestFiles returns n small image files named image-<i>.jpg
func TestFiles(n int) []*images.ImageFile {
	files := make([]*images.ImageFile, n)
	for i := range files {
		files[i] = &images.ImageFile{
			Name:    "image-" + string(rune('a'+i)) + ".jpg",
			Content: []byte("jpeg-content-" + string(rune('a'+i))),
		}
	}
	return files
}
