//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/stretchr/testify/mock"
)

// fakeTransactor hands the same repositories to every unit of work
type fakeTransactor struct {
	repos store.Repositories
}

func (f *fakeTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) error {
	return apperr.Classify(fn(ctx, f.repos))
}

func (f *fakeTransactor) Repositories() store.Repositories {
	return f.repos
}

type MockCarModelRepository struct {
	mock.Mock
}

func (m *MockCarModelRepository) Create(ctx context.Context, model *catalog.CarModel) error {
	return m.Called(ctx, model).Error(0)
}

func (m *MockCarModelRepository) Update(ctx context.Context, model *catalog.CarModel) error {
	return m.Called(ctx, model).Error(0)
}

func (m *MockCarModelRepository) GetByID(ctx context.Context, modelID int64) (*catalog.CarModel, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) List(ctx context.Context, query *catalog.CarModelQuery) ([]*catalog.CarModel, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) ListAll(ctx context.Context) ([]*catalog.CarModel, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error) {
	args := m.Called(ctx, code, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarModelRepository) MaxSortOrder(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockCarModelRepository) UpdateSortOrders(ctx context.Context, orders map[int64]int) error {
	return m.Called(ctx, orders).Error(0)
}

func (m *MockCarModelRepository) SoftDeleteByID(ctx context.Context, modelID int64) error {
	return m.Called(ctx, modelID).Error(0)
}

type MockImageRepository struct {
	mock.Mock
}

func (m *MockImageRepository) Create(ctx context.Context, image *images.Image) error {
	return m.Called(ctx, image).Error(0)
}

func (m *MockImageRepository) GetByID(ctx context.Context, imageID int64) (*images.Image, error) {
	args := m.Called(ctx, imageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.Image), args.Error(1)
}

func (m *MockImageRepository) ListByModel(ctx context.Context, modelID int64) ([]*images.Image, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.Image), args.Error(1)
}

func (m *MockImageRepository) ListDefaultsByModelIDs(ctx context.Context, modelIDs []int64) (map[int64]*images.Image, error) {
	args := m.Called(ctx, modelIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*images.Image), args.Error(1)
}

func (m *MockImageRepository) ListFileNames(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockImageRepository) ClearDefaults(ctx context.Context, modelID int64) error {
	return m.Called(ctx, modelID).Error(0)
}

func (m *MockImageRepository) MarkDefault(ctx context.Context, imageID int64) error {
	return m.Called(ctx, imageID).Error(0)
}

func (m *MockImageRepository) DeleteByID(ctx context.Context, imageID int64) error {
	return m.Called(ctx, imageID).Error(0)
}

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Save(ctx context.Context, data []byte, ext string) (string, error) {
	args := m.Called(ctx, data, ext)
	return args.String(0), args.Error(1)
}

func (m *MockImageStore) Delete(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockImageStore) List(ctx context.Context) ([]images.StoredFile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]images.StoredFile), args.Error(1)
}

type MockOrphanSweeper struct {
	mock.Mock
}

func (m *MockOrphanSweeper) Sweep(ctx context.Context, dryRun bool) (*images.SweepResult, error) {
	args := m.Called(ctx, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.SweepResult), args.Error(1)
}
