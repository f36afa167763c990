//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"

	"github.com/stretchr/testify/mock"
)

// MockCarModelService is a mock implementation of CarModelService
type MockCarModelService struct {
	mock.Mock
}

func (m *MockCarModelService) List(ctx context.Context, query *catalog.CarModelQuery) ([]*catalog.CarModelView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.CarModelView), args.Error(1)
}

func (m *MockCarModelService) GetByID(ctx context.Context, modelID int64) (*catalog.CarModelView, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CarModelView), args.Error(1)
}

func (m *MockCarModelService) Create(ctx context.Context, input *catalog.CarModelInput) (*catalog.CarModelView, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CarModelView), args.Error(1)
}

func (m *MockCarModelService) Update(ctx context.Context, modelID int64, input *catalog.CarModelInput) (*catalog.CarModelView, error) {
	args := m.Called(ctx, modelID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.CarModelView), args.Error(1)
}

func (m *MockCarModelService) Delete(ctx context.Context, modelID int64) error {
	args := m.Called(ctx, modelID)
	return args.Error(0)
}

func (m *MockCarModelService) ListBrands(ctx context.Context) ([]*catalog.Brand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Brand), args.Error(1)
}

func (m *MockCarModelService) ListClasses(ctx context.Context) ([]*catalog.Class, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Class), args.Error(1)
}

// MockOrderingService is a mock implementation of OrderingService
type MockOrderingService struct {
	mock.Mock
}

func (m *MockOrderingService) Reconcile(ctx context.Context, updates []catalog.SortOrderUpdate) error {
	args := m.Called(ctx, updates)
	return args.Error(0)
}

// MockImageService is a mock implementation of ImageService
type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) UploadBatch(ctx context.Context, modelID int64, files []*images.ImageFile, makeFirstDefault bool) ([]int64, error) {
	args := m.Called(ctx, modelID, files, makeFirstDefault)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, imageID int64) error {
	args := m.Called(ctx, imageID)
	return args.Error(0)
}

func (m *MockImageService) SetDefault(ctx context.Context, imageID, modelID int64) error {
	args := m.Called(ctx, imageID, modelID)
	return args.Error(0)
}

func (m *MockImageService) ListByModel(ctx context.Context, modelID int64) ([]*images.Image, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*images.Image), args.Error(1)
}

func (m *MockImageService) GetDefault(ctx context.Context, modelID int64) (*images.Image, error) {
	args := m.Called(ctx, modelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*images.Image), args.Error(1)
}
