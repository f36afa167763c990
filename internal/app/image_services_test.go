//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type imageServiceFixture struct {
	service   images.ImageService
	carModels *MockCarModelRepository
	images    *MockImageRepository
	store     *MockImageStore
}

func newImageServiceFixture(t *testing.T) *imageServiceFixture {
	t.Helper()

	carModels := new(MockCarModelRepository)
	imageRepo := new(MockImageRepository)
	imageStore := new(MockImageStore)
	transactor := &fakeTransactor{repos: store.Repositories{CarModels: carModels, Images: imageRepo}}

	service, err := NewImageService(transactor, imageStore, config.DefaultImageSettings(), testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &imageServiceFixture{service: service, carModels: carModels, images: imageRepo, store: imageStore}
}

func twoFiles() []*images.ImageFile {
	return []*images.ImageFile{
		{Name: "front.JPG", Content: []byte("front")},
		{Name: "back.png", Content: []byte("back")},
	}
}

func TestImageService_CompensatesWhenSecondSaveFails(t *testing.T) {
	f := newImageServiceFixture(t)

	f.carModels.On("GetByID", mock.Anything, int64(1)).Return(&catalog.CarModel{ID: 1}, nil)
	f.images.On("ClearDefaults", mock.Anything, int64(1)).Return(nil)
	f.store.On("Save", mock.Anything, []byte("front"), ".jpg").Return("first.jpg", nil).Once()
	f.images.On("Create", mock.Anything, mock.MatchedBy(func(image *images.Image) bool {
		return image.FileName == "first.jpg" && image.IsDefault
	})).Return(nil).Once()
	f.store.On("Save", mock.Anything, []byte("back"), ".png").Return("", errors.New("disk full")).Once()
	f.store.On("Delete", mock.Anything, "first.jpg").Return(nil).Once()

	ids, err := f.service.UploadBatch(context.Background(), 1, twoFiles(), true)
	assert.ErrorIs(t, err, apperr.ErrPersistence)
	assert.Nil(t, ids)

	f.store.AssertExpectations(t)
	f.images.AssertExpectations(t)
}

func TestImageService_CompensationContinuesAfterDeleteFailure(t *testing.T) {
	f := newImageServiceFixture(t)

	f.carModels.On("GetByID", mock.Anything, int64(1)).Return(&catalog.CarModel{ID: 1}, nil)
	f.store.On("Save", mock.Anything, []byte("front"), ".jpg").Return("first.jpg", nil).Once()
	f.store.On("Save", mock.Anything, []byte("back"), ".png").Return("second.png", nil).Once()
	f.images.On("Create", mock.Anything, mock.MatchedBy(func(image *images.Image) bool {
		return image.FileName == "first.jpg" && !image.IsDefault
	})).Return(nil).Once()
	f.images.On("Create", mock.Anything, mock.MatchedBy(func(image *images.Image) bool {
		return image.FileName == "second.png"
	})).Return(apperr.Persistence(errors.New("constraint"), "failed to create image")).Once()
	f.store.On("Delete", mock.Anything, "first.jpg").Return(errors.New("permission denied")).Once()
	f.store.On("Delete", mock.Anything, "second.png").Return(nil).Once()

	_, err := f.service.UploadBatch(context.Background(), 1, twoFiles(), false)
	assert.ErrorIs(t, err, apperr.ErrPersistence)

	f.store.AssertExpectations(t)
	f.images.AssertNotCalled(t, "ClearDefaults", mock.Anything, mock.Anything)
}

func TestImageService_UploadValidationTouchesNothing(t *testing.T) {
	f := newImageServiceFixture(t)

	_, err := f.service.UploadBatch(context.Background(), 1, []*images.ImageFile{{Name: "notes.txt", Content: []byte("x")}}, true)
	assert.ErrorIs(t, err, apperr.ErrValidation)

	f.carModels.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
}

func TestImageService_DeleteToleratesFileFailure(t *testing.T) {
	f := newImageServiceFixture(t)

	f.images.On("GetByID", mock.Anything, int64(5)).Return(&images.Image{ID: 5, ModelID: 1, FileName: "a.jpg"}, nil)
	f.images.On("DeleteByID", mock.Anything, int64(5)).Return(nil)
	f.store.On("Delete", mock.Anything, "a.jpg").Return(errors.New("gone away"))

	assert.NoError(t, f.service.Delete(context.Background(), 5))
	f.images.AssertExpectations(t)
	f.store.AssertExpectations(t)
}

func TestImageService_DeleteUnknownTouchesNothing(t *testing.T) {
	f := newImageServiceFixture(t)

	f.images.On("GetByID", mock.Anything, int64(9)).Return(nil, apperr.NotFound("image with ID 9 not found"))

	err := f.service.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	f.images.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	f.store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestImageService_SetDefaultOwnershipChecked(t *testing.T) {
	f := newImageServiceFixture(t)

	f.images.On("GetByID", mock.Anything, int64(3)).Return(&images.Image{ID: 3, ModelID: 2, FileName: "a.jpg"}, nil)
	f.carModels.On("GetByID", mock.Anything, int64(1)).Return(&catalog.CarModel{ID: 1}, nil)

	err := f.service.SetDefault(context.Background(), 3, 1)
	assert.ErrorIs(t, err, apperr.ErrValidation)
	f.images.AssertNotCalled(t, "ClearDefaults", mock.Anything, mock.Anything)
	f.images.AssertNotCalled(t, "MarkDefault", mock.Anything, mock.Anything)
}

func TestNewImageService_InvalidSettings(t *testing.T) {
	settings := config.DefaultImageSettings()
	settings.MaxSizeBytes = 0

	_, err := NewImageService(&fakeTransactor{}, new(MockImageStore), settings, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
