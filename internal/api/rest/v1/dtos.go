package v1

import (
	"time"

	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"
	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"

	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error message returned to the client
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse represents an informational message returned to the client
type InfoResponse struct {
	Message string `json:"message"`
}

// CarModelRequest is the body of create and update requests
type CarModelRequest struct {
	BrandID             int64            `json:"brandId"`
	ClassID             int64            `json:"classId"`
	ModelName           string           `json:"modelName"`
	ModelCode           string           `json:"modelCode"`
	Description         string           `json:"description"`
	Features            string           `json:"features"`
	Price               *decimal.Decimal `json:"price"`
	DateOfManufacturing *time.Time       `json:"dateOfManufacturing"`
	IsActive            *bool            `json:"isActive"`
}

// ToInput converts the request into the domain input. Validation happens in the service.
func (r *CarModelRequest) ToInput() *catalog.CarModelInput {
	return &catalog.CarModelInput{
		BrandID:             r.BrandID,
		ClassID:             r.ClassID,
		Name:                r.ModelName,
		Code:                r.ModelCode,
		Description:         r.Description,
		Features:            r.Features,
		Price:               r.Price,
		DateOfManufacturing: r.DateOfManufacturing,
		IsActive:            r.IsActive,
	}
}

// CarModelResponse represents a car model with its lookup names and default image
type CarModelResponse struct {
	ModelID             int64           `json:"modelId"`
	BrandID             *int64          `json:"brandId"`
	BrandName           string          `json:"brandName"`
	ClassID             *int64          `json:"classId"`
	ClassName           string          `json:"className"`
	ModelName           string          `json:"modelName"`
	ModelCode           string          `json:"modelCode"`
	Description         string          `json:"description"`
	Features            string          `json:"features"`
	Price               decimal.Decimal `json:"price"`
	DateOfManufacturing *time.Time      `json:"dateOfManufacturing"`
	IsActive            bool            `json:"isActive"`
	SortOrder           int             `json:"sortOrder"`
	DefaultImageURL     string          `json:"defaultImageUrl"`
}

func newCarModelResponse(view *catalog.CarModelView) CarModelResponse {
	return CarModelResponse{
		ModelID:             view.ID,
		BrandID:             view.BrandID,
		BrandName:           view.BrandName,
		ClassID:             view.ClassID,
		ClassName:           view.ClassName,
		ModelName:           view.Name,
		ModelCode:           view.Code,
		Description:         view.Description,
		Features:            view.Features,
		Price:               view.Price,
		DateOfManufacturing: view.DateOfManufacturing,
		IsActive:            view.IsActive,
		SortOrder:           view.SortOrder,
		DefaultImageURL:     view.DefaultImageURL,
	}
}

// SortOrderUpdateRequest is one entry of a reorder request
type SortOrderUpdateRequest struct {
	ModelID   int64 `json:"modelId"`
	SortOrder int   `json:"sortOrder"`
}

func toSortOrderUpdates(requests []SortOrderUpdateRequest) []catalog.SortOrderUpdate {
	updates := make([]catalog.SortOrderUpdate, 0, len(requests))
	for _, r := range requests {
		updates = append(updates, catalog.SortOrderUpdate{ModelID: r.ModelID, SortOrder: r.SortOrder})
	}
	return updates
}

// BrandResponse represents a brand lookup entry
type BrandResponse struct {
	BrandID   int64  `json:"brandId"`
	BrandName string `json:"brandName"`
}

// ClassResponse represents a class lookup entry
type ClassResponse struct {
	ClassID   int64  `json:"classId"`
	ClassName string `json:"className"`
}

// ImageResponse represents a stored image of a car model
type ImageResponse struct {
	ImageID   int64  `json:"imageId"`
	ModelID   int64  `json:"modelId"`
	ImageName string `json:"imageName"`
	ImageURL  string `json:"imageUrl"`
	IsDefault bool   `json:"isDefault"`
}

func newImageResponse(image *images.Image, settings *config.ImageSettings) ImageResponse {
	return ImageResponse{
		ImageID:   image.ID,
		ModelID:   image.ModelID,
		ImageName: image.FileName,
		ImageURL:  settings.URLFor(image.FileName),
		IsDefault: image.IsDefault,
	}
}

// UploadImagesResponse lists the IDs of newly stored images in upload order
type UploadImagesResponse struct {
	ModelID  int64   `json:"modelId"`
	ImageIDs []int64 `json:"imageIds"`
}
