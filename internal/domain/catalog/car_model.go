package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/validators"
	"github.com/shopspring/decimal"
)

// CarModel entity
type CarModel struct {
	ID                  int64
	BrandID             *int64
	ClassID             *int64
	Name                string
	Code                string
	Description         string
	Features            string
	Price               decimal.Decimal
	DateOfManufacturing *time.Time
	SortOrder           int
	IsActive            bool
	IsDeleted           bool
}

// CarModelInput carries the client-editable fields of a car model for Create and Update.
// IsActive is left unchanged on update when nil.
type CarModelInput struct {
	BrandID             int64            `validate:"required,gt=0"`
	ClassID             int64            `validate:"required,gt=0"`
	Name                string           `validate:"required,max=50"`
	Code                string           `validate:"required,max=50"`
	Description         string           `validate:"max=500"`
	Features            string           `validate:"max=500"`
	Price               *decimal.Decimal `validate:"required"`
	DateOfManufacturing *time.Time       `validate:"omitempty,notfuture"`
	IsActive            *bool
}

// Validate for validating CarModelInput struct. Name and Code are trimmed first.
func (in *CarModelInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	in.Code = strings.TrimSpace(in.Code)

	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(in); err != nil {
		return apperr.Validation("%s", validators.FormatErrors(err))
	}
	if in.Price.IsNegative() {
		return apperr.Validation("price must not be negative")
	}
	return nil
}

// Apply copies the input onto m. SortOrder, ID and the soft-delete flag are not touched.
func (in *CarModelInput) Apply(m *CarModel) {
	brandID, classID := in.BrandID, in.ClassID
	m.BrandID = &brandID
	m.ClassID = &classID
	m.Name = in.Name
	m.Code = in.Code
	m.Description = in.Description
	m.Features = in.Features
	m.Price = in.Price.Round(2)
	m.DateOfManufacturing = in.DateOfManufacturing
	if in.IsActive != nil {
		m.IsActive = *in.IsActive
	}
}

// CarModelView is a car model joined with its lookup names and default image URL.
type CarModelView struct {
	CarModel
	BrandName       string
	ClassName       string
	DefaultImageURL string
}
