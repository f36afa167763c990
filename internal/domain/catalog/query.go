package catalog

import (
	"fmt"

	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/validators"
)

// Paging bounds for CarModelQuery
const (
	DefaultTake = 10
	MaxTake     = 100
)

// CarModelQuery selects a page of the ordered catalog. Zero-valued filters are ignored.
type CarModelQuery struct {
	Skip    int    `validate:"min=0"`
	Take    int    `validate:"min=1,max=100"`
	Name    string `validate:"max=50"`
	BrandID int64  `validate:"min=0"`
	ClassID int64  `validate:"min=0"`
}

// NewCarModelQuery returns a query for the first page
func NewCarModelQuery() *CarModelQuery {
	return &CarModelQuery{Take: DefaultTake}
}

// Validate for validating CarModelQuery struct
func (q *CarModelQuery) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(q); err != nil {
		return apperr.Validation("%s", validators.FormatErrors(err))
	}
	return nil
}
