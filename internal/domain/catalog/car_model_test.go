//go:build unit
// +build unit

package catalog

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *CarModelInput {
	price := decimal.RequireFromString("24999.90")
	built := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)
	return &CarModelInput{
		BrandID:             1,
		ClassID:             2,
		Name:                "Model S",
		Code:                "MS-01",
		Description:         "Five-door liftback",
		Features:            "Autopilot",
		Price:               &price,
		DateOfManufacturing: &built,
	}
}

func TestCarModelInputValidation(t *testing.T) {
	future := time.Now().Add(48 * time.Hour)
	negative := decimal.NewFromInt(-1)

	tests := []struct {
		name    string
		mutate  func(in *CarModelInput)
		wantErr bool
	}{
		{name: "valid input", mutate: func(in *CarModelInput) {}},
		{name: "no manufacturing date", mutate: func(in *CarModelInput) { in.DateOfManufacturing = nil }},
		{name: "zero price", mutate: func(in *CarModelInput) { zero := decimal.Zero; in.Price = &zero }},
		{name: "missing brand", mutate: func(in *CarModelInput) { in.BrandID = 0 }, wantErr: true},
		{name: "negative class", mutate: func(in *CarModelInput) { in.ClassID = -3 }, wantErr: true},
		{name: "blank name", mutate: func(in *CarModelInput) { in.Name = "   " }, wantErr: true},
		{name: "code too long", mutate: func(in *CarModelInput) { in.Code = strings.Repeat("x", 51) }, wantErr: true},
		{name: "description too long", mutate: func(in *CarModelInput) { in.Description = strings.Repeat("x", 501) }, wantErr: true},
		{name: "missing price", mutate: func(in *CarModelInput) { in.Price = nil }, wantErr: true},
		{name: "negative price", mutate: func(in *CarModelInput) { in.Price = &negative }, wantErr: true},
		{name: "manufactured in the future", mutate: func(in *CarModelInput) { in.DateOfManufacturing = &future }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := in.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperr.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCarModelInputApply(t *testing.T) {
	in := validInput()
	in.Name = "  Model 3 "
	require.NoError(t, in.Validate())

	m := &CarModel{ID: 9, SortOrder: 4, IsActive: true}
	in.Apply(m)

	assert.Equal(t, int64(9), m.ID)
	assert.Equal(t, 4, m.SortOrder)
	assert.True(t, m.IsActive)
	assert.Equal(t, "Model 3", m.Name)
	require.NotNil(t, m.BrandID)
	assert.Equal(t, int64(1), *m.BrandID)
	assert.True(t, decimal.RequireFromString("24999.90").Equal(m.Price))

	inactive := false
	in.IsActive = &inactive
	in.Apply(m)
	assert.False(t, m.IsActive)
}

func TestCarModelQueryValidation(t *testing.T) {
	assert.NoError(t, NewCarModelQuery().Validate())
	assert.NoError(t, (&CarModelQuery{Skip: 20, Take: MaxTake}).Validate())
	assert.ErrorIs(t, (&CarModelQuery{Take: MaxTake + 1}).Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, (&CarModelQuery{Skip: -1, Take: 5}).Validate(), apperr.ErrValidation)
	assert.ErrorIs(t, (&CarModelQuery{}).Validate(), apperr.ErrValidation)
}
