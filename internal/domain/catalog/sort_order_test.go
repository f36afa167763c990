//go:build unit
// +build unit

package catalog

import (
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogOf(orders map[int64]int) []*CarModel {
	models := make([]*CarModel, 0, len(orders))
	for id, order := range orders {
		models = append(models, &CarModel{ID: id, SortOrder: order})
	}
	return models
}

func TestReconcileSortOrder(t *testing.T) {
	const (
		a int64 = 1
		b int64 = 2
		c int64 = 3
		d int64 = 4
	)

	tests := []struct {
		name     string
		models   map[int64]int
		updates  []SortOrderUpdate
		expected map[int64]int
	}{
		{
			name:     "named models placed, rest appended after highest requested",
			models:   map[int64]int{a: 1, b: 2, c: 3, d: 4},
			updates:  []SortOrderUpdate{{ModelID: a, SortOrder: 3}, {ModelID: b, SortOrder: 1}},
			expected: map[int64]int{b: 1, a: 3, c: 4, d: 5},
		},
		{
			name:     "untouched ties broken by id",
			models:   map[int64]int{a: 5, b: 2, c: 2, d: 1},
			updates:  []SortOrderUpdate{{ModelID: d, SortOrder: 0}},
			expected: map[int64]int{d: 0, b: 1, c: 2, a: 3},
		},
		{
			name:     "single model",
			models:   map[int64]int{a: 7},
			updates:  []SortOrderUpdate{{ModelID: a, SortOrder: 2}},
			expected: map[int64]int{a: 2},
		},
		{
			name:     "all models named",
			models:   map[int64]int{a: 1, b: 2},
			updates:  []SortOrderUpdate{{ModelID: a, SortOrder: 2}, {ModelID: b, SortOrder: 1}},
			expected: map[int64]int{a: 2, b: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			models := catalogOf(tt.models)

			result, err := ReconcileSortOrder(models, tt.updates)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)

			for _, m := range models {
				assert.Equal(t, tt.models[m.ID], m.SortOrder, "input must not be modified")
			}
		})
	}
}

func TestReconcileSortOrder_Rejects(t *testing.T) {
	models := catalogOf(map[int64]int{1: 1, 2: 2})

	tests := []struct {
		name    string
		updates []SortOrderUpdate
	}{
		{name: "empty input", updates: nil},
		{name: "unknown id", updates: []SortOrderUpdate{{ModelID: 1, SortOrder: 2}, {ModelID: 99, SortOrder: 1}}},
		{name: "duplicate id", updates: []SortOrderUpdate{{ModelID: 1, SortOrder: 2}, {ModelID: 1, SortOrder: 3}}},
		{name: "negative sort order", updates: []SortOrderUpdate{{ModelID: 2, SortOrder: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ReconcileSortOrder(models, tt.updates)
			assert.ErrorIs(t, err, apperr.ErrValidation)
			assert.Nil(t, result)
		})
	}
}

func TestChangedSortOrders(t *testing.T) {
	models := []*CarModel{{ID: 1, SortOrder: 1}, {ID: 2, SortOrder: 2}, {ID: 3, SortOrder: 3}}

	changed := ChangedSortOrders(models, map[int64]int{1: 1, 2: 3, 3: 2})
	assert.Equal(t, map[int64]int{2: 3, 3: 2}, changed)
}
