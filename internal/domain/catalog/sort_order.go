package catalog

import (
	"sort"

	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
)

// SortOrderUpdate is one client instruction of a drag-and-drop reorder.
type SortOrderUpdate struct {
	ModelID   int64
	SortOrder int
}

// ReconcileSortOrder computes the sort order of every model in the working set after
// applying updates. models must be the complete set of non-deleted car models.
//
// Named models receive their requested position. The remaining models keep their
// relative order (prior sort order, then ID) and are renumbered consecutively after
// the highest requested position. The input slice is not modified.
func ReconcileSortOrder(models []*CarModel, updates []SortOrderUpdate) (map[int64]int, error) {
	if len(updates) == 0 {
		return nil, apperr.Validation("at least one sort order update is required")
	}

	workingSet := make(map[int64]*CarModel, len(models))
	for _, m := range models {
		workingSet[m.ID] = m
	}

	result := make(map[int64]int, len(models))
	maxRequested := 0
	for i, u := range updates {
		if u.SortOrder < 0 {
			return nil, apperr.Validation("sort order of model %d must not be negative", u.ModelID)
		}
		if _, ok := workingSet[u.ModelID]; !ok {
			return nil, apperr.Validation("car model %d does not exist", u.ModelID)
		}
		if _, seen := result[u.ModelID]; seen {
			return nil, apperr.Validation("car model %d appears more than once", u.ModelID)
		}
		result[u.ModelID] = u.SortOrder
		if i == 0 || u.SortOrder > maxRequested {
			maxRequested = u.SortOrder
		}
	}

	untouched := make([]*CarModel, 0, len(models)-len(updates))
	for _, m := range models {
		if _, named := result[m.ID]; !named {
			untouched = append(untouched, m)
		}
	}
	sort.SliceStable(untouched, func(i, j int) bool {
		if untouched[i].SortOrder != untouched[j].SortOrder {
			return untouched[i].SortOrder < untouched[j].SortOrder
		}
		return untouched[i].ID < untouched[j].ID
	})

	next := maxRequested + 1
	for _, m := range untouched {
		result[m.ID] = next
		next++
	}
	return result, nil
}

// ChangedSortOrders filters orders down to the models whose position differs from
// their current one.
func ChangedSortOrders(models []*CarModel, orders map[int64]int) map[int64]int {
	changed := make(map[int64]int)
	for _, m := range models {
		if order, ok := orders[m.ID]; ok && order != m.SortOrder {
			changed[m.ID] = order
		}
	}
	return changed
}
