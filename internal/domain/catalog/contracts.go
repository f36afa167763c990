package catalog

import "context"

// CarModelService defines methods for managing the car model catalog.
type CarModelService interface {
	// List returns one page of non-deleted car models ordered by sort order and ID.
	List(ctx context.Context, query *CarModelQuery) ([]*CarModelView, error)

	// GetByID returns a non-deleted car model or an error wrapping apperr.ErrNotFound.
	GetByID(ctx context.Context, modelID int64) (*CarModelView, error)

	// Create validates input and appends a new active car model to the end of the catalog.
	Create(ctx context.Context, input *CarModelInput) (*CarModelView, error)

	// Update validates input and overwrites the editable fields. The sort order is kept.
	Update(ctx context.Context, modelID int64, input *CarModelInput) (*CarModelView, error)

	// Delete soft-deletes a car model.
	Delete(ctx context.Context, modelID int64) error

	// ListBrands returns every brand ordered by name.
	ListBrands(ctx context.Context) ([]*Brand, error)

	// ListClasses returns every class ordered by name.
	ListClasses(ctx context.Context) ([]*Class, error)
}

// OrderingService defines the sort order reconciliation of the catalog.
type OrderingService interface {
	// Reconcile applies a partial reorder and renumbers every other non-deleted model.
	// Either all sort orders are written or none.
	Reconcile(ctx context.Context, updates []SortOrderUpdate) error
}

// CarModelRepository defines the interface for CarModel-related operations.
// Every read excludes soft-deleted rows.
type CarModelRepository interface {
	// Create adds a new CarModel to the database and sets its ID
	Create(ctx context.Context, model *CarModel) error
	// Update overwrites a CarModel in the database by ID
	Update(ctx context.Context, model *CarModel) error
	// GetByID retrieves a non-deleted CarModel from the database by ID
	GetByID(ctx context.Context, modelID int64) (*CarModel, error)
	// List lists one page of non-deleted CarModels
	List(ctx context.Context, query *CarModelQuery) ([]*CarModel, error)
	// ListAll lists every non-deleted CarModel ordered by sort order and ID
	ListAll(ctx context.Context) ([]*CarModel, error)
	// ExistsByCode reports whether a non-deleted CarModel other than excludeID uses code
	ExistsByCode(ctx context.Context, code string, excludeID int64) (bool, error)
	// MaxSortOrder returns the highest sort order among non-deleted CarModels, 0 when there are none
	MaxSortOrder(ctx context.Context) (int, error)
	// UpdateSortOrders writes the given sort order per model ID
	UpdateSortOrders(ctx context.Context, orders map[int64]int) error
	// SoftDeleteByID flags a CarModel as deleted
	SoftDeleteByID(ctx context.Context, modelID int64) error
}

// LookupRepository defines read access to the brand and class lookup tables
type LookupRepository interface {
	// ListBrands lists all Brands ordered by name
	ListBrands(ctx context.Context) ([]*Brand, error)
	// ListClasses lists all Classes ordered by name
	ListClasses(ctx context.Context) ([]*Class, error)
	// BrandExists reports whether a Brand with the given ID exists
	BrandExists(ctx context.Context, brandID int64) (bool, error)
	// ClassExists reports whether a Class with the given ID exists
	ClassExists(ctx context.Context, classID int64) (bool, error)
}
