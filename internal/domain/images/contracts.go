package images

import "context"

// ImageService defines methods for managing the images of a car model.
type ImageService interface {
	// UploadBatch stores files for a car model and returns the new image IDs in input order.
	// When makeFirstDefault is set the first file becomes the only default image of the model.
	// Either every file is stored and recorded or none is.
	UploadBatch(ctx context.Context, modelID int64, files []*ImageFile, makeFirstDefault bool) ([]int64, error)

	// Delete removes an image record and then its stored file.
	Delete(ctx context.Context, imageID int64) error

	// SetDefault makes imageID the only default image of modelID.
	SetDefault(ctx context.Context, imageID, modelID int64) error

	// ListByModel returns the images of a non-deleted car model.
	ListByModel(ctx context.Context, modelID int64) ([]*Image, error)

	// GetDefault returns the default image of a car model.
	GetDefault(ctx context.Context, modelID int64) (*Image, error)
}

// OrphanSweeper removes stored files that no image record references.
type OrphanSweeper interface {
	// Sweep deletes orphaned files, or only reports them when dryRun is set.
	Sweep(ctx context.Context, dryRun bool) (*SweepResult, error)
}

// ImageRepository defines the interface for Image-related operations
type ImageRepository interface {
	// Create adds a new Image to the database and sets its ID
	Create(ctx context.Context, image *Image) error
	// GetByID retrieves an Image from the database by ID
	GetByID(ctx context.Context, imageID int64) (*Image, error)
	// ListByModel lists the Images of a car model ordered by ID
	ListByModel(ctx context.Context, modelID int64) ([]*Image, error)
	// ListDefaultsByModelIDs returns the default Image per car model for the given IDs
	ListDefaultsByModelIDs(ctx context.Context, modelIDs []int64) (map[int64]*Image, error)
	// ListFileNames returns every referenced file name
	ListFileNames(ctx context.Context) ([]string, error)
	// ClearDefaults unsets the default flag of every Image of a car model
	ClearDefaults(ctx context.Context, modelID int64) error
	// MarkDefault sets the default flag of one Image
	MarkDefault(ctx context.Context, imageID int64) error
	// DeleteByID deletes an Image from the database by ID
	DeleteByID(ctx context.Context, imageID int64) error
}

// ImageStore is an interface for persisting image file content
type ImageStore interface {
	// Save writes data under a newly generated unique name ending in ext and returns the name
	Save(ctx context.Context, data []byte, ext string) (string, error)
	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, name string) error
	// List returns every stored file
	List(ctx context.Context) ([]StoredFile, error)
}
