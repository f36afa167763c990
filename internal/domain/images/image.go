package images

import (
	"fmt"
	"time"

	"github.com/MGTheTrain/car-catalog/internal/pkg/apperr"
	"github.com/MGTheTrain/car-catalog/internal/pkg/validators"
)

// Image entity
type Image struct {
	ID        int64
	ModelID   int64  `validate:"required,gt=0"`
	FileName  string `validate:"required,max=255"`
	IsDefault bool
}

// Validate for validating Image struct
func (i *Image) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return fmt.Errorf("failed to create validator: %w", err)
	}

	if err := validate.Struct(i); err != nil {
		return apperr.Validation("%s", validators.FormatErrors(err))
	}
	return nil
}

// ImageFile is one uploaded file as received from the client
type ImageFile struct {
	Name    string
	Content []byte
}

// Size returns the content length in bytes
func (f *ImageFile) Size() int64 {
	return int64(len(f.Content))
}

// StoredFile describes a file held by an ImageStore
type StoredFile struct {
	Name    string
	ModTime time.Time
}

// SweepResult reports what an orphan sweep found and removed
type SweepResult struct {
	DryRun     bool
	Scanned    int
	Referenced int
	Protected  int
	Skipped    int
	Orphans    []string
	Deleted    int
	Failed     int
}
