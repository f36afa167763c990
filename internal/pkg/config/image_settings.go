package config

import (
	"fmt"
	"strings"

	"github.com/MGTheTrain/car-catalog/internal/pkg/validators"
)

// DefaultMaxImageSize is the upper bound for a single uploaded image (5 MiB).
const DefaultMaxImageSize int64 = 5 * 1024 * 1024

// ImageSettings holds the upload policy and the URLs under which stored images are served.
type ImageSettings struct {
	AllowedExtensions []string `yaml:"allowed_extensions" validate:"required,min=1,dive,imageext"`
	MaxSizeBytes      int64    `yaml:"max_size_bytes" validate:"required,gt=0"`
	PublicPath        string   `yaml:"public_path" validate:"required"`
	FallbackURL       string   `yaml:"fallback_url" validate:"required"`
}

// DefaultImageSettings returns the upload policy used when no configuration overrides it.
func DefaultImageSettings() ImageSettings {
	return ImageSettings{
		AllowedExtensions: []string{".jpg", ".jpeg", ".png", ".gif"},
		MaxSizeBytes:      DefaultMaxImageSize,
		PublicPath:        "/images/cars",
		FallbackURL:       "/images/cars/default-car.jpg",
	}
}

// Validate checks that all fields in ImageSettings are valid
func (s *ImageSettings) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for ImageSettings: %w", err)
	}
	return nil
}

// IsAllowedExtension reports whether ext (including the leading dot) is accepted, ignoring case.
func (s *ImageSettings) IsAllowedExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, allowed := range s.AllowedExtensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// FallbackFileName returns the name of the fallback image when FallbackURL points at a
// file directly under PublicPath, and "" otherwise. That file lives in the image store
// without an image record.
func (s *ImageSettings) FallbackFileName() string {
	base := strings.TrimRight(s.PublicPath, "/") + "/"
	name, ok := strings.CutPrefix(s.FallbackURL, base)
	if !ok || name == "" || strings.Contains(name, "/") {
		return ""
	}
	return name
}

// URLFor returns the public URL of a stored image file.
func (s *ImageSettings) URLFor(fileName string) string {
	return strings.TrimRight(s.PublicPath, "/") + "/" + fileName
}
