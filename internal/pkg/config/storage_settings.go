package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Storage backends for uploaded image files
const (
	StorageTypeLocal = "local"
	StorageTypeS3    = "s3"
)

// StorageSettings selects and configures the image file store.
type StorageSettings struct {
	Type            string `yaml:"type" validate:"required,oneof=local s3"`
	Root            string `yaml:"root"`
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	Prefix          string `yaml:"prefix"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// Validate checks that the settings required by the selected backend are present
func (s *StorageSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for StorageSettings: %w", err)
	}

	switch s.Type {
	case StorageTypeLocal:
		if s.Root == "" {
			return fmt.Errorf("root directory is required for local storage")
		}
	case StorageTypeS3:
		if s.Bucket == "" {
			return fmt.Errorf("bucket is required for s3 storage")
		}
		if s.Region == "" {
			return fmt.Errorf("region is required for s3 storage")
		}
		// the orphan sweep treats every object under the prefix as an image file
		if strings.Trim(s.Prefix, "/") == "" {
			return fmt.Errorf("a non-empty prefix is required for s3 storage")
		}
		if (s.AccessKeyID == "") != (s.SecretAccessKey == "") {
			return fmt.Errorf("access key id and secret access key must be set together")
		}
	}
	return nil
}
