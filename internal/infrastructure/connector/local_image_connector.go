package connector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
)

type localImageConnector struct {
	root   string
	logger logger.Logger
}

// NewLocalImageConnector creates an ImageStore that keeps files in a flat directory.
// The directory is created when it does not exist.
func NewLocalImageConnector(root string, logger logger.Logger) (images.ImageStore, error) {
	if root == "" {
		return nil, fmt.Errorf("image root directory must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", root, err)
	}

	return &localImageConnector{
		root:   root,
		logger: logger,
	}, nil
}

func (c *localImageConnector) Save(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name, err := newFileName(ext)
	if err != nil {
		return "", err
	}

	path := filepath.Join(c.root, name)
	// O_EXCL so a name collision can never overwrite another image
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := file.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to close image file: %w", err)
	}

	c.logger.Debug("Stored image file", "name", name, "size", len(data))
	return name, nil
}

func (c *localImageConnector) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := checkFileName(name); err != nil {
		return err
	}

	err := os.Remove(filepath.Join(c.root, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete image file %s: %w", name, err)
	}

	c.logger.Debug("Deleted image file", "name", name)
	return nil
}

func (c *localImageConnector) List(ctx context.Context) ([]images.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(c.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory: %w", err)
	}

	files := make([]images.StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		files = append(files, images.StoredFile{Name: entry.Name(), ModTime: info.ModTime()})
	}
	return files, nil
}
