package connector

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var extensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// newFileName returns a random unique name that keeps the lower-cased extension
func newFileName(ext string) (string, error) {
	ext = strings.ToLower(ext)
	if ext != "" && !extensionPattern.MatchString(ext) {
		return "", fmt.Errorf("invalid file extension %q", ext)
	}
	return uuid.NewString() + ext, nil
}

// checkFileName rejects names that would escape the store's directory or prefix
func checkFileName(name string) error {
	if name == "" || name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid image file name %q", name)
	}
	return nil
}
