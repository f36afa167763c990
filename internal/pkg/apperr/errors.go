// Package apperr defines the error kinds shared by every layer of the catalog.
//
// Services wrap one of the sentinel errors below so callers can classify a
// failure with errors.Is regardless of which layer produced it. The REST layer
// maps ErrValidation to 400, ErrNotFound to 404 and everything else to 500.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input that was rejected before any state changed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a reference to a missing or soft-deleted entity.
	ErrNotFound = errors.New("not found")
	// ErrPersistence marks a database or storage failure.
	ErrPersistence = errors.New("persistence failure")
)

// Validation returns an ErrValidation with a formatted detail message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns an ErrNotFound with a formatted detail message.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Persistence wraps err as an ErrPersistence. It returns nil when err is nil.
func Persistence(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %s: %w", ErrPersistence, message, err)
}

// Classify returns err unchanged when it already carries one of the sentinel
// kinds and wraps it as ErrPersistence otherwise.
func Classify(err error) error {
	if err == nil || IsKnown(err) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// IsKnown reports whether err carries one of the sentinel kinds.
func IsKnown(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNotFound) || errors.Is(err, ErrPersistence)
}
