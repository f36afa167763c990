package validators

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var imageExtensionPattern = regexp.MustCompile(`^\.[a-z0-9]{1,10}$`)

// New returns a validator with the custom tags of this module registered.
func New() (*validator.Validate, error) {
	validate := validator.New()

	if err := validate.RegisterValidation("notfuture", NotFutureValidation); err != nil {
		return nil, fmt.Errorf("failed to register notfuture validation: %w", err)
	}
	if err := validate.RegisterValidation("imageext", ImageExtensionValidation); err != nil {
		return nil, fmt.Errorf("failed to register imageext validation: %w", err)
	}
	return validate, nil
}

// NotFutureValidation rejects time values that lie in the future.
func NotFutureValidation(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !value.After(time.Now())
}

// ImageExtensionValidation accepts lower-case file extensions with a leading dot, e.g. ".jpg".
func ImageExtensionValidation(fl validator.FieldLevel) bool {
	return imageExtensionPattern.MatchString(fl.Field().String())
}
