package models

import (
	"errors"
	"fmt"
)

// ErrValidation marks input rejected locally, before any network call.
var ErrValidation = errors.New("validation error")

func fieldRequired(name string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, name)
}
