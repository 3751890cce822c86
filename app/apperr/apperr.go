package apperr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers classify with errors.Is; the wrapping text
// carries the detail.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrIO         = errors.New("io failure")
)

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

func IO(op string, err error) error {
	return fmt.Errorf("%s: %v: %w", op, err, ErrIO)
}
