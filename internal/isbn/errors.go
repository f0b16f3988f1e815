package isbn

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of all ISBN validation errors.
var ErrValidation = errors.New("validation error")

// Validation error kinds. Each one matches ErrValidation with errors.Is.
var (
	ErrInvalidFormat    error = kindError("format")
	ErrInvalidLength    error = kindError("length")
	ErrInvalidComponent error = kindError("component")
	ErrInvalidChecksum  error = kindError("checksum")
)

type kindError string

func (k kindError) Error() string {
	return "invalid " + string(k)
}

func (k kindError) Is(target error) bool {
	return target == ErrValidation
}

// ValidationError reports why a number was rejected.
type ValidationError struct {
	Kind   error
	Number string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %v", e.Number, e.Kind)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalid(kind error, number string) error {
	return &ValidationError{Kind: kind, Number: number}
}

// Kind returns the kind label ("format", "length", "component" or
// "checksum") of a validation error, or an empty string if err is not one.
func Kind(err error) string {
	var k kindError
	if errors.As(err, &k) {
		return string(k)
	}
	return ""
}
