// Package errorwrapper holds the sentinel errors and wrapping helpers shared
// by configuration, selection and reporting code.
package errorwrapper

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every ValidationError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound indicates a file, platform or domain that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidConfiguration is returned when the configuration fails validation.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// WrapError prefixes err with message. A nil err stays nil.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError formats a new error.
func NewError(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

// ValidationError reports one rejected setting or argument.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, fmt.Sprint(e.Value), e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError builds a ValidationError.
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}
