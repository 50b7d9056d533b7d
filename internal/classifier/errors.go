package classifier

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifier operations.
var (
	// ErrUnknownPlatform indicates a platform name missing from the registry.
	ErrUnknownPlatform = errors.New("unknown platform")
	// ErrDuplicatePlatform indicates a second registration under the same name.
	ErrDuplicatePlatform = errors.New("platform already registered")
	// ErrMalformedInput indicates an input record the wrapper cannot hand to a classifier.
	ErrMalformedInput = errors.New("malformed input")
)

// ModuleError reports a classifier that could not be resolved or constructed.
type ModuleError struct {
	Platform string
	Err      error
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("classifier module %q: %v", e.Platform, e.Err)
}

func (e *ModuleError) Unwrap() error {
	return e.Err
}

// InputError reports an input record whose URL cannot be parsed.
type InputError struct {
	Platform string
	URL      string
	Err      error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedInput, e.Err)
}

// Unwrap exposes both the sentinel and the parse cause.
func (e *InputError) Unwrap() []error {
	return []error{ErrMalformedInput, e.Err}
}
