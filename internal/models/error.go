package models

import "fmt"

// URLValidationError represents an input URL that cannot be turned into a ParsedURL.
type URLValidationError struct {
	URL     string
	Message string
	Err     error
}

// Error returns the error message for URLValidationError.
func (e *URLValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid URL %q: %s: %v", e.URL, e.Message, e.Err)
	}
	return fmt.Sprintf("invalid URL %q: %s", e.URL, e.Message)
}

func (e *URLValidationError) Unwrap() error {
	return e.Err
}
