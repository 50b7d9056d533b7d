package fixture

import "fmt"

// LoadError reports an I/O or format failure while reading fixture files.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load fixtures from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// MalformedError reports a fixture row that has no input URL.
type MalformedError struct {
	Path string
	Line int
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed fixture at %s:%d: no in-url value", e.Path, e.Line)
}
