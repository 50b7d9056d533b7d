package models

import "fmt"

// Fixture pairs a raw input with the classification it must produce.
type Fixture struct {
	// Source is the file the fixture was read from.
	Source string `json:"source"`
	// Line is the 1-based line of the row inside Source.
	Line int `json:"line"`
	// Input maps input field names (without the "in-" prefix) to raw values.
	Input map[string]string `json:"input"`
	// Expected maps output field names (without the "out-" prefix) to the
	// expected value: a string, or a bool for the access-granted field.
	Expected map[string]any `json:"expected"`
}

// Location returns "source:line" for messages.
func (f Fixture) Location() string {
	return fmt.Sprintf("%s:%d", f.Source, f.Line)
}

// URL returns the raw input URL of the fixture.
func (f Fixture) URL() string {
	return f.Input["url"]
}
