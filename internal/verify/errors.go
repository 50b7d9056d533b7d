package verify

import (
	"fmt"
	"strings"

	"github.com/aleister1102/ecverify/internal/models"
)

// RuntimeError reports a classifier that panicked while analyzing a fixture.
type RuntimeError struct {
	Fixture models.Fixture
	Value   any
	Stack   []byte
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("classifier failed on %s (%s): %v", e.Fixture.Location(), e.Fixture.URL(), e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *RuntimeError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// MismatchError reports a fixture whose classification differs from the expected one.
type MismatchError struct {
	Fixture    models.Fixture
	Comparison Comparison
	// Diffs holds a character diff per mismatched string field, when enabled.
	Diffs map[string]string
}

func (e *MismatchError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "fixture %s does not match\n", e.Fixture.Location())

	sb.WriteString("input:\n")
	for _, field := range inputFields(e.Fixture) {
		fmt.Fprintf(&sb, "  %s: %s\n", field, e.Fixture.Input[field])
	}

	sb.WriteString(RenderTable(e.Comparison))
	sb.WriteString("\n")

	for _, row := range e.Comparison.Mismatches() {
		if diff, ok := e.Diffs[row.Field]; ok {
			fmt.Fprintf(&sb, "diff %s: %s\n", row.Field, diff)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
