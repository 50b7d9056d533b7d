package verify

import "sort"

// FieldRow is the comparison of one field between expected and actual.
type FieldRow struct {
	Field       string
	Expected    any
	Actual      any
	ExpectedSet bool
	ActualSet   bool
	Match       bool
}

// Comparison is the field-by-field comparison of one fixture.
type Comparison struct {
	Rows []FieldRow
}

// Compare checks every field present on either side. A field matches only when
// both sides carry it with strictly equal values: the string "true" never
// equals the bool true.
func Compare(expected, actual map[string]any) Comparison {
	names := make(map[string]struct{}, len(expected)+len(actual))
	for name := range expected {
		names[name] = struct{}{}
	}
	for name := range actual {
		names[name] = struct{}{}
	}

	fields := make([]string, 0, len(names))
	for name := range names {
		fields = append(fields, name)
	}
	sort.Strings(fields)

	rows := make([]FieldRow, 0, len(fields))
	for _, field := range fields {
		exp, expSet := expected[field]
		act, actSet := actual[field]
		rows = append(rows, FieldRow{
			Field:       field,
			Expected:    exp,
			Actual:      act,
			ExpectedSet: expSet,
			ActualSet:   actSet,
			Match:       expSet && actSet && equal(exp, act),
		})
	}

	return Comparison{Rows: rows}
}

// equal compares values without coercion; incomparable values never match
func equal(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// Passed reports whether every field matched.
func (c Comparison) Passed() bool {
	for _, row := range c.Rows {
		if !row.Match {
			return false
		}
	}
	return true
}

// Mismatches returns the rows that did not match.
func (c Comparison) Mismatches() []FieldRow {
	var out []FieldRow
	for _, row := range c.Rows {
		if !row.Match {
			out = append(out, row)
		}
	}
	return out
}
