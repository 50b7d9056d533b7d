package verify

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/aleister1102/ecverify/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	passMarker = "ok"
	failMarker = "FAIL"
	absent     = "<absent>"
)

// RenderTable renders a comparison as a field / expected / actual / status table.
func RenderTable(c Comparison) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FIELD", "EXPECTED", "ACTUAL", "")

	for _, row := range c.Rows {
		marker := passMarker
		if !row.Match {
			marker = failMarker
		}
		t.Row(row.Field, FormatValue(row.Expected, row.ExpectedSet), FormatValue(row.Actual, row.ActualSet), marker)
	}

	return t.String()
}

// FormatValue renders a field value so that strings and booleans stay distinguishable.
func FormatValue(v any, set bool) string {
	if !set {
		return absent
	}
	switch value := v.(type) {
	case string:
		return strconv.Quote(value)
	default:
		return fmt.Sprint(value)
	}
}

// CharDiff renders the character differences between two strings,
// deletions as [-text-] and insertions as {+text+}.
func CharDiff(expected, actual string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffmatchpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		}
	}
	return sb.String()
}

// stringDiffs computes a character diff for every mismatched field set to a string on both sides
func stringDiffs(c Comparison) map[string]string {
	diffs := make(map[string]string)
	for _, row := range c.Mismatches() {
		exp, expOK := row.Expected.(string)
		act, actOK := row.Actual.(string)
		if !row.ExpectedSet || !row.ActualSet || !expOK || !actOK {
			continue
		}
		diffs[row.Field] = CharDiff(exp, act)
	}
	return diffs
}

// inputFields lists the fixture input names, url first then alphabetical
func inputFields(fx models.Fixture) []string {
	fields := make([]string, 0, len(fx.Input))
	for field := range fx.Input {
		if field != "url" {
			fields = append(fields, field)
		}
	}
	sort.Strings(fields)
	if _, ok := fx.Input["url"]; ok {
		fields = append([]string{"url"}, fields...)
	}
	return fields
}
