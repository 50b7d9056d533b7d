package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_FieldsOnlySetValues(t *testing.T) {
	r := Result{Rtype: RtypeArticle, Mime: MimeHTML, UnitID: "abc"}

	assert.Equal(t, map[string]any{
		FieldRtype:  RtypeArticle,
		FieldMime:   MimeHTML,
		FieldUnitID: "abc",
	}, r.Fields())
}

func TestResult_FieldsGrantedIsBool(t *testing.T) {
	var r Result
	r.SetGranted(false)

	fields := r.Fields()
	assert.Len(t, fields, 1)
	assert.Equal(t, false, fields[FieldGranted])
}

func TestResult_IsEmpty(t *testing.T) {
	assert.True(t, Result{}.IsEmpty())
	assert.False(t, Result{Vol: "3"}.IsEmpty())

	var granted Result
	granted.SetGranted(true)
	assert.False(t, granted.IsEmpty())
}

func TestResult_DiscardUntyped(t *testing.T) {
	tests := []struct {
		name     string
		input    Result
		expected Result
	}{
		{
			name:     "unitid alone is discarded",
			input:    Result{UnitID: "host/1/2", TitleID: "host"},
			expected: Result{},
		},
		{
			name:     "rtype keeps everything",
			input:    Result{Rtype: RtypeTOC, UnitID: "x"},
			expected: Result{Rtype: RtypeTOC, UnitID: "x"},
		},
		{
			name:     "mime keeps everything",
			input:    Result{Mime: MimeMisc, TitleID: "ejim"},
			expected: Result{Mime: MimeMisc, TitleID: "ejim"},
		},
		{
			name:     "empty stays empty",
			input:    Result{},
			expected: Result{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.input.DiscardUntyped())
		})
	}
}

func TestResult_DiscardUntypedDropsGranted(t *testing.T) {
	r := Result{TitleID: "www.example.org"}
	r.SetGranted(false)

	assert.True(t, r.DiscardUntyped().IsEmpty())
}
