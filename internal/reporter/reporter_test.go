package reporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *models.RunSummary {
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.RunSummary{
		RunID:    "run-42",
		Started:  started,
		Finished: started.Add(1500 * time.Millisecond),
		Reports: []models.PlatformReport{
			{Name: "emerald", Label: "Emerald Insight", Status: models.PlatformPassed, Fixtures: 12, Checked: 12, Duration: 3 * time.Millisecond},
			{Name: "hw", Label: "HighWire", Status: models.PlatformFailed, Fixtures: 30, Checked: 4, Err: errors.New("fixture hw.csv:5 does not match <rtype>")},
			{Name: "ovid", Label: "ovid", Status: models.PlatformError, Err: errors.New("classifier module \"ovid\": unknown platform")},
		},
	}
}

func TestNew(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	r, err := New(&cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &TextReporter{}, r)

	cfg.Format = FormatJSON
	r, err = New(&cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &JSONReporter{}, r)

	cfg.Format = "xml"
	_, err = New(&cfg, zerolog.Nop())
	assert.ErrorIs(t, err, errorwrapper.ErrInvalidInput)
}

func TestTextReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextReporter(true).Report(&buf, sampleSummary()))

	out := buf.String()
	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "Emerald Insight")
	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "FAILED hw (HighWire)")
	assert.Contains(t, out, "fixture hw.csv:5 does not match")
	assert.Contains(t, out, "ERROR ovid (ovid)")
	assert.Contains(t, out, "1 passed, 1 failed, 1 errors, 0 skipped in 1.5s")
}

func TestTextReporter_HidesPassed(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextReporter(false).Report(&buf, sampleSummary()))

	out := buf.String()
	assert.NotContains(t, out, "Emerald Insight")
	assert.Contains(t, out, "HighWire")
	assert.Contains(t, out, "1 passed")
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter(zerolog.Nop()).Report(&buf, sampleSummary()))

	var doc struct {
		RunID     string `json:"run_id"`
		Passed    bool   `json:"passed"`
		Platforms []struct {
			Name    string `json:"name"`
			Status  string `json:"status"`
			Checked int    `json:"checked"`
			Error   string `json:"error"`
		} `json:"platforms"`
		DurationMs int64 `json:"duration_ms"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "run-42", doc.RunID)
	assert.False(t, doc.Passed)
	assert.EqualValues(t, 1500, doc.DurationMs)
	require.Len(t, doc.Platforms, 3)
	assert.Equal(t, "emerald", doc.Platforms[0].Name)
	assert.Empty(t, doc.Platforms[0].Error)
	assert.Equal(t, "FAILED", doc.Platforms[1].Status)
	assert.Equal(t, 4, doc.Platforms[1].Checked)
	assert.Contains(t, doc.Platforms[1].Error, "does not match")
}

func TestHtmlReporter_GenerateReport(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	cfg.ShowPassed = false
	r, err := NewHtmlReporter(&cfg, zerolog.Nop())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "reports", "run")
	require.NoError(t, r.GenerateReport(sampleSummary(), path))

	data, err := os.ReadFile(path + ".html")
	require.NoError(t, err)
	page := string(data)

	assert.Contains(t, page, "<title>ecverify run report</title>")
	assert.Contains(t, page, "run-42")
	assert.Contains(t, page, "HighWire")
	assert.Contains(t, page, `class="status-failed"`)
	assert.Contains(t, page, "does not match &lt;rtype&gt;")
	assert.NotContains(t, page, "Emerald Insight")
}

func TestHtmlReporter_ConfiguredPath(t *testing.T) {
	cfg := config.NewDefaultReporterConfig()
	r, err := NewHtmlReporter(&cfg, zerolog.Nop())
	require.NoError(t, err)

	assert.Error(t, r.GenerateReport(sampleSummary(), ""))

	cfg.HTMLReportPath = filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, r.GenerateReport(sampleSummary(), ""))
	assert.FileExists(t, cfg.HTMLReportPath)
}
