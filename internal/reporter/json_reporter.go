package reporter

import (
	"encoding/json"
	"io"
	"time"

	"github.com/aleister1102/ecverify/internal/models"
	"github.com/rs/zerolog"
)

type jsonPlatform struct {
	models.PlatformReport
	Error      string `json:"error,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}

type jsonSummary struct {
	RunID      string         `json:"run_id"`
	Started    time.Time      `json:"started"`
	Finished   time.Time      `json:"finished"`
	Passed     bool           `json:"passed"`
	Platforms  []jsonPlatform `json:"platforms"`
	DurationMs int64          `json:"duration_ms"`
}

// JSONReporter writes the summary as one indented JSON document.
type JSONReporter struct {
	logger zerolog.Logger
}

// NewJSONReporter creates a JSONReporter.
func NewJSONReporter(logger zerolog.Logger) *JSONReporter {
	return &JSONReporter{logger: logger.With().Str("component", "JSONReporter").Logger()}
}

// Report writes the summary.
func (r *JSONReporter) Report(w io.Writer, summary *models.RunSummary) error {
	doc := jsonSummary{
		RunID:      summary.RunID,
		Started:    summary.Started,
		Finished:   summary.Finished,
		Passed:     summary.Passed(),
		Platforms:  make([]jsonPlatform, 0, len(summary.Reports)),
		DurationMs: summary.Duration().Milliseconds(),
	}
	for _, report := range summary.Reports {
		doc.Platforms = append(doc.Platforms, jsonPlatform{
			PlatformReport: report,
			Error:          report.Error(),
			DurationMs:     report.Duration.Milliseconds(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		r.logger.Error().Err(err).Msg("Failed to encode run summary")
		return err
	}
	return nil
}
