// Package reporter renders the summary of a verification run as a terminal
// table, a JSON document or an HTML page.
package reporter

import (
	"io"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/rs/zerolog"
)

// Reporter writes a run summary.
type Reporter interface {
	Report(w io.Writer, summary *models.RunSummary) error
}

// New returns the reporter for the configured format.
func New(cfg *config.ReporterConfig, logger zerolog.Logger) (Reporter, error) {
	switch cfg.Format {
	case FormatText, "":
		return NewTextReporter(cfg.ShowPassed), nil
	case FormatJSON:
		return NewJSONReporter(logger), nil
	default:
		return nil, errorwrapper.NewValidationError("format", cfg.Format, "unsupported report format")
	}
}
