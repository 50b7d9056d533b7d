package reporter

import (
	"fmt"
	"io"

	"github.com/aleister1102/ecverify/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	passedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	headingStyle = lipgloss.NewStyle().Bold(true)
)

// TextReporter prints a platform table followed by the failure of every
// platform that did not pass.
type TextReporter struct {
	showPassed bool
}

// NewTextReporter creates a TextReporter. Passing platforms are left out of
// the table unless showPassed is set.
func NewTextReporter(showPassed bool) *TextReporter {
	return &TextReporter{showPassed: showPassed}
}

// Report writes the summary.
func (r *TextReporter) Report(w io.Writer, summary *models.RunSummary) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("PLATFORM", "LABEL", "STATUS", "FIXTURES", "CHECKED", "TIME")

	for _, report := range summary.Reports {
		if report.Status == models.PlatformPassed && !r.showPassed {
			continue
		}
		t.Row(
			report.Name,
			report.Label,
			statusStyle(report.Status).Render(string(report.Status)),
			fmt.Sprint(report.Fixtures),
			fmt.Sprint(report.Checked),
			formatDuration(report.Duration),
		)
	}

	if _, err := fmt.Fprintln(w, t.String()); err != nil {
		return err
	}

	for _, report := range summary.Reports {
		if report.Status.IsSuccess() || report.Err == nil {
			continue
		}
		heading := fmt.Sprintf("%s %s (%s)", report.Status, report.Name, report.Label)
		if _, err := fmt.Fprintf(w, "\n%s\n%s\n", headingStyle.Render(heading), report.Error()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%d passed, %d failed, %d errors, %d skipped in %s\n",
		summary.Count(models.PlatformPassed),
		summary.Count(models.PlatformFailed),
		summary.Count(models.PlatformError),
		summary.Count(models.PlatformSkipped),
		formatDuration(summary.Duration()),
	)
	return err
}

func statusStyle(s models.PlatformStatus) lipgloss.Style {
	switch s {
	case models.PlatformPassed:
		return passedStyle
	case models.PlatformSkipped:
		return skippedStyle
	default:
		return failedStyle
	}
}
