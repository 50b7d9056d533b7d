package reporter

import (
	"html/template"
	"strings"
	"time"

	"github.com/aleister1102/ecverify/internal/models"
)

// templateFunctions returns the functions available to the HTML report template
func templateFunctions() template.FuncMap {
	return template.FuncMap{
		"formatTime": func(t time.Time) string {
			if t.IsZero() {
				return "N/A"
			}
			return t.Format(timeLayout)
		},
		"formatDuration": formatDuration,
		"statusClass": func(s models.PlatformStatus) string {
			return "status-" + strings.ToLower(string(s))
		},
		"inc": func(i int) int {
			return i + 1
		},
	}
}

// formatDuration rounds durations for display
func formatDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return d.Round(time.Microsecond).String()
	case d < time.Second:
		return d.Round(time.Millisecond).String()
	default:
		return d.Round(10 * time.Millisecond).String()
	}
}
