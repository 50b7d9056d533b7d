package config

// ReporterConfig defines configuration for run reports
type ReporterConfig struct {
	Format         string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,reportformat"`
	HTMLReportPath string `json:"html_report_path,omitempty" yaml:"html_report_path,omitempty"`
	ReportTitle    string `json:"report_title,omitempty" yaml:"report_title,omitempty"`
	ShowPassed     bool   `json:"show_passed" yaml:"show_passed"`
}

// NewDefaultReporterConfig creates default reporter configuration
func NewDefaultReporterConfig() ReporterConfig {
	return ReporterConfig{
		Format:      DefaultReportFormat,
		ReportTitle: DefaultReportTitle,
		ShowPassed:  DefaultShowPassed,
	}
}
