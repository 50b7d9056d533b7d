package reporter

const (
	// Report formats
	FormatText = "text"
	FormatJSON = "json"

	// Report generation defaults
	DefaultReportTitle = "ecverify run report"
	timeLayout         = "2006-01-02 15:04:05"

	// Embedded template and asset paths
	reportTemplateName = "report.html.tmpl"
	reportTemplatePath = "templates/report.html.tmpl"
	reportCSSPath      = "assets/css/report.css"

	// File permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
