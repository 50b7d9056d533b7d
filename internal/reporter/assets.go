package reporter

import "embed"

//go:embed templates/report.html.tmpl
var templatesFS embed.FS

//go:embed assets/css/report.css
var assetsFS embed.FS
