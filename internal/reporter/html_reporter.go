package reporter

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/rs/zerolog"
)

// htmlPageData is the data the HTML template is executed with
type htmlPageData struct {
	ReportTitle string
	GeneratedAt string
	Summary     *models.RunSummary
	Platforms   []htmlPlatform
	Passed      int
	Failed      int
	Errors      int
	Skipped     int
	CSS         template.CSS
}

type htmlPlatform struct {
	models.PlatformReport
	Message string
}

// HtmlReporter writes a self-contained HTML page for a run
type HtmlReporter struct {
	cfg          *config.ReporterConfig
	logger       zerolog.Logger
	template     *template.Template
	css          template.CSS
	directoryMgr *DirectoryManager
}

// NewHtmlReporter parses the embedded template and stylesheet
func NewHtmlReporter(cfg *config.ReporterConfig, appLogger zerolog.Logger) (*HtmlReporter, error) {
	moduleLogger := appLogger.With().Str("component", "HtmlReporter").Logger()

	reporter := &HtmlReporter{
		cfg:          cfg,
		logger:       moduleLogger,
		directoryMgr: NewDirectoryManager(moduleLogger),
	}

	if err := reporter.loadEmbeddedTemplate(); err != nil {
		return nil, err
	}

	css, err := assetsFS.ReadFile(reportCSSPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded stylesheet: %w", err)
	}
	reporter.css = template.CSS(css)

	return reporter, nil
}

// loadEmbeddedTemplate parses the default embedded template
func (r *HtmlReporter) loadEmbeddedTemplate() error {
	templateContent, err := templatesFS.ReadFile(reportTemplatePath)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to read embedded report template")
		return fmt.Errorf("failed to load embedded report template: %w", err)
	}

	cleanedContent := strings.ReplaceAll(string(templateContent), "\r\n", "\n")
	tmpl, err := template.New(reportTemplateName).Funcs(templateFunctions()).Parse(cleanedContent)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to parse embedded report template")
		return fmt.Errorf("failed to parse embedded report template: %w", err)
	}

	r.template = tmpl
	return nil
}

// GenerateReport writes the page for summary to outputPath, creating its directory
func (r *HtmlReporter) GenerateReport(summary *models.RunSummary, outputPath string) error {
	if outputPath == "" {
		outputPath = r.cfg.HTMLReportPath
	}
	if outputPath == "" {
		return fmt.Errorf("no HTML report path configured")
	}
	if !strings.HasSuffix(outputPath, ".html") {
		outputPath += ".html"
	}

	if err := r.directoryMgr.EnsureParentDirectory(outputPath); err != nil {
		return err
	}

	var htmlBuffer bytes.Buffer
	if err := r.template.Execute(&htmlBuffer, r.preparePageData(summary)); err != nil {
		r.logger.Error().Err(err).Str("output", outputPath).Msg("Failed to execute template")
		return fmt.Errorf("template execution failed: %w", err)
	}

	if err := os.WriteFile(outputPath, htmlBuffer.Bytes(), FilePermissions); err != nil {
		r.logger.Error().Err(err).Str("output", outputPath).Msg("Failed to write report file")
		return fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}

	r.logger.Info().Str("path", outputPath).Int("platforms", len(summary.Reports)).Msg("HTML report generated")
	return nil
}

func (r *HtmlReporter) preparePageData(summary *models.RunSummary) htmlPageData {
	data := htmlPageData{
		ReportTitle: r.cfg.ReportTitle,
		GeneratedAt: time.Now().Format(timeLayout),
		Summary:     summary,
		Passed:      summary.Count(models.PlatformPassed),
		Failed:      summary.Count(models.PlatformFailed),
		Errors:      summary.Count(models.PlatformError),
		Skipped:     summary.Count(models.PlatformSkipped),
		CSS:         r.css,
	}
	if data.ReportTitle == "" {
		data.ReportTitle = DefaultReportTitle
	}

	for _, report := range summary.Reports {
		if report.Status == models.PlatformPassed && !r.cfg.ShowPassed {
			continue
		}
		data.Platforms = append(data.Platforms, htmlPlatform{PlatformReport: report, Message: report.Error()})
	}
	return data
}
