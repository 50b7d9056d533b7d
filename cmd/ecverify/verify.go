package main

import (
	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/reporter"
	"github.com/spf13/cobra"
)

type verifyOptions struct {
	jobs       int
	debug      bool
	htmlReport string
	format     string
	noTextDiff bool
}

func newVerifyCmd(a *app) *cobra.Command {
	var opts verifyOptions

	cmd := &cobra.Command{
		Use:   "verify [platform...]",
		Short: "Run every fixture of the selected platforms through their classifier",
		Long: "Run every fixture of the selected platforms through their classifier.\n" +
			"Platforms are selected by name or glob; a leading '!' excludes. Without\n" +
			"arguments the selection comes from $" + config.EnvPlatforms + " or the config file.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVerify(cmd, args, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 0, "Number of platforms verified concurrently (overrides the config file)")
	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "Trace every analyzed input")
	cmd.Flags().StringVar(&opts.htmlReport, "html-report", "", "Also write an HTML report to this path")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Report format: text or json (overrides the config file)")
	cmd.Flags().BoolVar(&opts.noTextDiff, "no-text-diff", false, "Do not compute character diffs of mismatched fields")
	return cmd
}

func (a *app) runVerify(cmd *cobra.Command, args []string, opts verifyOptions) error {
	if opts.jobs > 0 {
		a.cfg.VerifyConfig.Jobs = opts.jobs
	}
	if opts.debug {
		a.cfg.VerifyConfig.Debug = true
	}
	if opts.noTextDiff {
		a.cfg.VerifyConfig.TextDiff = false
	}
	if opts.format != "" {
		a.cfg.ReporterConfig.Format = opts.format
	}
	if opts.htmlReport != "" {
		a.cfg.ReporterConfig.HTMLReportPath = opts.htmlReport
	}
	if err := config.ValidateConfig(a.cfg); err != nil {
		return err
	}

	rep, err := reporter.New(&a.cfg.ReporterConfig, a.logger)
	if err != nil {
		return err
	}

	summary, runErr := a.runner().WithSelection(args).Run(cmd.Context())
	if summary == nil {
		return runErr
	}

	if err := rep.Report(a.stdout, summary); err != nil {
		return err
	}

	if a.cfg.ReporterConfig.HTMLReportPath != "" {
		html, err := reporter.NewHtmlReporter(&a.cfg.ReporterConfig, a.logger)
		if err != nil {
			return err
		}
		if err := html.GenerateReport(summary, ""); err != nil {
			return err
		}
	}

	if runErr != nil {
		return runErr
	}
	if !summary.Passed() {
		return errFailed
	}
	return nil
}
