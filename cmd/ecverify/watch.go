package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/reporter"
	"github.com/aleister1102/ecverify/internal/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "watch <platform>",
		Short: "Verify a platform and verify it again whenever its fixtures or manifest change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				a.cfg.VerifyConfig.Debug = true
			}
			return a.runWatch(cmd.Context(), args[0])
		},
	}

	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "Trace every analyzed input")
	return cmd
}

func (a *app) runWatch(ctx context.Context, name string) error {
	runner := a.runner()
	text := reporter.NewTextReporter(true)

	verifyOnce := func(ctx context.Context) {
		started := time.Now()
		report := runner.VerifyPlatform(ctx, name)
		summary := &models.RunSummary{
			RunID:    a.runID,
			Started:  started,
			Finished: time.Now(),
			Reports:  []models.PlatformReport{report},
		}
		if err := text.Report(a.stdout, summary); err != nil {
			a.logger.Error().Err(err).Msg("Failed to print report")
		}
	}

	fixturesDir := runner.FixturesDir(name)
	w, err := watcher.New(
		[]string{fixturesDir, filepath.Dir(fixturesDir)},
		[]string{a.cfg.VerifyConfig.FixturePattern, a.cfg.VerifyConfig.ManifestFile},
		a.cfg.WatchConfig.ReloadDelay(),
		func(ctx context.Context, changed []string) {
			a.logger.Info().Strs("files", changed).Msg("Fixtures changed, verifying again")
			fmt.Fprintln(a.stdout)
			verifyOnce(ctx)
		},
		a.logger,
	)
	if err != nil {
		return err
	}

	verifyOnce(ctx)
	return w.Run(ctx)
}
