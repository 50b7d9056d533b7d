// Package orchestrator runs the verification of every selected platform and
// gathers the reports of a run.
package orchestrator

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/aleister1102/ecverify/internal/classifier"
	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/fixture"
	"github.com/aleister1102/ecverify/internal/manifest"
	"github.com/aleister1102/ecverify/internal/models"
	"github.com/aleister1102/ecverify/internal/verify"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Runner verifies platforms found under the configured platforms directory.
type Runner struct {
	cfg       *config.GlobalConfig
	registry  *classifier.Registry
	base      zerolog.Logger
	logger    zerolog.Logger
	selection []string
	runID     string
}

// NewRunner creates a Runner.
func NewRunner(cfg *config.GlobalConfig, reg *classifier.Registry, logger zerolog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		registry: reg,
		base:     logger,
		logger:   logger.With().Str("component", "Runner").Logger(),
	}
}

// WithSelection overrides the configured platform selection.
// An empty slice keeps the environment or config selection.
func (r *Runner) WithSelection(patterns []string) *Runner {
	r.selection = patterns
	return r
}

// WithRunID sets the identifier of the next runs. A random one is used otherwise.
func (r *Runner) WithRunID(id string) *Runner {
	r.runID = id
	return r
}

// Run verifies every selected platform. Platforms are independent: a failing
// platform never stops the others. Reports keep the order of Platforms.
func (r *Runner) Run(ctx context.Context) (*models.RunSummary, error) {
	names, err := r.Platforms()
	if err != nil {
		return nil, err
	}

	runID := r.runID
	if runID == "" {
		runID = uuid.NewString()
	}

	summary := &models.RunSummary{
		RunID:   runID,
		Started: time.Now(),
		Reports: make([]models.PlatformReport, len(names)),
	}

	jobs := r.cfg.VerifyConfig.Jobs
	if jobs < 1 {
		jobs = 1
	}
	r.logger.Info().Str("run_id", runID).Int("platforms", len(names)).Int("jobs", jobs).Msg("Starting verification run")

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, name := range names {
		g.Go(func() error {
			summary.Reports[i] = r.VerifyPlatform(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	summary.Finished = time.Now()
	r.logger.Info().
		Str("run_id", runID).
		Int("passed", summary.Count(models.PlatformPassed)).
		Int("failed", summary.Count(models.PlatformFailed)).
		Int("errors", summary.Count(models.PlatformError)).
		Int("skipped", summary.Count(models.PlatformSkipped)).
		Dur("duration", summary.Duration()).
		Msg("Verification run finished")

	return summary, ctx.Err()
}

// VerifyPlatform loads the classifier and fixtures of one platform and verifies
// them. Every failure is recorded in the report.
func (r *Runner) VerifyPlatform(ctx context.Context, name string) (report models.PlatformReport) {
	start := time.Now()
	report = models.PlatformReport{Name: name, Label: r.label(name)}
	logger := r.logger.With().Str("platform", name).Logger()

	defer func() {
		report.Duration = time.Since(start)
		event := logger.Info()
		if !report.Status.IsSuccess() {
			event = logger.Warn().Err(report.Err)
		}
		event.Str("status", string(report.Status)).Int("checked", report.Checked).Dur("duration", report.Duration).Msg("Platform verified")
	}()

	if err := ctx.Err(); err != nil {
		report.Status, report.Err = models.PlatformSkipped, err
		return report
	}

	w, err := r.registry.Open(name,
		classifier.WithLogger(r.base),
		classifier.WithDebug(r.cfg.VerifyConfig.Debug),
	)
	if err != nil {
		report.Status, report.Err = StatusOf(err), err
		return report
	}

	fixtures, err := r.Loader().Load(ctx, r.fixturesDir(name))
	if err != nil {
		report.Status, report.Err = StatusOf(err), err
		return report
	}
	report.Fixtures = len(fixtures)

	verifier := verify.NewVerifier(w,
		verify.WithLogger(r.base),
		verify.WithTextDiff(r.cfg.VerifyConfig.TextDiff),
	)
	outcome, err := verifier.Verify(ctx, fixtures)
	report.Checked = outcome.Checked
	report.Status, report.Err = StatusOf(err), err
	return report
}

// StatusOf maps a verification error to the platform status it yields.
func StatusOf(err error) models.PlatformStatus {
	var (
		mismatch  *verify.MismatchError
		malformed *fixture.MalformedError
		input     *classifier.InputError
	)
	switch {
	case err == nil:
		return models.PlatformPassed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.PlatformSkipped
	case errors.As(err, &mismatch), errors.As(err, &malformed), errors.As(err, &input):
		return models.PlatformFailed
	default:
		return models.PlatformError
	}
}

// Loader returns the fixture loader configured for this runner.
func (r *Runner) Loader() *fixture.Loader {
	return fixture.NewLoader(
		fixture.WithDelimiter(r.cfg.VerifyConfig.DelimiterRune()),
		fixture.WithPattern(r.cfg.VerifyConfig.FixturePattern),
		fixture.WithLogger(r.base),
	)
}

func (r *Runner) platformDir(name string) string {
	return filepath.Join(r.cfg.VerifyConfig.PlatformsDir, name)
}

func (r *Runner) fixturesDir(name string) string {
	return filepath.Join(r.platformDir(name), r.cfg.VerifyConfig.FixturesSubdir)
}

// Manifest reads the descriptor of a platform.
func (r *Runner) Manifest(name string) (*manifest.Manifest, error) {
	return manifest.Load(r.platformDir(name), r.cfg.VerifyConfig.ManifestFile)
}

// label returns the display name of a platform. A missing or invalid
// descriptor falls back to the directory name.
func (r *Runner) label(name string) string {
	m, err := r.Manifest(name)
	if err != nil {
		r.logger.Debug().Err(err).Str("platform", name).Msg("No usable manifest, using platform name as label")
	}
	return manifest.Label(m, name)
}

// Open builds the classifier wrapper of a registered platform.
func (r *Runner) Open(name string, opts ...classifier.WrapperOption) (*classifier.Wrapper, error) {
	return r.registry.Open(name, opts...)
}
