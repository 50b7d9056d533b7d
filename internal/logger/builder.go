// Package logger builds the zerolog logger shared by every ecverify component.
package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// Builder assembles a logger from the log section and the current run.
type Builder struct {
	cfg      FileLogConfig
	runID    string
	console  io.Writer
	level    zerolog.Level
	hasLevel bool
}

// NewLoggerBuilder starts from the default log section.
func NewLoggerBuilder() *Builder {
	return &Builder{cfg: NewDefaultFileLogConfig()}
}

// WithConfig replaces the log section.
func (b *Builder) WithConfig(cfg FileLogConfig) *Builder {
	b.cfg = cfg
	return b
}

// WithRunID tags entries with the verification run and organizes log files by run.
func (b *Builder) WithRunID(runID string) *Builder {
	b.runID = runID
	return b
}

// WithConsole redirects console output.
func (b *Builder) WithConsole(out io.Writer) *Builder {
	b.console = out
	return b
}

// WithLevel overrides the configured level.
func (b *Builder) WithLevel(level zerolog.Level) *Builder {
	b.level, b.hasLevel = level, true
	return b
}

// Options resolves the configuration without opening any output.
func (b *Builder) Options() (Options, error) {
	opts, err := resolve(b.cfg)
	if err != nil {
		return Options{}, err
	}
	if b.hasLevel {
		opts.Level = b.level
	}
	opts.RunID = b.runID
	opts.Console = b.console
	return opts, nil
}

// Build opens the outputs and returns the logger. Console output is always
// on; a log file is added when one is configured.
func (b *Builder) Build() (zerolog.Logger, error) {
	opts, err := b.Options()
	if err != nil {
		return zerolog.Nop(), err
	}

	outputs := []io.Writer{consoleOutput(opts)}
	if opts.FilePath != "" {
		file, err := fileOutput(opts)
		if err != nil {
			return zerolog.Nop(), err
		}
		outputs = append(outputs, file)
	}

	ctx := zerolog.New(zerolog.MultiLevelWriter(outputs...)).
		Level(opts.Level).
		With().
		Timestamp()
	if opts.RunID != "" {
		ctx = ctx.Str("run_id", opts.RunID)
	}
	return ctx.Logger(), nil
}
