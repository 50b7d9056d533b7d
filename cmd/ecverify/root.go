package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aleister1102/ecverify/internal/config"
	"github.com/aleister1102/ecverify/internal/logger"
	"github.com/aleister1102/ecverify/internal/orchestrator"
	"github.com/aleister1102/ecverify/internal/platforms"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errFailed signals a run whose outcome was already printed.
var errFailed = errors.New("verification failed")

// app holds the state shared by every command
type app struct {
	configPath   string
	logLevel     string
	platformsDir string

	cfg    *config.GlobalConfig
	logger zerolog.Logger
	runID  string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// execute runs the command line and returns the process exit code
func execute(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "ecverify",
		Short:         "Verify access-event classifiers against their fixtures",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the YAML/JSON configuration file (default: $"+config.EnvConfigPath+" or ./ecverify.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides the config file)")
	root.PersistentFlags().StringVar(&a.platformsDir, "platforms-dir", "", "Directory holding one sub-directory per platform (overrides the config file)")

	root.AddCommand(
		newVerifyCmd(a),
		newListCmd(a),
		newClassifyCmd(a),
		newWatchCmd(a),
	)
	return root
}

// setup loads the configuration, applies the global flags and builds the logger
func (a *app) setup() error {
	cfg, err := config.LoadGlobalConfig(a.configPath, zerolog.Nop())
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogConfig.LogLevel = a.logLevel
	}
	if a.platformsDir != "" {
		cfg.VerifyConfig.PlatformsDir = a.platformsDir
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return err
	}

	a.runID = uuid.NewString()
	l, err := logger.NewLoggerBuilder().
		WithConfig(cfg.LogConfig).
		WithRunID(a.runID).
		WithConsole(a.stderr).
		Build()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = l
	return nil
}

func (a *app) runner() *orchestrator.Runner {
	return orchestrator.NewRunner(a.cfg, platforms.Registry(), a.logger).WithRunID(a.runID)
}
