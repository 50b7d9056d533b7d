package logger

import (
	"io"
	"strings"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/rs/zerolog"
)

// Format selects how entries are rendered.
type Format int

const (
	FormatConsole Format = iota
	FormatJSON
	FormatText
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	default:
		return "console"
	}
}

// ParseLevel accepts any zerolog level name in any case; "" means info.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.InfoLevel, errorwrapper.NewValidationError("log_level", s, "unknown log level")
	}
	return level, nil
}

// ParseFormat accepts console, json or text in any case; "" means console.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "console":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	default:
		return FormatConsole, errorwrapper.NewValidationError("log_format", s, "unknown log format")
	}
}

// Options is a log section resolved against defaults and the current run.
type Options struct {
	Level      zerolog.Level
	Format     Format
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	RunSubdirs bool
	// RunID tags every entry and, with RunSubdirs, selects the log directory.
	RunID string
	// Console receives console output; os.Stderr when nil.
	Console io.Writer
}

func resolve(cfg FileLogConfig) (Options, error) {
	level, err := ParseLevel(cfg.LogLevel)
	if err != nil {
		return Options{}, err
	}
	format, err := ParseFormat(cfg.LogFormat)
	if err != nil {
		return Options{}, err
	}
	return Options{
		Level:      level,
		Format:     format,
		FilePath:   cfg.LogFile,
		MaxSizeMB:  orDefault(cfg.MaxLogSizeMB, DefaultMaxLogSizeMB),
		MaxBackups: orDefault(cfg.MaxLogBackups, DefaultMaxLogBackups),
		RunSubdirs: cfg.RunSubdirs,
	}, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
