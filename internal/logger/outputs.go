package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/ecverify/internal/common/errorwrapper"
	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// render wraps out so entries are written in format. JSON passes through.
func render(format Format, out io.Writer, color bool) io.Writer {
	if format == FormatJSON {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    format == FormatText || !color,
	}
}

func consoleOutput(opts Options) io.Writer {
	out := opts.Console
	if out == nil {
		out = os.Stderr
	}
	return render(opts.Format, out, true)
}

// fileOutput opens a rotating log file. Files never carry color codes.
func fileOutput(opts Options) (io.Writer, error) {
	path := logPath(opts)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errorwrapper.WrapError(err, "failed to create log directory")
	}
	return render(opts.Format, &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}, false), nil
}

// logPath places the file under runs/<run id>/ when run subdirectories are on.
func logPath(opts Options) string {
	if !opts.RunSubdirs || opts.RunID == "" {
		return opts.FilePath
	}
	return filepath.Join(filepath.Dir(opts.FilePath), "runs", opts.RunID, filepath.Base(opts.FilePath))
}
