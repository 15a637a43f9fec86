// Package logger builds the slog logger used for diagnostics.
// User-facing output is printed directly by the commands; the logger only
// carries what happened to the data file and why.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options controls where and how diagnostics are written.
type Options struct {
	Level   string // debug, info, warn, error; empty means warn
	Logfile string // empty means stderr, os.DevNull discards
	Format  string // text or json
}

// New returns a logger for the given options. Unknown values fall back to
// the defaults and the fallback itself is logged as a warning.
func New(options *Options) *slog.Logger {
	var opts slog.HandlerOptions
	switch strings.ToLower(options.Level) {
	case "":
		opts.Level = slog.LevelWarn
	case "debug":
		opts.Level = slog.LevelDebug
	case "info":
		opts.Level = slog.LevelInfo
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		bad := options.Level
		options.Level = ""
		logger := New(options)
		logger.Warn("could not parse logger level", "level", bad)
		return logger
	}

	var output io.Writer
	switch options.Logfile {
	case "":
		output = os.Stderr
	case os.DevNull:
		return slog.New(slog.DiscardHandler)
	default:
		f, err := os.OpenFile(options.Logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			options.Logfile = ""
			logger := New(options)
			logger.Warn("could not open logger output", "err", err)
			return logger
		}
		output = f
	}

	var handler slog.Handler
	switch strings.ToLower(options.Format) {
	case "json":
		handler = slog.NewJSONHandler(output, &opts)
	case "text", "":
		handler = slog.NewTextHandler(output, &opts)
	default:
		bad := options.Format
		options.Format = "text"
		logger := New(options)
		logger.Warn("could not parse logger format", "format", bad)
		return logger
	}

	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
