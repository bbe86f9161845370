package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// logLevel picks the stderr log level. Quiet wins over verbose.
func logLevel(verbose, quiet bool) slog.Level {
	switch {
	case quiet:
		return slog.LevelWarn
	case verbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// newLogger returns a tint-backed logger for CLI diagnostics.
// Results go to stdout; only diagnostics use the logger.
func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// noColor reports whether NO_COLOR is set to any non-empty value.
func noColor(env *Environment) bool {
	return env.getenv("NO_COLOR") != ""
}
