// Package logging configures colored structured logging with tint.
//
// The client shares the terminal with the UI, so logs go to stderr and the
// screens own stdout.
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: warn)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Setup configures colored logging on stderr at the level specified by the
// LOG_LEVEL env var. The default is WARN so the UI stays readable; raise it
// only when debugging.
func Setup() {
	SetupWithWriter(os.Stderr, levelFromEnv())
}

// SetupWithWriter configures colored logging on the given writer at the given
// level. Tests pass a buffer here to keep output quiet.
func SetupWithWriter(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
