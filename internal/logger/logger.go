// Package logger builds the process-wide slog.Logger and a few attribute helpers
// shared by every package that logs.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/fx"
)

var Module = fx.Module("logger",
	fx.Provide(NewLogger),
)

// NewLogger creates a logger configured from LOG_LEVEL. ENVIRONMENT=production
// (or GO_ENV=production) switches to JSON output.
func NewLogger() *slog.Logger {
	return FromEnv(os.Stderr, os.Getenv)
}

// FromEnv builds the logger from the variables returned by getenv.
func FromEnv(w io.Writer, getenv func(string) string) *slog.Logger {
	production := getenv("ENVIRONMENT") == "production" || getenv("GO_ENV") == "production"
	return New(w, getenv("LOG_LEVEL"), production)
}

// New creates a logger writing to w at the given level name.
func New(w io.Writer, level string, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ParseLevel maps a level name to a slog.Level. Unknown names yield info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Scope tags log lines with the component that emitted them.
func Scope(scope string) slog.Attr {
	return slog.String("scope", scope)
}

// Error attaches an error under the "error" key.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
