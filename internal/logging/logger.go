// Package logging configures the service's structured logger and the
// log-field vocabulary shared across packages.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls handler format and verbosity plus the common fields
// attached to every record.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
}

// NewLogger returns a structured logger with sane defaults. Unknown levels
// fall back to info and unknown formats to text.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default:
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	attrs := WithCommon(nil, cfg.Service, cfg.Version)
	for _, attr := range attrs {
		logger = logger.With(attr)
	}
	return logger
}

func parseLevel(level string) slog.Level {
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
