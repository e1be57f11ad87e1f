package config

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger from c. Invalid values fall back to
// warn level and text output.
func NewLogger(w io.Writer, c LogConfig) *slog.Logger {
	level, ok := parseLevel(c.Level)
	if !ok {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch normalize(c.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(v string) (slog.Level, bool) {
	switch normalize(v) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning", "":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
