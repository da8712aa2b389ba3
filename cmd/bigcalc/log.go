package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/lmittmann/tint"
)

func slogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

// newLogger builds the diagnostic logger. Logs always go to w, never to the
// command's result output.
func newLogger(w io.Writer, level, format string, useColor bool) (*slog.Logger, error) {
	lvl, err := slogLevel(level)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	case "text":
		handler = tint.NewHandler(w, &tint.Options{Level: lvl, NoColor: !useColor})
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected text or json", format)
	}
	return slog.New(handler), nil
}
