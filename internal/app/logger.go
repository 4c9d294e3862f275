package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/norsk-drill/internal/config"
)

// NewLogger creates a *slog.Logger writing to os.Stderr and sets it as the
// default logger via slog.SetDefault.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := NewLoggerTo(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

// NewLoggerTo builds the logger described by cfg on top of w.
//
// Format "json" produces structured JSON output (production).
// Format "text" produces human-readable output with a short file:line
// source (development).
// Level is one of: debug, info, warn, error (case-insensitive); defaults to info.
// Every record carries app=norsk-drill.
func NewLoggerTo(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: text,
	}

	var handler slog.Handler
	if text {
		opts.ReplaceAttr = shortSource
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("app", "norsk-drill"))
}

func shortSource(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.SourceKey {
		return a
	}
	src, ok := a.Value.Any().(*slog.Source)
	if !ok || src == nil {
		return a
	}
	return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
