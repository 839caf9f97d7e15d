package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"reg-form/internal/config"
)

var (
	singleton *slog.Logger
	once      sync.Once
)

// discard is returned by L before Init so library code can log unconditionally.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init initializes the singleton logger from the provided config.
// It is thread-safe and idempotent - the first successful call wins,
// and subsequent calls return the same logger instance.
func Init(cfg config.Config) (*slog.Logger, error) {
	once.Do(func() {
		singleton = slog.New(NewHandler(os.Stdout, cfg))
	})

	return singleton, nil
}

// NewHandler builds the slog handler described by cfg writing to w.
// Unknown formats fall back to JSON, unknown levels to info.
func NewHandler(w io.Writer, cfg config.Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "text":
		return slog.NewTextHandler(w, opts)
	default:
		return slog.NewJSONHandler(w, opts)
	}
}

// ParseLevel maps the LOG_LEVEL setting onto a slog level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// L returns the singleton logger instance, or a discarding logger when Init
// has not run yet.
func L() *slog.Logger {
	if singleton == nil {
		return discard
	}
	return singleton
}
