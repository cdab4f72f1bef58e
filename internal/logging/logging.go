// Package logging builds the process-wide slog.Logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/nyashahama/wellbeing-risk-engine/internal/config"
)

// New returns a logger writing to stdout and, when LOG_FILE is set, to a
// size-rotated file. Production always logs JSON.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, stdout io.Writer) *slog.Logger {
	writers := []io.Writer{stdout}
	if cfg.Log.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
			Compress:   cfg.Log.CompressFile,
		})
	}

	w := io.MultiWriter(writers...)
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Log.Level),
		AddSource: cfg.Env == "development",
	}

	var h slog.Handler
	if cfg.IsProduction() || strings.EqualFold(cfg.Log.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With(
		slog.String("service", cfg.ServiceName),
		slog.String("env", cfg.Env),
	)
}

// ParseLevel maps a LOG_LEVEL value to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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
