// Package logger builds the application-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger settings.
type Config struct {
	Level  string
	Format string // "console" or "json"
	Path   string // directory for log files; empty disables file output
}

// New creates a logger writing to stdout and, when a path is configured, to
// a size-rotated file alongside it.
func New(cfg Config) zerolog.Logger {
	var out io.Writer
	if cfg.Format == "json" {
		out = os.Stdout
	} else {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	if cfg.Path != "" {
		if err := os.MkdirAll(cfg.Path, 0o755); err == nil {
			out = io.MultiWriter(out, &lumberjack.Logger{
				Filename:   filepath.Join(cfg.Path, "cinerec.log"),
				MaxSize:    10, // MB
				MaxBackups: 5,
				MaxAge:     30, // days
				Compress:   true,
				LocalTime:  true,
			})
		}
	}

	return zerolog.New(out).Level(parseLevel(cfg.Level)).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
