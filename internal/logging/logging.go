// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Component names
const (
	CompHTTP   = "http"
	CompQA     = "qa"
	CompStore  = "store"
	CompJobs   = "jobs"
	CompServer = "server"
)

// Config controls where and how much is logged.
type Config struct {
	Level string // debug, info, warn, error
	File  string // empty logs to stdout
	JSON  bool
}

var (
	mu     sync.RWMutex
	writer io.Writer = os.Stdout
)

// Setup installs the default slog logger and returns the underlying writer
// so other log producers (the HTTP access log) share the sink.
func Setup(cfg Config) io.Writer {
	var w io.Writer = os.Stdout
	if cfg.File != "" {
		w = &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))

	mu.Lock()
	writer = w
	mu.Unlock()
	return w
}

// Writer returns the sink installed by Setup.
func Writer() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// ForComponent returns the default logger tagged with a component name.
func ForComponent(name string) *slog.Logger {
	return slog.Default().With(slog.String("component", name))
}

// ParseLevel maps a level name to a slog level, defaulting to info.
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
