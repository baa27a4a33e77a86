package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	logDir      = "logs"
	logFileName = "rollaball.log"
)

type Config struct {
	// Level is the minimum record level, Debug lowers it to debug
	Level  string
	Format string // "text" or "json"
	// File is the log path, empty means logs/rollaball.log when Debug is set
	File  string
	Debug bool
	// Output overrides the file, used by tests and headless runs
	Output io.Writer
}

var (
	mu sync.RWMutex
	lg = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup builds the process logger and installs it as the slog default
// Logging is off (io.Discard) unless Debug, File or Output is set, the terminal belongs to the game
// The returned closer releases the log file and is never nil
func Setup(cfg Config) (*slog.Logger, io.Closer, error) {
	out, closer, err := openOutput(cfg)
	if err != nil {
		return nil, nil, err
	}

	level := parseLevel(cfg.Level)
	if cfg.Debug {
		level = min(level, slog.LevelDebug)
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(out, opts)
	default:
		handler = slog.NewTextHandler(out, opts)
	}

	l := slog.New(handler)
	mu.Lock()
	lg = l
	mu.Unlock()
	slog.SetDefault(l)
	return l, closer, nil
}

// L returns the process logger, a discarding logger before Setup
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return lg
}

func openOutput(cfg Config) (io.Writer, io.Closer, error) {
	if cfg.Output != nil {
		return cfg.Output, nopCloser{}, nil
	}

	path := cfg.File
	if path == "" {
		if !cfg.Debug {
			return io.Discard, nopCloser{}, nil
		}
		path = filepath.Join(logDir, logFileName)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f, nil
}

func parseLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
