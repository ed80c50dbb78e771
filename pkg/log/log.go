// Package log sets up structured logging to a rotating file. The terminal
// belongs to the UI, so nothing is ever written to stdout or stderr here.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the log file created inside the log directory.
const FileName = "seedpad.slog"

type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time

	closer io.Closer
}

// ParseLevel maps a settings level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: invalid log level", level)
	}
}

// New opens a JSON logger writing to dir/seedpad.slog with rotation.
func New(level string, dir string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, FileName),
		MaxSize:    8, // MB
		MaxBackups: 2,
		MaxAge:     30,
	}
	if lvl == slog.LevelDebug {
		w.MaxSize = 64
	}

	l := newLogger(w, lvl)
	l.LogFile = w.Filename
	l.closer = w

	l.Info("Hello logging", slog.Time("start", l.Start))
	l.Info("System information",
		slog.String("GOARCH", runtime.GOARCH),
		slog.String("GOOS", runtime.GOOS))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Info("Build",
			slog.String("Go version", bi.GoVersion),
			slog.String("Path", bi.Path),
			slog.String("Version", bi.Main.Version))
	}

	return l, nil
}

// NewWriter returns a logger writing JSON lines to w, for tests.
func NewWriter(w io.Writer, level slog.Level) *Logger {
	return newLogger(w, level)
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return newLogger(io.Discard, slog.LevelError)
}

func newLogger(w io.Writer, level slog.Level) *Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger: slog.New(h),
		Start:  time.Now(),
	}
}

// Close flushes and closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.Info("Goodbye logging", slog.Duration("uptime", time.Since(l.Start)))
	return l.closer.Close()
}
