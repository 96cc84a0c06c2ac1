// Package logger holds the process-wide structured logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	levelVar   slog.LevelVar
	loggerMu   sync.RWMutex
	baseLogger *slog.Logger
)

func init() {
	levelVar.Set(slog.LevelInfo)
	baseLogger = newLogger(os.Stderr)
}

func newLogger(w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: &levelVar})
	return slog.New(handler)
}

// SetOutput redirects all subsequent log output to w. A nil writer means stderr.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	baseLogger = newLogger(w)
	loggerMu.Unlock()
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}

// SetLevel changes the minimum level. Unknown names fall back to info.
func SetLevel(level string) {
	l, _ := ParseLevel(level)
	levelVar.Set(l)
}

// L returns the active logger for structured calls.
func L() *slog.Logger {
	loggerMu.RLock()
	l := baseLogger
	loggerMu.RUnlock()
	if l != nil {
		return l
	}
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if baseLogger == nil {
		baseLogger = newLogger(os.Stderr)
	}
	return baseLogger
}

func Debugf(format string, v ...any) {
	L().Debug(fmt.Sprintf(format, v...))
}

func Infof(format string, v ...any) {
	L().Info(fmt.Sprintf(format, v...))
}

func Warnf(format string, v ...any) {
	L().Warn(fmt.Sprintf(format, v...))
}

func Errorf(format string, v ...any) {
	L().Error(fmt.Sprintf(format, v...))
}
