// Package log is the logger of the font library. Hosts route it into their
// own logging with SetLogger or SetHandler; the server uses NewLogxHandler.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))
}

// SetLogger replaces the library logger.
func SetLogger(l *slog.Logger) {
	if l != nil {
		logger.Store(l)
	}
}

// SetHandler replaces the library logger with one writing to h.
func SetHandler(h slog.Handler) {
	SetLogger(slog.New(h))
}

// GetLogger returns the current logger instance.
func GetLogger() *slog.Logger {
	return logger.Load()
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) {
	logger.Load().Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	logger.Load().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	logger.Load().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	logger.Load().Error(msg, args...)
}

// InfoContext logs an info message carrying the trace of ctx.
func InfoContext(ctx context.Context, msg string, args ...any) {
	logger.Load().InfoContext(ctx, msg, args...)
}

// WarnContext logs a warning carrying the trace of ctx.
func WarnContext(ctx context.Context, msg string, args ...any) {
	logger.Load().WarnContext(ctx, msg, args...)
}
