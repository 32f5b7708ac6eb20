// Package logger provides structured logging for Clauseguard.
package logger

import (
	"log/slog"
	"os"
)

// Logger is the logging interface used throughout Clauseguard. It matches
// the subset of *slog.Logger the codebase relies on so tests can substitute
// their own implementations.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func (s *slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s *slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s *slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s *slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }
func (s *slogLogger) With(args ...any) Logger       { return &slogLogger{l: s.l.With(args...)} }

// global is the process-wide default logger.
var global Logger = &slogLogger{
	l: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})),
}

// SetupLogger configures the global logger.
func SetupLogger(debug bool, format string) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	global = &slogLogger{l: slog.New(handler)}
}

// GetGlobalLogger returns the global logger instance.
func GetGlobalLogger() Logger {
	return global
}

// Debug logs a debug message on the global logger.
func Debug(msg string, args ...any) {
	global.Debug(msg, args...)
}

// Info logs an info message on the global logger.
func Info(msg string, args ...any) {
	global.Info(msg, args...)
}

// Warn logs a warning message on the global logger.
func Warn(msg string, args ...any) {
	global.Warn(msg, args...)
}

// Error logs an error message on the global logger.
func Error(msg string, args ...any) {
	global.Error(msg, args...)
}

// WithClient returns a logger with client context.
func WithClient(client string) Logger {
	return global.With("client", client)
}
