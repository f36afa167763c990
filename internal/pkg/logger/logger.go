package logger

import "log/slog"

// Logger defines the logging interface. Args are alternating key/value pairs
// in the form accepted by log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// handlerLogger forwards to a slog.Logger; the concrete sinks differ only in their handler.
type handlerLogger struct {
	logger *slog.Logger
}

func (l handlerLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l handlerLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l handlerLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l handlerLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }
