package logger

import (
	"log/slog"
	"os"
)

// ConsoleLogger writes logfmt-style text lines to stdout.
type ConsoleLogger struct {
	handlerLogger
}

// NewConsoleLogger creates a stdout logger that drops records below level.
func NewConsoleLogger(level string) Logger {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{handlerLogger{logger: slog.New(handler)}}
}
