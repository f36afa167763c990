package logger

import (
	"log/slog"

	"github.com/natefinch/lumberjack"
)

// FileLogger writes JSON lines to a file rotated by lumberjack.
type FileLogger struct {
	handlerLogger
}

// NewFileLogger creates a JSON file logger. maxSize is in megabytes and maxAge in days;
// rotated files are gzip-compressed.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	rotator := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(rotator, &slog.HandlerOptions{Level: parseLevel(level)})
	return &FileLogger{handlerLogger{logger: slog.New(handler)}}
}
