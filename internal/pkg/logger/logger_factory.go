package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
)

var errNotInitialized = errors.New("logger not initialized: call InitLogger first")

var shared struct {
	once sync.Once
	log  Logger
	err  error
}

var slogLevels = map[string]slog.Level{
	config.LogLevelDebug:    slog.LevelDebug,
	config.LogLevelInfo:     slog.LevelInfo,
	config.LogLevelWarning:  slog.LevelWarn,
	config.LogLevelError:    slog.LevelError,
	config.LogLevelCritical: slog.LevelError,
}

// InitLogger builds the process-wide logger on its first call. Later calls return the
// outcome of the first one and ignore their settings.
func InitLogger(settings *config.LoggerSettings) error {
	shared.once.Do(func() {
		shared.log, shared.err = NewLogger(settings)
	})
	return shared.err
}

// GetLogger returns the logger built by InitLogger.
func GetLogger() (Logger, error) {
	if shared.log == nil {
		return nil, errNotInitialized
	}
	return shared.log, nil
}

// NewLogger validates settings and returns a console or rotating file logger.
func NewLogger(settings *config.LoggerSettings) (Logger, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logger settings: %w", err)
	}

	if settings.LogType == config.LogTypeFile {
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	}
	if settings.LogType == config.LogTypeConsole {
		return NewConsoleLogger(settings.LogLevel), nil
	}
	return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
}

// parseLevel falls back to info for names it does not know
func parseLevel(level string) slog.Level {
	if l, ok := slogLevels[level]; ok {
		return l
	}
	return slog.LevelInfo
}
