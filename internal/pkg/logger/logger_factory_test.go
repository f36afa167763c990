//go:build unit
// +build unit

package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetShared(t *testing.T) {
	t.Cleanup(func() {
		shared.once = sync.Once{}
		shared.log = nil
		shared.err = nil
	})
}

func consoleSettings(level string) *config.LoggerSettings {
	return &config.LoggerSettings{LogLevel: level, LogType: config.LogTypeConsole}
}

func TestNewLogger(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		log, err := NewLogger(consoleSettings(config.LogLevelDebug))
		require.NoError(t, err)
		assert.IsType(t, &ConsoleLogger{}, log)
	})

	t.Run("rotating file is created on first write", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.log")
		log, err := NewLogger(&config.LoggerSettings{
			LogLevel:   config.LogLevelInfo,
			LogType:    config.LogTypeFile,
			FilePath:   path,
			MaxSize:    config.DefaultLogMaxSize,
			MaxBackups: config.DefaultLogMaxBackups,
			MaxAge:     config.DefaultLogMaxAge,
		})
		require.NoError(t, err)
		assert.IsType(t, &FileLogger{}, log)

		log.Info("car model created", "modelID", 7)
		_, err = os.Stat(path)
		assert.NoError(t, err)
	})

	for name, settings := range map[string]*config.LoggerSettings{
		"unknown level":     consoleSettings("verbose"),
		"unknown sink":      {LogLevel: config.LogLevelInfo, LogType: "syslog"},
		"file without path": {LogLevel: config.LogLevelInfo, LogType: config.LogTypeFile, MaxSize: 1, MaxBackups: 1, MaxAge: 1},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewLogger(settings)
			assert.Error(t, err)
		})
	}
}

func TestInitLogger_KeepsFirstResult(t *testing.T) {
	resetShared(t)

	require.NoError(t, InitLogger(consoleSettings(config.LogLevelInfo)))
	first, err := GetLogger()
	require.NoError(t, err)

	// the second call is ignored, even with settings that would fail
	require.NoError(t, InitLogger(consoleSettings("verbose")))
	second, err := GetLogger()
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestInitLogger_FailureLeavesNoLogger(t *testing.T) {
	resetShared(t)

	assert.Error(t, InitLogger(consoleSettings("verbose")))

	log, err := GetLogger()
	assert.ErrorIs(t, err, errNotInitialized)
	assert.Nil(t, log)
}

func TestNewLogger_LeavesSharedLoggerAlone(t *testing.T) {
	resetShared(t)

	_, err := NewLogger(consoleSettings(config.LogLevelWarning))
	require.NoError(t, err)

	_, err = GetLogger()
	assert.ErrorIs(t, err, errNotInitialized)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel(config.LogLevelDebug))
	assert.Equal(t, slog.LevelWarn, parseLevel(config.LogLevelWarning))
	assert.Equal(t, slog.LevelError, parseLevel(config.LogLevelCritical))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
