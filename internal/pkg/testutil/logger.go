package testutil

import (
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"
	"github.com/stretchr/testify/require"
)

// SetupTestLogger returns a debug-level console logger private to the test.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log, err := logger.NewLogger(&config.LoggerSettings{
		LogLevel: config.LogLevelDebug,
		LogType:  config.LogTypeConsole,
	})
	require.NoError(t, err)
	return log
}
