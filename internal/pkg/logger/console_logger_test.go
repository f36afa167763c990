//go:build unit
// +build unit

package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/stretchr/testify/assert"
)

func bufferedConsole(level string) (*ConsoleLogger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	handler := slog.NewTextHandler(buf, &slog.HandlerOptions{Level: parseLevel(level)})
	return &ConsoleLogger{handlerLogger{logger: slog.New(handler)}}, buf
}

func TestConsoleLogger_FiltersBelowLevel(t *testing.T) {
	log, buf := bufferedConsole(config.LogLevelWarning)

	log.Debug("sort order unchanged")
	log.Info("image stored", "file", "a.jpg")
	log.Warn("orphan file kept", "file", "b.jpg")
	log.Error("image delete failed", "error", "permission denied")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=WARN")
	assert.Contains(t, lines[0], "file=b.jpg")
	assert.Contains(t, lines[1], `error="permission denied"`)
}

func TestConsoleLogger_DebugLevelWritesEverything(t *testing.T) {
	log, buf := bufferedConsole(config.LogLevelDebug)

	log.Debug("reconciling", "models", 3)

	assert.Contains(t, buf.String(), "models=3")
}
