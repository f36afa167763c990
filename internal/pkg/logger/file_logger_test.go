//go:build unit
// +build unit

package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readJSONLines(t *testing.T, path string) []map[string]any {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
		record := map[string]any{}
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}
	return records
}

func TestFileLogger_WritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.log")

	log := NewFileLogger(config.LogLevelInfo, path, 10, 3, 28)
	log.Debug("dropped")
	log.Info("image uploaded", "imageID", 7)
	log.Error("sweep failed", "error", "bucket missing")

	records := readJSONLines(t, path)
	require.Len(t, records, 2)

	assert.Equal(t, "INFO", records[0]["level"])
	assert.Equal(t, "image uploaded", records[0]["msg"])
	assert.EqualValues(t, 7, records[0]["imageID"])

	assert.Equal(t, "ERROR", records[1]["level"])
	assert.Equal(t, "bucket missing", records[1]["error"])
}
