//go:build integration
// +build integration

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(t *testing.T) (configPath, imageRoot string) {
	t.Helper()

	dir := t.TempDir()
	imageRoot = filepath.Join(dir, "images")
	require.NoError(t, os.MkdirAll(imageRoot, 0o750))

	configPath = filepath.Join(dir, "cli.yaml")
	content := fmt.Sprintf(`port: "8080"
database:
  type: sqlite
  dsn: %s
  db_name: car_catalog
logger:
  log_level: error
  log_type: console
storage:
  type: local
  root: %s
`, filepath.Join(dir, "catalog.db"), imageRoot)
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))
	return configPath, imageRoot
}

// execute runs args on a fresh command tree so flag values do not leak between runs
func execute(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()

	rootCmd := &cobra.Command{Use: "car-catalog-cli", SilenceUsage: true, SilenceErrors: true}
	rootCmd.PersistentFlags().StringP("config", "c", "", "")
	InitMigrateCommands(rootCmd)
	InitModelCommands(rootCmd)
	InitImageCommands(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append(args, "--config", configPath))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCommands_MigrateListSweep(t *testing.T) {
	configPath, imageRoot := newTestConfig(t)

	_, err := execute(t, configPath, "migrate")
	require.NoError(t, err)

	out, err := execute(t, configPath, "models", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "SORT")

	require.NoError(t, os.WriteFile(filepath.Join(imageRoot, "stray.jpg"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(imageRoot, "default-car.jpg"), []byte("x"), 0o600))

	out, err = execute(t, configPath, "images", "sweep", "--dry-run", "--min-age", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "stray.jpg")
	assert.Contains(t, out, "dry-run=true")
	assert.FileExists(t, filepath.Join(imageRoot, "stray.jpg"))

	out, err = execute(t, configPath, "images", "sweep", "--min-age", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "protected=1")
	assert.Contains(t, out, "deleted=1")
	assert.NoFileExists(t, filepath.Join(imageRoot, "stray.jpg"))
	assert.FileExists(t, filepath.Join(imageRoot, "default-car.jpg"))
}

func TestCommands_ReorderUnknownModel(t *testing.T) {
	configPath, _ := newTestConfig(t)

	_, err := execute(t, configPath, "migrate")
	require.NoError(t, err)

	_, err = execute(t, configPath, "models", "reorder", "99=1")
	assert.Error(t, err)
}

func TestCommands_SetDefaultUnknownImage(t *testing.T) {
	configPath, _ := newTestConfig(t)

	_, err := execute(t, configPath, "migrate")
	require.NoError(t, err)

	_, err = execute(t, configPath, "images", "set-default", "1", "1")
	assert.Error(t, err)
}
