//go:build unit
// +build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rest-app.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultRestConfig_IsValid(t *testing.T) {
	require.NoError(t, DefaultRestConfig().Validate())
}

func TestInitializeRestConfig_FromFile(t *testing.T) {
	t.Setenv(EnvDotEnvPath, filepath.Join(t.TempDir(), "missing.env"))

	path := writeConfigFile(t, `
port: "9090"
database:
  type: postgres
  dsn: "host=localhost user=postgres password=postgres port=5432 sslmode=disable"
  db_name: car_catalog
logger:
  log_level: debug
  log_type: console
storage:
  type: s3
  bucket: car-images
  region: eu-central-1
  prefix: cars/
images:
  allowed_extensions: [".jpg", ".png"]
  max_size_bytes: 1048576
  public_path: https://car-images.s3.amazonaws.com/cars
  fallback_url: /images/cars/default-car.jpg
cleanup:
  schedule: "30 2 * * *"
  min_age: 2h
`)

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, PostgresDbType, cfg.Database.Type)
	assert.Equal(t, LogLevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, StorageTypeS3, cfg.Storage.Type)
	assert.Equal(t, "cars/", cfg.Storage.Prefix)
	assert.Equal(t, []string{".jpg", ".png"}, cfg.Images.AllowedExtensions)
	assert.Equal(t, int64(1048576), cfg.Images.MaxSizeBytes)
	assert.Equal(t, "30 2 * * *", cfg.Cleanup.Schedule)
	assert.Equal(t, 2*time.Hour, cfg.Cleanup.MinAge)
}

func TestInitializeRestConfig_EnvOverrides(t *testing.T) {
	t.Setenv(EnvDotEnvPath, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvDBDSN, filepath.Join(t.TempDir(), "override.db"))
	t.Setenv(EnvStorageRoot, "/var/lib/car-catalog/images")

	path := writeConfigFile(t, "port: \"9090\"\n")

	cfg, err := InitializeRestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Contains(t, cfg.Database.DSN, "override.db")
	assert.Equal(t, "/var/lib/car-catalog/images", cfg.Storage.Root)
	assert.Equal(t, SqliteDbType, cfg.Database.Type)
}

func TestInitializeRestConfig_DotEnv(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("LOG_LEVEL=warning\n"), 0600))
	t.Setenv(EnvDotEnvPath, envPath)
	t.Cleanup(func() { _ = os.Unsetenv(EnvLogLevel) })

	cfg, err := InitializeRestConfig(writeConfigFile(t, "port: \"8081\"\n"))
	require.NoError(t, err)
	assert.Equal(t, LogLevelWarning, cfg.Logger.LogLevel)
}

func TestInitializeRestConfig_Errors(t *testing.T) {
	t.Setenv(EnvDotEnvPath, filepath.Join(t.TempDir(), "missing.env"))

	_, err := InitializeRestConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)

	_, err = InitializeRestConfig(writeConfigFile(t, "port: [not, a, string"))
	assert.Error(t, err)

	_, err = InitializeRestConfig(writeConfigFile(t, "storage:\n  type: s3\n"))
	assert.Error(t, err)
}

func TestRestConfig_S3NeedsAbsolutePublicPath(t *testing.T) {
	cfg := DefaultRestConfig()
	cfg.Storage = StorageSettings{Type: StorageTypeS3, Bucket: "car-images", Region: "eu-central-1", Prefix: "cars/"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "public path")

	cfg.Images.PublicPath = "https://car-images.s3.eu-central-1.amazonaws.com/cars"
	assert.NoError(t, cfg.Validate())
}
