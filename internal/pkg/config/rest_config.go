package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MGTheTrain/car-catalog/internal/pkg/validators"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values loaded from the YAML file
const (
	EnvConfigPath      = "CONFIG_PATH"
	EnvDotEnvPath      = "ENV_FILE"
	EnvPort            = "PORT"
	EnvDBType          = "DB_TYPE"
	EnvDBDSN           = "DB_DSN"
	EnvDBName          = "DB_NAME"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogType         = "LOG_TYPE"
	EnvLogFilePath     = "LOG_FILE_PATH"
	EnvStorageType     = "STORAGE_TYPE"
	EnvStorageRoot     = "STORAGE_ROOT"
	EnvS3Bucket        = "S3_BUCKET"
	EnvS3Region        = "S3_REGION"
	EnvS3Endpoint      = "S3_ENDPOINT"
	EnvCleanupSchedule = "CLEANUP_SCHEDULE"
)

// RestConfig is the complete configuration of the REST API and the CLI.
type RestConfig struct {
	Port     string           `yaml:"port" validate:"required"`
	Database DatabaseSettings `yaml:"database"`
	Logger   LoggerSettings   `yaml:"logger"`
	Storage  StorageSettings  `yaml:"storage"`
	Images   ImageSettings    `yaml:"images"`
	Cleanup  CleanupSettings  `yaml:"cleanup"`
}

// DefaultRestConfig returns a configuration that runs against a local sqlite file
// and stores images on the local filesystem.
func DefaultRestConfig() *RestConfig {
	return &RestConfig{
		Port: "8080",
		Database: DatabaseSettings{
			Type:   SqliteDbType,
			DSN:    "car-catalog.db",
			DBName: "car_catalog",
		},
		Logger: LoggerSettings{
			LogLevel:   LogLevelInfo,
			LogType:    LogTypeConsole,
			MaxSize:    DefaultLogMaxSize,
			MaxBackups: DefaultLogMaxBackups,
			MaxAge:     DefaultLogMaxAge,
		},
		Storage: StorageSettings{
			Type: StorageTypeLocal,
			Root: "wwwroot/images/cars",
		},
		Images: DefaultImageSettings(),
		Cleanup: CleanupSettings{
			MinAge: time.Hour,
		},
	}
}

// InitializeRestConfig loads the configuration in three layers: defaults, the YAML
// file at path (skipped when path is empty) and environment overrides. A .env file
// is loaded into the environment first when present.
func InitializeRestConfig(path string) (*RestConfig, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := DefaultRestConfig()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the whole configuration tree
func (c *RestConfig) Validate() error {
	validate, err := validators.New()
	if err != nil {
		return err
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}

	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Storage.Validate(); err != nil {
		return err
	}
	if err := c.Images.Validate(); err != nil {
		return err
	}
	// only local storage is served by the API itself
	if c.Storage.Type == StorageTypeS3 {
		if err := validate.Var(c.Images.PublicPath, "http_url"); err != nil {
			return fmt.Errorf("public path must be the absolute bucket or CDN URL for s3 storage, got %q", c.Images.PublicPath)
		}
	}
	return c.Cleanup.Validate()
}

func (c *RestConfig) applyEnvOverrides() {
	overrides := map[string]*string{
		EnvPort:            &c.Port,
		EnvDBType:          &c.Database.Type,
		EnvDBDSN:           &c.Database.DSN,
		EnvDBName:          &c.Database.DBName,
		EnvLogLevel:        &c.Logger.LogLevel,
		EnvLogType:         &c.Logger.LogType,
		EnvLogFilePath:     &c.Logger.FilePath,
		EnvStorageType:     &c.Storage.Type,
		EnvStorageRoot:     &c.Storage.Root,
		EnvS3Bucket:        &c.Storage.Bucket,
		EnvS3Region:        &c.Storage.Region,
		EnvS3Endpoint:      &c.Storage.Endpoint,
		EnvCleanupSchedule: &c.Cleanup.Schedule,
	}
	for key, target := range overrides {
		if value, ok := os.LookupEnv(key); ok {
			*target = value
		}
	}
}

func loadDotEnv() error {
	path := os.Getenv(EnvDotEnvPath)
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
