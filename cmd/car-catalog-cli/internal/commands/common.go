package commands

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/car-catalog/internal/domain/images"
	"github.com/MGTheTrain/car-catalog/internal/domain/store"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/connector"
	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence"
	"github.com/MGTheTrain/car-catalog/internal/pkg/config"
	"github.com/MGTheTrain/car-catalog/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// environment is what every command needs: configuration, logger and an open database
type environment struct {
	cfg        *config.RestConfig
	logger     logger.Logger
	db         *gorm.DB
	transactor store.Transactor
}

// setupEnvironment loads the configuration from the --config flag, initializes the
// process logger and opens the database.
func setupEnvironment(cmd *cobra.Command) (*environment, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	cfg, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	transactor, err := persistence.NewGormTransactor(db, loggerInstance)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return &environment{
		cfg:        cfg,
		logger:     loggerInstance,
		db:         db,
		transactor: transactor,
	}, nil
}

func (e *environment) close() {
	if err := persistence.CloseDB(e.db); err != nil {
		e.logger.Warn("Failed to close database", "error", err)
	}
}

// imageStore opens the configured image storage
func (e *environment) imageStore(ctx context.Context) (images.ImageStore, error) {
	imageStore, err := connector.NewImageConnector(ctx, &e.cfg.Storage, e.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize image storage: %w", err)
	}
	return imageStore, nil
}

// withEnvironment wraps a command body with environment setup and teardown
func withEnvironment(run func(cmd *cobra.Command, args []string, env *environment) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := setupEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.close()
		return run(cmd, args, env)
	}
}
