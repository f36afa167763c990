package commands

import (
	"fmt"

	"github.com/MGTheTrain/car-catalog/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// InitMigrateCommands registers the migrate command
func InitMigrateCommands(rootCmd *cobra.Command) {
	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: withEnvironment(func(cmd *cobra.Command, _ []string, env *environment) error {
			if err := persistence.Migrate(env.db); err != nil {
				return fmt.Errorf("failed to migrate schema: %w", err)
			}
			env.logger.Info("Database migrations completed successfully", "type", env.cfg.Database.Type)
			return nil
		}),
	}
	rootCmd.AddCommand(migrateCmd)
}
