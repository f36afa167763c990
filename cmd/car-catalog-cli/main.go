// Package main is the entry point for the car-catalog-cli application.
// It registers the maintenance sub-commands (migrate, models, images) and executes them
// against the same configuration the REST API reads.
package main

import (
	"fmt"
	"log"

	"github.com/MGTheTrain/car-catalog/cmd/car-catalog-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "car-catalog-cli",
		Short: "Car catalog maintenance CLI tool",
		Long: `car-catalog-cli runs maintenance tasks against the car catalog database and image storage.
It reads the same configuration as the REST API. The configuration file is taken from --config
or the CONFIG_PATH environment variable, and environment variables such as DB_TYPE, DB_DSN and
STORAGE_ROOT override its values.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML configuration file")

	// Initialize all command groups BEFORE executing
	commands.InitMigrateCommands(rootCmd)
	commands.InitModelCommands(rootCmd)
	commands.InitImageCommands(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}
