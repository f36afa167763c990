package commands

import (
	"fmt"
	"strconv"

	"github.com/MGTheTrain/car-catalog/internal/app"

	"github.com/spf13/cobra"
)

// setDefaultImageCmd makes an image the default of its car model
func setDefaultImageCmd(cmd *cobra.Command, args []string, env *environment) error {
	imageID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid image id %q: %w", args[0], err)
	}
	modelID, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid model id %q: %w", args[1], err)
	}

	imageStore, err := env.imageStore(cmd.Context())
	if err != nil {
		return err
	}

	service, err := app.NewImageService(env.transactor, imageStore, env.cfg.Images, env.logger)
	if err != nil {
		return err
	}

	if err := service.SetDefault(cmd.Context(), imageID, modelID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "image %d is now the default of car model %d\n", imageID, modelID)
	return nil
}

// sweepImagesCmd removes stored files that no image record references
func sweepImagesCmd(cmd *cobra.Command, _ []string, env *environment) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return fmt.Errorf("invalid dry-run flag: %w", err)
	}
	minAge, err := cmd.Flags().GetDuration("min-age")
	if err != nil {
		return fmt.Errorf("invalid min-age flag: %w", err)
	}
	if !cmd.Flags().Changed("min-age") {
		minAge = env.cfg.Cleanup.MinAge
	}

	imageStore, err := env.imageStore(cmd.Context())
	if err != nil {
		return err
	}

	sweeper, err := app.NewOrphanSweeper(env.transactor, imageStore, minAge, env.logger, env.cfg.Images.FallbackFileName())
	if err != nil {
		return err
	}

	result, err := sweeper.Sweep(cmd.Context(), dryRun)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, name := range result.Orphans {
		fmt.Fprintln(out, name)
	}
	fmt.Fprintf(out, "scanned=%d referenced=%d protected=%d skipped=%d orphans=%d deleted=%d failed=%d dry-run=%t\n",
		result.Scanned, result.Referenced, result.Protected, result.Skipped, len(result.Orphans), result.Deleted, result.Failed, result.DryRun)
	return nil
}

// InitImageCommands registers the images command group
func InitImageCommands(rootCmd *cobra.Command) {
	var imagesCmd = &cobra.Command{
		Use:   "images",
		Short: "Maintain car model images",
	}

	var setDefaultCmd = &cobra.Command{
		Use:   "set-default <imageId> <modelId>",
		Short: "Make an image the default image of its car model",
		Args:  cobra.ExactArgs(2),
		RunE:  withEnvironment(setDefaultImageCmd),
	}
	imagesCmd.AddCommand(setDefaultCmd)

	var sweepCmd = &cobra.Command{
		Use:   "sweep",
		Short: "Delete stored image files that no image record references",
		Args:  cobra.NoArgs,
		RunE:  withEnvironment(sweepImagesCmd),
	}
	sweepCmd.Flags().Bool("dry-run", false, "Only report orphaned files")
	sweepCmd.Flags().Duration("min-age", 0, "Ignore files younger than this (defaults to cleanup.min_age)")
	imagesCmd.AddCommand(sweepCmd)

	rootCmd.AddCommand(imagesCmd)
}
