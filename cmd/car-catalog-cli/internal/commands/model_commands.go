package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MGTheTrain/car-catalog/internal/app"
	"github.com/MGTheTrain/car-catalog/internal/domain/catalog"

	"github.com/spf13/cobra"
)

// listModelsCmd prints one page of the ordered catalog
func listModelsCmd(cmd *cobra.Command, _ []string, env *environment) error {
	skip, err := cmd.Flags().GetInt("skip")
	if err != nil {
		return fmt.Errorf("invalid skip flag: %w", err)
	}
	take, err := cmd.Flags().GetInt("take")
	if err != nil {
		return fmt.Errorf("invalid take flag: %w", err)
	}

	service, err := app.NewCarModelService(env.transactor, env.cfg.Images, env.logger)
	if err != nil {
		return err
	}

	query := catalog.NewCarModelQuery()
	query.Skip = skip
	query.Take = take

	views, err := service.List(cmd.Context(), query)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SORT\tID\tCODE\tNAME\tBRAND\tCLASS\tPRICE\tACTIVE")
	for _, v := range views {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
			v.SortOrder, v.ID, v.Code, v.Name, v.BrandName, v.ClassName, v.Price.StringFixed(2), v.IsActive)
	}
	return w.Flush()
}

// reorderModelsCmd applies <id>=<position> pairs through the ordering service
func reorderModelsCmd(cmd *cobra.Command, args []string, env *environment) error {
	updates, err := parseSortOrderArgs(args)
	if err != nil {
		return err
	}

	service, err := app.NewCarModelOrderingService(env.transactor, env.logger)
	if err != nil {
		return err
	}

	if err := service.Reconcile(cmd.Context(), updates); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "updated sort order of %d car models\n", len(updates))
	return nil
}

// parseSortOrderArgs turns arguments of the form <id>=<position> into sort order updates
func parseSortOrderArgs(args []string) ([]catalog.SortOrderUpdate, error) {
	updates := make([]catalog.SortOrderUpdate, 0, len(args))
	for _, arg := range args {
		rawID, rawPosition, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid argument %q, expected <id>=<position>", arg)
		}
		modelID, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid model id in %q: %w", arg, err)
		}
		position, err := strconv.Atoi(strings.TrimSpace(rawPosition))
		if err != nil {
			return nil, fmt.Errorf("invalid position in %q: %w", arg, err)
		}
		updates = append(updates, catalog.SortOrderUpdate{ModelID: modelID, SortOrder: position})
	}
	return updates, nil
}

// InitModelCommands registers the models command group
func InitModelCommands(rootCmd *cobra.Command) {
	var modelsCmd = &cobra.Command{
		Use:   "models",
		Short: "Inspect and reorder car models",
	}

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List car models in display order",
		Args:  cobra.NoArgs,
		RunE:  withEnvironment(listModelsCmd),
	}
	listCmd.Flags().Int("skip", 0, "Number of models to skip")
	listCmd.Flags().Int("take", catalog.DefaultTake, "Number of models to print (1-100)")
	modelsCmd.AddCommand(listCmd)

	var reorderCmd = &cobra.Command{
		Use:     "reorder <id>=<position>...",
		Short:   "Move car models to new positions and renumber the rest",
		Example: "car-catalog-cli models reorder 4=1 2=2",
		Args:    cobra.MinimumNArgs(1),
		RunE:    withEnvironment(reorderModelsCmd),
	}
	modelsCmd.AddCommand(reorderCmd)

	rootCmd.AddCommand(modelsCmd)
}
