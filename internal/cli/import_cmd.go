package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import goals, items, and occupations from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.Import.ImportFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d goals, %d items, %d occupations (%d skipped)\n",
				result.GoalCount, result.ItemCount, result.OccupationCount, result.SkippedCount)
			return nil
		},
	}
}
