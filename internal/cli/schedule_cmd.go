package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/app"
	"github.com/corvidae/daywise/internal/cli/formatter"
	"github.com/corvidae/daywise/internal/cli/tui"
)

func newScheduleCmd(a *App) *cobra.Command {
	var dryRun bool
	var includeArchived bool
	var goalScope []string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the scheduler and print the resulting plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewScheduleRequest()
			req.DryRun = dryRun
			req.IncludeArchived = includeArchived
			req.ProjectScope = goalScope

			resp, err := a.Schedule.GenerateSchedule(cmd.Context(), req)
			if err != nil {
				return fmt.Errorf("generating schedule: %w", err)
			}

			if interactive && formatter.IsTTY() {
				return tui.RunDashboard(resp)
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchedule(resp))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "do not persist the resulting blocks")
	cmd.Flags().BoolVar(&includeArchived, "include-archived", false, "include archived items")
	cmd.Flags().StringSliceVar(&goalScope, "goal", nil, "restrict scheduling to these goal IDs")
	cmd.Flags().BoolVar(&interactive, "tui", false, "open the interactive dashboard instead of printing")

	return cmd
}
