package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/app"
	"github.com/corvidae/daywise/internal/reminder"
	"github.com/corvidae/daywise/internal/scheduler"
)

// newNotifyCmd wires the reminder package's "what's starting soon" check
// into a standalone command a cron job or login-item can poll, mirroring
// a separate notifier helper process.
func newNotifyCmd(a *App) *cobra.Command {
	var window time.Duration
	var lockfilePath string

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Print reminders for blocks starting soon",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewScheduleRequest()
			req.DryRun = true
			resp, err := a.Schedule.GenerateSchedule(cmd.Context(), req)
			if err != nil {
				return err
			}

			now := time.Now()
			result := scheduler.Result{ScheduledBlocks: resp.ScheduledBlocks, Overloaded: resp.Overloaded, Warnings: resp.Warnings}
			due := reminder.Due(result, now, window)
			if len(due) == 0 {
				return nil
			}

			if lockfilePath != "" && !reminder.SpawnGuard(lockfilePath) {
				fmt.Fprintln(cmd.OutOrStdout(), "tray helper already running, deferring to it")
				return nil
			}

			for _, b := range due {
				fmt.Fprintln(cmd.OutOrStdout(), reminder.Message(b, now))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&window, "window", 15*time.Minute, "how far ahead to look for starting blocks")
	cmd.Flags().StringVar(&lockfilePath, "lockfile", "", "tray helper lockfile to check before printing (skip check if empty)")
	return cmd
}
