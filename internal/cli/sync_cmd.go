package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/app"
	"github.com/corvidae/daywise/internal/calendarsync"
	"github.com/corvidae/daywise/internal/calendarsync/tokenstore"
	"github.com/corvidae/daywise/internal/scheduler"
)

func newSyncCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Exchange data with an upstream calendar",
	}
	cmd.AddCommand(newSyncIngestCmd(a), newSyncBookCmd(a), newSyncTokenCmd())
	return cmd
}

// newSyncTokenCmd manages the OAuth refresh token a (not-yet-implemented)
// calendar connect flow would hand off to this repository, storing it in
// the OS keychain rather than on disk.
func newSyncTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored calendar refresh token",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <account> <token>",
			Short: "Store a refresh token for account",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return tokenstore.Set(args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "rm <account>",
			Short: "Remove the stored refresh token for account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return tokenstore.Delete(args[0])
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Report whether the OS keyring backend is reachable",
			RunE: func(cmd *cobra.Command, args []string) error {
				if tokenstore.Available() {
					fmt.Fprintln(cmd.OutOrStdout(), "keyring available")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "keyring unavailable")
				}
				return nil
			},
		},
	)

	return cmd
}

// newSyncIngestCmd reads a JSON array of calendarsync.ICSEvent values (the
// shape an OAuth/ICS fetcher is expected to hand this repo; the fetch
// itself is out of scope here) and records each as an occupation.
func newSyncIngestCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ingest <events.json>",
		Short: "Convert upstream calendar events into occupations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading events file: %w", err)
			}
			var events []calendarsync.ICSEvent
			if err := json.Unmarshal(data, &events); err != nil {
				return fmt.Errorf("parsing events file: %w", err)
			}
			occs := calendarsync.ToOccupations(events)
			skipped := len(events) - len(occs)
			for _, occ := range occs {
				if err := a.Occupations.CreateOccupation(cmd.Context(), &occ); err != nil {
					return fmt.Errorf("recording occupation %s: %w", occ.Title, err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ingested %d occupations (%d transparent/invalid events skipped)\n", len(occs), skipped)
			return nil
		},
	}
}

// newSyncBookCmd runs a dry-run schedule and prints the hard-booking write
// requests a real calendar-export collaborator would send for every block
// that has crossed from a soft plan into a real commitment.
func newSyncBookCmd(a *App) *cobra.Command {
	var withinDays int
	cmd := &cobra.Command{
		Use:   "book",
		Short: "List the placed blocks due to become real calendar bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewScheduleRequest()
			req.DryRun = true
			resp, err := a.Schedule.GenerateSchedule(cmd.Context(), req)
			if err != nil {
				return err
			}
			now := time.Now()
			result := scheduler.Result{ScheduledBlocks: resp.ScheduledBlocks, Overloaded: resp.Overloaded, Warnings: resp.Warnings}
			converted := scheduler.ConvertToHardBookings(result, now, withinDays)
			reqs := calendarsync.BuildHardBookingRequests(converted)
			if len(reqs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to book")
				return nil
			}
			for _, r := range reqs {
				fmt.Fprintln(cmd.OutOrStdout(), r.String())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&withinDays, "within-days", 1, "promote blocks starting within this many days to hard bookings")
	return cmd
}
