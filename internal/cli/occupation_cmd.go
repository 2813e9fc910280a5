package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/cli/formatter"
	"github.com/corvidae/daywise/internal/domain"
)

func newOccupationCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "occupation",
		Short: "Manage immovable calendar occupations",
	}
	cmd.AddCommand(
		newOccupationAddCmd(a),
		newOccupationListCmd(a),
		newOccupationRemoveCmd(a),
	)
	return cmd
}

func newOccupationAddCmd(a *App) *cobra.Command {
	var title, start, end, location string
	var tags []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an immovable occupation",
		RunE: func(cmd *cobra.Command, args []string) error {
			startT, err := time.ParseInLocation("2006-01-02T15:04", start, time.Local)
			if err != nil {
				return fmt.Errorf("parsing start: %w", err)
			}
			endT, err := time.ParseInLocation("2006-01-02T15:04", end, time.Local)
			if err != nil {
				return fmt.Errorf("parsing end: %w", err)
			}
			occ := &domain.Occupation{
				Title:    title,
				Start:    startT,
				End:      endT,
				Location: location,
				Tags:     tags,
			}
			if err := a.Occupations.CreateOccupation(cmd.Context(), occ); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created occupation %s\n", occ.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "occupation title (required)")
	cmd.Flags().StringVar(&start, "start", "", "start, format 2006-01-02T15:04 (required)")
	cmd.Flags().StringVar(&end, "end", "", "end, format 2006-01-02T15:04 (required)")
	cmd.Flags().StringVar(&location, "location", "", "location")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "context tags")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newOccupationListCmd(a *App) *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List occupations within a date range",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if from == "" {
				from = now.Format("2006-01-02")
			}
			if to == "" {
				to = now.AddDate(0, 0, 14).Format("2006-01-02")
			}
			occs, err := a.Occupations.ListOccupations(cmd.Context(), from, to)
			if err != nil {
				return err
			}
			headers := []string{"ID", "TITLE", "START", "END", "LOCATION", "TAGS"}
			rows := make([][]string, 0, len(occs))
			for _, o := range occs {
				rows = append(rows, []string{
					o.ID, o.Title,
					o.Start.Format("2006-01-02 15:04"), o.End.Format("2006-01-02 15:04"),
					o.Location, strings.Join(o.Tags, ","),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(headers, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "range start, format 2006-01-02 (default today)")
	cmd.Flags().StringVar(&to, "to", "", "range end, format 2006-01-02 (default +14d)")
	return cmd
}

func newOccupationRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <occupation-id>",
		Short: "Remove an occupation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Occupations.DeleteOccupation(cmd.Context(), args[0])
		},
	}
}
