package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/cli/formatter"
	"github.com/corvidae/daywise/internal/cli/tui"
	"github.com/corvidae/daywise/internal/domain"
)

func newItemCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item",
		Short: "Manage schedulable work items",
	}
	cmd.AddCommand(
		newItemAddCmd(a),
		newItemListCmd(a),
		newItemRemoveCmd(a),
	)
	return cmd
}

func newItemAddCmd(a *App) *cobra.Command {
	var (
		title, category, goalID, tier, deadline, pinnedStart string
		duration                                              int
		isAssignment, canSplit, interactive                   bool
		dependsOn                                             []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new schedulable item",
		RunE: func(cmd *cobra.Command, args []string) error {
			var item *domain.Item

			if interactive {
				drafted, err := tui.RunItemWizard()
				if err != nil {
					return err
				}
				if drafted == nil {
					fmt.Fprintln(cmd.OutOrStdout(), "aborted")
					return nil
				}
				item = drafted
				item.GoalID = goalID
				item.DependsOn = dependsOn
			} else {
				if title == "" {
					return fmt.Errorf("--title is required (or pass --interactive)")
				}
				if duration <= 0 {
					return fmt.Errorf("--duration must be positive (or pass --interactive)")
				}
				item = &domain.Item{
					Title:           title,
					Category:        category,
					GoalID:          goalID,
					DurationMinutes: duration,
					PriorityTier:    domain.PriorityTier(tier),
					IsAssignment:    isAssignment,
					CanSplit:        canSplit,
					DependsOn:       dependsOn,
					Status:          domain.ItemTodo,
				}
				if deadline != "" {
					d, err := time.ParseInLocation("2006-01-02T15:04", deadline, time.Local)
					if err != nil {
						return fmt.Errorf("parsing deadline: %w", err)
					}
					item.Deadline = &d
				}
				if pinnedStart != "" {
					p, err := time.ParseInLocation("2006-01-02T15:04", pinnedStart, time.Local)
					if err != nil {
						return fmt.Errorf("parsing pinned-start: %w", err)
					}
					item.PinnedStart = &p
				}
			}

			if err := a.Items.CreateItem(cmd.Context(), item); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created item %s\n", item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "item title (required unless --interactive)")
	cmd.Flags().StringVar(&category, "category", "", "item category (e.g. Work, Business, Career)")
	cmd.Flags().StringVar(&goalID, "goal", "", "goal ID this item belongs to")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes (required unless --interactive)")
	cmd.Flags().StringVar(&tier, "tier", string(domain.TierCore), "priority tier: critical|core|backlog")
	cmd.Flags().StringVar(&deadline, "deadline", "", "deadline, format 2006-01-02T15:04")
	cmd.Flags().StringVar(&pinnedStart, "pinned-start", "", "fixed start time, format 2006-01-02T15:04")
	cmd.Flags().BoolVar(&isAssignment, "assignment", false, "eligible for the Family-Time override near its deadline")
	cmd.Flags().BoolVar(&canSplit, "can-split", false, "allow chunking across multiple sessions")
	cmd.Flags().StringSliceVar(&dependsOn, "depends-on", nil, "item IDs that must be placed first")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "collect the item fields through an interactive form")

	return cmd
}

func newItemListCmd(a *App) *cobra.Command {
	var goalID string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List schedulable items",
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.Items.ListItems(cmd.Context(), goalID)
			if err != nil {
				return err
			}
			headers := []string{"ID", "TITLE", "TIER", "MINUTES", "DEADLINE", "STATUS"}
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				deadline := "-"
				if it.Deadline != nil {
					deadline = it.Deadline.Format("2006-01-02 15:04")
				}
				rows = append(rows, []string{
					it.ID, it.Title, string(it.EffectiveTier()),
					fmt.Sprint(it.DurationMinutes), deadline, string(it.Status),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(headers, rows))
			return nil
		},
	}
	cmd.Flags().StringVar(&goalID, "goal", "", "restrict to items under this goal")
	return cmd
}

func newItemRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <item-id>",
		Short: "Remove a schedulable item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Items.DeleteItem(cmd.Context(), args[0])
		},
	}
}
