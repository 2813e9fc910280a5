package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/cli/formatter"
	"github.com/corvidae/daywise/internal/domain"
)

func newGoalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals that group schedulable items",
	}
	cmd.AddCommand(
		newGoalAddCmd(a),
		newGoalListCmd(a),
		newGoalDraftCmd(a),
	)
	return cmd
}

func newGoalAddCmd(a *App) *cobra.Command {
	var title, category, targetDate string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new goal",
		RunE: func(cmd *cobra.Command, args []string) error {
			goal := &domain.Goal{Title: title, Category: category}
			if targetDate != "" {
				t, err := time.ParseInLocation("2006-01-02", targetDate, time.Local)
				if err != nil {
					return fmt.Errorf("parsing target-date: %w", err)
				}
				goal.TargetDate = &t
			}
			if err := a.Goals.CreateGoal(cmd.Context(), goal); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created goal %s\n", goal.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "goal title (required)")
	cmd.Flags().StringVar(&category, "category", "", "goal category")
	cmd.Flags().StringVar(&targetDate, "target-date", "", "target date, format 2006-01-02")
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newGoalListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			goals, err := a.Goals.ListGoals(cmd.Context())
			if err != nil {
				return err
			}
			headers := []string{"ID", "TITLE", "CATEGORY", "STATUS", "TARGET"}
			rows := make([][]string, 0, len(goals))
			for _, g := range goals {
				target := "-"
				if g.TargetDate != nil {
					target = g.TargetDate.Format("2006-01-02")
				}
				rows = append(rows, []string{g.ID, g.Title, g.Category, string(g.Status), target})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(headers, rows))
			return nil
		},
	}
}

// newGoalDraftCmd asks the LLM collaborator (internal/llm) to break a goal
// description into candidate items for review; it never persists them
// directly, since LLM-based decomposition stays outside the scheduler core.
func newGoalDraftCmd(a *App) *cobra.Command {
	var goalID, notes string
	cmd := &cobra.Command{
		Use:   "draft",
		Short: "Draft candidate items for a goal via the LLM collaborator",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Draft == nil {
				return fmt.Errorf("LLM drafting is disabled (set llm_enabled in the profile)")
			}
			goal, err := a.Goals.GetGoal(cmd.Context(), goalID)
			if err != nil {
				return fmt.Errorf("loading goal: %w", err)
			}
			drafts, err := a.Draft.DraftItemsForGoal(cmd.Context(), *goal, notes)
			if err != nil {
				return fmt.Errorf("drafting items: %w", err)
			}
			headers := []string{"TITLE", "CATEGORY", "MINUTES", "TIER", "DEADLINE"}
			rows := make([][]string, 0, len(drafts))
			for _, d := range drafts {
				deadline := "-"
				if d.Deadline != nil {
					deadline = d.Deadline.Format("2006-01-02")
				}
				rows = append(rows, []string{d.Title, d.Category, fmt.Sprint(d.DurationMinutes), string(d.EffectiveTier()), deadline})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.Table(headers, rows))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("review drafts, then add the ones you want with `daywise item add`"))
			return nil
		},
	}
	cmd.Flags().StringVar(&goalID, "goal", "", "goal ID to decompose (required)")
	cmd.Flags().StringVar(&notes, "notes", "", "free-text notes to guide the decomposition")
	_ = cmd.MarkFlagRequired("goal")
	return cmd
}
