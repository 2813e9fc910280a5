// Package cli wires the daywise command tree against the app use-case
// interfaces. Commands receive an App struct of interfaces and never
// construct concrete services themselves.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/corvidae/daywise/internal/app"
)

// App holds every use case a command may need. cmd/daywise/main.go is
// responsible for constructing the concrete implementations and wiring
// them in; commands only ever see the interfaces.
type App struct {
	Schedule    app.ScheduleUseCase
	Items       app.ItemUseCase
	Occupations app.OccupationUseCase
	Goals       app.GoalUseCase
	Import      app.ImportUseCase
	Draft       app.DraftGoalUseCase // nil when LLM features are disabled
}

// NewRootCmd builds the top-level "daywise" command and registers every
// subcommand against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "daywise",
		Short: "Deterministic personal auto-scheduler",
		Long: "daywise places schedulable work items into free calendar time " +
			"around your immovable occupations, honoring deadlines, priority, " +
			"and per-goal pacing.",
	}

	root.AddCommand(
		newScheduleCmd(a),
		newItemCmd(a),
		newOccupationCmd(a),
		newGoalCmd(a),
		newImportCmd(a),
		newSyncCmd(a),
		newNotifyCmd(a),
		newConfigCmd(),
	)

	return root
}
