package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/corvidae/daywise/internal/domain"
)

// itemDraft holds the raw string fields a huh form populates before
// RunItemWizard converts them into a domain.Item.
type itemDraft struct {
	title        string
	category     string
	tier         string
	durationStr  string
	deadlineStr  string
	isAssignment bool
	canSplit     bool
}

// RunItemWizard walks the user through an interactive item-entry form.
// Returns (nil, nil) if the user aborts the form.
func RunItemWizard() (*domain.Item, error) {
	draft := itemDraft{tier: string(domain.TierCore), durationStr: "60"}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Value(&draft.title).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("title is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Category").
				Placeholder("Work, Business, Career, ...").
				Value(&draft.category),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&draft.durationStr).
				Validate(validatePositiveInt),
			huh.NewSelect[string]().
				Title("Priority tier").
				Options(
					huh.NewOption("Critical", string(domain.TierCritical)),
					huh.NewOption("Core", string(domain.TierCore)),
					huh.NewOption("Backlog", string(domain.TierBacklog)),
				).
				Value(&draft.tier),
			huh.NewInput().
				Title("Deadline (YYYY-MM-DD, blank for none)").
				Value(&draft.deadlineStr).
				Validate(validateOptionalDate),
			huh.NewConfirm().
				Title("Is this an assignment (eligible for the Family-Time override)?").
				Value(&draft.isAssignment),
			huh.NewConfirm().
				Title("Can this be split across multiple sessions?").
				Value(&draft.canSplit),
		),
	).WithTheme(huhTheme())

	if err := form.Run(); err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil
		}
		return nil, err
	}

	duration, _ := strconv.Atoi(draft.durationStr)
	item := &domain.Item{
		Title:           draft.title,
		Category:        draft.category,
		DurationMinutes: duration,
		PriorityTier:    domain.PriorityTier(draft.tier),
		IsAssignment:    draft.isAssignment,
		CanSplit:        draft.canSplit,
		Status:          domain.ItemTodo,
	}
	if draft.deadlineStr != "" {
		if d, err := time.ParseInLocation("2006-01-02", draft.deadlineStr, time.Local); err == nil {
			endOfDay := time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 0, 0, d.Location())
			item.Deadline = &endOfDay
		}
	}
	return item, nil
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("must be a whole number")
	}
	if n <= 0 {
		return fmt.Errorf("must be positive")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if s == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("expected YYYY-MM-DD")
	}
	return nil
}
