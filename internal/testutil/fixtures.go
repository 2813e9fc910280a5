package testutil

import (
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/google/uuid"
)

// Item options

type ItemOption func(*domain.Item)

func WithGoalID(id string) ItemOption {
	return func(it *domain.Item) { it.GoalID = id }
}

func WithCategory(category string) ItemOption {
	return func(it *domain.Item) { it.Category = category }
}

func WithDeadline(d time.Time) ItemOption {
	return func(it *domain.Item) { it.Deadline = &d }
}

func WithPinnedStart(d time.Time) ItemOption {
	return func(it *domain.Item) { it.PinnedStart = &d }
}

func WithPriorityTier(tier domain.PriorityTier) ItemOption {
	return func(it *domain.Item) { it.PriorityTier = tier }
}

func WithCanSplit(canSplit bool) ItemOption {
	return func(it *domain.Item) { it.CanSplit = canSplit }
}

func WithAssignment(isAssignment bool) ItemOption {
	return func(it *domain.Item) { it.IsAssignment = isAssignment }
}

func WithDependsOn(ids ...string) ItemOption {
	return func(it *domain.Item) { it.DependsOn = ids }
}

func WithItemStatus(status domain.ItemStatus) ItemOption {
	return func(it *domain.Item) { it.Status = status }
}

func WithRecurrenceParentID(id string) ItemOption {
	return func(it *domain.Item) { it.RecurrenceParentID = id }
}

// NewTestItem builds an Item with sane defaults: Core tier, unsplit,
// durationMinutes supplied by the caller.
func NewTestItem(title string, durationMinutes int, opts ...ItemOption) domain.Item {
	it := domain.Item{
		ID:              uuid.New().String(),
		Title:           title,
		DurationMinutes: durationMinutes,
		PriorityTier:    domain.TierCore,
		Status:          domain.ItemTodo,
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// Occupation options

type OccupationOption func(*domain.Occupation)

func WithLocation(location string) OccupationOption {
	return func(o *domain.Occupation) { o.Location = location }
}

func WithTags(tags ...string) OccupationOption {
	return func(o *domain.Occupation) { o.Tags = tags }
}

func NewTestOccupation(title string, start, end time.Time, opts ...OccupationOption) domain.Occupation {
	occ := domain.Occupation{
		ID:    uuid.New().String(),
		Title: title,
		Start: start,
		End:   end,
	}
	for _, opt := range opts {
		opt(&occ)
	}
	return occ
}

// Goal options

type GoalOption func(*domain.Goal)

func WithGoalCategory(category string) GoalOption {
	return func(g *domain.Goal) { g.Category = category }
}

func WithGoalTargetDate(d time.Time) GoalOption {
	return func(g *domain.Goal) { g.TargetDate = &d }
}

func WithGoalStatus(status domain.GoalStatus) GoalOption {
	return func(g *domain.Goal) { g.Status = status }
}

func NewTestGoal(title string, opts ...GoalOption) domain.Goal {
	now := time.Now().UTC()
	g := domain.Goal{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    domain.GoalActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}
