package domain

import "time"

// Item is a unit of schedulable work. Items are produced by upstream
// collaborators (persistence, recurrence materialization, LLM drafting);
// the core only ever reads them.
type Item struct {
	ID       string
	GoalID   string // optional; empty means ungrouped
	Category string // optional; drives the scorer's deep-work energy bonus
	Title    string

	DurationMinutes int
	Deadline        *time.Time

	PriorityTier PriorityTier
	IsAssignment bool // governs the Family-Time override
	CanSplit     bool

	DependsOn []string // item IDs that must be placed before this one

	PinnedStart *time.Time // non-nil makes this a pinned item

	Status ItemStatus

	// RecurrenceParentID is set when this item was materialized from a
	// RecurrenceTemplate (see recurrence.go). Combined with a non-nil
	// Deadline it pins the chunker's preferred day to the deadline's
	// local date, so habit instances land on their
	// intended day rather than drifting earlier.
	RecurrenceParentID string
}

// IsPinned reports whether the item carries a fixed start time.
func (it Item) IsPinned() bool {
	return it.PinnedStart != nil
}

// IsRecurrenceDerived reports whether this item was materialized from a
// recurrence template, which affects the chunker's day-pinning rule.
func (it Item) IsRecurrenceDerived() bool {
	return it.RecurrenceParentID != ""
}

// EffectiveTier returns the item's priority tier, defaulting to Core
// when the field was left zero-valued by a collaborator.
func (it Item) EffectiveTier() PriorityTier {
	if it.PriorityTier == "" {
		return TierCore
	}
	return it.PriorityTier
}

// IsDeepWorkCategory reports whether the item's category belongs to the
// set the scorer rewards during deep-work hours.
func (it Item) IsDeepWorkCategory() bool {
	switch it.Category {
	case "Business", "Work", "Career":
		return true
	default:
		return false
	}
}
