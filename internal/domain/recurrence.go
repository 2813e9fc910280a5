package domain

import "time"

// RecurrenceCadence identifies how often a RecurrenceTemplate fires.
type RecurrenceCadence string

const (
	CadenceDaily  RecurrenceCadence = "daily"
	CadenceWeekly RecurrenceCadence = "weekly"
	CadenceCustom RecurrenceCadence = "custom"
)

// RecurrenceTemplate is the materialization source for habit-derived
// items. The scheduler never sees a RecurrenceTemplate directly, only
// the ordinary Items that Materialize produces from it.
type RecurrenceTemplate struct {
	ID              string
	Title           string
	Cadence         RecurrenceCadence
	DurationMinutes int
	Category        string
	GoalID          string
	PriorityTier    PriorityTier
	CanSplit        bool
}

// Materialize produces one schedulable Item for a single occurrence of
// the template on the given local date. The occurrence's deadline is
// stamped to end-of-day on that date: it is the one field the chunker's
// day-pinning rule inspects to keep recurrence-
// derived items, such as daily habits, landing on their intended day
// instead of drifting earlier under the horizon-wide chunker.
func (t RecurrenceTemplate) Materialize(occurrence time.Time) Item {
	deadline := endOfLocalDay(occurrence)
	return Item{
		ID:                 t.ID + "@" + occurrence.Format("2006-01-02"),
		GoalID:             t.GoalID,
		Category:           t.Category,
		Title:              t.Title,
		DurationMinutes:    t.DurationMinutes,
		Deadline:           &deadline,
		PriorityTier:       t.PriorityTier,
		CanSplit:           t.CanSplit,
		Status:             ItemTodo,
		RecurrenceParentID: t.ID,
	}
}

func endOfLocalDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, t.Location())
}
