package domain

import "time"

// Goal is the aggregate an Item's GoalID optionally points to. The core
// never dereferences a Goal; it only ever sees the string ID on an Item,
// which the per-goal daily velocity cap groups by. Goals
// exist so collaborators (storage, CLI) have something to group items
// under and display velocity against.
type Goal struct {
	ID         string
	Title      string
	Category   string
	TargetDate *time.Time
	Status     GoalStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
