package domain

// PriorityTier is the urgency classification carried by an Item. The
// scheduler canonicalizes on this field; any legacy numeric priority a
// collaborator holds must be mapped to a PriorityTier before the item
// reaches the core.
type PriorityTier string

const (
	TierCritical PriorityTier = "critical"
	TierCore     PriorityTier = "core"
	TierBacklog  PriorityTier = "backlog"
)

// ItemStatus mirrors the lifecycle a work item can be in. Only Completed
// has core-visible behavior: completed items still flow through the
// placement engine and yield placed blocks flagged completed rather than
// being skipped.
type ItemStatus string

const (
	ItemTodo       ItemStatus = "todo"
	ItemInProgress ItemStatus = "in_progress"
	ItemCompleted  ItemStatus = "completed"
	ItemSkipped    ItemStatus = "skipped"
	ItemArchived   ItemStatus = "archived"
)

// WarningKind enumerates the non-fatal diagnostics the placement engine
// can attach to a schedule result.
type WarningKind string

const (
	WarningFamilyTimeCompromised WarningKind = "family_time_compromised"
	WarningOverloaded            WarningKind = "overloaded"
	WarningDeadlineAtRisk        WarningKind = "deadline_at_risk"
	WarningAntiCrammingViolated  WarningKind = "anti_cramming_violated"
)

// GoalStatus is the lifecycle of a Goal aggregate. The core never reads
// this; it exists for collaborators that group items by goal.
type GoalStatus string

const (
	GoalActive   GoalStatus = "active"
	GoalPaused   GoalStatus = "paused"
	GoalDone     GoalStatus = "done"
	GoalArchived GoalStatus = "archived"
)
