package app

import (
	"context"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/importer"
)

// ScheduleUseCase runs the core placement algorithm over the caller's
// current occupations, items, and goals and returns the result.
type ScheduleUseCase interface {
	GenerateSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error)
}

// ItemUseCase covers CRUD on schedulable work items.
type ItemUseCase interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	UpdateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id string) (*domain.Item, error)
	ListItems(ctx context.Context, goalID string) ([]domain.Item, error)
	DeleteItem(ctx context.Context, id string) error
}

// OccupationUseCase covers CRUD on immovable calendar occupations.
type OccupationUseCase interface {
	CreateOccupation(ctx context.Context, occ *domain.Occupation) error
	ListOccupations(ctx context.Context, from, to string) ([]domain.Occupation, error)
	DeleteOccupation(ctx context.Context, id string) error
}

// GoalUseCase covers CRUD on goal aggregates.
type GoalUseCase interface {
	CreateGoal(ctx context.Context, goal *domain.Goal) error
	ListGoals(ctx context.Context) ([]domain.Goal, error)
	GetGoal(ctx context.Context, id string) (*domain.Goal, error)
}

// ImportUseCase ingests an external item/occupation file into storage.
type ImportUseCase interface {
	ImportFile(ctx context.Context, filePath string) (*ImportResult, error)
	ImportFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

// DraftGoalUseCase asks the LLM collaborator to decompose a goal into a
// candidate set of items, which the caller reviews before persisting.
type DraftGoalUseCase interface {
	DraftItemsForGoal(ctx context.Context, goal domain.Goal, notes string) ([]domain.Item, error)
}
