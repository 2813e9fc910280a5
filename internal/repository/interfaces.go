package repository

import (
	"context"

	"github.com/corvidae/daywise/internal/domain"
)

// ItemRepo persists schedulable work items.
type ItemRepo interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	ListByGoal(ctx context.Context, goalID string) ([]*domain.Item, error)
	ListSchedulable(ctx context.Context, includeArchived bool) ([]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id string) error
}

// GoalRepo persists goal aggregates.
type GoalRepo interface {
	Create(ctx context.Context, goal *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Goal, error)
	Update(ctx context.Context, goal *domain.Goal) error
	Delete(ctx context.Context, id string) error
}

// OccupationRepo persists immovable calendar occupations, typically cached
// from an upstream calendar sync (internal/calendarsync).
type OccupationRepo interface {
	Create(ctx context.Context, occ *domain.Occupation) error
	ListBetween(ctx context.Context, from, to string) ([]*domain.Occupation, error)
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, occupations []*domain.Occupation) error
}

// PlacedBlockRepo persists the output of the most recent generate_schedule
// run, so a re-run can be diffed against it and the CLI can render history.
type PlacedBlockRepo interface {
	ReplaceAll(ctx context.Context, blocks []domain.PlacedBlock) error
	ListBetween(ctx context.Context, from, to string) ([]domain.PlacedBlock, error)
}

// DependencyRepo tracks item-to-item DependsOn edges independent of the
// items table.
type DependencyRepo interface {
	Create(ctx context.Context, itemID, dependsOnID string) error
	Delete(ctx context.Context, itemID, dependsOnID string) error
	ListDependencies(ctx context.Context, itemID string) ([]string, error)
}
