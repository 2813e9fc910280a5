package app

import (
	"context"
	"fmt"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/obslog"
	"github.com/corvidae/daywise/internal/repository"
	"github.com/google/uuid"
)

// itemService is the concrete ItemUseCase, a thin CRUD layer over
// repository.ItemRepo plus DependsOn edge management. None of this carries
// algorithmic content: it only produces the Item values the scheduler
// core later consumes.
type itemService struct {
	items    repository.ItemRepo
	deps     repository.DependencyRepo
	observer obslog.UseCaseObserver
}

func NewItemService(items repository.ItemRepo, deps repository.DependencyRepo, observer obslog.UseCaseObserver) ItemUseCase {
	if observer == nil {
		observer = obslog.NoopUseCaseObserver{}
	}
	return &itemService{items: items, deps: deps, observer: observer}
}

var _ ItemUseCase = (*itemService)(nil)

func (s *itemService) CreateItem(ctx context.Context, item *domain.Item) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Status == "" {
		item.Status = domain.ItemTodo
	}
	if item.PriorityTier == "" {
		item.PriorityTier = domain.TierCore
	}
	if item.DurationMinutes <= 0 {
		return fmt.Errorf("item duration must be positive, got %d", item.DurationMinutes)
	}
	if err := s.items.Create(ctx, item); err != nil {
		return err
	}
	for _, dep := range item.DependsOn {
		if s.deps != nil {
			if err := s.deps.Create(ctx, item.ID, dep); err != nil {
				return fmt.Errorf("recording dependency on %s: %w", dep, err)
			}
		}
	}
	return nil
}

func (s *itemService) UpdateItem(ctx context.Context, item *domain.Item) error {
	return s.items.Update(ctx, item)
}

func (s *itemService) GetItem(ctx context.Context, id string) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.deps != nil {
		deps, err := s.deps.ListDependencies(ctx, id)
		if err == nil {
			item.DependsOn = deps
		}
	}
	return item, nil
}

func (s *itemService) ListItems(ctx context.Context, goalID string) ([]domain.Item, error) {
	var stored []*domain.Item
	var err error
	if goalID == "" {
		stored, err = s.items.ListSchedulable(ctx, true)
	} else {
		stored, err = s.items.ListByGoal(ctx, goalID)
	}
	if err != nil {
		return nil, err
	}
	items := make([]domain.Item, 0, len(stored))
	for _, it := range stored {
		if it != nil {
			items = append(items, *it)
		}
	}
	return items, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}

// goalService is the concrete GoalUseCase.
type goalService struct {
	goals repository.GoalRepo
}

func NewGoalService(goals repository.GoalRepo) GoalUseCase {
	return &goalService{goals: goals}
}

var _ GoalUseCase = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, goal *domain.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	if goal.Status == "" {
		goal.Status = domain.GoalActive
	}
	now := time.Now().UTC()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	return s.goals.Create(ctx, goal)
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	stored, err := s.goals.List(ctx, false)
	if err != nil {
		return nil, err
	}
	goals := make([]domain.Goal, 0, len(stored))
	for _, g := range stored {
		if g != nil {
			goals = append(goals, *g)
		}
	}
	return goals, nil
}

func (s *goalService) GetGoal(ctx context.Context, id string) (*domain.Goal, error) {
	return s.goals.GetByID(ctx, id)
}

// occupationService is the concrete OccupationUseCase.
type occupationService struct {
	occupations repository.OccupationRepo
}

func NewOccupationService(occupations repository.OccupationRepo) OccupationUseCase {
	return &occupationService{occupations: occupations}
}

var _ OccupationUseCase = (*occupationService)(nil)

func (s *occupationService) CreateOccupation(ctx context.Context, occ *domain.Occupation) error {
	if occ.ID == "" {
		occ.ID = uuid.NewString()
	}
	if !occ.Valid() {
		return fmt.Errorf("occupation end must be after start")
	}
	return s.occupations.Create(ctx, occ)
}

func (s *occupationService) ListOccupations(ctx context.Context, from, to string) ([]domain.Occupation, error) {
	stored, err := s.occupations.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	occs := make([]domain.Occupation, 0, len(stored))
	for _, o := range stored {
		if o != nil {
			occs = append(occs, *o)
		}
	}
	return occs, nil
}

func (s *occupationService) DeleteOccupation(ctx context.Context, id string) error {
	return s.occupations.Delete(ctx, id)
}
