package app

import (
	"context"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/obslog"
	"github.com/corvidae/daywise/internal/repository"
	"github.com/corvidae/daywise/internal/scheduler"
)

// scheduleService is the concrete ScheduleUseCase: it gathers the current
// occupations and schedulable items from storage, attaches each item's
// dependency edges, and hands everything to the pure core. It is the one
// place in the repository permitted to read the wall clock on the
// scheduler's behalf, threading a single now value through the entry point.
type scheduleService struct {
	items       repository.ItemRepo
	occupations repository.OccupationRepo
	deps        repository.DependencyRepo
	blocks      repository.PlacedBlockRepo
	config      domain.Config
	observer    obslog.UseCaseObserver
	nowFunc     func() time.Time
}

// NewScheduleService builds the ScheduleUseCase. config is the scheduler
// profile's projected domain.Config; nowFunc defaults to time.Now when nil
// (tests inject a fixed clock to keep determinism checks meaningful).
func NewScheduleService(
	items repository.ItemRepo,
	occupations repository.OccupationRepo,
	deps repository.DependencyRepo,
	blocks repository.PlacedBlockRepo,
	config domain.Config,
	observer obslog.UseCaseObserver,
	nowFunc func() time.Time,
) ScheduleUseCase {
	if observer == nil {
		observer = obslog.NoopUseCaseObserver{}
	}
	if nowFunc == nil {
		nowFunc = time.Now
	}
	return &scheduleService{
		items:       items,
		occupations: occupations,
		deps:        deps,
		blocks:      blocks,
		config:      config,
		observer:    observer,
		nowFunc:     nowFunc,
	}
}

var _ ScheduleUseCase = (*scheduleService)(nil)

func (s *scheduleService) GenerateSchedule(ctx context.Context, req ScheduleRequest) (*ScheduleResponse, error) {
	started := time.Now()
	now := s.nowFunc()
	if req.Now != nil {
		now = *req.Now
	}

	occs, err := s.loadOccupations(ctx, now)
	if err != nil {
		s.observe(ctx, started, false, err, nil)
		return nil, &ScheduleError{Code: ScheduleErrInternalError, Message: err.Error()}
	}

	items, err := s.loadItems(ctx, req)
	if err != nil {
		s.observe(ctx, started, false, err, nil)
		return nil, &ScheduleError{Code: ScheduleErrInternalError, Message: err.Error()}
	}
	if len(items) == 0 {
		err := &ScheduleError{Code: ScheduleErrNoItems, Message: "no schedulable items found"}
		s.observe(ctx, started, false, err, nil)
		return nil, err
	}

	result := scheduler.GenerateSchedule(now, occs, items, s.config)
	resp := NewScheduleResponse(now, result)

	if !req.DryRun && s.blocks != nil {
		if err := s.blocks.ReplaceAll(ctx, result.ScheduledBlocks); err != nil {
			s.observe(ctx, started, false, err, map[string]any{"items": len(items)})
			return nil, &ScheduleError{Code: ScheduleErrInternalError, Message: err.Error()}
		}
	}

	s.observe(ctx, started, true, nil, map[string]any{
		"items":     len(items),
		"blocks":    len(result.ScheduledBlocks),
		"overload":  len(result.Overloaded),
		"warnings":  len(result.Warnings),
		"dry_run":   req.DryRun,
		"scope_len": len(req.ProjectScope),
	})
	return resp, nil
}

func (s *scheduleService) loadOccupations(ctx context.Context, now time.Time) ([]domain.Occupation, error) {
	from := now.AddDate(0, 0, -1).Format("2006-01-02")
	to := now.AddDate(0, 0, s.config.PlanningHorizonDays+1).Format("2006-01-02")
	stored, err := s.occupations.ListBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}
	occs := make([]domain.Occupation, 0, len(stored))
	for _, o := range stored {
		if o != nil && o.Valid() {
			occs = append(occs, *o)
		}
	}
	return occs, nil
}

func (s *scheduleService) loadItems(ctx context.Context, req ScheduleRequest) ([]domain.Item, error) {
	stored, err := s.items.ListSchedulable(ctx, req.IncludeArchived)
	if err != nil {
		return nil, err
	}

	scopeSet := map[string]bool{}
	for _, g := range req.ProjectScope {
		scopeSet[g] = true
	}

	items := make([]domain.Item, 0, len(stored))
	for _, it := range stored {
		if it == nil || it.DurationMinutes <= 0 {
			continue
		}
		if len(scopeSet) > 0 && !scopeSet[it.GoalID] {
			continue
		}
		item := *it
		if s.deps != nil {
			deps, err := s.deps.ListDependencies(ctx, item.ID)
			if err == nil {
				item.DependsOn = deps
			}
		}
		items = append(items, item)
	}
	return items, nil
}

func (s *scheduleService) observe(ctx context.Context, started time.Time, success bool, err error, fields map[string]any) {
	s.observer.ObserveUseCase(ctx, obslog.UseCaseEvent{
		Name:      "generate_schedule",
		Duration:  time.Since(started),
		Success:   success,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}
