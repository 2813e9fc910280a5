package app

import (
	"context"
	"fmt"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/llm"
)

// draftGoalService is the concrete DraftGoalUseCase. The scheduler core
// never calls the LLM; this sits entirely upstream and produces ordinary
// domain.Item values that the caller reviews before CreateItem.
type draftGoalService struct {
	client llm.Client
}

func NewDraftGoalService(client llm.Client) DraftGoalUseCase {
	return &draftGoalService{client: client}
}

var _ DraftGoalUseCase = (*draftGoalService)(nil)

func (s *draftGoalService) DraftItemsForGoal(ctx context.Context, goal domain.Goal, notes string) ([]domain.Item, error) {
	if s.client == nil {
		return nil, llm.ErrDisabled
	}

	drafts, err := llm.DraftItemsForGoal(ctx, s.client, goal.Title, notes)
	if err != nil {
		return nil, fmt.Errorf("drafting items for goal %s: %w", goal.ID, err)
	}

	now := time.Now()
	items := make([]domain.Item, 0, len(drafts))
	for _, d := range drafts {
		item := domain.Item{
			GoalID:          goal.ID,
			Category:        d.Category,
			Title:           d.Title,
			DurationMinutes: d.DurationMinutes,
			PriorityTier:    mapLegacyPriority(d.PriorityTier),
			IsAssignment:    d.IsAssignment,
			CanSplit:        d.CanSplit,
			Status:          domain.ItemTodo,
		}
		if d.DeadlineOffset > 0 {
			deadline := now.AddDate(0, 0, d.DeadlineOffset)
			item.Deadline = &deadline
		}
		items = append(items, item)
	}
	return items, nil
}

// mapLegacyPriority maps the LLM's free-text priority_tier string onto the
// canonical domain.PriorityTier. The legacy free-text priority and the
// newer priority_tier enum are reconciled here, at the LLM-drafting
// boundary: the scheduler core only ever sees priority_tier.
func mapLegacyPriority(raw string) domain.PriorityTier {
	switch raw {
	case "critical":
		return domain.TierCritical
	case "backlog":
		return domain.TierBacklog
	default:
		return domain.TierCore
	}
}
