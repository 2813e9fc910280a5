package scheduler

import (
	"testing"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTaskScore_TierWeighting(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	critical := domain.Item{PriorityTier: domain.TierCritical, DurationMinutes: 60}
	core := domain.Item{PriorityTier: domain.TierCore, DurationMinutes: 60}
	backlog := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 60}
	assert.Greater(t, TaskScore(critical, now), TaskScore(core, now))
	assert.Greater(t, TaskScore(core, now), TaskScore(backlog, now))
}

func TestTaskScore_NoDeadlinePenalty(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	deadline := now.AddDate(0, 0, 30)
	withDeadline := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 60, Deadline: &deadline}
	withoutDeadline := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 60}
	assert.Greater(t, TaskScore(withDeadline, now), TaskScore(withoutDeadline, now))
}

func TestTaskScore_UrgencyIncreasesAsDeadlineApproaches(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	soon := now.AddDate(0, 0, 1)
	later := now.AddDate(0, 0, 20)
	itemSoon := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 60, Deadline: &soon}
	itemLater := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 60, Deadline: &later}
	assert.Greater(t, TaskScore(itemSoon, now), TaskScore(itemLater, now))
}

func TestTaskScore_DurationPenalty(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	short := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 30}
	long := domain.Item{PriorityTier: domain.TierBacklog, DurationMinutes: 300}
	assert.Greater(t, TaskScore(short, now), TaskScore(long, now))
}

func TestPrioritizeItems_StableLexicographicTiebreak(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	items := []domain.Item{
		{ID: "zebra", PriorityTier: domain.TierCore, DurationMinutes: 60},
		{ID: "apple", PriorityTier: domain.TierCore, DurationMinutes: 60},
		{ID: "mango", PriorityTier: domain.TierCore, DurationMinutes: 60},
	}
	ordered := PrioritizeItems(items, now)
	assert.Equal(t, []string{"apple", "mango", "zebra"}, []string{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

func TestPrioritizeItems_DeterministicAcrossRuns(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	deadline := now.AddDate(0, 0, 2)
	items := []domain.Item{
		{ID: "b", PriorityTier: domain.TierBacklog, DurationMinutes: 30},
		{ID: "a", PriorityTier: domain.TierCritical, DurationMinutes: 90, Deadline: &deadline},
		{ID: "c", PriorityTier: domain.TierCore, DurationMinutes: 45},
	}
	first := PrioritizeItems(items, now)
	second := PrioritizeItems(items, now)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	assert.Equal(t, "a", first[0].ID)
}

func TestPrioritizeItems_DoesNotMutateInput(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	items := []domain.Item{
		{ID: "z", PriorityTier: domain.TierBacklog},
		{ID: "a", PriorityTier: domain.TierCritical},
	}
	_ = PrioritizeItems(items, now)
	assert.Equal(t, "z", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}
