package scheduler

import (
	"testing"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig() domain.Config {
	return domain.DefaultConfig()
}

// Scenario 1: busy student/father.
func TestGenerateSchedule_BusyStudentFather(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0) // Monday
	cfg := defaultTestConfig()

	occupations := []domain.Occupation{
		{ID: "class", Start: mustDate(2026, 3, 9, 10, 0), End: mustDate(2026, 3, 9, 12, 0)},
		{ID: "family", Start: mustDate(2026, 3, 9, 17, 30), End: mustDate(2026, 3, 9, 19, 30)},
	}

	deadlineA := mustDate(2026, 3, 10, 23, 59)
	deadlineB := mustDate(2026, 3, 9, 23, 59)
	items := []domain.Item{
		{ID: "A", Title: "Deep project", DurationMinutes: 240, PriorityTier: domain.TierCritical, CanSplit: true, Deadline: &deadlineA},
		{ID: "B", Title: "Buy diapers", DurationMinutes: 30, PriorityTier: domain.TierCore, CanSplit: false, Deadline: &deadlineB},
	}

	result := GenerateSchedule(now, occupations, items, cfg)

	var aBlocks, bBlocks []domain.PlacedBlock
	for _, b := range result.ScheduledBlocks {
		switch b.ItemID {
		case "A":
			aBlocks = append(aBlocks, b)
		case "B":
			bBlocks = append(bBlocks, b)
		}
	}

	require.GreaterOrEqual(t, len(aBlocks), 2)
	sum := 0
	for _, b := range aBlocks {
		assert.GreaterOrEqual(t, b.DurationMinutes, 60)
		assert.LessOrEqual(t, b.DurationMinutes, 120)
		sum += b.DurationMinutes
		assertNoOverlap(t, b, occupations)
	}
	assert.Equal(t, 240, sum)

	require.Len(t, bBlocks, 1)
	assert.Equal(t, 30, bBlocks[0].DurationMinutes)

	for _, b := range result.ScheduledBlocks {
		assert.Less(t, DecimalHour(b.Start), 17.5)
	}
}

func assertNoOverlap(t *testing.T, b domain.PlacedBlock, occupations []domain.Occupation) {
	t.Helper()
	for _, occ := range occupations {
		overlap := b.Start.Before(occ.End) && occ.Start.Before(b.End)
		assert.False(t, overlap, "block %s overlaps occupation %s", b.ID, occ.ID)
	}
}

// Scenario 2: Sunday block.
func TestGenerateSchedule_NeverPlacesOnSunday(t *testing.T) {
	now := mustDate(2026, 3, 7, 0, 0) // Saturday
	cfg := defaultTestConfig()
	items := []domain.Item{
		{ID: "x", Title: "chore", DurationMinutes: 60, PriorityTier: domain.TierCore, CanSplit: false},
	}
	result := GenerateSchedule(now, nil, items, cfg)
	require.NotEmpty(t, result.ScheduledBlocks)
	for _, b := range result.ScheduledBlocks {
		assert.NotEqual(t, time.Sunday, b.Start.Weekday())
	}
}

// Scenario 3: Family-Time override.
func TestGenerateSchedule_FamilyTimeOverride(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0) // Monday
	cfg := defaultTestConfig()
	deadline := mustDate(2026, 3, 9, 23, 59)
	occupations := []domain.Occupation{
		{ID: "full-day", Start: mustDate(2026, 3, 9, 8, 0), End: mustDate(2026, 3, 9, 17, 30)},
	}
	items := []domain.Item{
		{ID: "assign", Title: "Homework", DurationMinutes: 60, PriorityTier: domain.TierCore, IsAssignment: true, Deadline: &deadline},
	}
	result := GenerateSchedule(now, occupations, items, cfg)

	require.Len(t, result.ScheduledBlocks, 1)
	block := result.ScheduledBlocks[0]
	assert.True(t, DecimalHour(block.Start) >= 17.5)
	assert.True(t, DecimalHour(block.End) <= 22)

	found := false
	for _, w := range result.Warnings {
		if w.Kind == domain.WarningFamilyTimeCompromised && w.ItemID == "assign" {
			found = true
		}
	}
	assert.True(t, found, "expected FamilyTimeCompromised warning")
}

// Scenario 4: overload.
func TestGenerateSchedule_Overload(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0) // Monday
	cfg := defaultTestConfig()
	cfg.PlanningHorizonDays = 1

	items := make([]domain.Item, 0, 20)
	for i := 0; i < 20; i++ {
		items = append(items, domain.Item{
			ID:              itemID(i),
			Title:           "task",
			DurationMinutes: 180,
			PriorityTier:    domain.TierCore,
			CanSplit:        false,
		})
	}
	result := GenerateSchedule(now, nil, items, cfg)

	require.NotEmpty(t, result.Overloaded)
	placedItemIDs := map[string]bool{}
	for _, b := range result.ScheduledBlocks {
		placedItemIDs[b.ItemID] = true
	}
	for _, id := range result.Overloaded {
		assert.False(t, placedItemIDs[id], "overloaded item %s must have no blocks", id)
	}
	for _, id := range result.Overloaded {
		found := false
		for _, w := range result.Warnings {
			if w.Kind == domain.WarningOverloaded && w.ItemID == id {
				found = true
			}
		}
		assert.True(t, found)
	}
}

func itemID(i int) string {
	letters := "abcdefghijklmnopqrstuvwxyz"
	return "item-" + string(letters[i%26]) + string(letters[(i/26)%26])
}

// Scenario 5: pinning and dependency.
func TestGenerateSchedule_PinningAndDependency(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0) // Monday
	cfg := defaultTestConfig()
	pinnedStart := mustDate(2026, 3, 10, 10, 0) // Tuesday 10:00

	items := []domain.Item{
		{ID: "X", Title: "pinned", DurationMinutes: 60, PriorityTier: domain.TierCore, PinnedStart: &pinnedStart},
		{ID: "Y", Title: "depends on X", DurationMinutes: 30, PriorityTier: domain.TierCore, DependsOn: []string{"X"}},
	}
	result := GenerateSchedule(now, nil, items, cfg)

	var xBlock, yBlock *domain.PlacedBlock
	for i := range result.ScheduledBlocks {
		b := &result.ScheduledBlocks[i]
		if b.ItemID == "X" {
			xBlock = b
		}
		if b.ItemID == "Y" {
			yBlock = b
		}
	}
	require.NotNil(t, xBlock)
	assert.True(t, xBlock.Start.Equal(pinnedStart))

	require.NotNil(t, yBlock)
	assert.False(t, yBlock.Start.Before(xBlock.End))
}

// Scenario 5b: dependency not yet placed means the dependent never appears.
func TestGenerateSchedule_UnplacedDependencySkipsDependent(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	cfg := defaultTestConfig()
	items := []domain.Item{
		{ID: "Y", Title: "depends on ghost", DurationMinutes: 30, PriorityTier: domain.TierCore, DependsOn: []string{"ghost"}},
	}
	result := GenerateSchedule(now, nil, items, cfg)
	assert.Empty(t, result.ScheduledBlocks)
	assert.NotContains(t, result.Overloaded, "Y")
}

// Scenario 6: anti-cramming cap holds.
func TestGenerateSchedule_AntiCrammingCapHolds(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0) // Monday
	cfg := defaultTestConfig()
	deadline := mustDate(2026, 3, 11, 23, 59) // Wednesday

	items := []domain.Item{
		{ID: "big", Title: "Project", DurationMinutes: 240, PriorityTier: domain.TierCore, CanSplit: true, Deadline: &deadline},
	}
	result := GenerateSchedule(now, nil, items, cfg)

	wednesdayTotal := 0
	for _, b := range result.ScheduledBlocks {
		if SameLocalDay(b.Start, deadline) {
			wednesdayTotal += b.DurationMinutes
		}
	}
	assert.LessOrEqual(t, wednesdayTotal, 120)

	for _, w := range result.Warnings {
		assert.NotEqual(t, domain.WarningAntiCrammingViolated, w.Kind)
	}
}

func TestGenerateSchedule_Determinism(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	cfg := defaultTestConfig()
	deadline := mustDate(2026, 3, 12, 23, 59)
	occupations := []domain.Occupation{
		{ID: "c1", Start: mustDate(2026, 3, 9, 10, 0), End: mustDate(2026, 3, 9, 11, 0)},
	}
	items := []domain.Item{
		{ID: "a", DurationMinutes: 240, PriorityTier: domain.TierCritical, CanSplit: true, Deadline: &deadline, GoalID: "g1"},
		{ID: "b", DurationMinutes: 60, PriorityTier: domain.TierCore, GoalID: "g1"},
		{ID: "c", DurationMinutes: 45, PriorityTier: domain.TierBacklog},
	}

	first := GenerateSchedule(now, occupations, items, cfg)
	second := GenerateSchedule(now, occupations, items, cfg)

	require.Equal(t, len(first.ScheduledBlocks), len(second.ScheduledBlocks))
	for i := range first.ScheduledBlocks {
		assert.Equal(t, first.ScheduledBlocks[i].ID, second.ScheduledBlocks[i].ID)
		assert.True(t, first.ScheduledBlocks[i].Start.Equal(second.ScheduledBlocks[i].Start))
	}
	assert.Equal(t, first.Overloaded, second.Overloaded)
}

func TestGenerateSchedule_VelocityCap(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	cfg := defaultTestConfig()
	cfg.MaxItemsPerGoalPerDay = 1

	items := []domain.Item{
		{ID: "a", DurationMinutes: 30, PriorityTier: domain.TierCore, GoalID: "g1"},
		{ID: "b", DurationMinutes: 30, PriorityTier: domain.TierCore, GoalID: "g1"},
	}
	result := GenerateSchedule(now, nil, items, cfg)

	perDayGoal := map[string]int{}
	for _, b := range result.ScheduledBlocks {
		key := StartOfLocalDay(b.Start).Format("2006-01-02")
		perDayGoal[key]++
	}
	for _, count := range perDayGoal {
		assert.LessOrEqual(t, count, 1)
	}
}

func TestGenerateSchedule_IdempotentRoundTrip(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	cfg := defaultTestConfig()
	items := []domain.Item{
		{ID: "a", DurationMinutes: 60, PriorityTier: domain.TierCore},
		{ID: "b", DurationMinutes: 90, PriorityTier: domain.TierCritical},
	}
	first := GenerateSchedule(now, nil, items, cfg)

	asOccupations := make([]domain.Occupation, 0, len(first.ScheduledBlocks))
	for _, b := range first.ScheduledBlocks {
		asOccupations = append(asOccupations, domain.Occupation{ID: b.ID, Start: b.Start, End: b.End})
	}

	second := GenerateSchedule(now, asOccupations, nil, cfg)
	assert.Empty(t, second.ScheduledBlocks)
}

func TestGenerateSchedule_VirtualityCutoff(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	cfg := defaultTestConfig()
	cfg.PlanningHorizonDays = 7
	items := []domain.Item{
		{ID: "a", DurationMinutes: 30, PriorityTier: domain.TierCore},
	}
	result := GenerateSchedule(now, nil, items, cfg)
	require.NotEmpty(t, result.ScheduledBlocks)
	for _, b := range result.ScheduledBlocks {
		expected := DaysUntil(b.Start, now) > cfg.PlanningHorizonDays
		assert.Equal(t, expected, b.IsVirtual)
	}
}

func TestGenerateSchedule_CompletedItemStillYieldsBlock(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	cfg := defaultTestConfig()
	items := []domain.Item{
		{ID: "done", DurationMinutes: 30, PriorityTier: domain.TierCore, Status: domain.ItemCompleted},
	}
	result := GenerateSchedule(now, nil, items, cfg)
	require.Len(t, result.ScheduledBlocks, 1)
	assert.True(t, result.ScheduledBlocks[0].IsCompleted)
}
