package scheduler

import (
	"testing"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunks_UnsplitItemIsOneChunk(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	item := domain.Item{ID: "a", DurationMinutes: 45, CanSplit: true}
	chunks := Chunks(item, now, domain.DefaultConfig())
	require.Len(t, chunks, 1)
	assert.Equal(t, 45, chunks[0].DurationMinutes)
	assert.Equal(t, 0, chunks[0].ChunkIndex)
	assert.Equal(t, 1, chunks[0].TotalChunks)
	assert.Equal(t, StartOfLocalDay(now), chunks[0].PreferredDay)
}

func TestChunks_NotSplittableStaysOneChunkEvenIfLong(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	item := domain.Item{ID: "a", DurationMinutes: 300, CanSplit: false}
	chunks := Chunks(item, now, domain.DefaultConfig())
	require.Len(t, chunks, 1)
	assert.Equal(t, 300, chunks[0].DurationMinutes)
}

func TestChunks_RecurrenceDerivedPinsToDeadlineDay(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	deadline := mustDate(2026, 3, 12, 23, 59)
	item := domain.Item{
		ID:                 "habit-1",
		DurationMinutes:    30,
		CanSplit:           false,
		Deadline:           &deadline,
		RecurrenceParentID: "habit-template",
	}
	chunks := Chunks(item, now, domain.DefaultConfig())
	require.Len(t, chunks, 1)
	assert.Equal(t, StartOfLocalDay(deadline), chunks[0].PreferredDay)
}

func TestChunks_SplitSumsToOriginalDuration(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	deadline := mustDate(2026, 3, 11, 23, 59)
	item := domain.Item{ID: "big", DurationMinutes: 240, CanSplit: true, Deadline: &deadline}
	chunks := Chunks(item, now, domain.DefaultConfig())

	sum := 0
	for i, c := range chunks {
		assert.Equal(t, i, c.ChunkIndex)
		assert.Equal(t, len(chunks), c.TotalChunks)
		assert.GreaterOrEqual(t, c.DurationMinutes, MinChunkMinutes)
		assert.LessOrEqual(t, c.DurationMinutes, MaxChunkMinutes)
		sum += c.DurationMinutes
	}
	assert.Equal(t, 240, sum)
}

func TestChunks_AntiCrammingCapHoldsOnDeadlineDay(t *testing.T) {
	// 240 min split item, deadline Wed 23:59, now Mon 00:00.
	now := mustDate(2026, 3, 9, 0, 0) // Monday
	deadline := mustDate(2026, 3, 11, 23, 59)
	item := domain.Item{ID: "big", DurationMinutes: 240, CanSplit: true, Deadline: &deadline, PriorityTier: domain.TierCore}
	chunks := Chunks(item, now, domain.DefaultConfig())

	deadlineDay := StartOfLocalDay(deadline)
	onDeadlineDay := 0
	total := 0
	for _, c := range chunks {
		total += c.DurationMinutes
		if SameLocalDay(c.PreferredDay, deadlineDay) {
			onDeadlineDay += c.DurationMinutes
		}
	}
	assert.Equal(t, 240, total)
	assert.LessOrEqual(t, onDeadlineDay, total/2)
}

func TestChunks_NoDeadlineUsesHorizon(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	item := domain.Item{ID: "x", DurationMinutes: 200, CanSplit: true}
	cfg := domain.DefaultConfig()
	chunks := Chunks(item, now, cfg)
	require.NotEmpty(t, chunks)
	for _, c := range chunks {
		assert.False(t, c.PreferredDay.Before(StartOfLocalDay(now)))
		assert.False(t, c.PreferredDay.After(StartOfLocalDay(now.AddDate(0, 0, cfg.PlanningHorizonDays))))
	}
}

func TestChunks_SubMinimumTailFoldsIntoPreviousChunk(t *testing.T) {
	now := mustDate(2026, 3, 9, 0, 0)
	item := domain.Item{ID: "x", DurationMinutes: 200, CanSplit: true}
	chunks := Chunks(item, now, domain.DefaultConfig())

	require.Len(t, chunks, 2)
	assert.Equal(t, 90, chunks[0].DurationMinutes)
	assert.Equal(t, 110, chunks[1].DurationMinutes)
	for _, c := range chunks {
		assert.Equal(t, 2, c.TotalChunks)
		assert.GreaterOrEqual(t, c.DurationMinutes, MinChunkMinutes)
		assert.LessOrEqual(t, c.DurationMinutes, MaxChunkMinutes)
	}
}

func TestChunks_BoundConstants(t *testing.T) {
	assert.Equal(t, 30, MinChunkMinutes)
	assert.Equal(t, 120, MaxChunkMinutes)
}
