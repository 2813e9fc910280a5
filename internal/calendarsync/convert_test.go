package calendarsync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/scheduler"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tm, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return tm
}

func TestToOccupation_ConvertsOrdinaryEvent(t *testing.T) {
	ev := ICSEvent{
		UID:        "evt-1",
		Summary:    "Dentist",
		Start:      mustTime(t, "2026-03-09T09:00:00Z"),
		End:        mustTime(t, "2026-03-09T09:30:00Z"),
		Location:   "Main St",
		Categories: []string{"health"},
	}

	occ, ok := ToOccupation(ev)
	require.True(t, ok)
	assert.Equal(t, "evt-1", occ.ID)
	assert.Equal(t, "Dentist", occ.Title)
	assert.Equal(t, []string{"health"}, occ.Tags)
}

func TestToOccupation_RejectsTransparentAndInverted(t *testing.T) {
	start := mustTime(t, "2026-03-09T09:00:00Z")
	end := mustTime(t, "2026-03-09T09:30:00Z")

	_, ok := ToOccupation(ICSEvent{UID: "free", Start: start, End: end, Transparent: true})
	assert.False(t, ok)

	_, ok = ToOccupation(ICSEvent{UID: "inverted", Start: end, End: start})
	assert.False(t, ok)

	_, ok = ToOccupation(ICSEvent{UID: "zero-length", Start: start, End: start})
	assert.False(t, ok)
}

func TestToOccupations_DropsInvalidEventsRatherThanAborting(t *testing.T) {
	start := mustTime(t, "2026-03-09T09:00:00Z")
	end := mustTime(t, "2026-03-09T09:30:00Z")

	events := []ICSEvent{
		{UID: "keep-1", Start: start, End: end},
		{UID: "drop-transparent", Start: start, End: end, Transparent: true},
		{UID: "keep-2", Start: end, End: end.Add(time.Hour)},
	}

	occs := ToOccupations(events)
	require.Len(t, occs, 2)
	assert.Equal(t, "keep-1", occs[0].ID)
	assert.Equal(t, "keep-2", occs[1].ID)
}

func TestBuildHardBookingRequests_SkipsVirtualBlocks(t *testing.T) {
	start := mustTime(t, "2026-03-09T09:00:00Z")
	result := scheduler.Result{
		ScheduledBlocks: []domain.PlacedBlock{
			{ID: "b1", ItemID: "item-1", Title: "Write intro", Start: start, End: start.Add(30 * time.Minute), IsVirtual: false},
			{ID: "b2", ItemID: "item-2", Title: "Far future task", Start: start.AddDate(0, 1, 0), IsVirtual: true},
		},
	}

	reqs := BuildHardBookingRequests(result)
	require.Len(t, reqs, 1)
	assert.Equal(t, "item-1", reqs[0].ItemID)
}

func TestBuildHardBookingRequests_SummarizesSplitChunks(t *testing.T) {
	start := mustTime(t, "2026-03-09T09:00:00Z")
	result := scheduler.Result{
		ScheduledBlocks: []domain.PlacedBlock{
			{ID: "b1", ItemID: "item-1", Title: "Thesis", Start: start, End: start.Add(time.Hour), ChunkIndex: 1, TotalChunks: 3},
		},
	}

	reqs := BuildHardBookingRequests(result)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Thesis (2/3)", reqs[0].Summary)
}

func TestHardBookingRequest_String(t *testing.T) {
	start := mustTime(t, "2026-03-09T09:00:00Z")
	req := HardBookingRequest{
		BlockID: "b1",
		Summary: "Write intro",
		Start:   start,
		End:     start.Add(30 * time.Minute),
	}

	rendered := req.String()
	assert.Contains(t, rendered, "b1")
	assert.Contains(t, rendered, "Write intro")
}
