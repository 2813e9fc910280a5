// Package calendarsync converts an upstream calendar representation into
// domain.Occupation values and, at the other end of a scheduling run,
// turns accepted placed blocks into write requests for that calendar.
//
// The OAuth/ICS fetch that produces an ICSEvent, and the network write
// that would actually create a calendar event, are explicit Non-goals of
// this repository. Everything here is pure data shaping.
package calendarsync

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/scheduler"
)

// ICSEvent is the shape an upstream ICS/OAuth calendar fetch is expected to
// hand this package. This repo does not implement that fetch; it only
// consumes values already in this shape.
type ICSEvent struct {
	UID         string
	Summary     string
	Start       time.Time
	End         time.Time
	Location    string
	Categories  []string
	Transparent bool // "free" events carry no busy time
}

// ToOccupation converts a single ICSEvent into a domain.Occupation. A
// transparent ("free") event, or one with End <= Start, converts to a
// zero-value occupation with ok=false: these are the caller's responsibility
// to reject before ever reaching generate_schedule.
func ToOccupation(ev ICSEvent) (domain.Occupation, bool) {
	if ev.Transparent || !ev.End.After(ev.Start) {
		return domain.Occupation{}, false
	}
	occ := domain.Occupation{
		ID:       ev.UID,
		Title:    ev.Summary,
		Start:    ev.Start,
		End:      ev.End,
		Location: ev.Location,
		Tags:     ev.Categories,
	}
	return occ, true
}

// ToOccupations converts a batch, dropping events that fail ToOccupation
// rather than aborting the whole ingest: the scheduler core and its
// collaborators are total over ordinary input).
func ToOccupations(events []ICSEvent) []domain.Occupation {
	occs := make([]domain.Occupation, 0, len(events))
	for _, ev := range events {
		if occ, ok := ToOccupation(ev); ok {
			occs = append(occs, occ)
		}
	}
	return occs
}

// HardBookingRequest is the write request a real calendar-export
// collaborator would send once a virtual (soft-plan) block is promoted to
// a real commitment via scheduler.ConvertToHardBookings. This repo models
// the request as a value the CLI prints; it does not perform the write
// (explicit Non-goal of this repository).
type HardBookingRequest struct {
	BlockID     string
	ItemID      string
	Summary     string
	Start       time.Time
	End         time.Time
	UpstreamUID string // set once a real write succeeds, for round-trip reconciliation
}

// BuildHardBookingRequests projects every non-virtual block in result into
// a HardBookingRequest, skipping blocks still flagged virtual: only blocks
// within the "hard booking" cut-off are real commitments.
func BuildHardBookingRequests(result scheduler.Result) []HardBookingRequest {
	reqs := make([]HardBookingRequest, 0, len(result.ScheduledBlocks))
	for _, b := range result.ScheduledBlocks {
		if b.IsVirtual {
			continue
		}
		reqs = append(reqs, HardBookingRequest{
			BlockID: b.ID,
			ItemID:  b.ItemID,
			Summary: summaryFor(b),
			Start:   b.Start,
			End:     b.End,
		})
	}
	return reqs
}

func summaryFor(b domain.PlacedBlock) string {
	if b.TotalChunks <= 1 {
		return b.Title
	}
	return fmt.Sprintf("%s (%d/%d)", b.Title, b.ChunkIndex+1, b.TotalChunks)
}

// String renders a HardBookingRequest the way the CLI prints a pending
// calendar write for operator confirmation.
func (r HardBookingRequest) String() string {
	return fmt.Sprintf("%s  %s - %s  %q", r.BlockID, r.Start.Format("Mon Jan 2 15:04"), r.End.Format("15:04"), strings.TrimSpace(r.Summary))
}
