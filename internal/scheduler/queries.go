package scheduler

import (
	"time"

	"github.com/corvidae/daywise/internal/domain"
)

// BlocksForDay returns result's blocks whose start falls on date, ordered
// by start.
func BlocksForDay(result Result, date time.Time) []domain.PlacedBlock {
	var blocks []domain.PlacedBlock
	for _, b := range result.ScheduledBlocks {
		if SameLocalDay(b.Start, date) {
			blocks = append(blocks, b)
		}
	}
	return blocks
}

// TotalScheduledMinutes sums the duration of every block on date.
func TotalScheduledMinutes(result Result, date time.Time) int {
	total := 0
	for _, b := range BlocksForDay(result, date) {
		total += b.DurationMinutes
	}
	return total
}

// IsItemScheduled reports whether any block in result belongs to itemID.
func IsItemScheduled(result Result, itemID string) bool {
	for _, b := range result.ScheduledBlocks {
		if b.ItemID == itemID {
			return true
		}
	}
	return false
}

// RemainingDuration returns item's duration minus the sum of its placed
// blocks in result, floored at zero.
func RemainingDuration(result Result, item domain.Item) int {
	placed := 0
	for _, b := range result.ScheduledBlocks {
		if b.ItemID == item.ID {
			placed += b.DurationMinutes
		}
	}
	remaining := item.DurationMinutes - placed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ConvertToHardBookings returns a copy of result with IsVirtual cleared on
// every block whose start lies within withinDays of now — the boundary
// operation used when a soft plan is promoted to real calendar events.
func ConvertToHardBookings(result Result, now time.Time, withinDays int) Result {
	converted := Result{
		ScheduledBlocks: make([]domain.PlacedBlock, len(result.ScheduledBlocks)),
		Overloaded:      result.Overloaded,
		Warnings:        result.Warnings,
	}
	for i, b := range result.ScheduledBlocks {
		if DaysUntil(b.Start, now) <= withinDays {
			b.IsVirtual = false
		}
		converted.ScheduledBlocks[i] = b
	}
	return converted
}
