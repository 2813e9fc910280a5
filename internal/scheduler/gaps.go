package scheduler

import (
	"sort"
	"time"

	"github.com/corvidae/daywise/internal/domain"
)

// GapsInDay computes the ordered list of free intervals on date, given the
// occupations and already-placed blocks whose start falls on that date.
// Sunday always yields no gaps. Friday's workday end is
// clamped to config.FridayCloseHour regardless of DayEndHour.
func GapsInDay(date time.Time, occupations []domain.Occupation, placed []domain.PlacedBlock, config domain.Config) []domain.Interval {
	if IsSunday(date) {
		return nil
	}

	workdayStart := AtHour(date, config.DayStartHour)
	workdayEnd := AtHour(date, config.DayEndHour)
	if IsFriday(date) {
		workdayEnd = AtHour(date, config.FridayCloseHour)
	}

	type busy struct{ start, end time.Time }
	var busyIntervals []busy
	for _, occ := range occupations {
		if SameLocalDay(occ.Start, date) {
			busyIntervals = append(busyIntervals, busy{occ.Start, occ.End})
		}
	}
	for _, b := range placed {
		if SameLocalDay(b.Start, date) {
			busyIntervals = append(busyIntervals, busy{b.Start, b.End})
		}
	}

	sort.SliceStable(busyIntervals, func(i, j int) bool {
		return busyIntervals[i].start.Before(busyIntervals[j].start)
	})

	var gaps []domain.Interval
	cursor := workdayStart
	for _, b := range busyIntervals {
		if cursor.Before(b.start) {
			gap := domain.Interval{Start: cursor, End: b.start}
			if !gap.Empty() {
				gaps = append(gaps, gap)
			}
		}
		if b.end.After(cursor) {
			cursor = b.end
		}
	}
	if cursor.Before(workdayEnd) {
		gap := domain.Interval{Start: cursor, End: workdayEnd}
		if !gap.Empty() {
			gaps = append(gaps, gap)
		}
	}

	return gaps
}
