package scheduler

import (
	"math"
	"time"
)

// StartOfLocalDay truncates t to midnight in its own location. The core
// never converts timezones: every date operation stays in
// the ambient location of the time.Time it was given.
func StartOfLocalDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AtHour returns the instant on date's local day at the given decimal
// hour (e.g. 17.5 means 17:30).
func AtHour(date time.Time, hour float64) time.Time {
	day := StartOfLocalDay(date)
	minutes := int(hour * 60)
	return day.Add(time.Duration(minutes) * time.Minute)
}

// DecimalHour returns t's hour-of-day as h + m/60.
func DecimalHour(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60.0
}

// IsSunday reports whether t's local weekday is Sunday.
func IsSunday(t time.Time) bool {
	return t.Weekday() == time.Sunday
}

// IsFriday reports whether t's local weekday is Friday.
func IsFriday(t time.Time) bool {
	return t.Weekday() == time.Friday
}

// SameLocalDay reports whether a and b fall on the same local calendar date.
func SameLocalDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DaysUntil returns the ceiling of the fractional number of days between
// from and deadline. A deadline at or before from yields a value <= 0.
func DaysUntil(deadline, from time.Time) int {
	days := deadline.Sub(from).Hours() / 24
	return int(math.Ceil(days))
}
