package domain

import "time"

// Interval is a half-open [Start, End) span. It backs both Occupations'
// busy regions and the synthesiser's free intervals.
type Interval struct {
	Start time.Time
	End   time.Time
}

// DurationMinutes returns the interval's length in whole minutes.
func (iv Interval) DurationMinutes() int {
	return int(iv.End.Sub(iv.Start).Minutes())
}

// Empty reports whether the interval has non-positive length.
func (iv Interval) Empty() bool {
	return !iv.End.After(iv.Start)
}
