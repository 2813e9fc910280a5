package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAtHour(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	got := AtHour(date, 17.5)
	assert.Equal(t, time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC), got)
}

func TestDecimalHour(t *testing.T) {
	tm := time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)
	assert.InDelta(t, 17.5, DecimalHour(tm), 1e-9)
}

func TestIsSundayIsFriday(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC)
	friday := time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)
	assert.True(t, IsSunday(sunday))
	assert.False(t, IsFriday(sunday))
	assert.True(t, IsFriday(friday))
	assert.False(t, IsSunday(friday))
}

func TestSameLocalDay(t *testing.T) {
	a := time.Date(2026, 3, 9, 1, 0, 0, 0, time.UTC)
	b := time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC)
	c := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.True(t, SameLocalDay(a, b))
	assert.False(t, SameLocalDay(a, c))
}

func TestDaysUntil(t *testing.T) {
	from := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		deadline time.Time
		want     int
	}{
		{"exact one day", from.Add(24 * time.Hour), 1},
		{"half day rounds up", from.Add(12 * time.Hour), 1},
		{"same instant", from, 0},
		{"past deadline negative", from.Add(-36 * time.Hour), -1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, DaysUntil(tc.deadline, from), tc.name)
	}
}
