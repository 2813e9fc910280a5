package scheduler

import (
	"sort"
	"time"

	"github.com/corvidae/daywise/internal/domain"
)

// TaskScore computes item's scheduling urgency relative to now.
// Higher sorts first.
func TaskScore(item domain.Item, now time.Time) float64 {
	var score float64

	switch item.EffectiveTier() {
	case domain.TierCritical:
		score += 3000
	case domain.TierCore:
		score += 1000
	}

	if item.Deadline == nil {
		score -= 100
	} else {
		d := DaysUntil(*item.Deadline, now)
		switch {
		case d <= 0:
			score += 500
		case d <= 3:
			score += 300
		case d <= 7:
			score += 100
		}
		score -= float64(d)
	}

	score -= float64(item.DurationMinutes) / 10.0

	return score
}

// PrioritizeItems returns a stable, deterministic descending order of items
// by TaskScore, with item ID as the tiebreaker.
func PrioritizeItems(items []domain.Item, now time.Time) []domain.Item {
	ordered := make([]domain.Item, len(items))
	copy(ordered, items)

	sort.SliceStable(ordered, func(i, j int) bool {
		si, sj := TaskScore(ordered[i], now), TaskScore(ordered[j], now)
		if si != sj {
			return si > sj
		}
		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}
