package scheduler

import "github.com/corvidae/daywise/internal/domain"

// ScoreSlot scores how well interval fits item. Higher is
// better; the scorer only ranks already-eligible intervals, it never
// disqualifies one.
func ScoreSlot(interval domain.Interval, item domain.Item, chunkDurationMinutes int, config domain.Config) int {
	score := 100

	if item.IsDeepWorkCategory() {
		startHour := DecimalHour(interval.Start)
		if startHour >= config.DeepWorkStartHour && startHour < config.DeepWorkEndHour {
			score += 50
		}
	}

	switch item.EffectiveTier() {
	case domain.TierCritical:
		score += 40
	case domain.TierCore:
		score += 15
	}

	if interval.DurationMinutes() >= chunkDurationMinutes {
		score += 25
	}

	return score
}
