package scheduler

import (
	"math"
	"time"

	"github.com/corvidae/daywise/internal/domain"
)

// MinChunkMinutes and MaxChunkMinutes bound the size of any chunk produced
// for a split item. TargetChunkMinutes is the size the
// chunker aims for before the final remainder chunk.
const (
	MinChunkMinutes    = 30
	MaxChunkMinutes    = 120
	TargetChunkMinutes = 90
)

// Chunk is one segment of a (possibly split) item, carrying the day it
// should be attempted on first.
type Chunk struct {
	DurationMinutes int
	PreferredDay    time.Time // local midnight of the preferred day
	ChunkIndex      int
	TotalChunks     int
}

// Chunks splits item into one or more Chunks. planningStart
// is the date from which day-cursor walks begin (normally "now").
func Chunks(item domain.Item, planningStart time.Time, config domain.Config) []Chunk {
	if item.DurationMinutes <= MaxChunkMinutes || !item.CanSplit {
		preferredDay := StartOfLocalDay(planningStart)
		if item.IsRecurrenceDerived() && item.Deadline != nil {
			preferredDay = StartOfLocalDay(*item.Deadline)
		}
		return []Chunk{{
			DurationMinutes: item.DurationMinutes,
			PreferredDay:    preferredDay,
			ChunkIndex:      0,
			TotalChunks:     1,
		}}
	}

	total := item.DurationMinutes
	nChunks := int(math.Ceil(float64(total) / TargetChunkMinutes))

	deadlineOrHorizon := planningStart.AddDate(0, 0, config.PlanningHorizonDays)
	var deadlineDay *time.Time
	if item.Deadline != nil {
		deadlineOrHorizon = *item.Deadline
		d := StartOfLocalDay(*item.Deadline)
		deadlineDay = &d
	}

	daysAvailable := DaysUntil(deadlineOrHorizon, planningStart)
	if daysAvailable < 1 {
		daysAvailable = 1
	}
	chunksPerDay := int(math.Ceil(float64(nChunks) / float64(daysAvailable)))
	if chunksPerDay < 1 {
		chunksPerDay = 1
	}
	dueDateCap := total / 2

	dayCursor := StartOfLocalDay(planningStart)
	if item.IsRecurrenceDerived() && item.Deadline != nil {
		dayCursor = *deadlineDay
	}

	chunks := make([]Chunk, 0, nChunks)
	remaining := total
	emittedOnDeadlineDay := 0
	emittedToday := 0

	for remaining > 0 {
		dur := remaining
		if dur > TargetChunkMinutes {
			dur = TargetChunkMinutes
			// A tail below the minimum chunk size folds into this chunk
			// instead of being emitted on its own. With target 90 and max
			// 120 the fold can never overshoot the max.
			if remaining-dur < MinChunkMinutes {
				dur = remaining
			}
		}

		if deadlineDay != nil && SameLocalDay(dayCursor, *deadlineDay) && len(chunks) > 0 {
			if emittedOnDeadlineDay+dur > dueDateCap {
				dayCursor = dayCursor.AddDate(0, 0, -1)
				emittedToday = 0
			}
		}

		chunks = append(chunks, Chunk{
			DurationMinutes: dur,
			PreferredDay:    dayCursor,
			ChunkIndex:      len(chunks),
		})
		if deadlineDay != nil && SameLocalDay(dayCursor, *deadlineDay) {
			emittedOnDeadlineDay += dur
		}
		remaining -= dur
		emittedToday++

		if emittedToday >= chunksPerDay && remaining > 0 {
			next := dayCursor.AddDate(0, 0, 1)
			if deadlineDay != nil && next.After(*deadlineDay) {
				next = *deadlineDay
			}
			dayCursor = next
			emittedToday = 0
		}
	}

	// Tail folding can emit fewer chunks than the ceil estimate, so the
	// final count is only known here.
	for i := range chunks {
		chunks[i].TotalChunks = len(chunks)
	}

	return chunks
}
