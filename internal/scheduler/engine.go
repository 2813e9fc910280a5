package scheduler

import (
	"fmt"
	"sort"
	"time"

	"github.com/corvidae/daywise/internal/domain"
)

// Result is the output of GenerateSchedule: every placed block, the items
// that could not be fully placed, and non-fatal diagnostics.
type Result struct {
	ScheduledBlocks []domain.PlacedBlock
	Overloaded      []string
	Warnings        []domain.Warning
}

const minGapMinutes = 30

// velocityKey groups the per-(day,goal) placement counter used to enforce
// the max-items-per-goal-per-day cap, keyed as a plain local map.
type velocityKey struct {
	day    time.Time
	goalID string
}

// GenerateSchedule is the core's single entry point. It is a pure function
// of its four arguments: identical inputs always yield identical output
// across runs. It performs no I/O and never reads the wall clock.
func GenerateSchedule(now time.Time, occupations []domain.Occupation, items []domain.Item, config domain.Config) Result {
	placed := make([]domain.PlacedBlock, 0, len(items))
	placedIDs := make(map[string]bool, len(items))
	warnings := make([]domain.Warning, 0)
	overloaded := make([]string, 0)
	velocity := make(map[velocityKey]int)

	itemByID := make(map[string]domain.Item, len(items))
	for _, it := range items {
		itemByID[it.ID] = it
	}

	// Pass 1 — pinned placements. Order by item ID so the pass itself is
	// deterministic regardless of input ordering.
	pinned := make([]domain.Item, 0)
	for _, it := range items {
		if it.IsPinned() {
			pinned = append(pinned, it)
		}
	}
	sort.SliceStable(pinned, func(i, j int) bool { return pinned[i].ID < pinned[j].ID })

	for _, it := range pinned {
		start := *it.PinnedStart
		end := start.Add(time.Duration(it.DurationMinutes) * time.Minute)
		block := domain.PlacedBlock{
			ID:              domain.BlockID(it.ID, 0),
			ItemID:          it.ID,
			Title:           it.Title,
			Start:           start,
			End:             end,
			DurationMinutes: it.DurationMinutes,
			PriorityTier:    it.EffectiveTier(),
			ChunkIndex:      0,
			TotalChunks:     1,
			IsVirtual:       isVirtual(start, now, config),
			IsCompleted:     it.Status == domain.ItemCompleted,
		}
		placed = append(placed, block)
		placedIDs[it.ID] = true
		if it.GoalID != "" {
			velocity[velocityKey{day: StartOfLocalDay(start), goalID: it.GoalID}]++
		}
	}

	// Pass 2 — floating placements, in priority order.
	floating := make([]domain.Item, 0, len(items))
	for _, it := range items {
		if !it.IsPinned() {
			floating = append(floating, it)
		}
	}
	ordered := PrioritizeItems(floating, now)

	for _, it := range ordered {
		if !dependenciesSatisfied(it, placedIDs) {
			continue
		}

		// A dependent item starts no earlier than its dependencies' latest block end.
		var depEnd time.Time
		for _, b := range placed {
			for _, dep := range it.DependsOn {
				if b.ItemID == dep && b.End.After(depEnd) {
					depEnd = b.End
				}
			}
		}
		itemOccupations := occupations
		if !depEnd.IsZero() {
			itemOccupations = append(append([]domain.Occupation(nil), occupations...), domain.Occupation{ID: "dependency", Start: StartOfLocalDay(depEnd), End: depEnd})
		}

		chunks := Chunks(it, now, config)
		horizonEnd := now.AddDate(0, 0, config.PlanningHorizonDays)
		deadlineOrHorizon := horizonEnd
		if it.Deadline != nil && it.Deadline.Before(horizonEnd) {
			deadlineOrHorizon = *it.Deadline
		}

		staged := make([]domain.PlacedBlock, 0, len(chunks))
		velocityDelta := make(map[velocityKey]int)
		allPlaced := true

		for _, chunk := range chunks {
			if d := StartOfLocalDay(depEnd); chunk.PreferredDay.Before(d) {
				chunk.PreferredDay = d
			}
			block, ok := placeChunk(it, chunk, now, deadlineOrHorizon, config, itemOccupations, placed, staged, velocity, velocityDelta, &warnings)
			if !ok {
				allPlaced = false
				break
			}
			staged = append(staged, block)
			if it.GoalID != "" {
				velocityDelta[velocityKey{day: StartOfLocalDay(block.Start), goalID: it.GoalID}]++
			}
		}

		if !allPlaced {
			overloaded = append(overloaded, it.ID)
			warnings = append(warnings, domain.Warning{
				Kind:    domain.WarningOverloaded,
				Message: fmt.Sprintf("item %s could not be fully placed within its deadline or the planning horizon", it.ID),
				ItemID:  it.ID,
			})
			continue
		}

		placed = append(placed, staged...)
		placedIDs[it.ID] = true
		for k, v := range velocityDelta {
			velocity[k] += v
		}
	}

	sort.SliceStable(placed, func(i, j int) bool { return placed[i].Start.Before(placed[j].Start) })

	warnings = append(warnings, antiCrammingAudit(placed, itemByID)...)

	return Result{ScheduledBlocks: placed, Overloaded: overloaded, Warnings: warnings}
}

// dependenciesSatisfied reports whether every id in item.DependsOn has
// already been placed.
func dependenciesSatisfied(item domain.Item, placedIDs map[string]bool) bool {
	for _, dep := range item.DependsOn {
		if !placedIDs[dep] {
			return false
		}
	}
	return true
}

// placeChunk searches day by day, starting at chunk.PreferredDay, for a
// slot that fits chunk.DurationMinutes, honoring the velocity gate and the
// Family-Time override.
func placeChunk(
	item domain.Item,
	chunk Chunk,
	now time.Time,
	deadlineOrHorizon time.Time,
	config domain.Config,
	occupations []domain.Occupation,
	committed []domain.PlacedBlock,
	staged []domain.PlacedBlock,
	velocity map[velocityKey]int,
	velocityDelta map[velocityKey]int,
	warnings *[]domain.Warning,
) (domain.PlacedBlock, bool) {
	day := chunk.PreferredDay
	limit := StartOfLocalDay(deadlineOrHorizon)

	for !day.After(limit) {
		if IsSunday(day) {
			day = day.AddDate(0, 0, 1)
			continue
		}

		if item.GoalID != "" {
			key := velocityKey{day: day, goalID: item.GoalID}
			count := velocity[key] + velocityDelta[key]
			if count >= config.MaxItemsPerGoalPerDay {
				day = day.AddDate(0, 0, 1)
				continue
			}
		}

		allPlacedSoFar := make([]domain.PlacedBlock, 0, len(committed)+len(staged))
		allPlacedSoFar = append(allPlacedSoFar, committed...)
		allPlacedSoFar = append(allPlacedSoFar, staged...)

		gaps := GapsInDay(day, occupations, allPlacedSoFar, config)
		eligible := make([]domain.Interval, 0, len(gaps))
		for _, g := range gaps {
			if g.DurationMinutes() >= minGapMinutes {
				eligible = append(eligible, g)
			}
		}

		regular, family := partitionGaps(eligible, config)

		if slot, ok := bestFit(regular, item, chunk, config); ok {
			return commitBlock(item, chunk, day, slot.Start, now, config), true
		}

		if len(regular) == 0 && item.IsAssignment && item.Deadline != nil {
			if item.Deadline.Sub(day) <= 24*time.Hour {
				if slot, ok := firstFit(family, chunk); ok {
					*warnings = append(*warnings, domain.Warning{
						Kind:    domain.WarningFamilyTimeCompromised,
						Message: fmt.Sprintf("item %s placed into family time ahead of its deadline", item.ID),
						ItemID:  item.ID,
					})
					return commitBlock(item, chunk, day, slot.Start, now, config), true
				}
			}
		}

		day = day.AddDate(0, 0, 1)
	}

	return domain.PlacedBlock{}, false
}

func partitionGaps(gaps []domain.Interval, config domain.Config) (regular, family []domain.Interval) {
	for _, g := range gaps {
		if DecimalHour(g.Start) >= config.FamilyTimeStartHour {
			family = append(family, g)
		} else {
			regular = append(regular, g)
		}
	}
	return regular, family
}

// bestFit sorts the candidate gaps by descending score and returns the
// first one large enough to hold the chunk.
func bestFit(gaps []domain.Interval, item domain.Item, chunk Chunk, config domain.Config) (domain.Interval, bool) {
	scored := make([]domain.Interval, len(gaps))
	copy(scored, gaps)
	sort.SliceStable(scored, func(i, j int) bool {
		si := ScoreSlot(scored[i], item, chunk.DurationMinutes, config)
		sj := ScoreSlot(scored[j], item, chunk.DurationMinutes, config)
		if si != sj {
			return si > sj
		}
		return scored[i].Start.Before(scored[j].Start)
	})
	for _, g := range scored {
		if g.DurationMinutes() >= chunk.DurationMinutes {
			return g, true
		}
	}
	return domain.Interval{}, false
}

// firstFit walks gaps in insertion order and returns the first one large
// enough for the chunk: the first one of sufficient size wins.
func firstFit(gaps []domain.Interval, chunk Chunk) (domain.Interval, bool) {
	for _, g := range gaps {
		if g.DurationMinutes() >= chunk.DurationMinutes {
			return g, true
		}
	}
	return domain.Interval{}, false
}

func commitBlock(item domain.Item, chunk Chunk, day time.Time, start time.Time, now time.Time, config domain.Config) domain.PlacedBlock {
	end := start.Add(time.Duration(chunk.DurationMinutes) * time.Minute)
	return domain.PlacedBlock{
		ID:              domain.BlockID(item.ID, chunk.ChunkIndex),
		ItemID:          item.ID,
		Title:           item.Title,
		Start:           start,
		End:             end,
		DurationMinutes: chunk.DurationMinutes,
		PriorityTier:    item.EffectiveTier(),
		ChunkIndex:      chunk.ChunkIndex,
		TotalChunks:     chunk.TotalChunks,
		IsVirtual:       isVirtual(start, now, config),
		IsCompleted:     item.Status == domain.ItemCompleted,
	}
}

// isVirtual reports whether a block's date lies more than
// PlanningHorizonDays past now.
func isVirtual(start time.Time, now time.Time, config domain.Config) bool {
	return DaysUntil(start, now) > config.PlanningHorizonDays
}

// antiCrammingAudit is the post-pass audit: for every split
// item with a deadline, if more than half its placed duration landed on
// the deadline day, emit a warning even though the chunker tried to avoid it.
func antiCrammingAudit(blocks []domain.PlacedBlock, itemByID map[string]domain.Item) []domain.Warning {
	totalByItem := make(map[string]int)
	deadlineDayByItem := make(map[string]int)

	for _, b := range blocks {
		item, ok := itemByID[b.ItemID]
		if !ok || item.Deadline == nil || b.TotalChunks <= 1 {
			continue
		}
		totalByItem[b.ItemID] += b.DurationMinutes
		if SameLocalDay(b.Start, *item.Deadline) {
			deadlineDayByItem[b.ItemID] += b.DurationMinutes
		}
	}

	warnings := make([]domain.Warning, 0)
	ids := make([]string, 0, len(totalByItem))
	for id := range totalByItem {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		total := totalByItem[id]
		if total == 0 {
			continue
		}
		if float64(deadlineDayByItem[id])/float64(total) > 0.5 {
			warnings = append(warnings, domain.Warning{
				Kind:    domain.WarningAntiCrammingViolated,
				Message: fmt.Sprintf("item %s has more than half its duration crammed onto its deadline day", id),
				ItemID:  id,
			})
		}
	}

	return warnings
}
