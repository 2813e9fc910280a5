package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/corvidae/daywise/internal/app"
	"github.com/corvidae/daywise/internal/domain"
)

// FormatSchedule renders a ScheduleResponse as a day-by-day dashboard
// followed by a warnings/overload digest.
func FormatSchedule(resp *app.ScheduleResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Schedule generated %s", resp.GeneratedAt.Format("Mon Jan 2 15:04"))))
	b.WriteString("\n\n")

	if len(resp.ScheduledBlocks) == 0 {
		b.WriteString(Dim("No blocks placed.\n"))
	} else {
		byDay := groupByDay(resp.ScheduledBlocks)
		days := sortedDayKeys(byDay)
		for _, day := range days {
			b.WriteString(dayHeader(day))
			b.WriteString("\n")
			b.WriteString(FormatDayBlocks(byDay[day]))
			b.WriteString("\n")
		}
	}

	b.WriteString(fmt.Sprintf("%s  %s\n",
		StyleGreen.Render(fmt.Sprintf("Total: %s", FormatMinutes(resp.TotalMinutes))),
		StyleDim.Render(fmt.Sprintf("%d blocks", len(resp.ScheduledBlocks))),
	))

	if len(resp.Warnings) > 0 || len(resp.Overloaded) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatDigest(resp.Warnings, resp.Overloaded))
	}

	return b.String()
}

// FormatDayBlocks renders one day's placed blocks as a table.
func FormatDayBlocks(blocks []domain.PlacedBlock) string {
	headers := []string{"START", "END", "TITLE", "TIER", "CHUNK", ""}
	rows := make([][]string, 0, len(blocks))
	for _, blk := range blocks {
		flags := ""
		if blk.IsVirtual {
			flags += "~"
		}
		if blk.IsCompleted {
			flags += "✓"
		}
		rows = append(rows, []string{
			blk.Start.Format("15:04"),
			blk.End.Format("15:04"),
			blk.Title,
			TierColor(blk.PriorityTier).Render(string(blk.PriorityTier)),
			ChunkLabel(blk.ChunkIndex, blk.TotalChunks),
			flags,
		})
	}
	return Table(headers, rows)
}

// FormatDigest renders the non-fatal warning set and overloaded item list.
func FormatDigest(warnings []domain.Warning, overloaded []string) string {
	var b strings.Builder
	if len(warnings) > 0 {
		b.WriteString(Header("Warnings"))
		b.WriteString("\n")
		for _, w := range warnings {
			label := WarningColor(w.Kind).Render(strings.ToUpper(string(w.Kind)))
			b.WriteString(fmt.Sprintf("  %s  %s\n", label, w.Message))
		}
	}
	if len(overloaded) > 0 {
		if len(warnings) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header("Overloaded items"))
		b.WriteString("\n")
		for _, id := range overloaded {
			b.WriteString(fmt.Sprintf("  %s %s\n", StyleRed.Render("✗"), TruncID(id)))
		}
	}
	return b.String()
}

func dayHeader(day time.Time) string {
	return StylePurple.Render(day.Format("Monday, Jan 2"))
}

func groupByDay(blocks []domain.PlacedBlock) map[time.Time][]domain.PlacedBlock {
	byDay := make(map[time.Time][]domain.PlacedBlock)
	for _, b := range blocks {
		y, m, d := b.Start.Date()
		key := time.Date(y, m, d, 0, 0, 0, 0, b.Start.Location())
		byDay[key] = append(byDay[key], b)
	}
	return byDay
}

func sortedDayKeys(byDay map[time.Time][]domain.PlacedBlock) []time.Time {
	days := make([]time.Time, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	for i := 1; i < len(days); i++ {
		for j := i; j > 0 && days[j].Before(days[j-1]); j-- {
			days[j], days[j-1] = days[j-1], days[j]
		}
	}
	return days
}
