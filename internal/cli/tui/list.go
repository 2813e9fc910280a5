package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sahilm/fuzzy"

	"github.com/corvidae/daywise/internal/domain"
)

// blockItem adapts a domain.PlacedBlock to bubbles/list's item interfaces
// (list.Item via FilterValue, list.DefaultItem via Title/Description).
type blockItem struct {
	block domain.PlacedBlock
}

func (b blockItem) Title() string {
	return b.block.Title
}

func (b blockItem) Description() string {
	window := fmt.Sprintf("%s - %s", b.block.Start.Format("15:04"), b.block.End.Format("15:04"))
	if b.block.TotalChunks > 1 {
		window = fmt.Sprintf("%s  (%d/%d)", window, b.block.ChunkIndex+1, b.block.TotalChunks)
	}
	return window
}

func (b blockItem) FilterValue() string {
	return b.block.Title + " " + string(b.block.PriorityTier)
}

// NewBlockList builds a bubbles list over a day's placed blocks with a
// fuzzy-matching filter backed by sahilm/fuzzy, wired explicitly so the
// same ranking can be reused outside the list component too.
func NewBlockList(blocks []domain.PlacedBlock, width, height int) list.Model {
	items := make([]list.Item, len(blocks))
	for i, b := range blocks {
		items[i] = blockItem{block: b}
	}

	delegate := list.NewDefaultDelegate()
	model := list.New(items, delegate, width, height)
	model.Title = "Today"
	model.SetFilteringEnabled(true)
	model.Filter = fuzzyFilter

	return model
}

// fuzzyFilter adapts sahilm/fuzzy.Find to bubbles/list's FilterFunc shape.
func fuzzyFilter(term string, targets []string) []list.Rank {
	matches := fuzzy.Find(term, targets)
	ranks := make([]list.Rank, len(matches))
	for i, m := range matches {
		ranks[i] = list.Rank{
			Index:          m.Index,
			MatchedIndexes: m.MatchedIndexes,
		}
	}
	return ranks
}
