package app

// ImportResult summarizes one import run: how many occupations, items,
// and goals it produced.
type ImportResult struct {
	OccupationCount int
	ItemCount       int
	GoalCount       int
	SkippedCount    int
}
