package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for bulk import of goals,
// items, and occupations, e.g. when migrating from another planner.
type ImportSchema struct {
	Goals        []GoalImport       `json:"goals,omitempty"`
	Items        []ItemImport       `json:"items"`
	Occupations  []OccupationImport `json:"occupations,omitempty"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// GoalImport defines a goal in the import file.
type GoalImport struct {
	Ref        string  `json:"ref"`
	Title      string  `json:"title"`
	Category   string  `json:"category,omitempty"`
	TargetDate *string `json:"target_date,omitempty"`
}

// ItemImport defines a schedulable item in the import file. GoalRef, if set,
// must match a GoalImport.Ref elsewhere in the same file.
type ItemImport struct {
	Ref                 string  `json:"ref"`
	GoalRef             *string `json:"goal_ref,omitempty"`
	Category            string  `json:"category,omitempty"`
	Title               string  `json:"title"`
	DurationMinutes     int     `json:"duration_minutes"`
	Deadline            *string `json:"deadline,omitempty"`
	PriorityTier        string  `json:"priority_tier,omitempty"`
	IsAssignment        bool    `json:"is_assignment,omitempty"`
	CanSplit            *bool   `json:"can_split,omitempty"`
	PinnedStart         *string `json:"pinned_start,omitempty"`
	Status              string  `json:"status,omitempty"`
	RecurrenceParentRef *string `json:"recurrence_parent_ref,omitempty"`
}

// OccupationImport defines an immovable calendar occupation in the import
// file, e.g. a class or standing meeting exported from another calendar.
type OccupationImport struct {
	Ref      string   `json:"ref"`
	Title    string   `json:"title"`
	Start    string   `json:"start"`
	End      string   `json:"end"`
	Location string   `json:"location,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// DependencyImport defines a DependsOn edge between two items.
type DependencyImport struct {
	ItemRef      string `json:"item_ref"`
	DependsOnRef string `json:"depends_on_ref"`
}

// LoadImportSchema reads and parses an import file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
