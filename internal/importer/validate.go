package importer

import (
	"fmt"
	"time"
)

var (
	validPriorityTiers = map[string]bool{"": true, "critical": true, "core": true, "backlog": true}
	validItemStatuses  = map[string]bool{"": true, "todo": true, "in_progress": true, "completed": true, "skipped": true, "archived": true}
)

// ValidateImportSchema checks the import schema for errors before
// conversion. Returns every validation error found, not just the first.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	goalRefs := make(map[string]bool)
	errs = append(errs, validateGoals(schema.Goals, goalRefs)...)

	itemRefs := make(map[string]bool)
	errs = append(errs, validateItems(schema.Items, goalRefs, itemRefs)...)

	errs = append(errs, validateOccupations(schema.Occupations)...)
	errs = append(errs, validateDependencies(schema.Dependencies, itemRefs)...)

	return errs
}

func validateGoals(goals []GoalImport, goalRefs map[string]bool) []error {
	var errs []error
	for _, g := range goals {
		if g.Ref == "" {
			errs = append(errs, fmt.Errorf("goal: ref is required"))
			continue
		}
		if goalRefs[g.Ref] {
			errs = append(errs, fmt.Errorf("goal %q: duplicate ref", g.Ref))
		}
		goalRefs[g.Ref] = true
		if g.Title == "" {
			errs = append(errs, fmt.Errorf("goal %q: title is required", g.Ref))
		}
		if g.TargetDate != nil {
			if _, err := time.Parse("2006-01-02", *g.TargetDate); err != nil {
				errs = append(errs, fmt.Errorf("goal %q: target_date invalid format %q (expected YYYY-MM-DD)", g.Ref, *g.TargetDate))
			}
		}
	}
	return errs
}

func validateItems(items []ItemImport, goalRefs map[string]bool, itemRefs map[string]bool) []error {
	var errs []error
	for _, it := range items {
		if it.Ref == "" {
			errs = append(errs, fmt.Errorf("item: ref is required"))
			continue
		}
		if itemRefs[it.Ref] {
			errs = append(errs, fmt.Errorf("item %q: duplicate ref", it.Ref))
		}
		itemRefs[it.Ref] = true

		if it.Title == "" {
			errs = append(errs, fmt.Errorf("item %q: title is required", it.Ref))
		}
		if it.DurationMinutes <= 0 {
			errs = append(errs, fmt.Errorf("item %q: duration_minutes must be positive", it.Ref))
		}
		if it.GoalRef != nil && *it.GoalRef != "" && !goalRefs[*it.GoalRef] {
			errs = append(errs, fmt.Errorf("item %q: goal_ref %q not defined", it.Ref, *it.GoalRef))
		}
		if !validPriorityTiers[it.PriorityTier] {
			errs = append(errs, fmt.Errorf("item %q: invalid priority_tier %q", it.Ref, it.PriorityTier))
		}
		if !validItemStatuses[it.Status] {
			errs = append(errs, fmt.Errorf("item %q: invalid status %q", it.Ref, it.Status))
		}
		if it.Deadline != nil {
			if _, err := time.Parse(time.RFC3339, *it.Deadline); err != nil {
				errs = append(errs, fmt.Errorf("item %q: deadline invalid format %q (expected RFC3339)", it.Ref, *it.Deadline))
			}
		}
		if it.PinnedStart != nil {
			if _, err := time.Parse(time.RFC3339, *it.PinnedStart); err != nil {
				errs = append(errs, fmt.Errorf("item %q: pinned_start invalid format %q (expected RFC3339)", it.Ref, *it.PinnedStart))
			}
		}
	}
	return errs
}

func validateOccupations(occupations []OccupationImport) []error {
	var errs []error
	for _, occ := range occupations {
		if occ.Title == "" {
			errs = append(errs, fmt.Errorf("occupation %q: title is required", occ.Ref))
		}
		start, startErr := time.Parse(time.RFC3339, occ.Start)
		if startErr != nil {
			errs = append(errs, fmt.Errorf("occupation %q: start invalid format %q (expected RFC3339)", occ.Ref, occ.Start))
		}
		end, endErr := time.Parse(time.RFC3339, occ.End)
		if endErr != nil {
			errs = append(errs, fmt.Errorf("occupation %q: end invalid format %q (expected RFC3339)", occ.Ref, occ.End))
		}
		if startErr == nil && endErr == nil && !end.After(start) {
			errs = append(errs, fmt.Errorf("occupation %q: end must be after start", occ.Ref))
		}
	}
	return errs
}

func validateDependencies(deps []DependencyImport, itemRefs map[string]bool) []error {
	var errs []error
	for _, d := range deps {
		if !itemRefs[d.ItemRef] {
			errs = append(errs, fmt.Errorf("dependency: item_ref %q not defined", d.ItemRef))
		}
		if !itemRefs[d.DependsOnRef] {
			errs = append(errs, fmt.Errorf("dependency: depends_on_ref %q not defined", d.DependsOnRef))
		}
		if d.ItemRef == d.DependsOnRef {
			errs = append(errs, fmt.Errorf("dependency: item %q cannot depend on itself", d.ItemRef))
		}
	}
	return errs
}
