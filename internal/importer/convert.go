package importer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/corvidae/daywise/internal/domain"
)

// DependencyEdge is a resolved item-to-item DependsOn edge, ready for
// repository.DependencyRepo.Create.
type DependencyEdge struct {
	ItemID      string
	DependsOnID string
}

// ConvertedImport holds the domain objects produced by Convert, ready for
// persistence via the repository layer.
type ConvertedImport struct {
	Goals        []*domain.Goal
	Items        []*domain.Item
	Occupations  []*domain.Occupation
	Dependencies []DependencyEdge
}

// Convert transforms a validated ImportSchema into domain objects. Call
// ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*ConvertedImport, error) {
	now := time.Now().UTC()
	goalRefMap := make(map[string]string) // ref -> UUID
	itemRefMap := make(map[string]string)

	goals := make([]*domain.Goal, 0, len(schema.Goals))
	for _, g := range schema.Goals {
		realID := uuid.New().String()
		goalRefMap[g.Ref] = realID

		goals = append(goals, &domain.Goal{
			ID:         realID,
			Title:      g.Title,
			Category:   g.Category,
			TargetDate: parseOptionalDate(g.TargetDate),
			Status:     domain.GoalActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	items := make([]*domain.Item, 0, len(schema.Items))
	for _, it := range schema.Items {
		realID := uuid.New().String()
		itemRefMap[it.Ref] = realID

		var goalID string
		if it.GoalRef != nil && *it.GoalRef != "" {
			gid, ok := goalRefMap[*it.GoalRef]
			if !ok {
				return nil, fmt.Errorf("goal_ref %q not found for item %q", *it.GoalRef, it.Ref)
			}
			goalID = gid
		}

		tier := domain.TierCore
		if it.PriorityTier != "" {
			tier = domain.PriorityTier(it.PriorityTier)
		}
		status := domain.ItemTodo
		if it.Status != "" {
			status = domain.ItemStatus(it.Status)
		}
		canSplit := true
		if it.CanSplit != nil {
			canSplit = *it.CanSplit
		}

		items = append(items, &domain.Item{
			ID:              realID,
			GoalID:          goalID,
			Category:        it.Category,
			Title:           it.Title,
			DurationMinutes: it.DurationMinutes,
			Deadline:        parseOptionalDateTime(it.Deadline),
			PriorityTier:    tier,
			IsAssignment:    it.IsAssignment,
			CanSplit:        canSplit,
			PinnedStart:     parseOptionalDateTime(it.PinnedStart),
			Status:          status,
		})
	}

	// Resolve recurrence parent refs in a second pass, since a recurrence
	// parent may be defined after its children in the import file.
	for i, it := range schema.Items {
		if it.RecurrenceParentRef == nil || *it.RecurrenceParentRef == "" {
			continue
		}
		parentID, ok := itemRefMap[*it.RecurrenceParentRef]
		if !ok {
			return nil, fmt.Errorf("recurrence_parent_ref %q not found for item %q", *it.RecurrenceParentRef, it.Ref)
		}
		items[i].RecurrenceParentID = parentID
	}

	occupations := make([]*domain.Occupation, 0, len(schema.Occupations))
	for _, occ := range schema.Occupations {
		start, err := time.Parse(time.RFC3339, occ.Start)
		if err != nil {
			return nil, fmt.Errorf("parsing start for occupation %q: %w", occ.Ref, err)
		}
		end, err := time.Parse(time.RFC3339, occ.End)
		if err != nil {
			return nil, fmt.Errorf("parsing end for occupation %q: %w", occ.Ref, err)
		}
		occupations = append(occupations, &domain.Occupation{
			ID:       uuid.New().String(),
			Title:    occ.Title,
			Start:    start,
			End:      end,
			Location: occ.Location,
			Tags:     occ.Tags,
		})
	}

	deps := make([]DependencyEdge, 0, len(schema.Dependencies))
	for _, d := range schema.Dependencies {
		itemID, ok := itemRefMap[d.ItemRef]
		if !ok {
			return nil, fmt.Errorf("item_ref %q not found", d.ItemRef)
		}
		dependsOnID, ok := itemRefMap[d.DependsOnRef]
		if !ok {
			return nil, fmt.Errorf("depends_on_ref %q not found", d.DependsOnRef)
		}
		deps = append(deps, DependencyEdge{ItemID: itemID, DependsOnID: dependsOnID})
	}

	return &ConvertedImport{
		Goals:        goals,
		Items:        items,
		Occupations:  occupations,
		Dependencies: deps,
	}, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func parseOptionalDateTime(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}
