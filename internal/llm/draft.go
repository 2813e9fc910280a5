package llm

import (
	"context"
	"fmt"
)

// ItemDraft is a candidate schedulable item suggested by the model. It is
// never committed directly; the caller reviews and converts accepted drafts
// into domain.Item values.
type ItemDraft struct {
	Title           string `json:"title"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"duration_minutes"`
	PriorityTier    string `json:"priority_tier"`
	DeadlineOffset  int    `json:"deadline_offset_days"` // 0 means no deadline
	IsAssignment    bool   `json:"is_assignment"`
	CanSplit        bool   `json:"can_split"`
}

// GoalDecomposition is the model's breakdown of a goal into draft items.
type GoalDecomposition struct {
	Items []ItemDraft `json:"items"`
}

func validateItemDraft(d ItemDraft) error {
	if d.Title == "" {
		return fmt.Errorf("title is empty")
	}
	if d.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", d.DurationMinutes)
	}
	switch d.PriorityTier {
	case "", "critical", "core", "backlog":
	default:
		return fmt.Errorf("unknown priority_tier %q", d.PriorityTier)
	}
	return nil
}

func validateDecomposition(d GoalDecomposition) error {
	if len(d.Items) == 0 {
		return fmt.Errorf("no items in decomposition")
	}
	for i, item := range d.Items {
		if err := validateItemDraft(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

// DraftItemsForGoal asks the model to break a goal description into
// schedulable item drafts. It returns ErrDisabled without contacting the
// model if client is for a disabled configuration.
func DraftItemsForGoal(ctx context.Context, client Client, goalTitle, goalDescription string) ([]ItemDraft, error) {
	prompt := fmt.Sprintf(
		"Goal: %s\nDescription: %s\n\nBreak this goal into 3-8 concrete, schedulable items. "+
			"Respond with a JSON object: {\"items\": [{\"title\": string, \"category\": string, "+
			"\"duration_minutes\": int, \"priority_tier\": \"critical\"|\"core\"|\"backlog\", "+
			"\"deadline_offset_days\": int, \"is_assignment\": bool, \"can_split\": bool}]}",
		goalTitle, goalDescription,
	)

	resp, err := client.Generate(ctx, GenerateRequest{
		Task:         TaskGoalDecomposition,
		SystemPrompt: "You are a planning assistant that decomposes goals into concrete tasks. Respond with JSON only.",
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, err
	}

	decomposition, err := DecodeObject(resp.Text, validateDecomposition)
	if err != nil {
		return nil, err
	}
	return decomposition.Items, nil
}

// DraftSingleItem asks the model to turn a short free-text description into
// one item draft.
func DraftSingleItem(ctx context.Context, client Client, description string) (ItemDraft, error) {
	prompt := fmt.Sprintf(
		"Description: %s\n\nExtract a single schedulable item. Respond with a JSON object: "+
			"{\"title\": string, \"category\": string, \"duration_minutes\": int, "+
			"\"priority_tier\": \"critical\"|\"core\"|\"backlog\", \"deadline_offset_days\": int, "+
			"\"is_assignment\": bool, \"can_split\": bool}",
		description,
	)

	resp, err := client.Generate(ctx, GenerateRequest{
		Task:         TaskItemDraft,
		SystemPrompt: "You extract a single schedulable task from free text. Respond with JSON only.",
		UserPrompt:   prompt,
	})
	if err != nil {
		return ItemDraft{}, err
	}

	return DecodeObject(resp.Text, validateItemDraft)
}
