package llm

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject_BareJSON(t *testing.T) {
	raw := `{"title":"Write outline","duration_minutes":45}`
	draft, err := DecodeObject[ItemDraft](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Write outline", draft.Title)
	assert.Equal(t, 45, draft.DurationMinutes)
}

func TestDecodeObject_MarkdownFence(t *testing.T) {
	raw := "```json\n{\"title\":\"Review notes\",\"duration_minutes\":30}\n```"
	draft, err := DecodeObject[ItemDraft](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Review notes", draft.Title)
}

func TestDecodeObject_SurroundingProse(t *testing.T) {
	raw := "Here is the task you asked for:\n{\"title\":\"Book flights\",\"duration_minutes\":20}\nLet me know if you need more."
	draft, err := DecodeObject[ItemDraft](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Book flights", draft.Title)
}

func TestDecodeObject_NestedObjects(t *testing.T) {
	raw := `{"items":[{"title":"Draft chapter","duration_minutes":90,"can_split":true}]}`
	decomp, err := DecodeObject[GoalDecomposition](raw, nil)
	require.NoError(t, err)
	require.Len(t, decomp.Items, 1)
	assert.Equal(t, "Draft chapter", decomp.Items[0].Title)
	assert.True(t, decomp.Items[0].CanSplit)
}

func TestDecodeObject_BracesInsideStringValues(t *testing.T) {
	raw := `{"title":"Fix config {dev}","duration_minutes":15}`
	draft, err := DecodeObject[ItemDraft](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Fix config {dev}", draft.Title)
}

func TestDecodeObject_EscapedQuoteInString(t *testing.T) {
	raw := `{"title":"Read \"Deep Work\"","duration_minutes":60}`
	draft, err := DecodeObject[ItemDraft](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Read "Deep Work"`, draft.Title)
}

func TestDecodeObject_NoObject(t *testing.T) {
	_, err := DecodeObject[ItemDraft]("I could not produce a task list.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeObject_MalformedJSON(t *testing.T) {
	_, err := DecodeObject[ItemDraft](`{"title":"Broken", duration}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestDecodeObject_ValidateRejects(t *testing.T) {
	raw := `{"title":"","duration_minutes":45}`
	_, err := DecodeObject(raw, func(d ItemDraft) error {
		if d.Title == "" {
			return fmt.Errorf("title is empty")
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestDecodeObject_ValidateAccepts(t *testing.T) {
	raw := `{"title":"Plan sprint","duration_minutes":45}`
	draft, err := DecodeObject(raw, validateItemDraft)
	require.NoError(t, err)
	assert.Equal(t, "Plan sprint", draft.Title)
}

func TestDecodeObject_PicksFirstOfSeveral(t *testing.T) {
	raw := "{\"title\":\"First\",\"duration_minutes\":10}\n{\"title\":\"Second\",\"duration_minutes\":20}"
	draft, err := DecodeObject[ItemDraft](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "First", draft.Title)
}
