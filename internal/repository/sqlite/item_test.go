package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemRepo_CreateAndGetByID(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewItemRepo(conn)
	ctx := context.Background()

	deadline := time.Now().UTC().AddDate(0, 0, 3)
	item := testutil.NewTestItem("Write report", 90, testutil.WithDeadline(deadline), testutil.WithPriorityTier(domain.TierCritical))
	require.NoError(t, repo.Create(ctx, &item))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write report", fetched.Title)
	assert.Equal(t, domain.TierCritical, fetched.PriorityTier)
	require.NotNil(t, fetched.Deadline)
	assert.Equal(t, deadline.Format(time.RFC3339), fetched.Deadline.Format(time.RFC3339))
}

func TestItemRepo_ListByGoal(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewItemRepo(conn)
	ctx := context.Background()

	goal := testutil.NewTestGoal("Learn Go")
	goalRepo := NewGoalRepo(conn)
	require.NoError(t, goalRepo.Create(ctx, &goal))

	itemA := testutil.NewTestItem("Read book", 60, testutil.WithGoalID(goal.ID))
	itemB := testutil.NewTestItem("Unrelated", 30)
	require.NoError(t, repo.Create(ctx, &itemA))
	require.NoError(t, repo.Create(ctx, &itemB))

	items, err := repo.ListByGoal(ctx, goal.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Read book", items[0].Title)
}

func TestItemRepo_Update(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewItemRepo(conn)
	ctx := context.Background()

	item := testutil.NewTestItem("Draft", 30)
	require.NoError(t, repo.Create(ctx, &item))

	item.Title = "Final draft"
	item.Status = domain.ItemCompleted
	require.NoError(t, repo.Update(ctx, &item))

	fetched, err := repo.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final draft", fetched.Title)
	assert.Equal(t, domain.ItemCompleted, fetched.Status)
}

func TestItemRepo_Delete(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewItemRepo(conn)
	ctx := context.Background()

	item := testutil.NewTestItem("Temp", 15)
	require.NoError(t, repo.Create(ctx, &item))
	require.NoError(t, repo.Delete(ctx, item.ID))

	_, err := repo.GetByID(ctx, item.ID)
	assert.Error(t, err)
}

func TestItemRepo_ListSchedulable_ExcludesArchivedByDefault(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewItemRepo(conn)
	ctx := context.Background()

	active := testutil.NewTestItem("Active", 30)
	archived := testutil.NewTestItem("Archived", 30, testutil.WithItemStatus(domain.ItemArchived))
	require.NoError(t, repo.Create(ctx, &active))
	require.NoError(t, repo.Create(ctx, &archived))

	items, err := repo.ListSchedulable(ctx, false)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Active", items[0].Title)

	all, err := repo.ListSchedulable(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
