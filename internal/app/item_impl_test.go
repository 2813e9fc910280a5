package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidae/daywise/internal/domain"
	"github.com/corvidae/daywise/internal/obslog"
	"github.com/corvidae/daywise/internal/repository/sqlite"
	"github.com/corvidae/daywise/internal/testutil"
)

func TestItemService_CreateItem_DefaultsIDStatusAndTier(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewItemService(sqlite.NewItemRepo(conn), sqlite.NewDependencyRepo(conn), obslog.NoopUseCaseObserver{})
	ctx := context.Background()

	item := &domain.Item{Title: "Write chapter 3", DurationMinutes: 90}
	require.NoError(t, svc.CreateItem(ctx, item))

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, domain.ItemTodo, item.Status)
	assert.Equal(t, domain.TierCore, item.PriorityTier)

	fetched, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Write chapter 3", fetched.Title)
}

func TestItemService_CreateItem_RejectsNonPositiveDuration(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewItemService(sqlite.NewItemRepo(conn), sqlite.NewDependencyRepo(conn), obslog.NoopUseCaseObserver{})

	err := svc.CreateItem(context.Background(), &domain.Item{Title: "Bad item", DurationMinutes: 0})
	assert.Error(t, err)
}

func TestItemService_CreateItem_RecordsDependsOnEdges(t *testing.T) {
	conn := testutil.NewTestDB(t)
	itemRepo := sqlite.NewItemRepo(conn)
	depRepo := sqlite.NewDependencyRepo(conn)
	svc := NewItemService(itemRepo, depRepo, obslog.NoopUseCaseObserver{})
	ctx := context.Background()

	first := &domain.Item{Title: "Outline", DurationMinutes: 30}
	require.NoError(t, svc.CreateItem(ctx, first))

	second := &domain.Item{Title: "Draft", DurationMinutes: 60, DependsOn: []string{first.ID}}
	require.NoError(t, svc.CreateItem(ctx, second))

	deps, err := depRepo.ListDependencies(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{first.ID}, deps)
}

func TestItemService_DeleteItem(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewItemService(sqlite.NewItemRepo(conn), sqlite.NewDependencyRepo(conn), obslog.NoopUseCaseObserver{})
	ctx := context.Background()

	item := &domain.Item{Title: "Throwaway", DurationMinutes: 15}
	require.NoError(t, svc.CreateItem(ctx, item))
	require.NoError(t, svc.DeleteItem(ctx, item.ID))

	_, err := svc.GetItem(ctx, item.ID)
	assert.Error(t, err)
}

func TestGoalService_CreateAndList(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewGoalService(sqlite.NewGoalRepo(conn))
	ctx := context.Background()

	goal := &domain.Goal{Title: "Ship the scheduler"}
	require.NoError(t, svc.CreateGoal(ctx, goal))
	assert.NotEmpty(t, goal.ID)
	assert.Equal(t, domain.GoalActive, goal.Status)

	goals, err := svc.ListGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Ship the scheduler", goals[0].Title)
}

func TestOccupationService_CreateOccupation_RejectsInverted(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewOccupationService(sqlite.NewOccupationRepo(conn))

	now := time.Now().UTC()
	occ := &domain.Occupation{Title: "Impossible", Start: now, End: now}
	err := svc.CreateOccupation(context.Background(), occ)
	assert.Error(t, err)
}

func TestOccupationService_CreateAndDelete(t *testing.T) {
	conn := testutil.NewTestDB(t)
	svc := NewOccupationService(sqlite.NewOccupationRepo(conn))
	ctx := context.Background()

	start, err := time.Parse(time.RFC3339, "2026-03-09T09:00:00Z")
	require.NoError(t, err)
	end, err := time.Parse(time.RFC3339, "2026-03-09T09:30:00Z")
	require.NoError(t, err)
	occ := testutil.NewTestOccupation("Standup", start, end)
	require.NoError(t, svc.CreateOccupation(ctx, &occ))

	occs, err := svc.ListOccupations(ctx, "2026-03-01T00:00:00Z", "2026-04-01T00:00:00Z")
	require.NoError(t, err)
	require.Len(t, occs, 1)

	require.NoError(t, svc.DeleteOccupation(ctx, occ.ID))
	occs, err = svc.ListOccupations(ctx, "2026-03-01T00:00:00Z", "2026-04-01T00:00:00Z")
	require.NoError(t, err)
	assert.Empty(t, occs)
}
