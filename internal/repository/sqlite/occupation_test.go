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

func TestOccupationRepo_CreateAndListBetween(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewOccupationRepo(conn)
	ctx := context.Background()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	occ := testutil.NewTestOccupation("Class", day.Add(10*time.Hour), day.Add(12*time.Hour), testutil.WithTags("school"))
	require.NoError(t, repo.Create(ctx, &occ))

	from := day.Format(time.RFC3339)
	to := day.AddDate(0, 0, 1).Format(time.RFC3339)
	occupations, err := repo.ListBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, occupations, 1)
	assert.Equal(t, "Class", occupations[0].Title)
	assert.Equal(t, []string{"school"}, occupations[0].Tags)
}

func TestOccupationRepo_ReplaceAll(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewOccupationRepo(conn)
	ctx := context.Background()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	first := testutil.NewTestOccupation("Old", day, day.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, &first))

	second := testutil.NewTestOccupation("New", day.Add(time.Hour), day.Add(2*time.Hour))
	require.NoError(t, repo.ReplaceAll(ctx, []*domain.Occupation{&second}))

	from := day.Format(time.RFC3339)
	to := day.AddDate(0, 0, 1).Format(time.RFC3339)
	occupations, err := repo.ListBetween(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, occupations, 1)
	assert.Equal(t, "New", occupations[0].Title)
}

func TestOccupationRepo_Delete(t *testing.T) {
	conn := testutil.NewTestDB(t)
	repo := NewOccupationRepo(conn)
	ctx := context.Background()

	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	occ := testutil.NewTestOccupation("Gone soon", day, day.Add(time.Hour))
	require.NoError(t, repo.Create(ctx, &occ))
	require.NoError(t, repo.Delete(ctx, occ.ID))

	from := day.Format(time.RFC3339)
	to := day.AddDate(0, 0, 1).Format(time.RFC3339)
	occupations, err := repo.ListBetween(ctx, from, to)
	require.NoError(t, err)
	assert.Empty(t, occupations)
}
