package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/localedemo/internal/database"
)

func newRepo(t *testing.T) *ViewRepo {
	t.Helper()
	db, err := database.OpenMigrated(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewViewRepo(db)
}

func TestRecordCountsPerCountry(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := newRepo(t)

	n, err := repo.Record(ctx, "china", "en")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	n, err = repo.Record(ctx, "china", "de")
	require.NoError(t, err)
	require.Equal(t, 2, n)

	n, err = repo.Record(ctx, "germany", "en")
	require.NoError(t, err)
	require.Equal(t, 1, n)

	totals, err := repo.Totals(ctx)
	require.NoError(t, err)
	require.Equal(t, []CountryCount{{"china", 2}, {"germany", 1}}, totals)
}

func TestRecentNewestFirstWithLimit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := newRepo(t)

	base := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)
	step := 0
	repo.now = func() time.Time {
		step++
		return base.Add(time.Duration(step) * time.Minute)
	}
	for _, id := range []string{"us", "china", "germany"} {
		_, err := repo.Record(ctx, id, "en")
		require.NoError(t, err)
	}

	recent, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "germany", recent[0].CountryID)
	require.Equal(t, "china", recent[1].CountryID)
	require.True(t, recent[0].ViewedAt.Equal(base.Add(3*time.Minute)))
	require.NotEmpty(t, recent[0].ID)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "history.db")
	db, err := database.OpenMigrated(path)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))
	require.NoError(t, db.Close())

	db, err = database.OpenMigrated(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}
