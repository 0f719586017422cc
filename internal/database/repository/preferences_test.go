package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kodex/kodexdash/internal/database"
	"github.com/kodex/kodexdash/internal/database/repository"
)

func openTestDB(t *testing.T) *repository.PreferenceRepo {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, database.RunMigrations(dbPath))
	// a second run is a no-op
	require.NoError(t, database.RunMigrations(dbPath))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewPreferenceRepo(db)
}

func TestPreferenceRepoRoundTrip(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	repo := openTestDB(t)

	_, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Set(ctx, "theme", "dark"))
	v, ok, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", v)

	require.NoError(t, repo.Set(ctx, "theme", "light"))
	v, _, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	require.Equal(t, "light", v)

	prefs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, prefs, 1)
	require.Equal(t, "theme", prefs[0].Key)
	require.False(t, prefs[0].UpdatedAt.IsZero())
}

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "seed.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	first, err := database.SeedDefaults(ctx, db)
	require.NoError(t, err)
	require.NotEmpty(t, first)
	second, err := database.SeedDefaults(ctx, db)
	require.NoError(t, err)
	require.Equal(t, first, second)

	_, ok, err := repository.NewPreferenceRepo(db).Get(ctx, "theme")
	require.NoError(t, err)
	require.False(t, ok, "seeding must not set a theme")
}
