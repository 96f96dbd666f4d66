package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tablekeeper/internal/client/models"
)

func TestInitDatabase_MigratesAndWires(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	db, repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, repos.Rooms.ReplaceAll(ctx, []models.Room{{ID: "r1", Name: "Test Room"}}))
	got, err := repos.Rooms.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)

	require.NoError(t, repos.Characters.ReplaceRoom(ctx, "r1", []models.CharacterCard{{ID: "c1", RoomID: "r1", Name: "Aerin"}}))
	cards, err := repos.Characters.GetByRoom(ctx, "r1")
	require.NoError(t, err)
	require.Len(t, cards, 1)
}

func TestInitDatabase_IdempotentMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "cache.db")

	db1, _, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	// Re-opening an already migrated database is a no-op.
	db2, repos, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db2.Close() })

	list, err := repos.Rooms.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}
