package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file was not created")
}

func TestStoreReopenKeepsSessions(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveSession(SessionRecord{Layout: "classic", Host: HostTerminal, Seed: 1})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	records, err := store.RecentSessions("", 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	want := SessionRecord{
		Layout:        "classic",
		Host:          HostSSH,
		Player:        "alice",
		Seed:          42,
		Ticks:         3600,
		BallsSpawned:  12,
		BricksCleared: 1,
		Duration:      60,
	}
	id, err := store.SaveSession(want)
	require.NoError(t, err)
	assert.Positive(t, id)

	records, err := store.RecentSessions("classic", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, id, got.ID)
	assert.False(t, got.CreatedAt.IsZero(), "created_at should be parsed")

	got.ID, got.CreatedAt = 0, want.CreatedAt
	assert.Equal(t, want, got)
}

func TestStoreRecentSessionsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for i, layout := range []string{"classic", "wall", "classic", "pillars", "classic"} {
		_, err := store.SaveSession(SessionRecord{Layout: layout, Host: HostTerminal, Seed: int64(i)})
		require.NoError(t, err)
	}

	all, err := store.RecentSessions("", 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, int64(4), all[0].Seed, "newest first")

	classic, err := store.RecentSessions("classic", 2)
	require.NoError(t, err)
	require.Len(t, classic, 2)
	assert.Equal(t, int64(4), classic[0].Seed)
	assert.Equal(t, int64(2), classic[1].Seed)
}

func TestStoreTotals(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Totals("wall")
	require.NoError(t, err)
	assert.Equal(t, LayoutTotals{}, empty)

	for _, rec := range []SessionRecord{
		{Layout: "wall", Host: HostWindow, Ticks: 100, BallsSpawned: 3, BricksCleared: 5},
		{Layout: "wall", Host: HostTerminal, Ticks: 50, BallsSpawned: 1, BricksCleared: 2},
		{Layout: "classic", Host: HostTerminal, Ticks: 999, BallsSpawned: 9, BricksCleared: 1},
	} {
		_, err := store.SaveSession(rec)
		require.NoError(t, err)
	}

	totals, err := store.Totals("wall")
	require.NoError(t, err)
	assert.Equal(t, LayoutTotals{Sessions: 2, Ticks: 150, BallsSpawned: 4, BricksCleared: 7}, totals)
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveSession(SessionRecord{Layout: "wall", Host: HostTerminal})
	require.NoError(t, err)
	_, err = store.SaveSession(SessionRecord{Layout: "classic", Host: HostTerminal})
	require.NoError(t, err)

	require.NoError(t, store.ClearSessions("wall"))

	records, err := store.RecentSessions("", 10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "classic", records[0].Layout)
}
