package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pong-bricks/internal/storage"
)

func seededStore(t *testing.T) *storage.Store {
	t.Helper()

	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	for _, rec := range []storage.SessionRecord{
		{Layout: "classic", Host: storage.HostTerminal, Ticks: 100, BallsSpawned: 2, BricksCleared: 1},
		{Layout: "wall", Host: storage.HostSSH, Player: "alice", Ticks: 50, BallsSpawned: 4, BricksCleared: 9},
		{Layout: "wall", Host: storage.HostWindow, Ticks: 10, BallsSpawned: 1},
	} {
		_, err := store.SaveSession(rec)
		require.NoError(t, err)
	}
	return store
}

func TestHistoryAllLayouts(t *testing.T) {
	m := NewHistoryModel(seededStore(t), "", 100, 30)

	assert.Len(t, m.records, 3)
	assert.Nil(t, m.totals)
	assert.Contains(t, m.View(), "SESSION HISTORY")
	assert.Contains(t, m.totalsLine(), "3 sessions shown")
}

func TestHistoryLayoutFilterAndTotals(t *testing.T) {
	m := NewHistoryModel(seededStore(t), "wall", 100, 30)

	require.Len(t, m.records, 2)
	require.NotNil(t, m.totals)
	assert.Equal(t, storage.LayoutTotals{Sessions: 2, Ticks: 60, BallsSpawned: 5, BricksCleared: 9}, *m.totals)
	assert.Contains(t, m.totalsLine(), "9 bricks cleared")
}

func TestHistoryCyclesFilters(t *testing.T) {
	m := NewHistoryModel(seededStore(t), "", 100, 30)
	require.Equal(t, allLayouts, m.filters[m.cursor])

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	assert.Equal(t, m.filters[1], m.filters[m.cursor])

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(HistoryModel)
	assert.Equal(t, len(m.filters)-1, m.cursor, "prev wraps around")
}

func TestHistoryWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)
	assert.Empty(t, m.records)
	assert.Contains(t, m.View(), "unavailable")
}

func TestHistoryQuit(t *testing.T) {
	m := NewHistoryModel(nil, "", 80, 24)
	next, cmd := m.Update(runeKey('q'))
	m = next.(HistoryModel)

	assert.NotNil(t, cmd)
	assert.Empty(t, m.View())
}

func TestHistoryRows(t *testing.T) {
	created := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	rows := historyRows([]storage.SessionRecord{
		{Layout: "classic", Host: storage.HostTerminal, Ticks: 12, BallsSpawned: 3, BricksCleared: 1, CreatedAt: created},
	})

	require.Len(t, rows, 1)
	assert.Equal(t, "Mar 05 14:30", rows[0][0])
	assert.Equal(t, "-", rows[0][3], "missing player is shown as a dash")
	assert.Equal(t, "12", rows[0][4])
}
