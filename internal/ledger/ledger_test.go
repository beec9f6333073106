package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerTestSuite(t *testing.T, newLedger func(t *testing.T) *Ledger) {
	t.Run("RecordAssignsIDAndTime", func(t *testing.T) {
		l := newLedger(t)

		run := &Run{EdgeCount: 10, Seed: 3, NumObjects: 4, NumResources: 5}
		require.NoError(t, l.Record(run))

		_, err := uuid.Parse(run.ID)
		assert.NoError(t, err, "ID should be a UUID")
		assert.False(t, run.CreatedAt.IsZero())

		got, err := l.Get(run.ID)
		require.NoError(t, err)
		assert.Equal(t, run.EdgeCount, got.EdgeCount)
		assert.Equal(t, run.Seed, got.Seed)
		assert.Equal(t, run.NumObjects, got.NumObjects)
		assert.Equal(t, run.NumResources, got.NumResources)
		assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
	})

	t.Run("GetMissing", func(t *testing.T) {
		l := newLedger(t)

		_, err := l.Get("does-not-exist")
		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("ListNewestFirst", func(t *testing.T) {
		l := newLedger(t)
		base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, l.Record(&Run{ID: "b", EdgeCount: 1, CreatedAt: base}))
		require.NoError(t, l.Record(&Run{ID: "c", EdgeCount: 2, CreatedAt: base.Add(time.Hour)}))
		require.NoError(t, l.Record(&Run{ID: "a", EdgeCount: 3, CreatedAt: base}))

		runs, err := l.List()
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, "c", runs[0].ID)
		assert.Equal(t, "a", runs[1].ID)
		assert.Equal(t, "b", runs[2].ID)
	})

	t.Run("ListEmpty", func(t *testing.T) {
		l := newLedger(t)

		runs, err := l.List()
		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}

func TestLedger_Memory(t *testing.T) {
	ledgerTestSuite(t, func(t *testing.T) *Ledger {
		l, err := New(NewMemoryBackend())
		require.NoError(t, err)
		return l
	})
}

func TestLedger_Bbolt(t *testing.T) {
	ledgerTestSuite(t, func(t *testing.T) *Ledger {
		l, err := Open(filepath.Join(t.TempDir(), "runs.db"))
		require.NoError(t, err)
		t.Cleanup(func() { l.Close() })
		return l
	})
}

func TestLedger_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "runs.db")

	l, err := Open(path)
	require.NoError(t, err)
	run := &Run{EdgeCount: 50, TreeObjectsPath: "50_edge_tree_objects.csv"}
	require.NoError(t, l.Record(run))
	require.NoError(t, l.Close())

	l, err = Open(path)
	require.NoError(t, err)
	defer l.Close()

	got, err := l.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, "50_edge_tree_objects.csv", got.TreeObjectsPath)
}
