package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := InitDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewStore(db)
}

func TestStore_MissingSlot(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Load("nope")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestStore_SaveLoadOverwrite(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("theme", "dark"))

	value, ok, err := store.Load("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)

	// overwrite keeps a single row per key
	require.NoError(t, store.Save("theme", "light"))
	value, ok, err = store.Load("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Save("active_tasks", `[{"id":"t1","text":"A"}]`))
	require.NoError(t, store.Save("deleted_tasks", `[]`))

	active, ok, err := store.Load("active_tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, active, `"t1"`)

	deleted, ok, err := store.Load("deleted_tasks")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, deleted)
}

func TestStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	db, err := InitDB(path)
	require.NoError(t, err)
	require.NoError(t, NewStore(db).Save("theme", "dark"))
	require.NoError(t, db.Close())

	db, err = InitDB(path)
	require.NoError(t, err)
	defer db.Close()

	value, ok, err := NewStore(db).Load("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", value)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Load("theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save("theme", "dark"))
	require.NoError(t, store.Save("theme", "light"))

	value, ok, err := store.Load("theme")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", value)
	assert.Equal(t, 2, store.SaveCount("theme"))
}
