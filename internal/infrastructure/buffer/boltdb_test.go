package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "buffer.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_EnqueueKeepsTimestampOrder(t *testing.T) {
	store := openStore(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, store.Enqueue(Item{Entity: "blog", Data: json.RawMessage(`{"title":"b"}`), Timestamp: base.Add(time.Minute)}))
	require.NoError(t, store.Enqueue(Item{Entity: "hero", Data: json.RawMessage(`{"title":"a"}`), Timestamp: base}))

	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "hero", items[0].Entity)
	assert.Equal(t, "blog", items[1].Entity)
	assert.NotEmpty(t, items[0].ID)
	assert.JSONEq(t, `{"title":"a"}`, string(items[0].Data))
}

func TestStore_GetBatchHonoursLimit(t *testing.T) {
	store := openStore(t)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Enqueue(Item{Entity: "project", Data: json.RawMessage(`{}`)}))
	}

	items, err := store.GetBatch(2)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestStore_RemoveAndRequeue(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Enqueue(Item{ID: "first", Entity: "hero", Data: json.RawMessage(`{}`), Timestamp: time.Unix(1, 0)}))
	require.NoError(t, store.Enqueue(Item{ID: "second", Entity: "about", Data: json.RawMessage(`{}`), Timestamp: time.Unix(2, 0)}))

	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 2)

	first := items[0]
	first.Retries++
	require.NoError(t, store.Requeue(first))

	items, err = store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "second", items[0].ID)
	assert.Equal(t, "first", items[1].ID)
	assert.Equal(t, 1, items[1].Retries)

	require.NoError(t, store.Remove(items[0]))
	size, err := store.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "buffer.db")
	store, err := Open(path, "")
	require.NoError(t, err)
	require.NoError(t, store.Enqueue(Item{Entity: "stats", Data: json.RawMessage(`[]`)}))
	require.NoError(t, store.Close())

	reopened, err := Open(path, "")
	require.NoError(t, err)
	defer reopened.Close()

	size, err := reopened.Size()
	require.NoError(t, err)
	assert.Equal(t, 1, size)
}

func TestStore_NilIsNotOpen(t *testing.T) {
	var store *Store
	_, err := store.Size()
	assert.Error(t, err)
	assert.Error(t, store.Enqueue(Item{}))
	assert.NoError(t, store.Close())
}
