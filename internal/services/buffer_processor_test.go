package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/portfolio/domain"
	"github.com/fastygo/portfolio/internal/infrastructure/buffer"
)

type staticHealth bool

func (h staticHealth) IsOnline() bool { return bool(h) }

type replayCall struct {
	entity  string
	payload string
}

type recordingReplayer struct {
	calls []replayCall
	err   error
}

func (r *recordingReplayer) Replay(_ context.Context, entity string, payload []byte) error {
	r.calls = append(r.calls, replayCall{entity: entity, payload: string(payload)})
	return r.err
}

func newProcessor(t *testing.T, online bool, replayer Replayer, maxRetries int) (*BufferProcessor, *buffer.Store) {
	t.Helper()
	store, err := buffer.Open(filepath.Join(t.TempDir(), "buffer.db"), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return NewBufferProcessor(store, staticHealth(online), replayer, nil, ProcessorConfig{MaxRetries: maxRetries}), store
}

func TestBufferProcessor_EnqueueThenDrain(t *testing.T) {
	replayer := &recordingReplayer{}
	proc, _ := newProcessor(t, true, replayer, 3)

	require.NoError(t, proc.Enqueue(context.Background(), "hero", &domain.Hero{Title: "Hi"}))
	assert.Equal(t, 1, proc.Size())

	require.NoError(t, proc.Drain(context.Background()))

	require.Len(t, replayer.calls, 1)
	assert.Equal(t, "hero", replayer.calls[0].entity)
	assert.Contains(t, replayer.calls[0].payload, `"title":"Hi"`)
	assert.Equal(t, 0, proc.Size())
}

func TestBufferProcessor_SkipsWhileOffline(t *testing.T) {
	replayer := &recordingReplayer{}
	proc, _ := newProcessor(t, false, replayer, 3)

	require.NoError(t, proc.Enqueue(context.Background(), "about", &domain.About{Heading: "About", Bio: "Jo"}))
	require.NoError(t, proc.Drain(context.Background()))

	assert.Empty(t, replayer.calls)
	assert.Equal(t, 1, proc.Size())
}

func TestBufferProcessor_RequeuesThenDrops(t *testing.T) {
	replayer := &recordingReplayer{err: errors.New("store unavailable")}
	proc, store := newProcessor(t, true, replayer, 2)

	require.NoError(t, proc.Enqueue(context.Background(), "project", &domain.Project{Title: "P"}))

	require.NoError(t, proc.Drain(context.Background()))
	items, err := store.GetBatch(10)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Retries)
	assert.Equal(t, "store unavailable", items[0].LastError)

	require.NoError(t, proc.Drain(context.Background()))
	assert.Equal(t, 0, proc.Size())
	assert.Len(t, replayer.calls, 2)
}

func TestBufferProcessor_NilStore(t *testing.T) {
	proc := NewBufferProcessor(nil, nil, nil, nil, ProcessorConfig{})
	assert.Error(t, proc.Enqueue(context.Background(), "hero", struct{}{}))
	assert.NoError(t, proc.Drain(context.Background()))
	assert.Equal(t, 0, proc.Size())
}
