package stream

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"pipeline-hud/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const wrappedSnapshot = `{"view":{"uiSession":{"status":{"tiltStartTime":"t1"}},"uiResources":[{"metadata":{"name":"api"}}]},"createdAt":"2026-01-01T00:00:00Z"}`

func TestDecodeSnapshot(t *testing.T) {
	t.Run("Wrapped", func(t *testing.T) {
		d, err := DecodeSnapshot([]byte(wrappedSnapshot))
		require.NoError(t, err)
		assert.True(t, d.IsComplete)
		assert.Equal(t, "t1", d.Session.StartTime())
		require.Len(t, d.Resources, 1)
	})

	t.Run("Bare", func(t *testing.T) {
		d, err := DecodeSnapshot([]byte(`{"uiButtons":[{"metadata":{"name":"b"}}]}`))
		require.NoError(t, err)
		assert.True(t, d.IsComplete)
		assert.Len(t, d.Buttons, 1)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte("  "))
		assert.Error(t, err)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := DecodeSnapshot([]byte("{"))
		assert.Error(t, err)
	})
}

func TestSnapshotSource_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "view.json")
	require.NoError(t, os.WriteFile(path, []byte(wrappedSnapshot), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	src, err := NewSnapshotSourceFromConfig(Config{Snapshot: path}, nil, "", zap.NewNop())
	require.NoError(t, err)

	events := make(chan Event)
	done := make(chan error, 1)
	go func() { done <- src.Run(ctx, events) }()

	assert.Equal(t, EventConnected, next(t, events).Kind)
	first := next(t, events)
	require.Equal(t, EventDelta, first.Kind)
	assert.True(t, first.Delta.IsComplete)

	src.Reconnect()
	assert.Equal(t, EventConnected, next(t, events).Kind)
	again := next(t, events)
	assert.Same(t, first.Delta, again.Delta)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestSnapshotSource_MissingFile(t *testing.T) {
	src := NewSnapshotSource("missing", FileLoader(filepath.Join(t.TempDir(), "nope.json")), zap.NewNop())
	err := src.Run(context.Background(), make(chan Event))
	assert.ErrorContains(t, err, "failed to read snapshot")
}

func TestSnapshotSource_Storage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := new(mocks.Client)
	m.On("GetObject", ctx, "hud", "snapshots/a.json", minio.GetObjectOptions{}).
		Return(io.NopCloser(strings.NewReader(wrappedSnapshot)), nil)

	src, err := NewSnapshotSourceFromConfig(Config{Snapshot: "snapshots/a.json", SnapshotFromStorage: true}, m, "hud", zap.NewNop())
	require.NoError(t, err)

	events := make(chan Event)
	go src.Run(ctx, events)

	assert.Equal(t, EventConnected, next(t, events).Kind)
	ev := next(t, events)
	require.Equal(t, EventDelta, ev.Kind)
	assert.Equal(t, SnapshotConnID, ev.ConnID)
	m.AssertExpectations(t)
}

func TestSnapshotSource_StorageDisabled(t *testing.T) {
	_, err := NewSnapshotSourceFromConfig(Config{Snapshot: "k", SnapshotFromStorage: true}, nil, "hud", zap.NewNop())
	assert.Error(t, err)
}

func TestSnapshotSource_LoadError(t *testing.T) {
	src := NewSnapshotSource("broken", func(context.Context) ([]byte, error) {
		return nil, errors.New("boom")
	}, zap.NewNop())
	assert.EqualError(t, src.Run(context.Background(), make(chan Event)), "boom")
}
