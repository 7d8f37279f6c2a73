package stream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"pipeline-hud/core/model"
	"pipeline-hud/core/storage"

	"go.uber.org/zap"
)

// SnapshotConnID is the connection id reported by snapshot sources.
const SnapshotConnID = "snapshot"

// LoadFunc fetches the raw snapshot document.
type LoadFunc func(ctx context.Context) ([]byte, error)

// SnapshotSource replays one exported snapshot as a complete view.
type SnapshotSource struct {
	name      string
	load      LoadFunc
	log       *zap.Logger
	reconnect chan struct{}
}

// NewSnapshotSource creates a source replaying whatever load returns.
func NewSnapshotSource(name string, load LoadFunc, log *zap.Logger) *SnapshotSource {
	return &SnapshotSource{
		name:      name,
		load:      load,
		log:       log,
		reconnect: make(chan struct{}, 1),
	}
}

// FileLoader reads a snapshot from the local filesystem.
func FileLoader(path string) LoadFunc {
	return func(context.Context) ([]byte, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
		}
		return data, nil
	}
}

// StorageLoader reads a snapshot from object storage.
func StorageLoader(client storage.Client, bucket, key string) LoadFunc {
	return func(ctx context.Context) ([]byte, error) {
		return storage.ReadAll(ctx, client, bucket, key)
	}
}

// NewSnapshotSourceFromConfig picks the file or storage loader from cfg.
func NewSnapshotSourceFromConfig(cfg Config, client storage.Client, bucket string, log *zap.Logger) (*SnapshotSource, error) {
	if !cfg.SnapshotFromStorage {
		return NewSnapshotSource(cfg.Snapshot, FileLoader(cfg.Snapshot), log), nil
	}
	if client == nil {
		return nil, fmt.Errorf("snapshot %s needs object storage, which is disabled", cfg.Snapshot)
	}
	return NewSnapshotSource(cfg.Snapshot, StorageLoader(client, bucket, cfg.Snapshot), log), nil
}

// Reconnect schedules another delivery of the snapshot.
func (s *SnapshotSource) Reconnect() {
	select {
	case s.reconnect <- struct{}{}:
	default:
	}
}

// Run loads the snapshot, delivers it, then waits for ctx or a reconnect.
// A snapshot that cannot be loaded or decoded is a fatal error.
func (s *SnapshotSource) Run(ctx context.Context, out chan<- Event) error {
	data, err := s.load(ctx)
	if err != nil {
		return err
	}
	delta, err := DecodeSnapshot(data)
	if err != nil {
		return fmt.Errorf("failed to decode snapshot %s: %w", s.name, err)
	}

	s.log.Info("Replaying snapshot", zap.String("snapshot", s.name),
		zap.Int("resources", len(delta.Resources)))

	for {
		if !emit(ctx, out, Event{Kind: EventConnected, ConnID: SnapshotConnID}) {
			return nil
		}
		if !emit(ctx, out, Event{Kind: EventDelta, ConnID: SnapshotConnID, Delta: delta}) {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-s.reconnect:
		}
	}
}

// DecodeSnapshot accepts either a wrapped model.Snapshot or a bare delta.
// The result is always marked complete.
func DecodeSnapshot(data []byte) (*model.Delta, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty snapshot")
	}

	var wrapped model.Snapshot
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, err
	}

	delta := wrapped.View
	if delta == nil {
		delta = &model.Delta{}
		if err := json.Unmarshal(data, delta); err != nil {
			return nil, err
		}
	}
	delta.IsComplete = true
	return delta, nil
}
