package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"pipeline-hud/core/logstore"
	"pipeline-hud/core/model"
	"pipeline-hud/core/state"
	"pipeline-hud/core/storage"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Prefix is the object key prefix of exported snapshots.
const Prefix = "snapshots/"

// ErrNoView is returned when there is nothing to export yet.
var ErrNoView = errors.New("no view to export yet")

// Service exports views to object storage.
type Service struct {
	client      storage.Client
	bucket      string
	region      string
	holder      *state.Holder
	logs        *logstore.Store
	exportBytes int
	logger      *zap.Logger

	group singleflight.Group
	now   func() time.Time
}

// NewService creates a new snapshot service.
func NewService(client storage.Client, cfg storage.Config, holder *state.Holder, logs *logstore.Store, exportBytes int, logger *zap.Logger) *Service {
	return &Service{
		client:      client,
		bucket:      cfg.Bucket,
		region:      cfg.Region,
		holder:      holder,
		logs:        logs,
		exportBytes: exportBytes,
		logger:      logger,
		now:         time.Now,
	}
}

// Export uploads the current view and returns its object key.
// Callers arriving while an export is running receive that export's key.
func (s *Service) Export(ctx context.Context) (string, error) {
	if s.holder.Version() == 0 {
		return "", ErrNoView
	}

	key, err, shared := s.group.Do("export", func() (any, error) {
		return s.export(ctx)
	})
	if err != nil {
		return "", err
	}
	if shared {
		s.logger.Debug("Joined running snapshot export", zap.String("key", key.(string)))
	}
	return key.(string), nil
}

func (s *Service) export(ctx context.Context) (string, error) {
	now := s.now().UTC()
	snap := Build(s.holder.Current(), s.logs, s.exportBytes, now)

	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := storage.EnsureBucket(ctx, s.client, s.bucket, s.region); err != nil {
		return "", err
	}

	key := Prefix + ulid.MustNew(ulid.Timestamp(now), ulid.DefaultEntropy()).String() + ".json"
	if err := storage.PutJSON(ctx, s.client, s.bucket, key, data); err != nil {
		return "", err
	}

	s.logger.Info("Snapshot exported", zap.String("key", key), zap.Int("bytes", len(data)))
	return key, nil
}

// List returns the stored snapshot keys, oldest first.
func (s *Service) List(ctx context.Context) ([]string, error) {
	return storage.ListKeys(ctx, s.client, s.bucket, Prefix)
}

// Build captures view and the newest log segments, up to maxBytes of text as a snapshot.
func Build(view *model.View, logs *logstore.Store, maxBytes int, at time.Time) *model.Snapshot {
	delta := &model.Delta{
		Session:    view.Session,
		Resources:  view.Resources,
		Buttons:    view.Buttons,
		Clusters:   view.Clusters,
		IsComplete: true,
	}
	if logs != nil {
		delta.LogList = logs.ToLogList(maxBytes)
	}
	return &model.Snapshot{
		View:      delta,
		Path:      "/",
		CreatedAt: at.Format(time.RFC3339),
	}
}
