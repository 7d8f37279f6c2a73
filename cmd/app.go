package cmd

import (
	"fmt"

	"pipeline-hud/core/config"
	"pipeline-hud/core/database"
	"pipeline-hud/core/logger"
	"pipeline-hud/core/storage"
	"pipeline-hud/core/stream"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// bootstrap loads the configuration and builds the logger shared by all commands.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)
	return cfg, logg, nil
}

// openStorage returns nil when snapshot storage is disabled.
func openStorage(cfg storage.Config) (storage.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	client, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return client, nil
}

// openJournal connects to the journal database. Failure is not fatal:
// the journal is optional, so the caller gets nil and a warning is logged.
func openJournal(cfg database.Config, logg *zap.Logger) *gorm.DB {
	if !cfg.Enabled {
		return nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional journal database connection failed", zap.Error(err))
		return nil
	}
	logg.Info("Connected to journal database", zap.String("driver", cfg.Driver))
	return db
}

// newSource picks the snapshot replay or the live websocket stream.
func newSource(cfg *config.Config, client storage.Client, logg *zap.Logger) (stream.Source, error) {
	if cfg.Stream.Snapshot != "" {
		return stream.NewSnapshotSourceFromConfig(cfg.Stream, client, cfg.Storage.Bucket, logg)
	}
	return stream.NewWebsocketSource(cfg.Stream, logg), nil
}
