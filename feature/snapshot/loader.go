package snapshot

import (
	"pipeline-hud/core/logstore"
	"pipeline-hud/core/state"
	"pipeline-hud/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Snapshot feature. A nil client disables it.
func NewFeature(client storage.Client, cfg storage.Config, holder *state.Holder, logs *logstore.Store, exportBytes int, logger *zap.Logger) *Feature {
	svc := NewService(client, cfg, holder, logs, exportBytes, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "snapshot"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.client != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
