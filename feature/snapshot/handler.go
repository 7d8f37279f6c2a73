package snapshot

import (
	"errors"

	"pipeline-hud/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshots.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the snapshot routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/snapshot")
	group.Post("/", h.HandleExport)
	group.Get("/", h.HandleList)
}

// HandleExport exports the current view.
// @Summary Export Snapshot
// @Description Writes the current view and recent logs to object storage.
// @Tags snapshot
// @Produce json
// @Success 201 {object} map[string]string "Object key"
// @Failure 409 {object} map[string]string "No view yet"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshot [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key, err := h.service.Export(c.Context())
	if errors.Is(err, ErrNoView) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"key": key})
}

// HandleList lists exported snapshots.
// @Summary List Snapshots
// @Tags snapshot
// @Produce json
// @Success 200 {object} map[string][]string "Object keys"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /snapshot [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	keys, err := h.service.List(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Snapshot listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if keys == nil {
		keys = []string{}
	}
	return c.JSON(fiber.Map{"keys": keys})
}
