package journal

import (
	"errors"

	"pipeline-hud/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the journal.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the journal routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/journal", h.HandleList)
}

// HandleList returns recent sync events.
// @Summary List Sync Events
// @Description Returns the most recent sync loop transitions first.
// @Tags journal
// @Produce json
// @Param limit query int false "Maximum number of events (default 50, max 500)"
// @Param kind query string false "Event kind (connected, disconnected, full_refresh, hard_reset)"
// @Success 200 {array} Event "Events"
// @Failure 503 {object} map[string]string "Journal disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /journal [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	events, err := h.service.List(c.Context(), Query{
		Kind:  c.Query("kind"),
		Limit: c.QueryInt("limit", DefaultLimit),
	})
	if errors.Is(err, ErrDisabled) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Journal query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if events == nil {
		events = []Event{}
	}
	return c.JSON(events)
}
