package view

import (
	"errors"
	"strings"

	"pipeline-hud/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the view.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the view routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/view")
	group.Get("/", h.HandleGetView)
	group.Get("/session", h.HandleGetSession)
	group.Get("/resources", h.HandleListResources)
	group.Get("/resources/:name", h.HandleGetResource)
	group.Get("/buttons", h.HandleListButtons)
	group.Get("/clusters", h.HandleListClusters)
	group.Get("/logs", h.HandleGetLogs)
	group.Get("/alerts/:span", h.HandleGetAlerts)
	group.Get("/stats", h.HandleGetStats)
}

// HandleGetView returns the whole reconciled view.
// @Summary Get View
// @Description Returns the current session, resources, buttons and clusters.
// @Tags view
// @Produce json
// @Success 200 {object} model.View "View"
// @Failure 503 {object} map[string]string "No view yet"
// @Router /view [get]
func (h *Handler) HandleGetView(c *fiber.Ctx) error {
	v, err := h.service.Current()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// HandleGetSession returns the session of the current server run.
// @Summary Get Session
// @Tags view
// @Produce json
// @Success 200 {object} model.UISession "Session"
// @Failure 404 {object} map[string]string "No session"
// @Failure 503 {object} map[string]string "No view yet"
// @Router /view/session [get]
func (h *Handler) HandleGetSession(c *fiber.Ctx) error {
	v, err := h.service.Current()
	if err != nil {
		return h.fail(c, err)
	}
	if v.Session == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "no session received"})
	}
	return c.JSON(v.Session)
}

// HandleListResources lists resources in display order.
// @Summary List Resources
// @Tags view
// @Produce json
// @Param runtime query string false "Runtime status filter (e.g. 'ok', 'error')"
// @Param update query string false "Update status filter (e.g. 'in_progress')"
// @Success 200 {array} model.UIResource "Resources"
// @Failure 503 {object} map[string]string "No view yet"
// @Router /view/resources [get]
func (h *Handler) HandleListResources(c *fiber.Ctx) error {
	resources, err := h.service.Resources(ResourceFilter{
		RuntimeStatus: c.Query("runtime"),
		UpdateStatus:  c.Query("update"),
	})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(resources)
}

// HandleGetResource returns a single resource.
// @Summary Get Resource
// @Tags view
// @Produce json
// @Param name path string true "Resource name"
// @Success 200 {object} model.UIResource "Resource"
// @Failure 404 {object} map[string]string "Not found"
// @Failure 503 {object} map[string]string "No view yet"
// @Router /view/resources/{name} [get]
func (h *Handler) HandleGetResource(c *fiber.Ctx) error {
	r, err := h.service.Resource(c.Params("name"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(r)
}

// HandleListButtons lists buttons in display order.
// @Summary List Buttons
// @Tags view
// @Produce json
// @Param component query string false "Component id the buttons are attached to"
// @Success 200 {array} model.UIButton "Buttons"
// @Failure 503 {object} map[string]string "No view yet"
// @Router /view/buttons [get]
func (h *Handler) HandleListButtons(c *fiber.Ctx) error {
	buttons, err := h.service.Buttons(c.Query("component"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(buttons)
}

// HandleListClusters lists clusters in display order.
// @Summary List Clusters
// @Tags view
// @Produce json
// @Success 200 {array} model.Cluster "Clusters"
// @Failure 503 {object} map[string]string "No view yet"
// @Router /view/clusters [get]
func (h *Handler) HandleListClusters(c *fiber.Ctx) error {
	v, err := h.service.Current()
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v.Clusters)
}

// HandleGetLogs returns log lines.
// @Summary Get Logs
// @Tags view
// @Produce json
// @Param span query string false "Comma separated span ids"
// @Param manifest query string false "Manifest name"
// @Param tail query int false "Keep only the last N lines"
// @Success 200 {array} logstore.Line "Lines"
// @Router /view/logs [get]
func (h *Handler) HandleGetLogs(c *fiber.Ctx) error {
	q := LogQuery{
		Manifest: c.Query("manifest"),
		Tail:     c.QueryInt("tail", 0),
	}
	if spans := c.Query("span"); spans != "" {
		q.SpanIDs = strings.Split(spans, ",")
	}
	return c.JSON(h.service.Logs(q))
}

// HandleGetAlerts returns the alert anchors of a span.
// @Summary Get Span Alerts
// @Tags view
// @Produce json
// @Param span path string true "Span id"
// @Success 200 {array} logstore.Alert "Alerts"
// @Router /view/alerts/{span} [get]
func (h *Handler) HandleGetAlerts(c *fiber.Ctx) error {
	return c.JSON(h.service.Alerts(c.Params("span")))
}

// HandleGetStats returns sync loop counters.
// @Summary Get Sync Stats
// @Tags view
// @Produce json
// @Success 200 {object} Stats "Stats"
// @Router /view/stats [get]
func (h *Handler) HandleGetStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotReady):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		logger.WithRayID(h.service.logger, c).Error("View query failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
