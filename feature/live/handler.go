package live

import (
	"errors"
	"strconv"

	"livecast/core/broadcast"
	"livecast/core/logger"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

const maxHistoryLimit = 1000

// SendTemplateRequest is the body of POST /api/live/send-template.
type SendTemplateRequest struct {
	Content string `json:"content" form:"content"`
}

// Handler handles HTTP requests for the live page and its push channel.
type Handler struct {
	service *Service
	cfg     broadcast.Config
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, cfg broadcast.Config) *Handler {
	return &Handler{service: service, cfg: cfg}
}

// RegisterRoutes registers the live routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/live", h.HandleLivePage)
	app.Get("/events", h.HandleEvents)
	app.Get("/ws", requireUpgrade, websocket.New(h.HandleSocket))

	api := app.Group("/api")
	api.Post("/live/send-template", h.HandleSendTemplate)
	api.Get("/live/template", h.HandleGetTemplate)
	api.Get("/connections", h.HandleListConnections)
	api.Get("/connections/history", h.HandleHistory)
}

// HandleLivePage registers the visitor and renders the live document.
// @Summary Live Page
// @Description Registers the requester as a viewer, announces it with a new-connection event and returns the live document embedding the current template.
// @Tags live
// @Produce html
// @Success 200 {string} string "Live page"
// @Router /live [get]
func (h *Handler) HandleLivePage(c *fiber.Ctx) error {
	rec := h.service.RegisterViewer(c.Context(), c.IP())

	logger.WithRayID(h.service.logger, c).Info("Viewer registered",
		zap.Int64("connection_id", rec.ID),
		zap.String("ip", rec.IP),
		zap.String("country", rec.CountryCode),
	)

	page, err := renderLivePage(h.service.Template(), rec.ID)
	if err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(page)
}

// HandleSendTemplate replaces the live template.
// @Summary Send Template Live
// @Description Replaces the live template and pushes it to every subscribed viewer.
// @Tags live
// @Accept json
// @Produce json
// @Param request body SendTemplateRequest true "Template content"
// @Success 200 {object} map[string]bool "Success"
// @Failure 400 {object} map[string]string "No content provided"
// @Router /api/live/send-template [post]
func (h *Handler) HandleSendTemplate(c *fiber.Ctx) error {
	var req SendTemplateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	// The template outlives the request; parsed values may alias its buffers
	if err := h.service.SendTemplate(utils.CopyString(req.Content)); err != nil {
		if errors.Is(err, ErrEmptyContent) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No content provided"})
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true})
}

// HandleGetTemplate returns the current live template.
// @Summary Current Template
// @Tags live
// @Produce json
// @Success 200 {object} map[string]string "Current template"
// @Router /api/live/template [get]
func (h *Handler) HandleGetTemplate(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"content": h.service.Template()})
}

// HandleListConnections returns the connection registry snapshot.
// @Summary List Connections
// @Tags live
// @Produce json
// @Success 200 {array} ConnectionRecord "Registered viewers"
// @Router /api/connections [get]
func (h *Handler) HandleListConnections(c *fiber.Ctx) error {
	return c.JSON(h.service.Connections())
}

// HandleHistory returns recent visits from the visit history.
// @Summary Visit History
// @Tags live
// @Produce json
// @Param limit query int false "Maximum number of visits"
// @Success 200 {object} map[string]interface{} "Visits"
// @Failure 503 {object} map[string]string "History disabled"
// @Router /api/connections/history [get]
func (h *Handler) HandleHistory(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", DefaultHistoryLimit)
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	visits, err := h.service.History(c.Context(), limit)
	if err != nil {
		if errors.Is(err, ErrHistoryDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		logger.WithRayID(h.service.logger, c).Error("Failed to load visit history", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot load history"})
	}

	return c.JSON(fiber.Map{"visits": visits})
}

func requireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// parseViewer returns the claimed connection id, or 0 when absent or malformed.
func parseViewer(raw string) int64 {
	if raw == "" {
		return 0
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0
	}
	return id
}
