package files

import (
	"livecast/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for directory listings.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the file routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/api/files", h.HandleList)
}

// HandleList returns the HTML files of a directory.
// @Summary List HTML Files
// @Description Returns name and content of each .html file in the directory given by path. Unreadable files are omitted.
// @Tags files
// @Produce json
// @Param path query string true "Directory path"
// @Success 200 {object} map[string]interface{} "Files"
// @Failure 400 {object} map[string]string "Missing path query param"
// @Failure 500 {object} map[string]string "Cannot read directory"
// @Router /api/files [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	dir := c.Query("path")
	if dir == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Missing path query param"})
	}

	files, err := h.service.List(c.Context(), dir)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Warn("Failed to list directory",
			zap.String("path", dir),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Cannot read directory"})
	}

	return c.JSON(fiber.Map{"files": files})
}
