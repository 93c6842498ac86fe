package templates

import (
	"errors"
	"path"

	"livecast/core/logger"
	"livecast/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FormField is the multipart field carrying the uploaded file.
const FormField = "file"

// Handler handles HTTP requests for templates.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the template routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/api/templates/upload", h.HandleUpload)
	app.Get("/api/templates", h.HandleList)
	app.Get("/templates/:name", h.HandleServe)
}

// HandleUpload stores an uploaded template file.
// @Summary Upload Template
// @Description Stores a multipart file under its base name. An existing file with the same name is replaced.
// @Tags templates
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Template file"
// @Success 200 {object} map[string]string "Stored filename"
// @Failure 400 {object} map[string]string "No file uploaded"
// @Router /api/templates/upload [post]
func (h *Handler) HandleUpload(c *fiber.Ctx) error {
	fh, err := c.FormFile(FormField)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No file uploaded"})
	}

	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Cannot read uploaded file")
	}
	defer f.Close()

	name, err := h.service.Upload(c.Context(), fh.Filename, f, fh.Size)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidName) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid filename"})
		}
		return err
	}

	logger.WithRayID(h.service.logger, c).Info("Template uploaded",
		zap.String("filename", name),
		zap.Int64("bytes", fh.Size),
	)
	return c.JSON(fiber.Map{"filename": name})
}

// HandleList returns the stored templates.
// @Summary List Templates
// @Tags templates
// @Produce json
// @Success 200 {object} map[string]interface{} "Stored templates"
// @Router /api/templates [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	objects, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"templates": objects})
}

// HandleServe streams a stored template.
// @Summary Serve Template
// @Tags templates
// @Param name path string true "Template filename"
// @Success 200 {file} file "Template content"
// @Failure 404 {object} map[string]string "Not found"
// @Router /templates/{name} [get]
func (h *Handler) HandleServe(c *fiber.Ctx) error {
	name := c.Params("name")
	rc, err := h.service.Open(c.Context(), name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
			return fiber.ErrNotFound
		}
		return err
	}

	if ext := path.Ext(name); ext != "" {
		c.Type(ext[1:])
	}
	// SendStream closes rc once the body is written
	return c.SendStream(rc)
}
