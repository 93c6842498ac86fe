package server

import (
	"errors"

	"livecast/core/logger"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New creates the Fiber application with the shared JSON codec and error handler.
// Context values are immutable: the live template and pushed events outlive the request.
func New(cfg Config, logg *zap.Logger) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true,
		BodyLimit:             cfg.BodyLimitBytes(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler(logg),
	})
}

// ErrorHandler renders every unhandled error as {"error": message}.
// Errors without a fiber status map to 500 and are logged.
func ErrorHandler(logg *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			logger.WithRayID(logg, c).Error("Unhandled request error",
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}

		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
}
