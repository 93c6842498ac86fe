package live

import (
	"livecast/core/broadcast"

	"github.com/gofiber/fiber/v2"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the live feature.
func NewFeature(deps Dependencies, cfg broadcast.Config) *Feature {
	deps.EvictOnDisconnect = cfg.EvictOnDisconnect
	svc := NewService(deps)
	return &Feature{service: svc, handler: NewHandler(svc, cfg)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "live"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's live service.
func (f *Feature) Service() *Service {
	return f.service
}
