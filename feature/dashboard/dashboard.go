package dashboard

import (
	"path/filepath"

	"github.com/gofiber/fiber/v2"
)

// IndexFile is the control panel document inside the assets directory.
const IndexFile = "index.html"

// Feature implements the loader.Feature interface.
type Feature struct {
	dir string
}

// NewFeature creates the dashboard feature serving dir.
func NewFeature(dir string) *Feature {
	if dir == "" {
		dir = "assets"
	}
	return &Feature{dir: dir}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "dashboard"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the dashboard route and the static mount.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/dashboard", f.HandleDashboard)
	app.Static("/", f.dir)
	return nil
}

// HandleDashboard returns the control panel document.
// @Summary Dashboard
// @Tags dashboard
// @Produce html
// @Success 200 {string} string "Control panel"
// @Router /dashboard [get]
func (f *Feature) HandleDashboard(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(f.dir, IndexFile))
}
