package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// BodyLimitMB caps request bodies, sized for large template uploads.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"500"`
	// AssetsDir holds the dashboard document and its static assets.
	AssetsDir string `mapstructure:"assets_dir" default:"assets"`
	// ShutdownTimeoutSeconds bounds graceful shutdown.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" default:"10"`
}

const defaultBodyLimitMB = 500

// BodyLimitBytes returns the request body limit in bytes.
func (c Config) BodyLimitBytes() int {
	if c.BodyLimitMB <= 0 {
		return defaultBodyLimitMB * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// Addr returns the listen address.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}
