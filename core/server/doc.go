// Package server holds the HTTP server configuration and the Fiber application factory.
//
// # Configuration
//
// The Config struct defines the HTTP port, the request body limit (large by
// default, to accommodate big template uploads), the dashboard assets directory
// and the graceful shutdown timeout.
//
// # Application
//
// New builds a *fiber.App that encodes JSON with goccy/go-json and renders every
// unhandled error as a JSON object {"error": "..."} carrying the fiber status
// code, or 500 for plain errors.
package server
