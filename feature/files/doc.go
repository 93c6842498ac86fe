// Package files lists HTML documents of a directory for the dashboard.
//
// # HTTP Endpoints
//
//   - GET /api/files?path=<dir> : Name and content of every .html file in dir.
package files
