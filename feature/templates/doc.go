// Package templates implements template file uploads.
//
// Uploaded files are stored under their base name in the configured
// storage.Store and served back as static documents.
//
// # HTTP Endpoints
//
//   - POST /api/templates/upload : Multipart upload (field "file").
//   - GET  /api/templates        : List stored templates.
//   - GET  /templates/:name      : Serve a stored template.
package templates
