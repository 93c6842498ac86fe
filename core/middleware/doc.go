// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing. An
//     incoming X-Ray-ID header is reused so a caller can correlate its own logs.
//   - RequestLog: Logs every request with method, path, client ip, status and
//     latency through the request's RayID-scoped logger.
//
// These middleware components are registered globally in the start command,
// RayID first so that every later log line carries the id.
package middleware
