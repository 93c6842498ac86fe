// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports development (console) and
// production (json) encodings and integrates with the Fiber web framework.
//
// # Context Awareness
//
// Every request carries a RayID (request id) set by the rayid middleware. The
// WithRayID helper extracts it from a Fiber context and attaches it to the log
// entry, so all lines emitted for one request (including a live viewer's push
// stream) can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "json"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Upload failed", zap.Error(err))
package logger
