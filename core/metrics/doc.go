// Package metrics defines the Prometheus collectors of the broadcast server and
// exposes them on GET /metrics.
//
// Collectors are registered on an injected registry so tests can use a fresh
// prometheus.NewRegistry per case.
package metrics
