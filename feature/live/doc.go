// Package live implements the live template broadcast.
//
// The Service owns the two pieces of shared state: the connection Registry (one
// ConnectionRecord per live page visit, keyed by a millisecond-derived id) and the
// TemplateStore (the HTML fragment every viewer renders). Both are constructed once
// at startup and injected into the handlers.
//
// # Flow
//
//  1. GET /live resolves the requester's IP through a geo.Resolver, registers a
//     record, publishes "new-connection" and returns a page embedding the current
//     template. The page opens /ws?viewer=<id>.
//  2. Each push subscriber first receives the "all-connections" snapshot, then
//     every later event. A record announced between the snapshot and the event may
//     appear in both; clients de-duplicate by id.
//  3. POST /api/live/send-template replaces the template and publishes
//     "update-live-template" under one lock so viewers see pushes in write order.
//  4. When a stream that claimed a record ends, the record is evicted and
//     "close-connection" is published (broadcast.evict_on_disconnect).
//
// # Visit History
//
// With a database configured, every registration is also appended to the
// viewer_visits table and exposed on GET /api/connections/history.
//
// # HTTP Endpoints
//
//   - GET /live : Live page.
//   - GET /ws : WebSocket push stream.
//   - GET /events : Server-Sent Events push stream.
//   - POST /api/live/send-template : Push a new live template.
//   - GET /api/live/template : Current live template.
//   - GET /api/connections : Registry snapshot.
//   - GET /api/connections/history : Recent visits.
package live
