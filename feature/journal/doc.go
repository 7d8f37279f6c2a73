// Package journal persists the transitions of the sync loop.
//
// Connections, disconnections, complete views and server restarts are written
// to the hud_sync_events table through GORM. Event ids are ULIDs, so ordering
// by id orders by time. The Service implements session.Recorder.
//
// The journal is optional: without a database connection the Service returns
// ErrDisabled and the feature does not register its routes.
//
// # HTTP Endpoints
//
//   - GET /journal : Most recent events first (supports ?limit= and ?kind=).
package journal
