// Package session runs the sync loop between a stream Source and the view Holder.
//
// The Runner consumes stream events one at a time, reconciles every delta
// against the published view and records the result in the Holder.
//
// # Connections
//
// Each new connection starts by sending a complete view. Until that complete
// view arrives, incremental deltas are discarded: they may still belong to a
// connection that was just dropped.
//
// # Server Restarts
//
// When the epoch guard trips, the runner publishes a fresh empty view and
// resets the log store. If the tripping delta is itself a complete view it is
// applied straight away. Otherwise the source is asked to reconnect so the
// server sends one.
//
// # Journal
//
// An optional Recorder receives connection and reset transitions. Recorder
// failures are logged and never stop the loop.
package session
