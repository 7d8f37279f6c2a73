// Package model defines the wire and in-memory types of the dashboard view stream.
//
// The server pushes JSON messages on its view websocket. The first message of every
// connection is a complete view (isComplete=true); later messages only carry the
// objects that changed since the previous send.
//
// # Types
//
//   - Delta: one inbound message (session, resources, buttons, clusters, log list).
//   - View: the reconciled client-side state built from successive deltas.
//   - UISession, UIResource, UIButton, Cluster: the objects carried by a delta.
//   - LogList: an opaque log fragment handed to the LogStore.
//   - Snapshot: a persisted view, used by the read-only snapshot mode.
//
// # Entities
//
// UIResource, UIButton and Cluster implement Entity. They are keyed by
// metadata.name and deleted by sending an object whose metadata.deletionTimestamp
// is set, never by a dedicated delete message.
//
// # Identity
//
// Views are treated as immutable once published. Collections are only replaced
// (never modified in place), so two views can be compared by reference with
// SameSlice instead of a deep diff.
package model
