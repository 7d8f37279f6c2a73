// Package snapshot exports the current view to object storage.
//
// An export captures the published view together with the newest log segments
// and writes it as a model.Snapshot document under snapshots/<ulid>.json. The
// ULID keys sort by creation time, so listing the prefix yields exports in
// order. Such a document can be replayed with `start --snapshot`.
//
// Concurrent export requests share a single upload.
//
// # HTTP Endpoints
//
//   - POST /snapshot : Export the current view, returns the object key.
//   - GET /snapshot : List exported snapshot keys.
package snapshot
