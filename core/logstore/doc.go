// Package logstore holds the log lines of the view stream.
//
// The store is append-only and capped. Log fragments (model.LogList) are
// appended in delivery order; a full refresh resets the store first.
//
// # Checkpoints
//
// Every fragment covers a range of server checkpoints. When the server re-sends
// segments the store already has (fromCheckpoint below the current checkpoint),
// the duplicates are sliced off. A negative fromCheckpoint means "no logs".
//
// # Lines
//
// Segments are folded into lines per span: a segment continues the last line of
// its span when that line has no trailing newline and the level matches.
// Segments carrying a "progressID" field overwrite the previous line with the
// same progress id instead of adding a new one.
//
// Anchored WARN and ERROR segments are indexed as alerts for their span.
//
// # Truncation
//
// When the stored text exceeds the maximum length, the store cuts down to half of
// it. Bytes are removed from the "heaviest" manifest first, where weight is the
// byte count multiplied by a recency rank, so old chatty manifests go first.
//
// The store is safe for concurrent use: the sync loop appends while HTTP
// handlers read.
package logstore
