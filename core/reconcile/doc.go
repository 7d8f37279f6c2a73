// Package reconcile merges the deltas of the view stream into a consistent View.
//
// Reconcile is the only function allowed to produce a new View. It is called once
// per inbound message, on a single goroutine, in arrival order, and must be cheap:
// unchanged sub-structures keep their identity so that "did anything change" is a
// handful of pointer comparisons instead of a deep diff.
//
// # Components
//
//  1. Compare: total order over entities (status.order, then name by codepoint).
//
//  2. Merge: upserts a batch of entities into a collection by name, drops
//     tombstones (metadata.deletionTimestamp set) and re-sorts. Copy-on-write:
//     the previous collection is never modified.
//
//  3. CheckEpoch: detects a server restart by comparing session start times. A
//     restart invalidates all local state; the caller must discard the view and
//     reacquire a full snapshot instead of merging.
//
//  4. Reconcile: orchestrates the epoch check, full refresh (isComplete) versus
//     incremental patch, per-collection merges and the hand-off of log fragments
//     to the LogStore.
//
//  5. ViewChanged: shallow reference comparison of two views.
//
// # Outcomes
//
// Every call returns exactly one of:
//   - NoChange: the View is the previous View, untouched.
//   - Changed: a new View to publish.
//   - HardReset: the server restarted; nothing was merged.
//
// Missing fields in a delta are never an error, the server legitimately sends
// partial messages.
//
// # Usage Example
//
//	view := model.NewView(logstore.New(0))
//	for delta := range deltas {
//	    res := reconcile.Reconcile(view, delta)
//	    switch res.Outcome {
//	    case reconcile.HardReset:
//	        // reconnect and wait for a full snapshot
//	    case reconcile.Changed:
//	        view = res.View
//	    }
//	}
package reconcile
