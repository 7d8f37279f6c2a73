package reconcile

import "pipeline-hud/core/model"

// ViewChanged reports whether next differs from previous by reference on any
// top-level field. Collections and the log store only get a new identity on a
// real mutation, so no deep comparison is needed.
func ViewChanged(next, previous *model.View) bool {
	if next == previous {
		return false
	}
	if next == nil || previous == nil {
		return true
	}
	return next.Session != previous.Session ||
		next.LogStore != previous.LogStore ||
		!model.SameSlice(next.Resources, previous.Resources) ||
		!model.SameSlice(next.Buttons, previous.Buttons) ||
		!model.SameSlice(next.Clusters, previous.Clusters)
}
