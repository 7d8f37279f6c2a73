package reconcile

import "pipeline-hud/core/model"

// Reconcile computes the view that follows previous once delta is applied.
//
// It performs no I/O besides handing log fragments to previous.LogStore.
// A nil previous view is a programming error. A nil delta is an empty delta.
func Reconcile(previous *model.View, delta *model.Delta) Result {
	if previous == nil {
		panic("reconcile: nil previous view")
	}
	if delta == nil {
		return Result{Outcome: NoChange, View: previous}
	}

	// Step 1: Epoch guard. A restarted server invalidates everything we hold.
	prevEpoch, newEpoch := previous.StartTime(), delta.Session.StartTime()
	if CheckEpoch(prevEpoch, newEpoch) == EpochHardReset {
		return Result{
			Outcome:       HardReset,
			PreviousEpoch: prevEpoch,
			NewEpoch:      newEpoch,
		}
	}

	// Step 2: Full refresh replaces the view instead of merging.
	if delta.IsComplete {
		return Result{
			Outcome:     Changed,
			View:        fullRefresh(previous, delta),
			FullRefresh: true,
		}
	}

	// Step 3: Incremental patch.
	if delta.LogList != nil && previous.LogStore != nil {
		previous.LogStore.Append(delta.LogList)
	}

	session := previous.Session
	if delta.Session != nil {
		session = delta.Session
	}

	next := &model.View{
		Session:   session,
		Resources: Merge(delta.Resources, previous.Resources),
		Buttons:   Merge(delta.Buttons, previous.Buttons),
		Clusters:  Merge(delta.Clusters, previous.Clusters),
		LogStore:  previous.LogStore,
	}

	// Step 4: Change detection.
	if !ViewChanged(next, previous) {
		return Result{Outcome: NoChange, View: previous}
	}
	return Result{Outcome: Changed, View: next}
}

// fullRefresh builds a view from a complete snapshot. The log store is reset
// before the snapshot's logs are fed to it.
func fullRefresh(previous *model.View, delta *model.Delta) *model.View {
	store := previous.LogStore
	if store != nil {
		store.Reset()
		if delta.LogList != nil {
			store.Append(delta.LogList)
		}
	}

	return &model.View{
		Session:   delta.Session,
		Resources: Normalize(delta.Resources),
		Buttons:   Normalize(delta.Buttons),
		Clusters:  Normalize(delta.Clusters),
		LogStore:  store,
	}
}
