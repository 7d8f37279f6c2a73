package reconcile

import "pipeline-hud/core/model"

// Outcome is the result kind of a reconciliation.
type Outcome int

const (
	// NoChange means the delta did not change the view.
	NoChange Outcome = iota
	// Changed means a new view was produced.
	Changed
	// HardReset means the server restarted and the view must be reacquired.
	HardReset
)

// String returns the outcome name, used in logs and the sync journal.
func (o Outcome) String() string {
	switch o {
	case NoChange:
		return "no_change"
	case Changed:
		return "changed"
	case HardReset:
		return "hard_reset"
	default:
		return "unknown"
	}
}

// Result is the output of Reconcile.
type Result struct {
	// Outcome tells the caller what to do with View.
	Outcome Outcome

	// View is the next view. It equals the previous view for NoChange
	// and is nil for HardReset.
	View *model.View

	// FullRefresh is true when the delta replaced the whole view.
	FullRefresh bool

	// PreviousEpoch and NewEpoch are the session start times compared by the
	// epoch guard. Only set for HardReset.
	PreviousEpoch string
	NewEpoch      string
}

// Epoch is the decision of the epoch guard.
type Epoch int

const (
	// EpochContinue means the delta belongs to the same server run.
	EpochContinue Epoch = iota
	// EpochHardReset means the server restarted.
	EpochHardReset
)
