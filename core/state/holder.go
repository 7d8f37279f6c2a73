package state

import (
	"sync"
	"time"

	"pipeline-hud/core/model"
	"pipeline-hud/core/reconcile"
)

// Stats counts what the sync loop did since startup.
type Stats struct {
	Version       uint64    `json:"version"`
	Deltas        int       `json:"deltas"`
	NoChanges     int       `json:"no_changes"`
	Changes       int       `json:"changes"`
	FullRefreshes int       `json:"full_refreshes"`
	HardResets    int       `json:"hard_resets"`
	Skipped       int       `json:"skipped"`
	Connected     bool      `json:"connected"`
	Epoch         string    `json:"epoch,omitempty"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Holder holds the current View.
type Holder struct {
	mu    sync.RWMutex
	view  *model.View
	stats Stats
	now   func() time.Time
}

// NewHolder creates a holder publishing the given initial view.
func NewHolder(initial *model.View) *Holder {
	return &Holder{
		view: initial,
		now:  time.Now,
	}
}

// Current returns the published view. Never nil once constructed with a view.
func (h *Holder) Current() *model.View {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.view
}

// Version returns the number of views published so far.
func (h *Holder) Version() uint64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stats.Version
}

// Stats returns a copy of the counters.
func (h *Holder) Stats() Stats {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.stats
}

// Record accounts for one reconciliation and publishes its view when it changed.
func (h *Holder) Record(result reconcile.Result) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.stats.Deltas++
	switch result.Outcome {
	case reconcile.NoChange:
		h.stats.NoChanges++
	case reconcile.Changed:
		h.stats.Changes++
		if result.FullRefresh {
			h.stats.FullRefreshes++
		}
		h.publishLocked(result.View)
	case reconcile.HardReset:
		h.stats.HardResets++
	}
}

// Skip accounts for a delta that was discarded without reconciliation.
func (h *Holder) Skip() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Skipped++
}

// Replace publishes a view without accounting for a delta (used on hard reset).
func (h *Holder) Replace(view *model.View) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.publishLocked(view)
}

// SetConnected records the transport connectivity.
func (h *Holder) SetConnected(connected bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.stats.Connected = connected
	h.stats.UpdatedAt = h.now()
}

func (h *Holder) publishLocked(view *model.View) {
	h.view = view
	h.stats.Version++
	h.stats.Epoch = view.StartTime()
	h.stats.UpdatedAt = h.now()
}
