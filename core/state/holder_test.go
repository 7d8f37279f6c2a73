package state

import (
	"sync"
	"testing"

	"pipeline-hud/core/model"
	"pipeline-hud/core/reconcile"

	"github.com/stretchr/testify/assert"
)

func TestHolder_Record(t *testing.T) {
	initial := model.NewView(nil)
	h := NewHolder(initial)

	h.Record(reconcile.Result{Outcome: reconcile.NoChange, View: initial})
	assert.Same(t, initial, h.Current())
	assert.Equal(t, uint64(0), h.Version())

	next := &model.View{Session: &model.UISession{Status: model.UISessionStatus{TiltStartTime: "T1"}}}
	h.Record(reconcile.Result{Outcome: reconcile.Changed, View: next, FullRefresh: true})
	assert.Same(t, next, h.Current())

	h.Record(reconcile.Result{Outcome: reconcile.HardReset})
	assert.Same(t, next, h.Current(), "a hard reset alone does not publish")

	stats := h.Stats()
	assert.Equal(t, uint64(1), stats.Version)
	assert.Equal(t, 3, stats.Deltas)
	assert.Equal(t, 1, stats.NoChanges)
	assert.Equal(t, 1, stats.Changes)
	assert.Equal(t, 1, stats.FullRefreshes)
	assert.Equal(t, 1, stats.HardResets)
	assert.Equal(t, "T1", stats.Epoch)
}

func TestHolder_ReplaceAndConnected(t *testing.T) {
	h := NewHolder(model.NewView(nil))

	empty := model.NewView(nil)
	h.Replace(empty)
	h.SetConnected(true)

	assert.Same(t, empty, h.Current())
	assert.True(t, h.Stats().Connected)
	assert.Equal(t, "", h.Stats().Epoch)
}

// TestHolder_ConcurrentReaders tests that readers can run while the loop publishes.
func TestHolder_ConcurrentReaders(t *testing.T) {
	h := NewHolder(model.NewView(nil))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.NotNil(t, h.Current())
				_ = h.Stats()
			}
		}()
	}
	for j := 0; j < 100; j++ {
		h.Record(reconcile.Result{Outcome: reconcile.Changed, View: model.NewView(nil)})
	}
	wg.Wait()

	assert.Equal(t, uint64(100), h.Version())
}

func TestHolder_Skip(t *testing.T) {
	h := NewHolder(model.NewView(nil))
	h.Skip()
	h.Skip()

	s := h.Stats()
	assert.Equal(t, 2, s.Skipped)
	assert.Equal(t, 0, s.Deltas)
	assert.Equal(t, uint64(0), s.Version)
}
