package session

import (
	"context"
	"fmt"

	"pipeline-hud/core/logger"
	"pipeline-hud/core/model"
	"pipeline-hud/core/reconcile"
	"pipeline-hud/core/state"
	"pipeline-hud/core/stream"

	"go.uber.org/zap"
)

// Runner drives reconciliation from a Source into a Holder.
type Runner struct {
	source   stream.Source
	holder   *state.Holder
	store    model.LogStore
	recorder Recorder
	log      *zap.Logger

	connID       string
	awaitingFull bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithRecorder sends loop transitions to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// NewRunner creates a runner. store is the log store shared by every view it publishes.
func NewRunner(source stream.Source, holder *state.Holder, store model.LogStore, log *zap.Logger, opts ...Option) *Runner {
	r := &Runner{
		source: source,
		holder: holder,
		store:  store,
		log:    log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run consumes the source until ctx is done or the source fails.
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan stream.Event)
	sourceErr := make(chan error, 1)

	go func() {
		sourceErr <- r.source.Run(ctx, events)
	}()

	for {
		select {
		case err := <-sourceErr:
			if err != nil {
				return fmt.Errorf("view source stopped: %w", err)
			}
			return nil
		case ev := <-events:
			r.Handle(ctx, ev)
		}
	}
}

// Handle processes a single event. Run calls it for every event; it is exported for tests.
func (r *Runner) Handle(ctx context.Context, ev stream.Event) {
	switch ev.Kind {
	case stream.EventConnected:
		r.connID = ev.ConnID
		r.awaitingFull = true
		r.holder.SetConnected(true)
		r.record(ctx, Entry{Kind: KindConnected, Epoch: r.holder.Current().StartTime()})
	case stream.EventDisconnected:
		r.holder.SetConnected(false)
		detail := ""
		if ev.Err != nil {
			detail = ev.Err.Error()
		}
		r.record(ctx, Entry{Kind: KindDisconnected, Epoch: r.holder.Current().StartTime(), Detail: detail})
	case stream.EventDelta:
		r.apply(ctx, ev.Delta)
	}
}

func (r *Runner) apply(ctx context.Context, delta *model.Delta) {
	log := logger.WithConnection(r.log, r.connID)

	if delta == nil {
		return
	}
	if r.awaitingFull && !delta.IsComplete {
		r.holder.Skip()
		log.Debug("Discarding delta received before the complete view")
		return
	}

	result := reconcile.Reconcile(r.holder.Current(), delta)
	r.holder.Record(result)

	switch result.Outcome {
	case reconcile.NoChange:
		log.Debug("Delta produced no change")
	case reconcile.Changed:
		if result.FullRefresh {
			r.completed(ctx, log, result.View)
			return
		}
		log.Debug("View updated", zap.Uint64("version", r.holder.Version()))
	case reconcile.HardReset:
		r.hardReset(ctx, log, result, delta)
	}
}

func (r *Runner) hardReset(ctx context.Context, log *zap.Logger, result reconcile.Result, delta *model.Delta) {
	log.Warn("Server restarted, discarding view",
		zap.String("previous_epoch", result.PreviousEpoch),
		zap.String("new_epoch", result.NewEpoch))
	r.record(ctx, Entry{
		Kind:   KindHardReset,
		Epoch:  result.NewEpoch,
		Detail: fmt.Sprintf("epoch %s -> %s", result.PreviousEpoch, result.NewEpoch),
	})

	if r.store != nil {
		r.store.Reset()
	}
	fresh := model.NewView(r.store)

	if delta.IsComplete {
		// The fresh view has no epoch, so this cannot trip the guard again.
		// The delta was already counted by the holder.
		next := reconcile.Reconcile(fresh, delta)
		r.holder.Replace(next.View)
		r.completed(ctx, log, next.View)
		return
	}

	r.holder.Replace(fresh)

	r.awaitingFull = true
	r.source.Reconnect()
}

func (r *Runner) completed(ctx context.Context, log *zap.Logger, view *model.View) {
	r.awaitingFull = false
	log.Info("Complete view received",
		zap.String("epoch", view.StartTime()),
		zap.Int("resources", len(view.Resources)))
	r.record(ctx, Entry{Kind: KindFullRefresh, Epoch: view.StartTime()})
}

func (r *Runner) record(ctx context.Context, entry Entry) {
	if r.recorder == nil {
		return
	}
	entry.ConnID = r.connID
	if err := r.recorder.Record(ctx, entry); err != nil {
		r.log.Warn("Failed to record sync event", zap.String("kind", entry.Kind), zap.Error(err))
	}
}
