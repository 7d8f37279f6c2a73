package stream

import (
	"context"
	"errors"

	"pipeline-hud/core/model"
)

// ErrNoURL is returned when websocket mode is started without an endpoint.
var ErrNoURL = errors.New("stream: no view url configured")

// EventKind identifies what happened on a source.
type EventKind int

const (
	EventConnected EventKind = iota + 1
	EventDelta
	EventDisconnected
)

func (k EventKind) String() string {
	switch k {
	case EventConnected:
		return "connected"
	case EventDelta:
		return "delta"
	case EventDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Event is a single notification from a Source.
type Event struct {
	Kind EventKind
	// ConnID identifies the connection the event belongs to.
	ConnID string
	// Delta is set for EventDelta.
	Delta *model.Delta
	// Err is the cause of an EventDisconnected, if any.
	Err error
}

// Source produces view events until ctx is cancelled.
type Source interface {
	// Run blocks, pushing events onto out. It returns nil once ctx is done.
	Run(ctx context.Context, out chan<- Event) error
	// Reconnect asks the source to start over with a complete view.
	Reconnect()
}

func emit(ctx context.Context, out chan<- Event, ev Event) bool {
	select {
	case out <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
