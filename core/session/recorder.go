package session

import "context"

// Journal entry kinds.
const (
	KindConnected    = "connected"
	KindDisconnected = "disconnected"
	KindFullRefresh  = "full_refresh"
	KindHardReset    = "hard_reset"
)

// Entry is one transition of the sync loop.
type Entry struct {
	Kind   string
	Epoch  string
	ConnID string
	Detail string
}

// Recorder persists sync loop transitions.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}
