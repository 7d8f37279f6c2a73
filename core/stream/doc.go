// Package stream delivers view deltas from the dashboard server to the sync loop.
//
// A Source pushes Events onto a channel until its context is cancelled:
//
//   - EventConnected when a new connection is established. The server always
//     starts a connection with a complete view.
//   - EventDelta for each decoded message.
//   - EventDisconnected when the connection drops, carrying the read error.
//
// # Websocket Source
//
// WebsocketSource dials the view endpoint with gorilla/websocket and redials
// with exponential backoff after failures. Every connection carries a fresh
// connection id, used to correlate logs. Messages that fail to decode are
// logged and skipped, they never end the connection.
//
// Reconnect closes the live connection and dials again straight away. The sync
// loop calls it after the epoch guard trips so the server re-sends a complete
// view.
//
// # Snapshot Source
//
// SnapshotSource replays a previously exported snapshot, from a local file or
// from object storage. The blob is delivered once as a complete view; Reconnect
// delivers it again.
//
// # Usage
//
//	src := stream.NewWebsocketSource(cfg.Stream, log)
//	events := make(chan stream.Event)
//	go src.Run(ctx, events)
//	for ev := range events { ... }
package stream
