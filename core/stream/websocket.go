package stream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pipeline-hud/core/logger"
	"pipeline-hud/core/model"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var errReconnectRequested = errors.New("reconnect requested")

// WebsocketSource streams deltas from a live view endpoint.
type WebsocketSource struct {
	cfg       Config
	dialer    *websocket.Dialer
	log       *zap.Logger
	reconnect chan struct{}
}

// NewWebsocketSource creates a source for cfg.URL.
func NewWebsocketSource(cfg Config, log *zap.Logger) *WebsocketSource {
	return &WebsocketSource{
		cfg: cfg,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.handshakeTimeout(),
		},
		log:       log,
		reconnect: make(chan struct{}, 1),
	}
}

// Reconnect drops the current connection. Requests coalesce.
func (s *WebsocketSource) Reconnect() {
	select {
	case s.reconnect <- struct{}{}:
	default:
	}
}

// Run dials, streams and redials until ctx is done.
func (s *WebsocketSource) Run(ctx context.Context, out chan<- Event) error {
	target, err := s.cfg.DialURL()
	if err != nil {
		return err
	}

	header := http.Header{}
	if s.cfg.Origin != "" {
		header.Set("Origin", s.cfg.Origin)
	}

	lo, hi := s.cfg.backoffBounds()
	attempt := 0

	for {
		connID := uuid.NewString()
		log := logger.WithConnection(s.log, connID)

		conn, _, err := s.dialer.DialContext(ctx, target, header)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			delay := Backoff(attempt, lo, hi)
			log.Warn("View stream dial failed", zap.Error(err), zap.Int("attempt", attempt), zap.Duration("retry_in", delay))
			attempt++
			if !sleep(ctx, delay) {
				return nil
			}
			continue
		}

		// A request that arrived while dialing is already satisfied by this connection
		select {
		case <-s.reconnect:
		default:
		}

		log.Info("View stream connected", zap.String("url", s.cfg.URL))
		if !emit(ctx, out, Event{Kind: EventConnected, ConnID: connID}) {
			conn.Close()
			return nil
		}

		connectedAt := time.Now()
		err = s.serve(ctx, conn, connID, out, log)
		if ctx.Err() != nil {
			return nil
		}
		attempt = nextAttempt(attempt, time.Since(connectedAt), s.cfg.stableAfter())

		if errors.Is(err, errReconnectRequested) {
			log.Info("View stream reconnecting on request")
			err = nil
		} else {
			log.Warn("View stream disconnected", zap.Error(err))
		}
		if !emit(ctx, out, Event{Kind: EventDisconnected, ConnID: connID, Err: err}) {
			return nil
		}

		if err != nil {
			delay := Backoff(attempt, lo, hi)
			attempt++
			if !sleep(ctx, delay) {
				return nil
			}
		}
	}
}

// nextAttempt keeps the failure count across connections that drop before
// they were up for stable, so a server that accepts and closes is backed off.
func nextAttempt(attempt int, up, stable time.Duration) int {
	if up >= stable {
		return 0
	}
	return attempt
}

// serve reads one connection until it fails, ctx ends or a reconnect is requested.
func (s *WebsocketSource) serve(ctx context.Context, conn *websocket.Conn, connID string, out chan<- Event, log *zap.Logger) error {
	defer conn.Close()

	done := make(chan struct{})
	defer close(done)

	readTimeout := s.cfg.readTimeout()
	if readTimeout > 0 {
		conn.SetPingHandler(func(data string) error {
			conn.SetReadDeadline(time.Now().Add(readTimeout))
			return conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(time.Second))
		})
	}

	messages := make(chan []byte)
	readErr := make(chan error, 1)

	go func() {
		for {
			if readTimeout > 0 {
				conn.SetReadDeadline(time.Now().Add(readTimeout))
			}
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				readErr <- err
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}
			select {
			case messages <- data:
			case <-done:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.reconnect:
			return errReconnectRequested
		case err := <-readErr:
			return err
		case data := <-messages:
			delta := &model.Delta{}
			if err := json.Unmarshal(data, delta); err != nil {
				log.Warn("Skipping undecodable view message", zap.Error(err), zap.Int("bytes", len(data)))
				continue
			}
			if !emit(ctx, out, Event{Kind: EventDelta, ConnID: connID, Delta: delta}) {
				return ctx.Err()
			}
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
