package stream

import (
	"net/url"
	"time"
)

// Config holds configuration for the view stream.
type Config struct {
	// URL is the websocket endpoint serving the view.
	URL string `mapstructure:"url" default:"ws://localhost:10350/ws/view"`
	// CSRFToken is sent as the csrf query parameter when set.
	CSRFToken string `mapstructure:"csrf_token" default:""`
	// Origin is sent as the Origin header when set.
	Origin string `mapstructure:"origin" default:""`
	// HandshakeSeconds bounds the websocket handshake.
	HandshakeSeconds int `mapstructure:"handshake_seconds" default:"10"`
	// ReadTimeoutSeconds drops a connection that stays silent for this long. Zero disables it.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"0"`
	// ReconnectMinMillis is the first redial delay.
	ReconnectMinMillis int `mapstructure:"reconnect_min_millis" default:"250"`
	// ReconnectMaxMillis caps the redial delay.
	ReconnectMaxMillis int `mapstructure:"reconnect_max_millis" default:"30000"`
	// StableMillis is how long a connection must stay up before the redial delay
	// starts over from ReconnectMinMillis. Shorter connections count as failures.
	StableMillis int `mapstructure:"stable_millis" default:"5000"`
	// Snapshot, when set, replays this snapshot instead of connecting.
	Snapshot string `mapstructure:"snapshot" default:""`
	// SnapshotFromStorage reads Snapshot as an object storage key instead of a file path.
	SnapshotFromStorage bool `mapstructure:"snapshot_from_storage" default:"false"`
}

// DialURL returns the endpoint with the csrf token applied.
func (c Config) DialURL() (string, error) {
	if c.URL == "" {
		return "", ErrNoURL
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return "", err
	}
	if c.CSRFToken != "" {
		q := u.Query()
		q.Set("csrf", c.CSRFToken)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

func (c Config) handshakeTimeout() time.Duration {
	if c.HandshakeSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.HandshakeSeconds) * time.Second
}

func (c Config) stableAfter() time.Duration {
	if c.StableMillis <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.StableMillis) * time.Millisecond
}

func (c Config) readTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

func (c Config) backoffBounds() (time.Duration, time.Duration) {
	lo := time.Duration(c.ReconnectMinMillis) * time.Millisecond
	if lo <= 0 {
		lo = 250 * time.Millisecond
	}
	hi := time.Duration(c.ReconnectMaxMillis) * time.Millisecond
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Backoff returns the redial delay after attempt consecutive failures.
func Backoff(attempt int, lo, hi time.Duration) time.Duration {
	d := lo
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= hi {
			return hi
		}
	}
	return d
}
