package model

// Log levels as sent by the server.
const (
	LogLevelInfo  = "INFO"
	LogLevelWarn  = "WARN"
	LogLevelError = "ERROR"
)

// LogSpan groups log segments produced by one source (a build, a pod, ...).
type LogSpan struct {
	ManifestName string `json:"manifestName,omitempty"`
}

// LogSegment is a fragment of log text. Segments are folded into lines by the LogStore.
type LogSegment struct {
	SpanID string            `json:"spanId,omitempty"`
	Time   string            `json:"time,omitempty"`
	Text   string            `json:"text,omitempty"`
	Level  string            `json:"level,omitempty"`
	Anchor bool              `json:"anchor,omitempty"`
	Fields map[string]string `json:"fields,omitempty"`
}

// LogList is the log fragment carried by a delta. Segments cover the server
// checkpoint range [FromCheckpoint, ToCheckpoint). [-1, -1) means no logs.
type LogList struct {
	Spans          map[string]*LogSpan `json:"spans,omitempty"`
	Segments       []*LogSegment       `json:"segments,omitempty"`
	FromCheckpoint int32               `json:"fromCheckpoint,omitempty"`
	ToCheckpoint   int32               `json:"toCheckpoint,omitempty"`
}
