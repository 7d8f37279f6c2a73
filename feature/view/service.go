package view

import (
	"errors"

	"pipeline-hud/core/logstore"
	"pipeline-hud/core/model"
	"pipeline-hud/core/state"

	"go.uber.org/zap"
)

var (
	// ErrNotReady is returned before the first view has been published.
	ErrNotReady = errors.New("no view received yet")
	// ErrNotFound is returned for an unknown resource name.
	ErrNotFound = errors.New("resource not found")
)

// Service answers read queries on the published view.
type Service struct {
	holder *state.Holder
	logs   *logstore.Store
	logger *zap.Logger
}

// NewService creates a new view service.
func NewService(holder *state.Holder, logs *logstore.Store, logger *zap.Logger) *Service {
	return &Service{holder: holder, logs: logs, logger: logger}
}

// Current returns the published view.
func (s *Service) Current() (*model.View, error) {
	if s.holder.Version() == 0 {
		return nil, ErrNotReady
	}
	return s.holder.Current(), nil
}

// ResourceFilter narrows the resource listing. Empty fields match everything.
type ResourceFilter struct {
	RuntimeStatus string
	UpdateStatus  string
}

func (f ResourceFilter) match(r *model.UIResource) bool {
	if f.RuntimeStatus != "" && r.Status.RuntimeStatus != f.RuntimeStatus {
		return false
	}
	if f.UpdateStatus != "" && r.Status.UpdateStatus != f.UpdateStatus {
		return false
	}
	return true
}

// Resources returns the resources matching filter, in display order.
func (s *Service) Resources(filter ResourceFilter) ([]*model.UIResource, error) {
	v, err := s.Current()
	if err != nil {
		return nil, err
	}
	out := make([]*model.UIResource, 0, len(v.Resources))
	for _, r := range v.Resources {
		if filter.match(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Resource returns one resource by name.
func (s *Service) Resource(name string) (*model.UIResource, error) {
	v, err := s.Current()
	if err != nil {
		return nil, err
	}
	r := v.Resource(name)
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// Buttons returns the buttons, optionally only those attached to component.
func (s *Service) Buttons(component string) ([]*model.UIButton, error) {
	v, err := s.Current()
	if err != nil {
		return nil, err
	}
	if component == "" {
		return v.Buttons, nil
	}
	out := make([]*model.UIButton, 0)
	for _, b := range v.Buttons {
		if b.Spec.Location.ComponentID == component {
			out = append(out, b)
		}
	}
	return out, nil
}

// LogQuery selects log lines.
type LogQuery struct {
	SpanIDs  []string
	Manifest string
	// Tail keeps only the last Tail lines when positive.
	Tail int
}

// Logs returns the log lines selected by q.
func (s *Service) Logs(q LogQuery) []logstore.Line {
	var lines []logstore.Line
	switch {
	case len(q.SpanIDs) > 0:
		lines = s.logs.SpanLines(q.SpanIDs...)
	case q.Manifest != "":
		lines = s.logs.ManifestLines(q.Manifest)
	default:
		lines = s.logs.Lines()
	}
	if q.Tail > 0 && len(lines) > q.Tail {
		lines = lines[len(lines)-q.Tail:]
	}
	return lines
}

// Alerts returns the alert anchors of a span.
func (s *Service) Alerts(spanID string) []logstore.Alert {
	return s.logs.AlertsForSpan(spanID)
}

// Stats is the payload of the stats endpoint.
type Stats struct {
	Sync          state.Stats    `json:"sync"`
	Resources     int            `json:"resources"`
	RuntimeStatus map[string]int `json:"runtime_status"`
	UpdateStatus  map[string]int `json:"update_status"`
	LogBytes      int            `json:"log_bytes"`
	LogCheckpoint int32          `json:"log_checkpoint"`
}

// Stats summarizes the sync loop and the current view.
func (s *Service) Stats() Stats {
	v := s.holder.Current()
	out := Stats{
		Sync:          s.holder.Stats(),
		Resources:     len(v.Resources),
		RuntimeStatus: make(map[string]int),
		UpdateStatus:  make(map[string]int),
		LogBytes:      s.logs.Len(),
		LogCheckpoint: s.logs.Checkpoint(),
	}
	for _, r := range v.Resources {
		out.RuntimeStatus[statusOrUnknown(r.Status.RuntimeStatus)]++
		out.UpdateStatus[statusOrUnknown(r.Status.UpdateStatus)]++
	}
	return out
}

func statusOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
