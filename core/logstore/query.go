package logstore

import (
	"strings"

	"pipeline-hud/core/model"
)

// Checkpoint returns the last server checkpoint seen.
func (s *Store) Checkpoint() int32 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkpoint
}

// Len returns the stored log text length in bytes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.length
}

// Lines returns every line in order.
func (s *Store) Lines() []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(string) bool { return true })
}

// SpanLines returns the lines of the given spans.
func (s *Store) SpanLines(spanIDs ...string) []Line {
	want := make(map[string]bool, len(spanIDs))
	for _, id := range spanIDs {
		if id == "" {
			id = defaultSpanID
		}
		want[id] = true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(id string) bool { return want[id] })
}

// ManifestLines returns the lines of every span belonging to a manifest.
func (s *Store) ManifestLines(manifestName string) []Line {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(func(id string) bool {
		sp, ok := s.spans[id]
		return ok && sp.manifestName == manifestName
	})
}

// AlertsForSpan returns the warnings and errors indexed for a span.
func (s *Store) AlertsForSpan(spanID string) []Alert {
	if spanID == "" {
		spanID = defaultSpanID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	sp, ok := s.spans[spanID]
	if !ok {
		return nil
	}
	return append([]Alert(nil), sp.alerts...)
}

// ToLogList exports the newest segments as a log fragment, capped at maxSize
// bytes of text (no cap if maxSize <= 0). Segments stay in chronological order.
func (s *Store) ToLogList(maxSize int) *model.LogList {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spans := make(map[string]*model.LogSpan)
	var segments []*model.LogSegment
	size := 0
	for i := len(s.segments) - 1; i >= 0; i-- {
		seg := s.segments[i]
		size += len(seg.Text)
		if maxSize > 0 && size > maxSize {
			break
		}
		if sp, ok := s.spans[seg.SpanID]; ok {
			if _, seen := spans[seg.SpanID]; !seen {
				spans[seg.SpanID] = &model.LogSpan{ManifestName: sp.manifestName}
			}
		}
		cp := *seg
		segments = append(segments, &cp)
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return &model.LogList{
		Spans:        spans,
		Segments:     segments,
		ToCheckpoint: int32(len(segments)),
	}
}

func (s *Store) collect(keep func(spanID string) bool) []Line {
	out := make([]Line, 0, len(s.lines))
	for _, l := range s.lines {
		if !keep(l.spanID) {
			continue
		}
		out = append(out, Line{
			SpanID:       l.spanID,
			ManifestName: s.manifestOf(l.spanID),
			Time:         l.time,
			Level:        l.level,
			Text:         strings.TrimSuffix(l.text, "\n"),
		})
	}
	return out
}
