package logstore

import (
	"sort"
	"strings"
	"sync"

	"pipeline-hud/core/model"
)

const (
	// DefaultMaxLength is the default cap on stored log text, in bytes.
	DefaultMaxLength = 2 * 1000 * 1000

	// defaultSpanID replaces empty span ids.
	defaultSpanID = "_"

	fieldNameProgressID = "progressID"
)

// Alert indexes a warning or error line.
type Alert struct {
	LineIndex int    `json:"lineIndex"`
	Level     string `json:"level"`
}

// Line is one rendered log line.
type Line struct {
	SpanID       string `json:"spanId"`
	ManifestName string `json:"manifestName,omitempty"`
	Time         string `json:"time,omitempty"`
	Level        string `json:"level"`
	Text         string `json:"text"`
}

type span struct {
	id             string
	manifestName   string
	firstLineIndex int
	lastLineIndex  int
	alerts         []Alert
}

type storedLine struct {
	spanID string
	time   string
	text   string
	level  string
	fields map[string]string
}

func newStoredLine(seg *model.LogSegment) *storedLine {
	level := seg.Level
	if level == "" {
		level = model.LogLevelInfo
	}
	return &storedLine{
		spanID: seg.SpanID,
		time:   seg.Time,
		text:   seg.Text,
		level:  level,
		fields: seg.Fields,
	}
}

func (l *storedLine) isComplete() bool {
	return strings.HasSuffix(l.text, "\n")
}

func (l *storedLine) canContinue(other *storedLine) bool {
	return l.level == other.level && l.spanID == other.spanID
}

// Store is the capped client-side log store.
type Store struct {
	mu sync.RWMutex

	maxLength  int
	length     int
	checkpoint int32

	spans    map[string]*span
	segments []*model.LogSegment
	lines    []*storedLine
}

var _ model.LogStore = (*Store)(nil)

// New creates a store capped at maxLength bytes (DefaultMaxLength if <= 0).
func New(maxLength int) *Store {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Store{
		maxLength: maxLength,
		spans:     make(map[string]*span),
	}
}

// Reset drops every span, segment and line.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.length = 0
	s.checkpoint = 0
	s.spans = make(map[string]*span)
	s.segments = nil
	s.lines = nil
}

// Append folds a log fragment into the store.
func (s *Store) Append(list *model.LogList) {
	if list == nil || list.FromCheckpoint < 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	segments := list.Segments
	if list.FromCheckpoint < s.checkpoint {
		// The server is re-sending segments we already have.
		skip := int(s.checkpoint - list.FromCheckpoint)
		if skip > len(segments) {
			skip = len(segments)
		}
		segments = segments[skip:]
	}
	if list.ToCheckpoint > s.checkpoint {
		s.checkpoint = list.ToCheckpoint
	}

	for key, sp := range list.Spans {
		id := key
		if id == "" {
			id = defaultSpanID
		}
		if _, ok := s.spans[id]; ok {
			continue
		}
		manifest := ""
		if sp != nil {
			manifest = sp.ManifestName
		}
		s.spans[id] = &span{id: id, manifestName: manifest, firstLineIndex: -1, lastLineIndex: -1}
	}

	for _, seg := range segments {
		if seg == nil {
			continue
		}
		s.addSegment(seg)
	}

	s.ensureMaxLength()
}

func (s *Store) addSegment(in *model.LogSegment) {
	seg := *in
	if seg.SpanID == "" {
		seg.SpanID = defaultSpanID
	}
	s.segments = append(s.segments, &seg)
	s.length += len(seg.Text)

	sp, ok := s.spans[seg.SpanID]
	if !ok {
		// A segment for an unknown span cannot be rendered; keep it for
		// truncation accounting only.
		return
	}

	candidate := newStoredLine(&seg)
	if sp.lastLineIndex != -1 {
		if s.maybeOverwriteLine(candidate, sp) {
			return
		}
		last := s.lines[sp.lastLineIndex]
		if !last.isComplete() && last.canContinue(candidate) {
			last.text += candidate.text
			return
		}
	}

	index := len(s.lines)
	if sp.firstLineIndex == -1 {
		sp.firstLineIndex = index
	}
	sp.lastLineIndex = index
	s.lines = append(s.lines, candidate)

	if seg.Anchor && (candidate.level == model.LogLevelWarn || candidate.level == model.LogLevelError) {
		sp.alerts = append(sp.alerts, Alert{LineIndex: index, Level: candidate.level})
	}
}

// maybeOverwriteLine replaces the previous line of the span with the same
// progress id. It only looks back through the contiguous block of progress lines.
func (s *Store) maybeOverwriteLine(candidate *storedLine, sp *span) bool {
	progressID := candidate.fields[fieldNameProgressID]
	if progressID == "" {
		return false
	}

	for i := sp.lastLineIndex; i >= sp.firstLineIndex && i >= 0; i-- {
		cur := s.lines[i]
		if cur.spanID != candidate.spanID {
			continue
		}
		curProgressID := cur.fields[fieldNameProgressID]
		if curProgressID == "" {
			return false
		}
		if curProgressID != progressID {
			continue
		}
		cur.text = candidate.text
		return true
	}
	return false
}

type manifestWeight struct {
	name      string
	byteCount int
	start     string
}

func (s *Store) ensureMaxLength() {
	if s.length <= s.maxLength {
		return
	}

	weights := make(map[string]*manifestWeight)
	for _, seg := range s.segments {
		name := s.manifestOf(seg.SpanID)
		w, ok := weights[name]
		if !ok {
			w = &manifestWeight{name: name, start: seg.Time}
			weights[name] = w
		}
		w.byteCount += len(seg.Text)
	}

	// Repeatedly cut the heaviest manifest in half until we reach the target.
	leftToCut := s.length - s.maxLength/2
	for leftToCut > 0 {
		w := heaviest(weights)
		if w == nil || w.byteCount == 0 {
			break
		}
		cut := (w.byteCount + 1) / 2
		if cut > leftToCut {
			cut = leftToCut
		}
		leftToCut -= cut
		w.byteCount -= cut
	}

	// Keep the newest segments of every manifest within its remaining budget.
	var kept []*model.LogSegment
	for i := len(s.segments) - 1; i >= 0; i-- {
		seg := s.segments[i]
		w := weights[s.manifestOf(seg.SpanID)]
		w.byteCount -= len(seg.Text)
		if w.byteCount < 0 {
			continue
		}
		kept = append(kept, seg)
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}

	s.rebuild(kept)
}

func (s *Store) rebuild(segments []*model.LogSegment) {
	s.length = 0
	s.lines = nil
	s.segments = nil
	for _, sp := range s.spans {
		sp.firstLineIndex = -1
		sp.lastLineIndex = -1
		sp.alerts = nil
	}
	for _, seg := range segments {
		s.addSegment(seg)
	}
}

// heaviest picks the manifest to cut. Manifests are ranked most recent first and
// weighted by rank * byteCount, so older logs are truncated first.
func heaviest(weights map[string]*manifestWeight) *manifestWeight {
	byTime := make([]*manifestWeight, 0, len(weights))
	for _, w := range weights {
		byTime = append(byTime, w)
	}
	sort.Slice(byTime, func(i, j int) bool {
		if byTime[i].start != byTime[j].start {
			return byTime[i].start > byTime[j].start
		}
		return byTime[i].name > byTime[j].name
	})

	var result *manifestWeight
	best := -1
	for i, w := range byTime {
		value := (i + 1) * w.byteCount
		if value > best {
			result = w
			best = value
		}
	}
	return result
}

func (s *Store) manifestOf(spanID string) string {
	if sp, ok := s.spans[spanID]; ok {
		return sp.manifestName
	}
	return ""
}
