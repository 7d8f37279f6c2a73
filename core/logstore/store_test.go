package logstore

import (
	"strings"
	"testing"

	"pipeline-hud/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fragment(from, to int32, spans map[string]string, segs ...*model.LogSegment) *model.LogList {
	list := &model.LogList{
		Spans:          make(map[string]*model.LogSpan),
		Segments:       segs,
		FromCheckpoint: from,
		ToCheckpoint:   to,
	}
	for id, manifest := range spans {
		list.Spans[id] = &model.LogSpan{ManifestName: manifest}
	}
	return list
}

func seg(span, text string) *model.LogSegment {
	return &model.LogSegment{SpanID: span, Text: text}
}

func texts(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Text)
	}
	return out
}

func TestAppend_Lines(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 3, map[string]string{"build:1": "fe"},
		seg("build:1", "hello "),
		seg("build:1", "world\n"),
		seg("build:1", "bye\n"),
	))

	assert.Equal(t, []string{"hello world", "bye"}, texts(s.Lines()))
	assert.Equal(t, int32(3), s.Checkpoint())
	assert.Equal(t, len("hello world\nbye\n"), s.Len())
}

// TestAppend_ResentSegments tests that segments below the checkpoint are sliced off.
func TestAppend_ResentSegments(t *testing.T) {
	s := New(0)
	spans := map[string]string{"a": "fe"}
	s.Append(fragment(0, 2, spans, seg("a", "one\n"), seg("a", "two\n")))
	s.Append(fragment(1, 3, spans, seg("a", "two\n"), seg("a", "three\n")))

	assert.Equal(t, []string{"one", "two", "three"}, texts(s.Lines()))
	assert.Equal(t, int32(3), s.Checkpoint())
}

// TestAppend_NoLogs tests the [-1, -1) marker.
func TestAppend_NoLogs(t *testing.T) {
	s := New(0)
	s.Append(fragment(-1, -1, nil, seg("a", "ignored\n")))
	s.Append(nil)

	assert.Empty(t, s.Lines())
	assert.Equal(t, int32(0), s.Checkpoint())
}

// TestAppend_DefaultSpan tests that empty span ids are normalized.
func TestAppend_DefaultSpan(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 1, map[string]string{"": ""}, seg("", "global\n")))

	lines := s.SpanLines("")
	require.Len(t, lines, 1)
	assert.Equal(t, defaultSpanID, lines[0].SpanID)
}

// TestAppend_UnknownSpan tests that segments of unknown spans are not rendered.
func TestAppend_UnknownSpan(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 1, nil, seg("ghost", "boo\n")))

	assert.Empty(t, s.Lines())
}

// TestAppend_LevelBreaksLine tests that a level change starts a new line.
func TestAppend_LevelBreaksLine(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 2, map[string]string{"a": "fe"},
		&model.LogSegment{SpanID: "a", Text: "info "},
		&model.LogSegment{SpanID: "a", Text: "warn\n", Level: model.LogLevelWarn, Anchor: true},
	))

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, model.LogLevelInfo, lines[0].Level)
	assert.Equal(t, model.LogLevelWarn, lines[1].Level)
	assert.Equal(t, []Alert{{LineIndex: 1, Level: model.LogLevelWarn}}, s.AlertsForSpan("a"))
}

// TestAppend_ProgressOverwrite tests that progress lines are overwritten in place.
func TestAppend_ProgressOverwrite(t *testing.T) {
	s := New(0)
	progress := func(id, text string) *model.LogSegment {
		return &model.LogSegment{SpanID: "a", Text: text, Fields: map[string]string{fieldNameProgressID: id}}
	}
	s.Append(fragment(0, 4, map[string]string{"a": "fe"},
		seg("a", "pulling\n"),
		progress("layer1", "layer1 10%\n"),
		progress("layer2", "layer2 5%\n"),
		progress("layer1", "layer1 100%\n"),
	))

	assert.Equal(t, []string{"pulling", "layer1 100%", "layer2 5%"}, texts(s.Lines()))
}

func TestManifestLines(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 3, map[string]string{"a": "fe", "b": "be", "c": "fe"},
		seg("a", "fe build\n"),
		seg("b", "be build\n"),
		seg("c", "fe pod\n"),
	))

	assert.Equal(t, []string{"fe build", "fe pod"}, texts(s.ManifestLines("fe")))
	assert.Equal(t, []string{"be build"}, texts(s.SpanLines("b")))
	assert.Nil(t, s.AlertsForSpan("missing"))
}

func TestReset(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 1, map[string]string{"a": "fe"}, seg("a", "x\n")))
	s.Reset()

	assert.Empty(t, s.Lines())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, int32(0), s.Checkpoint())

	// after a reset the store accepts checkpoints from zero again
	s.Append(fragment(0, 1, map[string]string{"a": "fe"}, seg("a", "y\n")))
	assert.Equal(t, []string{"y"}, texts(s.Lines()))
}

// TestEnsureMaxLength tests that the store truncates to half its cap, oldest manifest first.
func TestEnsureMaxLength(t *testing.T) {
	s := New(100)
	line := strings.Repeat("x", 9) + "\n"

	var segs []*model.LogSegment
	for i := 0; i < 6; i++ {
		segs = append(segs, &model.LogSegment{SpanID: "old", Text: line, Time: "2024-01-01T00:00:00Z"})
	}
	for i := 0; i < 6; i++ {
		segs = append(segs, &model.LogSegment{SpanID: "new", Text: line, Time: "2024-01-02T00:00:00Z"})
	}
	s.Append(fragment(0, 12, map[string]string{"old": "old", "new": "new"}, segs...))

	assert.LessOrEqual(t, s.Len(), 50)
	assert.Greater(t, len(s.ManifestLines("new")), len(s.ManifestLines("old")))
	// newest segments survive
	lines := s.Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "new", lines[len(lines)-1].ManifestName)
}

func TestToLogList(t *testing.T) {
	s := New(0)
	s.Append(fragment(0, 3, map[string]string{"a": "fe", "b": "be"},
		seg("a", "0123456789"),
		seg("b", "abc\n"),
		seg("a", "end\n"),
	))

	full := s.ToLogList(0)
	require.Len(t, full.Segments, 3)
	assert.Equal(t, "0123456789", full.Segments[0].Text)
	assert.Equal(t, int32(3), full.ToCheckpoint)
	assert.Equal(t, "fe", full.Spans["a"].ManifestName)

	capped := s.ToLogList(8)
	require.Len(t, capped.Segments, 2)
	assert.Equal(t, "abc\n", capped.Segments[0].Text)
	assert.Equal(t, "end\n", capped.Segments[1].Text)

	// the export round-trips into a fresh store
	other := New(0)
	other.Append(full)
	assert.Equal(t, texts(s.Lines()), texts(other.Lines()))
}
