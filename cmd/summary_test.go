package cmd

import (
	"bytes"
	"testing"

	"pipeline-hud/core/logstore"
	"pipeline-hud/core/model"
	"pipeline-hud/core/reconcile"
	"pipeline-hud/core/stream"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const exported = `{
  "view": {
    "uiSession": {"status": {"tiltStartTime": "2026-03-01T10:00:00Z"}},
    "uiResources": [
      {"metadata": {"name": "web"}, "status": {"order": 2, "runtimeStatus": "ok"}},
      {"metadata": {"name": "api"}, "status": {"order": 1, "runtimeStatus": "error",
        "buildHistory": [{"error": "exit status 1"}]}}
    ],
    "uiButtons": [{"metadata": {"name": "restart"}}],
    "clusters": [{"metadata": {"name": "default"}}],
    "logList": {"spans": {"": {}}, "segments": [{"text": "hello\n"}]}
  },
  "createdAt": "2026-03-01T12:00:00Z"
}`

func summarizeExported(t *testing.T) viewSummary {
	t.Helper()
	delta, err := stream.DecodeSnapshot([]byte(exported))
	require.NoError(t, err)

	logs := logstore.New(0)
	result := reconcile.Reconcile(model.NewView(logs), delta)
	require.Equal(t, reconcile.Changed, result.Outcome)
	return summarize(result.View, logs, "2026-03-01T12:00:00Z")
}

func TestSummarize(t *testing.T) {
	s := summarizeExported(t)

	assert.Equal(t, "2026-03-01T10:00:00Z", s.Epoch)
	require.Len(t, s.Resources, 2)
	assert.Equal(t, "api", s.Resources[0].Name)
	assert.Equal(t, "exit status 1", s.Resources[0].LastError)
	assert.Equal(t, []string{"restart"}, s.Buttons)
	assert.Equal(t, []string{"default"}, s.Clusters)
	assert.Equal(t, 1, s.LogLines)
}

func TestWriteSummary(t *testing.T) {
	s := summarizeExported(t)

	t.Run("YAML", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, s, "yaml"))

		var decoded viewSummary
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
		assert.Equal(t, s, decoded)
	})

	t.Run("JSON", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, writeSummary(&buf, s, "json"))
		assert.Contains(t, buf.String(), `"epoch": "2026-03-01T10:00:00Z"`)
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Error(t, writeSummary(&bytes.Buffer{}, s, "toml"))
	})
}
