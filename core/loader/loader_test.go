package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManager_LoadAll(t *testing.T) {
	view := &fakeFeature{name: "view", enabled: true}
	journal := &fakeFeature{name: "journal", enabled: false}
	snapshot := &fakeFeature{name: "snapshot", enabled: true}

	m := NewManager()
	m.Register(view)
	m.Register(journal)
	m.Register(snapshot)

	loaded, err := m.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"view", "snapshot"}, loaded)
	assert.False(t, journal.loaded)
	assert.Len(t, m.Features(), 3)
}

func TestManager_LoadAllError(t *testing.T) {
	m := NewManager()
	m.Register(&fakeFeature{name: "broken", enabled: true, err: errors.New("boom")})
	m.Register(&fakeFeature{name: "after", enabled: true})

	loaded, err := m.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: boom")
	assert.Empty(t, loaded)
}
