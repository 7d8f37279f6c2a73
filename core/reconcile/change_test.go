package reconcile

import (
	"testing"

	"pipeline-hud/core/model"

	"github.com/stretchr/testify/assert"
)

func TestViewChanged(t *testing.T) {
	store := &recordingStore{}
	base := &model.View{
		Session:   session("T1"),
		Resources: []*model.UIResource{res("a", 0)},
		Buttons:   []*model.UIButton{button("b")},
		Clusters:  []*model.Cluster{cluster("default")},
		LogStore:  store,
	}

	copyOf := func() *model.View {
		v := *base
		return &v
	}

	t.Run("SameView", func(t *testing.T) {
		assert.False(t, ViewChanged(base, base))
	})

	t.Run("ShallowCopy", func(t *testing.T) {
		assert.False(t, ViewChanged(copyOf(), base))
	})

	t.Run("NewSession", func(t *testing.T) {
		v := copyOf()
		v.Session = session("T1")
		assert.True(t, ViewChanged(v, base))
	})

	t.Run("NewResources", func(t *testing.T) {
		v := copyOf()
		v.Resources = []*model.UIResource{base.Resources[0]}
		assert.True(t, ViewChanged(v, base))
	})

	t.Run("NewButtons", func(t *testing.T) {
		v := copyOf()
		v.Buttons = nil
		assert.True(t, ViewChanged(v, base))
	})

	t.Run("NewClusters", func(t *testing.T) {
		v := copyOf()
		v.Clusters = append([]*model.Cluster{}, base.Clusters...)
		assert.True(t, ViewChanged(v, base))
	})

	t.Run("NewLogStore", func(t *testing.T) {
		v := copyOf()
		v.LogStore = &recordingStore{}
		assert.True(t, ViewChanged(v, base))
	})

	t.Run("Nil", func(t *testing.T) {
		assert.True(t, ViewChanged(nil, base))
		assert.True(t, ViewChanged(base, nil))
		assert.False(t, ViewChanged(nil, nil))
	})
}
