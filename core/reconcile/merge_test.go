package reconcile

import (
	"testing"

	"pipeline-hud/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMerge_NoUpdates tests that an empty batch returns the previous collection itself.
func TestMerge_NoUpdates(t *testing.T) {
	previous := []*model.UIResource{res("a", 0), res("b", 1)}

	assert.True(t, model.SameSlice(previous, Merge(nil, previous)))
	assert.True(t, model.SameSlice(previous, Merge([]*model.UIResource{}, previous)))
}

// TestMerge_ExampleA tests upsert of an existing entity plus insertion of a new one.
func TestMerge_ExampleA(t *testing.T) {
	a, b := res("a", 0), res("b", 1)
	previous := []*model.UIResource{a, b}

	updatedA := res("a", 0)
	updatedA.Status.RuntimeStatus = "updated"
	c := res("c", 0)

	next := Merge([]*model.UIResource{updatedA, c}, previous)

	assert.Equal(t, []string{"a", "c", "b"}, names(next))
	assert.Same(t, updatedA, next[0])
	assert.Equal(t, "updated", next[0].Status.RuntimeStatus)

	// previous is untouched
	assert.Same(t, a, previous[0])
	assert.Same(t, b, previous[1])
	assert.Len(t, previous, 2)
}

// TestMerge_ExampleB tests that a tombstone removes the entity.
func TestMerge_ExampleB(t *testing.T) {
	previous := []*model.UIResource{res("a", 0), res("b", 0)}

	next := Merge([]*model.UIResource{tombstone("b")}, previous)

	assert.Equal(t, []string{"a"}, names(next))
	assert.Equal(t, []string{"a", "b"}, names(previous))
}

// TestMerge_TombstoneAnyPosition tests tombstone removal regardless of batch position.
func TestMerge_TombstoneAnyPosition(t *testing.T) {
	previous := []*model.UIResource{res("a", 0), res("b", 0), res("x", 0)}

	batches := [][]*model.UIResource{
		{tombstone("x"), res("c", 0), res("d", 0)},
		{res("c", 0), tombstone("x"), res("d", 0)},
		{res("c", 0), res("d", 0), tombstone("x")},
	}

	for _, batch := range batches {
		next := Merge(batch, previous)
		assert.Equal(t, []string{"a", "b", "c", "d"}, names(next))
	}
}

// TestMerge_LastWriteWins tests duplicate names within one batch.
func TestMerge_LastWriteWins(t *testing.T) {
	first := res("a", 5)
	second := res("a", 0)
	second.Status.UpdateStatus = "ok"

	next := Merge([]*model.UIResource{first, second}, nil)

	require.Len(t, next, 1)
	assert.Same(t, second, next[0])
}

// TestMerge_Resurrection tests that an update after a tombstone re-adds the entity.
func TestMerge_Resurrection(t *testing.T) {
	next := Merge([]*model.UIResource{tombstone("a"), res("a", 0)}, []*model.UIResource{res("a", 0)})
	assert.Equal(t, []string{"a"}, names(next))

	next = Merge([]*model.UIResource{res("a", 0), tombstone("a")}, []*model.UIResource{res("a", 0)})
	assert.Empty(t, next)
}

// TestMerge_OrderChange tests that a changed order hint moves an entity.
func TestMerge_OrderChange(t *testing.T) {
	previous := []*model.UIResource{res("a", 0), res("b", 1), res("c", 2)}

	next := Merge([]*model.UIResource{res("a", 3)}, previous)

	assert.Equal(t, []string{"b", "c", "a"}, names(next))
	assert.True(t, IsSorted(next))
}

// TestMerge_RepeatedEmpty tests that repeated empty merges keep the same collection.
func TestMerge_RepeatedEmpty(t *testing.T) {
	current := Merge([]*model.UIResource{res("b", 1), res("a", 0)}, nil)
	for i := 0; i < 5; i++ {
		next := Merge(nil, current)
		assert.True(t, model.SameSlice(current, next))
		assert.True(t, IsSorted(next))
		current = next
	}
}

func TestNormalize(t *testing.T) {
	items := []*model.UIResource{res("b", 0), tombstone("x"), res("a", 0), res("b", 1)}

	next := Normalize(items)

	assert.Equal(t, []string{"a", "b"}, names(next))
	assert.Equal(t, int32(1), next[1].Status.Order)
	// input is untouched
	assert.Equal(t, []string{"b", "x", "a", "b"}, names(items))
}

// TestMerge_NilEntries tests that nil updates are skipped without touching previous.
func TestMerge_NilEntries(t *testing.T) {
	previous := []*model.UIResource{res("a", 0), res("b", 1)}

	assert.True(t, model.SameSlice(previous, Merge([]*model.UIResource{nil, nil}, previous)))

	next := Merge([]*model.UIResource{nil, res("c", 0)}, previous)
	assert.Equal(t, []string{"a", "c", "b"}, names(next))
}

// TestNormalize_NilEntries tests that nil entries are dropped from a full collection.
func TestNormalize_NilEntries(t *testing.T) {
	next := Normalize([]*model.UIResource{nil, res("b", 0), nil, res("a", 0)})

	assert.Equal(t, []string{"a", "b"}, names(next))
}
