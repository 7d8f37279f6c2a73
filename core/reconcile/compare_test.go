package reconcile

import (
	"testing"

	"pipeline-hud/core/model"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b model.Entity
		want int
	}{
		{"LowerOrderFirst", res("z", 0), res("a", 1), -1},
		{"HigherOrderLast", res("a", 2), res("z", 1), 1},
		{"TieBrokenByName", res("a", 0), res("c", 0), -1},
		{"Equal", res("a", 3), res("a", 3), 0},
		{"CodepointNotLocale", res("B", 0), res("a", 0), -1},
		{"MissingOrderIsZero", button("b"), res("a", 0), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}

// TestSort_Stable tests that sorting a sorted collection is a no-op.
func TestSort_Stable(t *testing.T) {
	items := []*model.UIResource{res("b", 1), res("a", 0), res("c", 0)}
	Sort(items)
	assert.Equal(t, []string{"a", "c", "b"}, names(items))

	first := items[0]
	Sort(items)
	assert.Same(t, first, items[0])
	assert.True(t, IsSorted(items))
}
