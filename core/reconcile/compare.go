package reconcile

import (
	"slices"
	"strings"

	"pipeline-hud/core/model"
)

// Compare orders entities by their order hint, then by name.
// Names are compared by codepoint, not by locale.
func Compare(a, b model.Entity) int {
	ao, bo := a.OrderHint(), b.OrderHint()
	if ao != bo {
		if ao < bo {
			return -1
		}
		return 1
	}
	return strings.Compare(a.GetName(), b.GetName())
}

// Sort sorts a collection in place with Compare.
// The sort is stable so sorting an already sorted collection moves nothing.
func Sort[T model.Entity](items []T) {
	slices.SortStableFunc(items, func(a, b T) int {
		return Compare(a, b)
	})
}

// IsSorted reports whether a collection follows Compare.
func IsSorted[T model.Entity](items []T) bool {
	return slices.IsSortedFunc(items, func(a, b T) int {
		return Compare(a, b)
	})
}
