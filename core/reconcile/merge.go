package reconcile

import "pipeline-hud/core/model"

// Merge applies a batch of updates to a collection and returns the new collection.
//
// With no updates, previous is returned as is so the caller can detect that
// nothing changed. Otherwise previous is copied, each update replaces the entry
// with the same name (or is appended), tombstones are dropped and the result is
// re-sorted. Within one batch the last update for a name wins. Nil entries,
// as decoded from a JSON null, are ignored.
func Merge[E any, T EntityPtr[E]](updates, previous []T) []T {
	updates = compact(updates)
	if len(updates) == 0 {
		return previous
	}

	next := make([]T, len(previous), len(previous)+len(updates))
	copy(next, previous)

	index := make(map[string]int, len(next))
	for i, item := range next {
		index[item.GetName()] = i
	}

	for _, update := range updates {
		name := update.GetName()
		if i, ok := index[name]; ok {
			next[i] = update
			continue
		}
		index[name] = len(next)
		next = append(next, update)
	}

	next = dropDeleted(next)
	Sort(next)
	return next
}

// Normalize filters tombstones out of a full collection and sorts it.
// Used for full snapshots, which replace rather than patch.
func Normalize[E any, T EntityPtr[E]](items []T) []T {
	next := compact(items)
	next = dedupe(next)
	next = dropDeleted(next)
	Sort(next)
	return next
}

// EntityPtr is a pointer to an entity struct, so entries can be checked for nil.
type EntityPtr[E any] interface {
	*E
	model.Entity
}

// compact returns a copy of items without nil entries.
func compact[E any, T EntityPtr[E]](items []T) []T {
	next := make([]T, 0, len(items))
	for _, item := range items {
		if item != nil {
			next = append(next, item)
		}
	}
	return next
}

// dropDeleted filters tombstones in place.
func dropDeleted[T model.Entity](items []T) []T {
	kept := items[:0]
	for _, item := range items {
		if item.IsDeleted() {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// dedupe keeps the last entry for every name, at the position of the first one.
func dedupe[T model.Entity](items []T) []T {
	index := make(map[string]int, len(items))
	kept := items[:0]
	for _, item := range items {
		name := item.GetName()
		if i, ok := index[name]; ok {
			kept[i] = item
			continue
		}
		index[name] = len(kept)
		kept = append(kept, item)
	}
	return kept
}
