package model

// ObjectMeta is the subset of object metadata the client cares about.
type ObjectMeta struct {
	// Name is the unique key of the object within its collection.
	Name string `json:"name,omitempty"`
	// Labels are free-form grouping labels set by the server.
	Labels map[string]string `json:"labels,omitempty"`
	// Annotations are free-form annotations set by the server.
	Annotations map[string]string `json:"annotations,omitempty"`
	// ResourceVersion is an opaque server-side version of the object.
	ResourceVersion string `json:"resourceVersion,omitempty"`
	// DeletionTimestamp marks the object as deleted (tombstone).
	DeletionTimestamp string `json:"deletionTimestamp,omitempty"`
}

// Entity is a named object stored in one of the view collections.
type Entity interface {
	// GetName returns the collection key.
	GetName() string
	// OrderHint returns the server supplied sort hint (default 0).
	OrderHint() int32
	// IsDeleted reports whether the object is a tombstone.
	IsDeleted() bool
}

// SameSlice reports whether a and b share the same backing array and length.
// Two empty slices are always the same.
func SameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
