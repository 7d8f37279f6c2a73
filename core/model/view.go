package model

// LogStore receives the log fragments of the stream.
// Implementations manage their own identity: the same store is kept across deltas.
type LogStore interface {
	// Append folds a log fragment into the store, in delivery order.
	Append(list *LogList)
	// Reset drops all stored logs. Called before a full refresh.
	Reset()
}

// Delta is one message of the view stream.
// A nil or empty field means "no change" for that sub-structure.
type Delta struct {
	Session   *UISession    `json:"uiSession,omitempty"`
	Resources []*UIResource `json:"uiResources,omitempty"`
	Buttons   []*UIButton   `json:"uiButtons,omitempty"`
	Clusters  []*Cluster    `json:"clusters,omitempty"`
	LogList   *LogList      `json:"logList,omitempty"`

	// IsComplete marks a full snapshot that replaces the view instead of patching it.
	IsComplete bool `json:"isComplete,omitempty"`
}

// IsEmpty reports whether the delta carries nothing at all.
func (d *Delta) IsEmpty() bool {
	return d == nil || (d.Session == nil && len(d.Resources) == 0 && len(d.Buttons) == 0 &&
		len(d.Clusters) == 0 && d.LogList == nil && !d.IsComplete)
}

// View is the reconciled state of one server run.
// A published View must not be mutated; produce a new one through reconciliation.
type View struct {
	Session   *UISession    `json:"uiSession,omitempty"`
	Resources []*UIResource `json:"uiResources"`
	Buttons   []*UIButton   `json:"uiButtons"`
	Clusters  []*Cluster    `json:"clusters"`

	// LogStore receives the log fragments of the stream. It is not serialized.
	LogStore LogStore `json:"-"`
}

// NewView returns an empty view backed by the given log store.
func NewView(store LogStore) *View {
	return &View{LogStore: store}
}

// StartTime returns the epoch marker of the view's session.
func (v *View) StartTime() string {
	return v.Session.StartTime()
}

// Resource returns the resource with the given name, or nil.
func (v *View) Resource(name string) *UIResource {
	for _, r := range v.Resources {
		if r.GetName() == name {
			return r
		}
	}
	return nil
}

// Snapshot is a persisted view, the input of the read-only snapshot mode.
type Snapshot struct {
	View      *Delta `json:"view,omitempty"`
	Path      string `json:"path,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
