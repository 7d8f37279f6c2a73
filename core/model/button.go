package model

// UIButton is a server-defined action button attached to a UI component.
type UIButton struct {
	Metadata ObjectMeta     `json:"metadata,omitempty"`
	Spec     UIButtonSpec   `json:"spec,omitempty"`
	Status   UIButtonStatus `json:"status,omitempty"`
}

// UIComponentLocation places a button on a resource or on the global nav.
type UIComponentLocation struct {
	ComponentID   string `json:"componentID"`
	ComponentType string `json:"componentType"`
}

// UIButtonSpec is the declared shape of a button.
type UIButtonSpec struct {
	Location             UIComponentLocation `json:"location"`
	Text                 string              `json:"text"`
	IconName             string              `json:"iconName,omitempty"`
	Disabled             bool                `json:"disabled,omitempty"`
	RequiresConfirmation bool                `json:"requiresConfirmation,omitempty"`
}

// UIButtonStatus is the mutable part of a button.
type UIButtonStatus struct {
	Order         int32  `json:"order,omitempty"`
	LastClickedAt string `json:"lastClickedAt,omitempty"`
}

func (b *UIButton) GetName() string  { return b.Metadata.Name }
func (b *UIButton) OrderHint() int32 { return b.Status.Order }
func (b *UIButton) IsDeleted() bool  { return b.Metadata.DeletionTimestamp != "" }
