package model

// UIResource is one resource of the pipeline (a build/deploy unit).
type UIResource struct {
	Metadata ObjectMeta       `json:"metadata,omitempty"`
	Status   UIResourceStatus `json:"status,omitempty"`
}

// UIResourceLink is an endpoint exposed by a resource.
type UIResourceLink struct {
	URL  string `json:"url,omitempty"`
	Name string `json:"name,omitempty"`
}

// UIBuild describes a finished or running build of a resource.
type UIBuild struct {
	Error      string   `json:"error,omitempty"`
	Warnings   []string `json:"warnings,omitempty"`
	StartTime  string   `json:"startTime,omitempty"`
	FinishTime string   `json:"finishTime,omitempty"`
	SpanID     string   `json:"spanID,omitempty"`
}

// UIResourceStatus is the mutable part of a resource.
type UIResourceStatus struct {
	// Order is the server supplied position hint.
	Order int32 `json:"order,omitempty"`

	LastDeployTime    string           `json:"lastDeployTime,omitempty"`
	TriggerMode       int32            `json:"triggerMode,omitempty"`
	BuildHistory      []UIBuild        `json:"buildHistory,omitempty"`
	CurrentBuild      *UIBuild         `json:"currentBuild,omitempty"`
	PendingBuildSince string           `json:"pendingBuildSince,omitempty"`
	HasPendingChanges bool             `json:"hasPendingChanges,omitempty"`
	EndpointLinks     []UIResourceLink `json:"endpointLinks,omitempty"`
	RuntimeStatus     string           `json:"runtimeStatus,omitempty"`
	UpdateStatus      string           `json:"updateStatus,omitempty"`
	Queued            bool             `json:"queued,omitempty"`
}

func (r *UIResource) GetName() string  { return r.Metadata.Name }
func (r *UIResource) OrderHint() int32 { return r.Status.Order }
func (r *UIResource) IsDeleted() bool  { return r.Metadata.DeletionTimestamp != "" }
