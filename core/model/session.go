package model

// UISession is the singleton describing the running server process.
type UISession struct {
	Metadata ObjectMeta      `json:"metadata,omitempty"`
	Status   UISessionStatus `json:"status,omitempty"`
}

// UIFeatureFlag is an experimental feature toggle reported by the server.
type UIFeatureFlag struct {
	Name  string `json:"name"`
	Value bool   `json:"value"`
}

// TiltBuild describes the server binary.
type TiltBuild struct {
	Version   string `json:"version,omitempty"`
	CommitSHA string `json:"commitSHA,omitempty"`
	Date      string `json:"date,omitempty"`
	Dev       bool   `json:"dev,omitempty"`
}

// UISessionStatus carries the session state pushed by the server.
type UISessionStatus struct {
	FeatureFlags         []UIFeatureFlag `json:"featureFlags,omitempty"`
	NeedsAnalyticsNudge  bool            `json:"needsAnalyticsNudge,omitempty"`
	RunningTiltBuild     TiltBuild       `json:"runningTiltBuild,omitempty"`
	SuggestedTiltVersion string          `json:"suggestedTiltVersion,omitempty"`
	FatalError           string          `json:"fatalError,omitempty"`

	// TiltStartTime identifies one continuous server run. It is compared as an
	// opaque value: a different value means the server restarted.
	TiltStartTime string `json:"tiltStartTime,omitempty"`

	// TiltfileKey identifies the project the server is running.
	TiltfileKey string `json:"tiltfileKey,omitempty"`
}

// StartTime returns the epoch marker of the session, or "" for a nil session.
func (s *UISession) StartTime() string {
	if s == nil {
		return ""
	}
	return s.Status.TiltStartTime
}
