package reconcile

// CheckEpoch compares the start time of the current server run with the one
// carried by a delta. Values are opaque: only equality matters. If either value
// is unknown the delta is accepted.
func CheckEpoch(previousStartTime, newStartTime string) Epoch {
	if previousStartTime == "" || newStartTime == "" {
		return EpochContinue
	}
	if previousStartTime != newStartTime {
		return EpochHardReset
	}
	return EpochContinue
}
