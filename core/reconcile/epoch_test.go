package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckEpoch(t *testing.T) {
	tests := []struct {
		name     string
		previous string
		next     string
		want     Epoch
	}{
		{"Same", "T1", "T1", EpochContinue},
		{"Different", "T1", "T2", EpochHardReset},
		{"PreviousUnknown", "", "T2", EpochContinue},
		{"NextUnknown", "T1", "", EpochContinue},
		{"BothUnknown", "", "", EpochContinue},
		{"NotNumeric", "2024-01-01T10:00:00.000001Z", "2024-01-01T10:00:00.000002Z", EpochHardReset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckEpoch(tt.previous, tt.next))
		})
	}
}
