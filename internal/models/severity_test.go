package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityForWeight(t *testing.T) {
	tests := []struct {
		name   string
		weight int
		want   Severity
	}{
		{name: "weight 10 is critical", weight: 10, want: SeverityCritical},
		{name: "weight 9 is critical", weight: 9, want: SeverityCritical},
		{name: "weight 8 is high", weight: 8, want: SeverityHigh},
		{name: "weight 7 is high", weight: 7, want: SeverityHigh},
		{name: "weight 6 is medium", weight: 6, want: SeverityMedium},
		{name: "weight 5 is medium", weight: 5, want: SeverityMedium},
		{name: "weight 4 is low", weight: 4, want: SeverityLow},
		{name: "weight 1 is low", weight: 1, want: SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeverityForWeight(tt.weight))
		})
	}
}

func TestSeverityOrdinal(t *testing.T) {
	// Ordering must hold for sorting: critical < high < medium < low.
	assert.Less(t, SeverityOrdinal(SeverityCritical), SeverityOrdinal(SeverityHigh))
	assert.Less(t, SeverityOrdinal(SeverityHigh), SeverityOrdinal(SeverityMedium))
	assert.Less(t, SeverityOrdinal(SeverityMedium), SeverityOrdinal(SeverityLow))
	assert.Less(t, SeverityOrdinal(SeverityLow), SeverityOrdinal(Severity("bogus")))
}

func TestIsValidSeverity(t *testing.T) {
	for _, sev := range ValidSeverities() {
		assert.True(t, IsValidSeverity(sev), "severity %s should be valid", sev)
	}
	assert.False(t, IsValidSeverity(Severity("informational")))
	assert.False(t, IsValidSeverity(Severity("")))
}
