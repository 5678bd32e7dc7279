package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel checks label thresholds on evenness values.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		evenness float64
		expected string
	}{
		{"fully even", 1.0, DiverseValue},
		{"boundary diverse", 0.9, DiverseValue},
		{"balanced", 0.75, BalancedValue},
		{"boundary balanced", 0.7, BalancedValue},
		{"skewed", 0.5, SkewedValue},
		{"boundary skewed", 0.4, SkewedValue},
		{"concentrated", 0.1, ConcentratedValue},
		{"zero", 0.0, ConcentratedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.evenness))
		})
	}
}

// TestGetColorLabel ensures the colored label always contains the plain text.
func TestGetColorLabel(t *testing.T) {
	for _, evenness := range []float64{1.0, 0.8, 0.5, 0.1} {
		assert.Contains(t, GetColorLabel(evenness), GetPlainLabel(evenness))
	}
}

// TestTruncateName checks ellipsis behavior and width guard.
func TestTruncateName(t *testing.T) {
	assert.Equal(t, "Short", TruncateName("Short", 10))
	assert.Equal(t, "Woolho...", TruncateName("Woolhouse MEJ", 9))
	// maxWidth too small to hold an ellipsis leaves the name alone
	assert.Equal(t, "Woolhouse MEJ", TruncateName("Woolhouse MEJ", 3))
}

// TestParseBoolString covers accepted and rejected values.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
