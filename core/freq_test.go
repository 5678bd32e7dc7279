package core

import (
	"testing"

	"github.com/huangsam/citescope/schema"
	"github.com/stretchr/testify/assert"
)

// TestBuildFrequencyTable checks occurrence counting.
func TestBuildFrequencyTable(t *testing.T) {
	tests := []struct {
		name     string
		seq      []string
		expected schema.FrequencyTable
	}{
		{
			name:     "repeated authors",
			seq:      []string{"A", "A", "B", "C"},
			expected: schema.FrequencyTable{"A": 2, "B": 1, "C": 1},
		},
		{
			name:     "single author",
			seq:      []string{"A"},
			expected: schema.FrequencyTable{"A": 1},
		},
		{
			name:     "empty sequence",
			seq:      nil,
			expected: schema.FrequencyTable{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BuildFrequencyTable(tt.seq))
		})
	}
}

// TestBuildRankTable checks rank assignment and the tie-break rule.
func TestBuildRankTable(t *testing.T) {
	t.Run("counts descending", func(t *testing.T) {
		freq := schema.FrequencyTable{"A": 5, "B": 3, "C": 1}
		ranks := BuildRankTable(freq)
		assert.Equal(t, schema.RankTable{"A": 1, "B": 2, "C": 3}, ranks)
	})

	t.Run("ties break by author ascending", func(t *testing.T) {
		freq := schema.FrequencyTable{"Z": 2, "A": 2, "M": 2}
		ranks := BuildRankTable(freq)
		assert.Equal(t, schema.RankTable{"A": 1, "M": 2, "Z": 3}, ranks)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		freq := schema.FrequencyTable{"B": 4, "A": 4, "C": 2, "D": 2}
		first := BuildRankTable(freq)
		for range 5 {
			assert.Equal(t, first, BuildRankTable(freq))
		}
	})
}
