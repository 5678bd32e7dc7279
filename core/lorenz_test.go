package core

import (
	"testing"

	"github.com/huangsam/citescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildLorenzCurve validates the cumulative-share construction.
func TestBuildLorenzCurve(t *testing.T) {
	t.Run("counts 3,2,1", func(t *testing.T) {
		freq := schema.FrequencyTable{"A": 3, "B": 2, "C": 1}
		curve, err := BuildLorenzCurve("ds", freq)
		require.NoError(t, err)

		require.Equal(t, 3, curve.Len())
		assert.InDelta(t, 1.0/3.0, curve.AuthorShare[0], 1e-9)
		assert.InDelta(t, 2.0/3.0, curve.AuthorShare[1], 1e-9)
		assert.InDelta(t, 1.0, curve.AuthorShare[2], 1e-9)

		assert.InDelta(t, 0.5, curve.CitationShare[0], 1e-9)
		assert.InDelta(t, 5.0/6.0, curve.CitationShare[1], 1e-9)
		assert.InDelta(t, 1.0, curve.CitationShare[2], 1e-9)
	})

	t.Run("single author", func(t *testing.T) {
		curve, err := BuildLorenzCurve("ds", schema.FrequencyTable{"A": 7})
		require.NoError(t, err)
		require.Equal(t, 1, curve.Len())
		assert.Equal(t, 1.0, curve.AuthorShare[0])
		assert.Equal(t, 1.0, curve.CitationShare[0])
	})

	t.Run("empty table", func(t *testing.T) {
		_, err := BuildLorenzCurve("ds", schema.FrequencyTable{})
		assert.ErrorIs(t, err, ErrEmptySequence)
	})

	t.Run("monotone and terminal", func(t *testing.T) {
		freq := schema.FrequencyTable{"A": 10, "B": 5, "C": 5, "D": 1, "E": 1}
		curve, err := BuildLorenzCurve("ds", freq)
		require.NoError(t, err)

		for i := 1; i < curve.Len(); i++ {
			assert.GreaterOrEqual(t, curve.CitationShare[i], curve.CitationShare[i-1])
			assert.Greater(t, curve.AuthorShare[i], curve.AuthorShare[i-1])
		}
		assert.Equal(t, 1.0, curve.CitationShare[curve.Len()-1])
		assert.Equal(t, 1.0, curve.AuthorShare[curve.Len()-1])
	})
}

// TestFindThresholdAuthorProportion validates threshold lookup.
func TestFindThresholdAuthorProportion(t *testing.T) {
	freq := schema.FrequencyTable{"A": 3, "B": 2, "C": 1}
	curve, err := BuildLorenzCurve("ds", freq)
	require.NoError(t, err)

	tests := []struct {
		name     string
		target   float64
		expected float64
	}{
		{"half the citations from the top author", 0.5, 1.0 / 3.0},
		{"tiny target resolves to top author", 0.01, 1.0 / 3.0},
		{"between first and second point", 0.6, 2.0 / 3.0},
		{"everything needs all authors", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindThresholdAuthorProportion(curve, tt.target)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}

	t.Run("invalid targets", func(t *testing.T) {
		for _, target := range []float64{0, -0.5, 1.01} {
			_, err := FindThresholdAuthorProportion(curve, target)
			assert.ErrorIs(t, err, ErrInvalidTarget)
		}
	})

	t.Run("empty curve", func(t *testing.T) {
		_, err := FindThresholdAuthorProportion(schema.LorenzCurve{}, 0.5)
		assert.ErrorIs(t, err, ErrEmptySequence)
	})
}
