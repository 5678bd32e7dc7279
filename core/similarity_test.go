package core

import (
	"testing"

	"github.com/huangsam/citescope/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildSimilarityMatrix validates symmetry, diagonal and pairwise scores.
func TestBuildSimilarityMatrix(t *testing.T) {
	datasets := []schema.Dataset{
		{Label: "ds1", Citations: []string{"A", "B"}},
		{Label: "ds2", Citations: []string{"B", "C"}},
		{Label: "ds3", Citations: []string{"X", "Y"}},
	}

	matrix, err := BuildSimilarityMatrix(datasets)
	require.NoError(t, err)

	assert.Equal(t, []string{"ds1", "ds2", "ds3"}, matrix.Labels)

	for _, label := range matrix.Labels {
		assert.Equal(t, 1.0, matrix.At(label, label))
	}

	assert.InDelta(t, 1.0/3.0, matrix.At("ds1", "ds2"), 0.001)
	assert.Equal(t, matrix.At("ds1", "ds2"), matrix.At("ds2", "ds1"))
	assert.Zero(t, matrix.At("ds1", "ds3"))
	assert.Zero(t, matrix.At("ds2", "ds3"))
}

// TestBuildSimilarityMatrixEmptyDataset ensures empty datasets are rejected.
func TestBuildSimilarityMatrixEmptyDataset(t *testing.T) {
	datasets := []schema.Dataset{
		{Label: "ds1", Citations: []string{"A"}},
		{Label: "ds2", Citations: nil},
	}
	_, err := BuildSimilarityMatrix(datasets)
	assert.ErrorIs(t, err, ErrEmptySequence)
}

// TestBuildSimilarityMatrixSingle checks the degenerate one-dataset matrix.
func TestBuildSimilarityMatrixSingle(t *testing.T) {
	matrix, err := BuildSimilarityMatrix([]schema.Dataset{{Label: "only", Citations: []string{"A"}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, matrix.Labels)
	assert.Equal(t, 1.0, matrix.At("only", "only"))
}
