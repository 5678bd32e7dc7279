package core

import (
	"fmt"

	"github.com/huangsam/citescope/schema"
)

// BuildSimilarityMatrix computes pairwise Jaccard similarity over the
// distinct-author sets of every dataset pair. The result is square and
// symmetric with a 1.0 diagonal; label order follows the input datasets.
func BuildSimilarityMatrix(datasets []schema.Dataset) (schema.SimilarityMatrix, error) {
	matrix := schema.SimilarityMatrix{
		Labels: make([]string, 0, len(datasets)),
		Scores: make(map[string]map[string]float64, len(datasets)),
	}
	for _, ds := range datasets {
		if len(ds.Citations) == 0 {
			return schema.SimilarityMatrix{}, fmt.Errorf("dataset %s: %w", ds.Label, ErrEmptySequence)
		}
		matrix.Labels = append(matrix.Labels, ds.Label)
		matrix.Scores[ds.Label] = make(map[string]float64, len(datasets))
	}

	for i, a := range datasets {
		matrix.Scores[a.Label][a.Label] = 1.0
		for _, b := range datasets[i+1:] {
			score, err := JaccardSimilarity(a.Citations, b.Citations)
			if err != nil {
				return schema.SimilarityMatrix{}, err
			}
			matrix.Scores[a.Label][b.Label] = score
			matrix.Scores[b.Label][a.Label] = score
		}
	}
	return matrix, nil
}
