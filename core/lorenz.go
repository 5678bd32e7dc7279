package core

import (
	"github.com/huangsam/citescope/schema"
)

// BuildLorenzCurve converts a frequency distribution into aligned
// cumulative-share sequences. Authors are ordered by count descending, so
// point k answers "how much of the citation mass do the top k+1 authors
// hold". Both shares are non-decreasing and end at exactly 1.0.
func BuildLorenzCurve(label string, freq schema.FrequencyTable) (schema.LorenzCurve, error) {
	k := len(freq)
	if k == 0 {
		return schema.LorenzCurve{}, ErrEmptySequence
	}

	total := freq.Total()
	curve := schema.LorenzCurve{
		Label:         label,
		AuthorShare:   make([]float64, k),
		CitationShare: make([]float64, k),
	}

	cumulative := 0
	for i, author := range rankedAuthors(freq) {
		cumulative += freq[author]
		curve.AuthorShare[i] = float64(i+1) / float64(k)
		curve.CitationShare[i] = float64(cumulative) / float64(total)
	}
	return curve, nil
}

// FindThresholdAuthorProportion returns the smallest author share at which
// the cumulative citation share first reaches or exceeds target. Because the
// curve front-loads the most cited authors, a tiny target resolves to the
// single top author's share (1/K) and target=1.0 resolves to 1.0.
func FindThresholdAuthorProportion(curve schema.LorenzCurve, target float64) (float64, error) {
	if curve.Len() == 0 {
		return 0, ErrEmptySequence
	}
	if target <= 0 || target > 1 {
		return 0, ErrInvalidTarget
	}
	for i, share := range curve.CitationShare {
		if share >= target {
			return curve.AuthorShare[i], nil
		}
	}
	// CitationShare always ends at 1.0, so any valid target is reached above.
	return 1.0, nil
}
