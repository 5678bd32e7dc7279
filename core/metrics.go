package core

import (
	"math"

	"github.com/huangsam/citescope/schema"
)

// dominanceTopN is the number of top authors whose citation share defines the
// dominance index. When a dataset has fewer distinct authors, all of them
// count, so dominance is 1.0 whenever K <= dominanceTopN.
const dominanceTopN = 5

// ShannonEntropy computes H = -sum(p_i * ln(p_i)) over the author proportions
// of the sequence, using the natural log. Returns 0 when the sequence has a
// single distinct author and ErrEmptySequence when it has no events.
func ShannonEntropy(seq []string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	freq := BuildFrequencyTable(seq)
	total := float64(len(seq))

	var h float64
	for _, c := range freq {
		p := float64(c) / total
		h -= p * math.Log(p)
	}
	// -0*log(0) accumulation can leave a tiny negative residue
	return math.Max(h, 0), nil
}

// GiniIndex computes the Gini coefficient of the author count distribution
// via the mean absolute difference formula: G = sum|c_i - c_j| / (2*K^2*mean).
// 0 means every author is cited equally; values approach 1 as citations
// concentrate on a single author. Returns ErrEmptySequence when N=0.
func GiniIndex(seq []string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	freq := BuildFrequencyTable(seq)
	values := make([]float64, 0, len(freq))
	for _, c := range freq {
		values = append(values, float64(c))
	}
	return gini(values), nil
}

// gini calculates the Gini coefficient for a set of values.
// The Gini coefficient measures inequality in a distribution, ranging from 0
// (perfect equality) to values approaching 1 (perfect inequality).
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	if mean == 0 {
		return 0
	}

	var diffSum float64
	for i := range n {
		for j := range n {
			diffSum += math.Abs(values[i] - values[j])
		}
	}

	g := diffSum / (2 * float64(n*n) * mean)
	return math.Min(math.Max(g, 0), 1) // clamp to [0,1]
}

// DominanceIndex computes the proportion of all citations attributable to the
// top dominanceTopN authors by count. Range [0,1]; equals 1.0 when the dataset
// has dominanceTopN or fewer distinct authors.
func DominanceIndex(seq []string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	freq := BuildFrequencyTable(seq)
	ranked := rankedAuthors(freq)

	top := 0
	for i, author := range ranked {
		if i >= dominanceTopN {
			break
		}
		top += freq[author]
	}
	return float64(top) / float64(len(seq)), nil
}

// HerfindahlIndex computes HHI = sum(p_i^2) over author proportions, in the
// raw [0,1] proportion form (the classic x10000 scaling is deliberately not
// applied). Range (1/K, 1]; 1.0 means a single author holds every citation.
func HerfindahlIndex(seq []string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	freq := BuildFrequencyTable(seq)
	total := float64(len(seq))

	var hhi float64
	for _, c := range freq {
		p := float64(c) / total
		hhi += p * p
	}
	return hhi, nil
}

// EvennessIndex computes the normalized entropy H/ln(K) in [0,1]. A single
// distinct author would divide by ln(1)=0, so K=1 returns 1.0 by convention:
// one author is trivially "maximally even".
func EvennessIndex(seq []string) (float64, error) {
	if len(seq) == 0 {
		return 0, ErrEmptySequence
	}
	freq := BuildFrequencyTable(seq)
	if len(freq) == 1 {
		return 1.0, nil
	}
	h, err := ShannonEntropy(seq)
	if err != nil {
		return 0, err
	}
	return h / math.Log(float64(len(freq))), nil
}

// JaccardSimilarity computes |A∩B| / |A∪B| over the distinct-author sets of
// the two sequences; counts do not weight the result. Two sequences with
// identical author sets score 1.0, including two empty sequences, which are
// treated as identical by convention rather than an error.
func JaccardSimilarity(a, b []string) (float64, error) {
	setA := distinctAuthors(a)
	setB := distinctAuthors(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1.0, nil
	}

	intersection := 0
	for author := range setA {
		if _, ok := setB[author]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union), nil
}

// distinctAuthors returns the set of distinct authors in a sequence.
func distinctAuthors(seq []string) map[string]struct{} {
	set := make(map[string]struct{}, len(seq))
	for _, author := range seq {
		set[author] = struct{}{}
	}
	return set
}

// ComputeMetricReport computes every engine scalar for one sequence in a
// single pass over its frequency table. All functions here are pure and
// order-invariant: permuting seq never changes the report.
func ComputeMetricReport(label string, seq []string) (schema.MetricReport, error) {
	if len(seq) == 0 {
		return schema.MetricReport{}, ErrEmptySequence
	}

	entropy, err := ShannonEntropy(seq)
	if err != nil {
		return schema.MetricReport{}, err
	}
	giniIdx, err := GiniIndex(seq)
	if err != nil {
		return schema.MetricReport{}, err
	}
	dominance, err := DominanceIndex(seq)
	if err != nil {
		return schema.MetricReport{}, err
	}
	hhi, err := HerfindahlIndex(seq)
	if err != nil {
		return schema.MetricReport{}, err
	}
	evenness, err := EvennessIndex(seq)
	if err != nil {
		return schema.MetricReport{}, err
	}

	return schema.MetricReport{
		Label:          label,
		TotalCitations: len(seq),
		UniqueAuthors:  len(BuildFrequencyTable(seq)),
		Entropy:        entropy,
		Gini:           giniIdx,
		Dominance:      dominance,
		HHI:            hhi,
		Evenness:       evenness,
	}, nil
}
