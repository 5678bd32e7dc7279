package schema

// MetricReport holds the diversity and concentration scalars for one dataset.
//
// Conventions, pinned here so every consumer agrees:
//   - Entropy uses the natural log (base e).
//   - HHI is the raw sum of squared proportions in [0,1], not the x10000 form.
//   - Evenness is Entropy/ln(K) and is defined as 1.0 when K=1.
//   - Dominance is the citation share of the top 5 authors (all K when K<5).
type MetricReport struct {
	Label          string  `json:"label"`           // Dataset label
	TotalCitations int     `json:"total_citations"` // N: number of citation events
	UniqueAuthors  int     `json:"unique_authors"`  // K: number of distinct authors
	Entropy        float64 `json:"entropy"`         // Shannon entropy, base e
	Gini           float64 `json:"gini"`            // Gini index in [0,1)
	Dominance      float64 `json:"dominance"`       // Top-5 citation share in [0,1]
	HHI            float64 `json:"hhi"`             // Herfindahl-Hirschman index in (1/K,1]
	Evenness       float64 `json:"evenness"`        // Normalized entropy in [0,1]
}

// PresenceRow is one row of a PresenceTable: an author plus one value per
// dataset label. Every label present in the table has a value here; authors
// absent from a dataset carry the mode's sentinel (0 for counts, K+1 for
// ranks) so downstream rendering never needs missing-value handling.
type PresenceRow struct {
	Author string         `json:"author"`
	Values map[string]int `json:"values"`
}

// PresenceTable is the merged top-N author table across datasets.
// Rows are ordered by aggregate value: descending for count mode,
// ascending for rank mode, ties broken by author ascending.
type PresenceTable struct {
	Mode   AggregationMode `json:"mode"`
	Labels []string        `json:"labels"` // Dataset labels in display order
	Rows   []PresenceRow   `json:"rows"`
}

// SimilarityMatrix holds pairwise Jaccard similarities between datasets.
// It is square and symmetric with a 1.0 diagonal.
type SimilarityMatrix struct {
	Labels []string                      `json:"labels"`
	Scores map[string]map[string]float64 `json:"scores"`
}

// At returns the similarity score for a pair of labels.
func (m *SimilarityMatrix) At(a, b string) float64 {
	if row, ok := m.Scores[a]; ok {
		return row[b]
	}
	return 0
}

// LorenzCurve holds the cumulative-share curve of a citation distribution.
// AuthorShare[k] and CitationShare[k] are aligned, both non-decreasing, and
// both reach 1.0 at the last index. Authors are ordered by count descending,
// so the curve front-loads the most cited authors.
type LorenzCurve struct {
	Label         string    `json:"label"`
	AuthorShare   []float64 `json:"author_share"`   // (k+1)/K for k=0..K-1
	CitationShare []float64 `json:"citation_share"` // Cumulative citation proportion
}

// Len returns the number of points on the curve.
func (c *LorenzCurve) Len() int {
	return len(c.AuthorShare)
}
