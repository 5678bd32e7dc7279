// Package schema has models, constants and helpers shared by all parts of citescope.
package schema

// Dataset is one loaded citation dataset: a label (usually derived from the
// source file name) and the flattened sequence of cited author identifiers,
// one entry per citation event. Datasets are immutable once loaded; the loader
// guarantees Citations is non-empty for any dataset accepted by the engine.
type Dataset struct {
	Label     string   // Display label for the dataset
	Citations []string // Flattened author identifiers, one per citation event
}

// FrequencyTable maps an author identifier to its citation count.
// Counts are always positive; authors with zero citations never appear.
type FrequencyTable map[string]int

// RankTable maps an author identifier to its 1-based rank.
// Ranks are assigned by count descending, ties broken by author ascending.
type RankTable map[string]int

// Total returns the sum of all counts in the table.
func (ft FrequencyTable) Total() int {
	total := 0
	for _, c := range ft {
		total += c
	}
	return total
}
