package core

import (
	"sort"

	"github.com/huangsam/citescope/schema"
)

// BuildFrequencyTable counts author occurrences in a citation sequence. O(N).
func BuildFrequencyTable(seq []string) schema.FrequencyTable {
	freq := make(schema.FrequencyTable, len(seq))
	for _, author := range seq {
		freq[author]++
	}
	return freq
}

// rankedAuthors returns the table's authors sorted by count descending,
// ties broken by author identifier ascending. This is the single ordering
// rule shared by rank tables, dominance and Lorenz curves, so every view of
// the same distribution agrees on who comes first.
func rankedAuthors(freq schema.FrequencyTable) []string {
	authors := make([]string, 0, len(freq))
	for author := range freq {
		authors = append(authors, author)
	}
	sort.Slice(authors, func(i, j int) bool {
		if freq[authors[i]] != freq[authors[j]] {
			return freq[authors[i]] > freq[authors[j]]
		}
		return authors[i] < authors[j]
	})
	return authors
}

// BuildRankTable assigns 1-based ranks to every author in the table,
// by count descending with ties broken by author ascending.
func BuildRankTable(freq schema.FrequencyTable) schema.RankTable {
	ranks := make(schema.RankTable, len(freq))
	for i, author := range rankedAuthors(freq) {
		ranks[author] = i + 1
	}
	return ranks
}
