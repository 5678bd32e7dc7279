package core

import (
	"sort"

	"github.com/huangsam/citescope/schema"
)

// MergeTopN selects the top n authors of each dataset, takes the union, and
// fills one value per (author, dataset) cell: the author's count (count mode)
// or rank (rank mode). Authors absent from a dataset get a sentinel instead
// of a missing value: 0 for counts, K+1 for ranks, where K is that dataset's
// distinct author total ("below last place"). Rows are sorted by aggregate
// value across datasets: descending in count mode, ascending in rank mode.
//
// labels fixes the dataset column order; every label must have an entry in
// tables. n larger than a dataset's author total simply selects all of them.
func MergeTopN(tables map[string]schema.FrequencyTable, labels []string, n int, mode schema.AggregationMode) (schema.PresenceTable, error) {
	if _, ok := schema.ValidAggregationModes[mode]; !ok {
		return schema.PresenceTable{}, ErrInvalidAggregationMode
	}

	ranks := make(map[string]schema.RankTable, len(tables))
	for label, freq := range tables {
		ranks[label] = BuildRankTable(freq)
	}

	// Top-n by largest count and top-n by smallest rank pick the same
	// authors because ranks are assigned from the count ordering.
	selected := make(map[string]struct{})
	for _, label := range labels {
		ordered := rankedAuthors(tables[label])
		limit := min(n, len(ordered))
		for _, author := range ordered[:limit] {
			selected[author] = struct{}{}
		}
	}

	rows := make([]schema.PresenceRow, 0, len(selected))
	for author := range selected {
		values := make(map[string]int, len(labels))
		for _, label := range labels {
			if mode == schema.RankAgg {
				if r, ok := ranks[label][author]; ok {
					values[label] = r
				} else {
					values[label] = len(tables[label]) + 1
				}
			} else {
				values[label] = tables[label][author] // missing key yields 0
			}
		}
		rows = append(rows, schema.PresenceRow{Author: author, Values: values})
	}

	aggregate := func(row schema.PresenceRow) int {
		total := 0
		for _, label := range labels {
			total += row.Values[label]
		}
		return total
	}
	sort.Slice(rows, func(i, j int) bool {
		ai, aj := aggregate(rows[i]), aggregate(rows[j])
		if ai != aj {
			if mode == schema.RankAgg {
				return ai < aj
			}
			return ai > aj
		}
		return rows[i].Author < rows[j].Author
	})

	return schema.PresenceTable{Mode: mode, Labels: labels, Rows: rows}, nil
}
