package reftable

import "sort"

// ScoredRow is a reference row with its raw alignment score attached.
type ScoredRow struct {
	Row
	RawScore float64
}

// ScoredTable is the derived artifact of ranking: the input rows plus one
// score column. After SortByScore, row 0 is the best match.
type ScoredTable []ScoredRow

// SortByScore orders the table descending by raw score. The sort is stable,
// so ties keep their input order.
func (t ScoredTable) SortByScore() {
	sort.SliceStable(t, func(i, j int) bool {
		return t[i].RawScore > t[j].RawScore
	})
}

// Best returns the top-ranked row. The table must be sorted and non-empty.
func (t ScoredTable) Best() ScoredRow {
	return t[0]
}

// Scores returns the raw score column in table order.
func (t ScoredTable) Scores() []float64 {
	scores := make([]float64, len(t))
	for i, row := range t {
		scores[i] = row.RawScore
	}
	return scores
}

// Lookup returns the row with the given name and whether it was found.
func (t ScoredTable) Lookup(name string) (ScoredRow, bool) {
	for _, row := range t {
		if row.Name == name {
			return row, true
		}
	}
	return ScoredRow{}, false
}
