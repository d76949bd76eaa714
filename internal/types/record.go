package types

import "sort"

/////////////////////////////////////////////////////////////////////////////
// SKEW RECORD
/////////////////////////////////////////////////////////////////////////////

// SkewRecord is one row of the scored output table, keyed by the word that
// followed a pronoun. HeCount/SheCount are raw occurrence counts before
// smoothing; HeShare/SheShare are the add-one smoothed proportions and
// LogRatio is log2(SheShare/HeShare).
type SkewRecord struct {
	Word2    string  `json:"word2"`
	HeCount  int     `json:"he_count"`
	SheCount int     `json:"she_count"`
	Total    int     `json:"total"`
	HeShare  float64 `json:"he_share"`
	SheShare float64 `json:"she_share"`
	LogRatio float64 `json:"log_ratio"`
	AbsRatio float64 `json:"abs_ratio"`
}

// PairCount holds the raw per-group counts for one word2 key.
type PairCount struct {
	He  int `json:"he"`
	She int `json:"she"`
}

/////////////////////////////////////////////////////////////////////////////
// SKEW TABLE
/////////////////////////////////////////////////////////////////////////////

// SkewTable is the scored table in canonical order: LogRatio descending,
// ties broken by Word2 ascending.
type SkewTable []SkewRecord

// FilterTotal returns the rows whose unsmoothed total is at least min.
// Order is preserved. min <= 0 returns the table unchanged.
func (t SkewTable) FilterTotal(min int) SkewTable {
	if min <= 0 {
		return t
	}

	filtered := make(SkewTable, 0, len(t))
	for _, rec := range t {
		if rec.Total >= min {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

// Top returns the first n rows (the table is already in canonical order).
func (t SkewTable) Top(n int) SkewTable {
	if n <= 0 || n >= len(t) {
		return t
	}
	return t[:n]
}

// TopAbs returns the n rows with the largest AbsRatio, keeping the canonical
// relative order of the selected rows. Used by the chart exporter.
func (t SkewTable) TopAbs(n int) SkewTable {
	if n <= 0 || n >= len(t) {
		return t
	}

	// Rank positions by AbsRatio without disturbing the table itself.
	order := make([]int, len(t))
	for i := range t {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return t[order[i]].AbsRatio > t[order[j]].AbsRatio
	})

	keep := make(map[int]bool, n)
	for _, idx := range order[:n] {
		keep[idx] = true
	}

	selected := make(SkewTable, 0, n)
	for i, rec := range t {
		if keep[i] {
			selected = append(selected, rec)
		}
	}
	return selected
}

// TotalPairs returns the sum of unsmoothed totals, which equals the number
// of pronoun pairs that fed the table.
func (t SkewTable) TotalPairs() int {
	sum := 0
	for _, rec := range t {
		sum += rec.Total
	}
	return sum
}
