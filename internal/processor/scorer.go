package processor

import (
	"fmt"
	"math"
	"sort"

	"skewgram/internal/types"
)

/////////////////////////////////////////////////////////////////////////////
// SCORER
/////////////////////////////////////////////////////////////////////////////

// Scorer accumulates pronoun/follower counts and converts them into the
// smoothed skew table. It is fed word pairs, keeps only those whose first
// word belongs to one of the two pronoun groups, and counts occurrences of
// the second word per group.
type Scorer struct {
	heWords  map[string]bool
	sheWords map[string]bool
	counts   map[string]*types.PairCount

	hePairs  int
	shePairs int
}

// NewScorer creates a scorer for the two pronoun groups. Both groups must be
// non-empty and disjoint.
func NewScorer(heWords, sheWords []string) (*Scorer, error) {
	if len(heWords) == 0 || len(sheWords) == 0 {
		return nil, fmt.Errorf("pronoun groups must be non-empty (he: %d words, she: %d words)",
			len(heWords), len(sheWords))
	}

	s := &Scorer{
		heWords:  make(map[string]bool, len(heWords)),
		sheWords: make(map[string]bool, len(sheWords)),
		counts:   make(map[string]*types.PairCount),
	}

	for _, w := range heWords {
		s.heWords[w] = true
	}
	for _, w := range sheWords {
		if s.heWords[w] {
			return nil, fmt.Errorf("pronoun %q belongs to both groups", w)
		}
		s.sheWords[w] = true
	}

	return s, nil
}

// Add feeds one word pair. Pairs whose first word is in neither pronoun
// group are dropped; everything else increments exactly one counter.
func (s *Scorer) Add(pair types.WordPair) {
	switch {
	case s.heWords[pair.Word1]:
		s.count(pair.Word2).He++
		s.hePairs++
	case s.sheWords[pair.Word1]:
		s.count(pair.Word2).She++
		s.shePairs++
	}
}

// AddAll feeds a batch of word pairs.
func (s *Scorer) AddAll(pairs []types.WordPair) {
	for _, pair := range pairs {
		s.Add(pair)
	}
}

func (s *Scorer) count(word2 string) *types.PairCount {
	c, ok := s.counts[word2]
	if !ok {
		c = &types.PairCount{}
		s.counts[word2] = c
	}
	return c
}

// PronounPairs returns how many pairs were kept, per group.
func (s *Scorer) PronounPairs() (he, she int) {
	return s.hePairs, s.shePairs
}

// Counts returns a copy of the raw grouped counts.
func (s *Scorer) Counts() map[string]types.PairCount {
	counts := make(map[string]types.PairCount, len(s.counts))
	for word2, c := range s.counts {
		counts[word2] = *c
	}
	return counts
}

// Score converts the accumulated counts into the canonical skew table.
func (s *Scorer) Score() types.SkewTable {
	// Internal counts cannot be negative, so the error path is unreachable.
	table, _ := ScoreCounts(s.Counts())
	return table
}

/////////////////////////////////////////////////////////////////////////////
// SCORING
/////////////////////////////////////////////////////////////////////////////

// ScoreCounts converts raw grouped counts into the skew table.
//
// Add-one smoothing is applied per word BEFORE summation:
//
//	S_he  = sum over word2 of (he_count + 1)
//	S_she = sum over word2 of (she_count + 1)
//
// so each share column is a proper probability distribution over the
// observed word2 vocabulary and no ratio can divide by zero. The smoothing
// order matters for numeric parity: smoothing after summation would give
// different shares.
//
// The result is sorted log_ratio descending (most "she"-skewed first), ties
// broken by word2 ascending. Negative counts are an input-validation error.
func ScoreCounts(counts map[string]types.PairCount) (types.SkewTable, error) {
	if len(counts) == 0 {
		return types.SkewTable{}, nil
	}

	sumHe := 0.0
	sumShe := 0.0
	for word2, c := range counts {
		if c.He < 0 || c.She < 0 {
			return nil, fmt.Errorf("negative count for word %q (he=%d, she=%d)", word2, c.He, c.She)
		}
		sumHe += float64(c.He + 1)
		sumShe += float64(c.She + 1)
	}

	table := make(types.SkewTable, 0, len(counts))
	for word2, c := range counts {
		heShare := float64(c.He+1) / sumHe
		sheShare := float64(c.She+1) / sumShe
		logRatio := math.Log2(sheShare / heShare)

		table = append(table, types.SkewRecord{
			Word2:    word2,
			HeCount:  c.He,
			SheCount: c.She,
			Total:    c.He + c.She,
			HeShare:  heShare,
			SheShare: sheShare,
			LogRatio: logRatio,
			AbsRatio: math.Abs(logRatio),
		})
	}

	sort.Slice(table, func(i, j int) bool {
		if table[i].LogRatio != table[j].LogRatio {
			return table[i].LogRatio > table[j].LogRatio
		}
		return table[i].Word2 < table[j].Word2
	})

	return table, nil
}
