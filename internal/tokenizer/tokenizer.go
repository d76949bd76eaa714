package tokenizer

import (
	"strings"
	"unicode"

	"skewgram/internal/types"
)

// Tokenizer splits story text into normalized words and adjacent word pairs.
// Each story is tokenized independently, so pairs never span two stories.
type Tokenizer struct {
	Stats types.CorpusStats
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// StoryWords tokenizes one story and updates the running statistics.
func (t *Tokenizer) StoryWords(story types.Story) []string {
	words := Words(story.Text)

	t.Stats.Stories++
	t.Stats.Words += len(words)
	if len(words) > 1 {
		t.Stats.Pairs += len(words) - 1
	}

	return words
}

// GetStats returns the tokenization statistics accumulated so far.
func (t *Tokenizer) GetStats() types.CorpusStats {
	return t.Stats
}

// Words splits text into lowercase words. Tokens are separated by Unicode
// whitespace; leading and trailing punctuation is stripped from each token
// ("He." -> "he") while inner apostrophes and hyphens survive ("didn't").
// Tokens that are pure punctuation are dropped.
func Words(text string) []string {
	fields := strings.Fields(text)

	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := normalizeWord(field)
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}

// normalizeWord trims non letter/digit runes from both ends and lowercases.
func normalizeWord(token string) string {
	trimmed := strings.TrimFunc(token, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(trimmed)
}

// Bigrams returns the adjacent 2-word windows of words in reading order.
// Fewer than 2 words yields an empty slice, not an error.
func Bigrams(words []string) []types.WordPair {
	if len(words) < 2 {
		return nil
	}

	pairs := make([]types.WordPair, 0, len(words)-1)
	for i := 0; i < len(words)-1; i++ {
		pairs = append(pairs, types.WordPair{Word1: words[i], Word2: words[i+1]})
	}
	return pairs
}

// EachBigram visits the adjacent 2-word windows of words without
// materializing them. One pass, reading order.
func EachBigram(words []string, fn func(types.WordPair)) {
	for i := 0; i+1 < len(words); i++ {
		fn(types.WordPair{Word1: words[i], Word2: words[i+1]})
	}
}
