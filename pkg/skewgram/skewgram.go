// Package skewgram provides a public API for scoring pronoun bigram skew
// over a story corpus.
//
// This package provides functions to:
//   - Convert between character encodings (ISO-8859-1, Windows-1252, UTF-8)
//   - Assemble (title, text) stories from the two parallel corpus files
//   - Tokenize stories into normalized words and adjacent word pairs
//   - Score how strongly each following word skews toward "he" or "she"
//   - Export the scored table (CSV, JSON, table, terminal bar chart)
//
// Example usage:
//
//	import "skewgram/pkg/skewgram"
//
//	plots, _ := os.ReadFile("plots")
//	titles, _ := os.ReadFile("titles")
//	stories, _ := skewgram.NewImporter("<EOS>", "utf8").Load(plots, titles)
//	table, stats, _ := skewgram.Analyze(stories, skewgram.DefaultConfig())
//	skewgram.ExportCSV(os.Stdout, table.FilterTotal(100))
//	_ = stats
package skewgram

import (
	"fmt"
	"io"

	"skewgram/internal/config"
	"skewgram/internal/exporter"
	"skewgram/internal/importer/plots"
	"skewgram/internal/processor"
	"skewgram/internal/tokenizer"
	"skewgram/internal/types"
)

// Type aliases for public API
type (
	// Story is one corpus record: title plus raw summary text
	Story = types.Story

	// WordPair is an adjacent two-word window within one story
	WordPair = types.WordPair

	// PairCount holds raw per-pronoun-group counts for one following word
	PairCount = types.PairCount

	// SkewRecord is one scored row, keyed by the word following a pronoun
	SkewRecord = types.SkewRecord

	// SkewTable is the scored table in canonical order
	SkewTable = types.SkewTable

	// CorpusStats contains counters accumulated over the run
	CorpusStats = types.CorpusStats

	// Importer assembles stories from the plots and titles files
	Importer = plots.Importer

	// Tokenizer splits story text into words and counts as it goes
	Tokenizer = tokenizer.Tokenizer

	// TokenizerWithStats is a tokenizer that also reports corpus counters
	TokenizerWithStats = types.TokenizerWithStats

	// Scorer filters pronoun pairs and computes the smoothed skew table
	Scorer = processor.Scorer

	// Config is the analysis configuration (pronoun groups, thresholds)
	Config = config.Config
)

// DefaultSeparator is the story boundary marker line in the plots stream.
const DefaultSeparator = plots.DefaultSeparator

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "iso-8859-1", "windows-1252"
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return plots.ConvertToUTF8(data, sourceEncoding)
}

// NewImporter creates a corpus importer. Empty separator or encoding select
// the defaults ("<EOS>", "utf8").
func NewImporter(separator, sourceEncoding string) *Importer {
	return plots.NewImporter(separator, sourceEncoding)
}

// NewTokenizer creates a word/bigram tokenizer.
func NewTokenizer() *Tokenizer {
	return tokenizer.NewTokenizer()
}

// NewScorer creates a skew scorer for the two pronoun groups.
func NewScorer(heWords, sheWords []string) (*Scorer, error) {
	return processor.NewScorer(heWords, sheWords)
}

// DefaultConfig returns the default analysis configuration.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads a YAML config file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	return config.Load(path)
}

// ScoreCounts converts raw grouped counts into the canonical skew table.
// Negative counts are rejected.
func ScoreCounts(counts map[string]PairCount) (SkewTable, error) {
	return processor.ScoreCounts(counts)
}

// Analyze runs the full pipeline over already-assembled stories: tokenize,
// filter pronoun pairs, aggregate and score. The returned table is unfiltered;
// apply FilterTotal for display.
func Analyze(stories []Story, cfg Config) (SkewTable, CorpusStats, error) {
	scorer, err := processor.NewScorer(cfg.Pronouns.He, cfg.Pronouns.She)
	if err != nil {
		return nil, CorpusStats{}, fmt.Errorf("scorer: %w", err)
	}

	tok := tokenizer.NewTokenizer()
	for _, story := range stories {
		words := tok.StoryWords(story)
		tokenizer.EachBigram(words, scorer.Add)
	}

	table := scorer.Score()

	stats := tok.GetStats()
	stats.HePairs, stats.ShePairs = scorer.PronounPairs()
	stats.PronounPairs = stats.HePairs + stats.ShePairs
	stats.Vocabulary = len(table)

	return table, stats, nil
}

// ExportCSV writes the table as CSV in the canonical column order.
func ExportCSV(writer io.Writer, table SkewTable) error {
	return exporter.ExportCSV(writer, table)
}

// ExportJSON writes the table and statistics as indented JSON.
func ExportJSON(writer io.Writer, table SkewTable, stats CorpusStats) error {
	return exporter.ExportJSON(writer, table, stats)
}

// ExportTable writes the table as a box-drawing terminal table.
func ExportTable(writer io.Writer, table SkewTable) error {
	return exporter.ExportTable(writer, table)
}

// RenderChart renders the top most-skewed rows as a diverging bar chart.
func RenderChart(table SkewTable, top, width int, color bool) (string, error) {
	return exporter.RenderChart(table, top, width, color)
}
