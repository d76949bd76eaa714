package types

/////////////////////////////////////////////////////////////////////////////
// STORY
/////////////////////////////////////////////////////////////////////////////

// Story is one corpus record: a title and the raw summary text.
// Stories are created once by the importer and never mutated.
type Story struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

/////////////////////////////////////////////////////////////////////////////
// WORD PAIR
/////////////////////////////////////////////////////////////////////////////

// WordPair is an adjacent two-word window inside a single story.
// Pairs never span two stories.
type WordPair struct {
	Word1 string `json:"word1"`
	Word2 string `json:"word2"`
}

/////////////////////////////////////////////////////////////////////////////
// CORPUS STATS
/////////////////////////////////////////////////////////////////////////////

// CorpusStats accumulates counters across the whole run.
// The tokenizer fills Stories/Words/Pairs, the scorer fills the rest.
type CorpusStats struct {
	Stories      int `json:"stories"`
	Words        int `json:"words"`
	Pairs        int `json:"pairs"`
	PronounPairs int `json:"pronoun_pairs"`
	HePairs      int `json:"he_pairs"`
	ShePairs     int `json:"she_pairs"`
	Vocabulary   int `json:"vocabulary"`
}
