package types

// Tokenizer turns corpus stories into normalized words.
type Tokenizer interface {
	StoryWords(story Story) []string
}

// Tokenizer with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() CorpusStats
}
