package plots

// Plots corpus format
//
// The corpus arrives as two parallel newline-delimited files:
//
//	plots:  the token stream, one sentence per line, stories separated by a
//	        marker line (default "<EOS>")
//	titles: one title per line, positionally aligned with the stories
//
// Example:
//
//	plots                       titles
//	-----------------------     -----------
//	The king dies .             Hamlet
//	He was poisoned .           Macbeth
//	<EOS>
//	She becomes queen .
//	<EOS>
//
// The importer assembles the two streams into []types.Story and fails fast
// when the story and title counts disagree.

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"skewgram/internal/types"
)

// DefaultSeparator is the story boundary marker line.
const DefaultSeparator = "<EOS>"

// Importer assembles (title, text) records from the two parallel corpus files.
type Importer struct {
	separator string
	encoding  string
}

// NewImporter creates an importer. separator is the story boundary marker
// line ("" means DefaultSeparator); sourceEncoding is the encoding of both
// input files ("" means utf8).
func NewImporter(separator, sourceEncoding string) *Importer {
	if separator == "" {
		separator = DefaultSeparator
	}
	if sourceEncoding == "" {
		sourceEncoding = "utf8"
	}

	return &Importer{
		separator: separator,
		encoding:  sourceEncoding,
	}
}

// Load splits the plots stream on separator lines, pairs each story with its
// title and returns the assembled records.
func (im *Importer) Load(plotsData, titlesData []byte) ([]types.Story, error) {
	plotsUTF8, err := ConvertToUTF8(plotsData, im.encoding)
	if err != nil {
		return nil, fmt.Errorf("plots stream: %w", err)
	}

	titlesUTF8, err := ConvertToUTF8(titlesData, im.encoding)
	if err != nil {
		return nil, fmt.Errorf("titles: %w", err)
	}

	texts := im.splitStories(plotsUTF8)
	if len(texts) == 0 {
		return nil, fmt.Errorf("plots stream is empty")
	}

	titles := splitTitles(titlesUTF8)
	if len(texts) != len(titles) {
		return nil, fmt.Errorf("story/title count mismatch: %d stories, %d titles",
			len(texts), len(titles))
	}

	stories := make([]types.Story, len(texts))
	for i := range texts {
		stories[i] = types.Story{Title: titles[i], Text: texts[i]}
	}

	return stories, nil
}

// splitStories cuts the token stream into one text per story. A separator
// line closes the current story; a trailing separator does not open an
// empty one.
func (im *Importer) splitStories(data []byte) []string {
	lines := strings.Split(normalizeNewlines(string(data)), "\n")

	var texts []string
	var current []string
	open := false

	for _, line := range lines {
		if strings.TrimSpace(line) == im.separator {
			texts = append(texts, strings.Join(current, "\n"))
			current = current[:0]
			open = false
			continue
		}

		if strings.TrimSpace(line) != "" {
			open = true
		}
		current = append(current, line)
	}

	// Final story without a closing separator.
	if open {
		texts = append(texts, strings.Join(current, "\n"))
	}

	return texts
}

// splitTitles returns one title per line, trailing blank lines ignored.
func splitTitles(data []byte) []string {
	text := strings.TrimRight(normalizeNewlines(string(data)), "\n")
	if text == "" {
		return nil
	}

	titles := strings.Split(text, "\n")
	for i, title := range titles {
		titles[i] = strings.TrimSpace(title)
	}
	return titles
}

func normalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

/////////////////////////////////////////////////////////////////////////////
// ENCODING
/////////////////////////////////////////////////////////////////////////////

// UTF-8 BOM (Byte Order Mark) sequence
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// stripUTF8BOM removes the UTF-8 BOM if present at the beginning of the data
func stripUTF8BOM(data []byte) []byte {
	if len(data) >= 3 && bytes.Equal(data[:3], utf8BOM) {
		return data[3:]
	}
	return data
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "iso-8859-1", "windows-1252"
// The UTF-8 BOM (Byte Order Mark) is automatically stripped if present.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	if sourceEncoding == "utf8" {
		return stripUTF8BOM(data), nil
	}

	var decoder *encoding.Decoder

	switch sourceEncoding {
	case "iso-8859-1":
		decoder = charmap.ISO8859_1.NewDecoder()
	case "windows-1252":
		decoder = charmap.Windows1252.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding: %s", sourceEncoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	utf8Data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("encoding conversion error: %w", err)
	}

	// Strip BOM if present after conversion
	return stripUTF8BOM(utf8Data), nil
}
