package exporter

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"skewgram/internal/types"
)

// DisplayStats writes a human-readable summary of the run: corpus counters
// and the most skewed words on each side of the table.
func DisplayStats(writer io.Writer, stats types.CorpusStats, table types.SkewTable) {
	p := message.NewPrinter(language.English)

	fmt.Fprintln(writer, "=== Corpus Statistics ===")
	p.Fprintf(writer, "  Stories:            %d\n", stats.Stories)
	p.Fprintf(writer, "  Words:              %d\n", stats.Words)
	p.Fprintf(writer, "  Adjacent pairs:     %d\n", stats.Pairs)
	p.Fprintf(writer, "  Pronoun pairs:      %d (he: %d, she: %d)\n",
		stats.PronounPairs, stats.HePairs, stats.ShePairs)
	p.Fprintf(writer, "  word2 vocabulary:   %d\n", stats.Vocabulary)

	if len(table) == 0 {
		return
	}

	fmt.Fprintln(writer, "\n--- Most \"she\"-skewed")
	displayTopRows(writer, p, table.Top(5))

	fmt.Fprintln(writer, "\n--- Most \"he\"-skewed")
	displayTopRows(writer, p, lastRowsReversed(table, 5))
}

func displayTopRows(writer io.Writer, p *message.Printer, rows types.SkewTable) {
	for _, rec := range rows {
		p.Fprintf(writer, "  %-20s %+7.3f  (he: %d, she: %d)\n",
			rec.Word2, rec.LogRatio, rec.HeCount, rec.SheCount)
	}
}

// lastRowsReversed returns the bottom n rows of the canonical order, most
// "he"-skewed first.
func lastRowsReversed(table types.SkewTable, n int) types.SkewTable {
	if n > len(table) {
		n = len(table)
	}

	rows := make(types.SkewTable, 0, n)
	for i := len(table) - 1; i >= len(table)-n; i-- {
		rows = append(rows, table[i])
	}
	return rows
}
