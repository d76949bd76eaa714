package exporter

import (
	"fmt"
	"io"

	"skewgram/internal/types"
)

// ExportTable writes the skew table as a box-drawing terminal table.
func ExportTable(writer io.Writer, table types.SkewTable) error {
	fmt.Fprintln(writer, "┌──────────────────────┬──────────┬──────────┬──────────┬────────────┬────────────┬───────────┬───────────┐")
	fmt.Fprintf(writer, "│ %-20s │ %8s │ %8s │ %8s │ %10s │ %10s │ %9s │ %9s │\n",
		"word2", "he", "she", "total", "he_share", "she_share", "log_ratio", "abs_ratio")
	fmt.Fprintln(writer, "├──────────────────────┼──────────┼──────────┼──────────┼────────────┼────────────┼───────────┼───────────┤")

	for _, rec := range table {
		fmt.Fprintf(writer, "│ %-20s │ %8d │ %8d │ %8d │ %10.6f │ %10.6f │ %+9.4f │ %9.4f │\n",
			truncate(rec.Word2, 20), rec.HeCount, rec.SheCount, rec.Total,
			rec.HeShare, rec.SheShare, rec.LogRatio, rec.AbsRatio)
	}

	fmt.Fprintln(writer, "└──────────────────────┴──────────┴──────────┴──────────┴────────────┴────────────┴───────────┴───────────┘")

	return nil
}

// truncate shortens s to maxLen runes, never splitting a multibyte rune.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
