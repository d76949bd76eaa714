package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"skewgram/internal/types"
)

// CSVHeader is the column contract consumed by the plotting side.
var CSVHeader = []string{
	"word2", "he_count", "she_count", "total",
	"he_share", "she_share", "log_ratio", "abs_ratio",
}

// ExportCSV writes the skew table as CSV, one row per word2, in table order.
// Floats use the shortest round-trip representation so the plotting side
// sees the exact computed values.
func ExportCSV(writer io.Writer, table types.SkewTable) error {
	w := csv.NewWriter(writer)

	if err := w.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}

	for _, rec := range table {
		row := []string{
			rec.Word2,
			strconv.Itoa(rec.HeCount),
			strconv.Itoa(rec.SheCount),
			strconv.Itoa(rec.Total),
			strconv.FormatFloat(rec.HeShare, 'g', -1, 64),
			strconv.FormatFloat(rec.SheShare, 'g', -1, 64),
			strconv.FormatFloat(rec.LogRatio, 'g', -1, 64),
			strconv.FormatFloat(rec.AbsRatio, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing CSV row for %q: %w", rec.Word2, err)
		}
	}

	w.Flush()
	return w.Error()
}
