package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"skewgram/internal/types"
)

type jsonOutput struct {
	Table types.SkewTable   `json:"table"`
	Stats types.CorpusStats `json:"stats"`
}

// ExportJSON writes the skew table and run statistics as indented JSON.
func ExportJSON(writer io.Writer, table types.SkewTable, stats types.CorpusStats) error {
	output := jsonOutput{
		Table: table,
		Stats: stats,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	fmt.Fprintln(writer, string(data))
	return nil
}
