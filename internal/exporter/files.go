package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"skewgram/internal/types"
)

// ExportToFiles writes the scored table to two files next to each other:
//   - <base>.csv : the full table, the artifact the plotting side consumes
//   - <base>.txt : the bar chart of the top rows, without escape sequences
func ExportToFiles(table types.SkewTable, basePath string, chartTop, chartWidth int) error {
	// Remove ext if exists
	basePath = strings.TrimSuffix(basePath, filepath.Ext(basePath))

	csvPath := basePath + ".csv"
	chartPath := basePath + ".txt"

	csvFile, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating .csv file: %w", err)
	}
	defer csvFile.Close()

	if err := ExportCSV(csvFile, table); err != nil {
		return fmt.Errorf("writing %s: %w", csvPath, err)
	}

	chart, err := RenderChart(table, chartTop, chartWidth, false)
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	if err := os.WriteFile(chartPath, []byte(chart), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", chartPath, err)
	}

	return nil
}
