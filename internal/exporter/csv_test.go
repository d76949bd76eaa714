package exporter

import (
	"bytes"
	"encoding/csv"
	"reflect"
	"strconv"
	"testing"

	"skewgram/internal/types"
)

func testTable() types.SkewTable {
	return types.SkewTable{
		{Word2: "smiles", HeCount: 2, SheCount: 9, Total: 11, HeShare: 0.1, SheShare: 0.4, LogRatio: 2, AbsRatio: 2},
		{Word2: "runs", HeCount: 7, SheCount: 7, Total: 14, HeShare: 0.3, SheShare: 0.3, LogRatio: 0, AbsRatio: 0},
		{Word2: "kills", HeCount: 12, SheCount: 3, Total: 15, HeShare: 0.6, SheShare: 0.3, LogRatio: -1, AbsRatio: 1},
	}
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, testTable()); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("expected header + 3 rows, got %d rows", len(rows))
	}
	if !reflect.DeepEqual(rows[0], CSVHeader) {
		t.Errorf("header: expected %v, got %v", CSVHeader, rows[0])
	}

	// Row order follows the table, values round-trip exactly.
	if rows[1][0] != "smiles" || rows[3][0] != "kills" {
		t.Errorf("unexpected row order: %v", rows)
	}

	logRatio, err := strconv.ParseFloat(rows[3][6], 64)
	if err != nil {
		t.Fatalf("parsing log_ratio: %v", err)
	}
	if logRatio != -1 {
		t.Errorf("expected log_ratio -1, got %v", logRatio)
	}

	total, _ := strconv.Atoi(rows[1][3])
	if total != 11 {
		t.Errorf("expected total 11, got %d", total)
	}
}

func TestExportCSVEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("empty table: expected header only, got %d rows", len(rows))
	}
}
