package exporter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestRenderChartPlain(t *testing.T) {
	chart, err := RenderChart(testTable(), 10, 80, false)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}

	if strings.Contains(chart, "\x1b[") {
		t.Error("plain chart must not contain escape sequences")
	}

	for _, word := range []string{"kills", "smiles", "runs"} {
		if !strings.Contains(chart, word) {
			t.Errorf("chart missing label %q", word)
		}
	}

	// Header + blank + one row per word.
	lines := strings.Split(strings.TrimRight(chart, "\n"), "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines, got %d:\n%s", len(lines), chart)
	}

	if !strings.Contains(chart, string(barRune)) {
		t.Error("chart has no bars")
	}
}

func TestRenderChartColor(t *testing.T) {
	chart, err := RenderChart(testTable(), 10, 80, true)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}

	if !strings.Contains(chart, "\x1b[95m") {
		t.Error("expected she-side color code in chart")
	}
	if !strings.Contains(chart, "\x1b[94m") {
		t.Error("expected he-side color code in chart")
	}
	if !strings.Contains(chart, "\x1b[0m") {
		t.Error("expected reset sequence in chart")
	}
}

func TestRenderChartBarDirection(t *testing.T) {
	chart, err := RenderChart(testTable(), 10, 80, false)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}

	for _, line := range strings.Split(chart, "\n") {
		axis := strings.IndexRune(line, axisRune)
		bar := strings.IndexRune(line, barRune)
		if axis < 0 || bar < 0 {
			continue
		}

		switch {
		case strings.Contains(line, "smiles"): // she-skewed, bar grows right
			if bar < axis {
				t.Errorf("she-skewed bar on the wrong side: %q", line)
			}
		case strings.Contains(line, "kills"): // he-skewed, bar grows left
			if bar > axis {
				t.Errorf("he-skewed bar on the wrong side: %q", line)
			}
		}
	}
}

func TestRenderChartHeaderLegend(t *testing.T) {
	width := 80
	chart, err := RenderChart(testTable(), 10, width, false)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}

	header := strings.Split(chart, "\n")[0]
	if !strings.HasSuffix(header, legendRight) {
		t.Errorf("header must end with %q, got %q", legendRight, header)
	}
	// The legend sits on the bar field edge: rune width, not byte width.
	if got := utf8.RuneCountInString(header); got != width {
		t.Errorf("header spans %d cells, expected %d: %q", got, width, header)
	}
}

func TestRenderChartMultibyteLabel(t *testing.T) {
	table := testTable()
	table[0].Word2 = "héroïnes-de-légende-très-longue"

	chart, err := RenderChart(table, 10, 80, false)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}

	if !utf8.ValidString(chart) {
		t.Error("chart output contains a split rune")
	}
	if !strings.Contains(chart, "héroïnes-de-l...") {
		t.Errorf("expected rune-boundary truncated label, got:\n%s", chart)
	}
}

func TestRenderChartEmptyTable(t *testing.T) {
	chart, err := RenderChart(nil, 10, 80, true)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}
	if chart != "" {
		t.Errorf("expected empty output, got %q", chart)
	}
}

func TestRenderChartTopLimit(t *testing.T) {
	chart, err := RenderChart(testTable(), 1, 80, false)
	if err != nil {
		t.Fatalf("RenderChart: %v", err)
	}

	// Only the largest abs_ratio row survives: "smiles" (2.0).
	if !strings.Contains(chart, "smiles") {
		t.Error("expected top row to be kept")
	}
	if strings.Contains(chart, "kills") || strings.Contains(chart, "runs") {
		t.Errorf("expected only one data row:\n%s", chart)
	}
}

func TestExportToFiles(t *testing.T) {
	base := filepath.Join(t.TempDir(), "skew")

	if err := ExportToFiles(testTable(), base, 10, 80); err != nil {
		t.Fatalf("ExportToFiles: %v", err)
	}

	csvData, err := os.ReadFile(base + ".csv")
	if err != nil {
		t.Fatalf("reading .csv: %v", err)
	}
	if !strings.HasPrefix(string(csvData), "word2,") {
		t.Errorf("unexpected .csv content: %q", csvData)
	}

	chartData, err := os.ReadFile(base + ".txt")
	if err != nil {
		t.Fatalf("reading .txt: %v", err)
	}
	if strings.Contains(string(chartData), "\x1b[") {
		t.Error(".txt chart must not contain escape sequences")
	}
}
