package exporter

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestExportTable(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportTable(&buf, testTable()); err != nil {
		t.Fatalf("ExportTable: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"word2", "log_ratio", "kills", "smiles", "runs"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}

	// Top border, header row, separator and bottom border, plus one line
	// per record.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4+len(testTable()) {
		t.Errorf("expected %d lines, got %d", 4+len(testTable()), len(lines))
	}
}

func TestExportTableMultibyteWord(t *testing.T) {
	table := testTable()
	table[0].Word2 = "héroïnes-de-légende-très-longue"

	var buf bytes.Buffer
	if err := ExportTable(&buf, table); err != nil {
		t.Fatalf("ExportTable: %v", err)
	}

	if !utf8.ValidString(buf.String()) {
		t.Error("table output contains a split rune")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{name: "Short string untouched", input: "kills", maxLen: 20, expected: "kills"},
		{name: "Long string truncated", input: "supercalifragilisticexpialidocious", maxLen: 10, expected: "superca..."},
		{name: "Multibyte runes kept whole", input: "héroïnes-de-légende", maxLen: 10, expected: "héroïne..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.input, tt.maxLen); got != tt.expected {
				t.Errorf("truncate(%q, %d): expected %q, got %q", tt.input, tt.maxLen, got, tt.expected)
			}
		})
	}
}
