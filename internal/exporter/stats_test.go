package exporter

import (
	"bytes"
	"strings"
	"testing"

	"skewgram/internal/types"
)

func TestDisplayStats(t *testing.T) {
	stats := types.CorpusStats{
		Stories:      112936,
		Words:        1000000,
		Pairs:        887064,
		PronounPairs: 40000,
		HePairs:      25000,
		ShePairs:     15000,
		Vocabulary:   12345,
	}

	var buf bytes.Buffer
	DisplayStats(&buf, stats, testTable())
	out := buf.String()

	// Counts are grouped for readability.
	if !strings.Contains(out, "112,936") {
		t.Errorf("expected grouped story count, got:\n%s", out)
	}
	if !strings.Contains(out, "she\"-skewed") || !strings.Contains(out, "he\"-skewed") {
		t.Errorf("expected both top sections, got:\n%s", out)
	}

	// Most she-skewed first in its section, most he-skewed first in its.
	sheIdx := strings.Index(out, "smiles")
	heIdx := strings.LastIndex(out, "kills")
	if sheIdx < 0 || heIdx < 0 {
		t.Fatalf("expected both extremes listed, got:\n%s", out)
	}
}

func TestDisplayStatsEmptyTable(t *testing.T) {
	var buf bytes.Buffer
	DisplayStats(&buf, types.CorpusStats{}, nil)

	out := buf.String()
	if !strings.Contains(out, "Corpus Statistics") {
		t.Errorf("expected header, got:\n%s", out)
	}
	if strings.Contains(out, "skewed") {
		t.Errorf("empty table must skip the top sections, got:\n%s", out)
	}
}
