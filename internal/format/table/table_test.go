package table

import "testing"

func TestFormatAlignsColumns(t *testing.T) {
	rows := [][]string{
		{"Auriga", "84 percent"},
		{"Herald", "72 percent"},
		{"Pelican", "72 percent"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	want := []string{
		"Auriga   84 percent",
		"Herald   72 percent",
		"Pelican  72 percent",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatRightAlignment(t *testing.T) {
	rows := [][]string{
		{"cargo", "8"},
		{"thrust", "120"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignRight})
	want := []string{
		"cargo     8",
		"thrust  120",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatPadsShortRows(t *testing.T) {
	rows := [][]string{
		{"!", "Claim reward"},
		{"only"},
	}
	got := Format(rows, []Alignment{AlignLeft, AlignLeft})
	if got[0] != "!     Claim reward" {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "only" {
		t.Fatalf("expected short row trimmed, got %q", got[1])
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil, nil); got != nil {
		t.Fatalf("expected nil for no rows, got %v", got)
	}
}
