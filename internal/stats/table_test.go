package stats

import "testing"

func TestCountLinesAlignsColumns(t *testing.T) {
	lines := countLines("User Type", []Count[string]{
		{Value: "Subscriber", Count: 1200},
		{Value: "Customer", Count: 35},
	})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "User Type   Trips" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "Subscriber   1200" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Customer       35" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestCountLinesWideRunes(t *testing.T) {
	lines := countLines("Station", []Count[string]{{Value: "東京", Count: 2}, {Value: "Lake", Count: 10}})
	if lines[1] != "東京         2" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "Lake        10" {
		t.Fatalf("unexpected row: %q", lines[2])
	}
}

func TestCountLinesHeaderOnly(t *testing.T) {
	lines := countLines("Gender", nil)
	if len(lines) != 1 || lines[0] != "Gender  Trips" {
		t.Fatalf("unexpected lines: %q", lines)
	}
}
