// ABOUTME: Tests for the CLI formatting and parsing helpers.
// ABOUTME: Exercises time parsing, table padding and entry rendering.
package main

import (
	"testing"
	"time"

	"github.com/hsouza/gymlog/internal/models"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"2025-03-10 18:30", "2025-03-10T18:30:00Z"},
		{"2025-03-10T18:30", "2025-03-10T18:30:00Z"},
		{"2025-03-10", "2025-03-10T00:00:00Z"},
		{"2025-03-10T18:30:00Z", "2025-03-10T18:30:00Z"},
	}

	for _, tt := range tests {
		got, err := parseTime(tt.input)
		if err != nil {
			t.Errorf("parseTime(%q) error = %v", tt.input, err)
			continue
		}
		want, _ := time.Parse(time.RFC3339, tt.want)
		if !got.Equal(want) {
			t.Errorf("parseTime(%q) = %v, want %v", tt.input, got, want)
		}
	}
}

func TestParseTimeInvalid(t *testing.T) {
	if _, err := parseTime("not a time"); err == nil {
		t.Error("Expected error for unrecognized format")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q, want %q", got, "short")
	}
	if got := truncate("a very long workout name", 10); got != "a very ..." {
		t.Errorf("truncate = %q, want %q", got, "a very ...")
	}
	if len(truncate("a very long workout name", 10)) != 10 {
		t.Error("Truncated string should be exactly maxLen")
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("abc", 6); got != "abc   " {
		t.Errorf("padRight = %q, want %q", got, "abc   ")
	}
	if got := padRight("abcdef", 3); got != "abcdef" {
		t.Errorf("padRight should not trim, got %q", got)
	}
}

func TestFormatSets(t *testing.T) {
	sets := models.SetTriple{models.Float(20), nil, models.Float(22.5)}
	if got := formatSets(sets); got != "20 / - / 22.5" {
		t.Errorf("formatSets = %q, want %q", got, "20 / - / 22.5")
	}
}

func TestFormatOptional(t *testing.T) {
	if got := formatOptional(nil); got != "-" {
		t.Errorf("formatOptional(nil) = %q, want %q", got, "-")
	}
	if got := formatOptional(models.Float(12.5)); got != "12.5" {
		t.Errorf("formatOptional = %q, want %q", got, "12.5")
	}
}

func TestSortSessionsDesc(t *testing.T) {
	old := models.Session{ID: "old", StartedAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)}
	newer := models.Session{ID: "new", StartedAt: time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)}

	sorted := sortSessionsDesc([]models.Session{old, newer})
	if sorted[0].ID != "new" || sorted[1].ID != "old" {
		t.Errorf("Expected newest first, got %s then %s", sorted[0].ID, sorted[1].ID)
	}

	// The input slice must not be reordered.
	input := []models.Session{old, newer}
	_ = sortSessionsDesc(input)
	if input[0].ID != "old" {
		t.Error("sortSessionsDesc should not mutate its input")
	}
}
