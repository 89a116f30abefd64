// ABOUTME: Tests for journal entry construction and mood parsing.
// ABOUTME: Covers normalization, the unspecified sentinel, previews, and the suggestion table.
package models

import (
	"errors"
	"testing"
	"time"
)

func TestParseMood(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Mood
		wantErr bool
	}{
		{"empty", "", MoodUnspecified, false},
		{"whitespace", "   ", MoodUnspecified, false},
		{"unspecified", "unspecified", MoodUnspecified, false},
		{"happy", "happy", MoodHappy, false},
		{"mixed case", " Anxious ", MoodAnxious, false},
		{"unknown", "ecstatic", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMood(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMood) {
					t.Fatalf("ParseMood(%q) error = %v, want ErrInvalidMood", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMood(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMood(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoodValid(t *testing.T) {
	for _, m := range Moods {
		if !m.Valid() {
			t.Errorf("expected %q to be valid", m)
		}
	}
	if MoodUnspecified.Valid() {
		t.Error("unspecified must not count as an enumerated mood")
	}
}

func TestNewJournalEntry(t *testing.T) {
	now := time.Now()
	e := NewJournalEntry(42, "  hello there \n", "", now)

	if e.Text != "hello there" {
		t.Errorf("expected trimmed text, got %q", e.Text)
	}
	if e.Mood != MoodUnspecified {
		t.Errorf("expected unspecified mood, got %q", e.Mood)
	}
	if e.ID != 42 || !e.Date.Equal(now) {
		t.Errorf("unexpected id/date: %d %v", e.ID, e.Date)
	}
}

func TestPreview(t *testing.T) {
	e := &JournalEntry{Text: "héllo world"}
	if got := e.Preview(5); got != "héllo..." {
		t.Errorf("Preview(5) = %q", got)
	}
	if got := e.Preview(100); got != "héllo world" {
		t.Errorf("Preview(100) = %q", got)
	}
	if got := e.Preview(0); got != "héllo world" {
		t.Errorf("Preview(0) = %q", got)
	}
}

func TestSuggestionFor(t *testing.T) {
	for _, m := range Moods {
		s, ok := SuggestionFor(m)
		if !ok || s.Title == "" {
			t.Errorf("missing suggestion for %q", m)
		}
	}
	if _, ok := SuggestionFor(MoodUnspecified); ok {
		t.Error("expected no suggestion for unspecified")
	}
}
