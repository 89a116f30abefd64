// ABOUTME: Core data models for journal entries and the enumerated mood set.
// ABOUTME: Provides the entry constructor, mood parsing, and mood validation.
package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mood tags a journal entry with how the writer felt when saving it.
type Mood string

const (
	MoodHappy   Mood = "happy"
	MoodSad     Mood = "sad"
	MoodAnxious Mood = "anxious"
	MoodAngry   Mood = "angry"
	MoodLonely  Mood = "lonely"

	// MoodUnspecified is stored when no mood was selected at save time.
	MoodUnspecified Mood = "unspecified"
)

// Moods lists the enumerated mood keys in display order.
var Moods = []Mood{
	MoodHappy,
	MoodSad,
	MoodAnxious,
	MoodAngry,
	MoodLonely,
}

// ErrInvalidMood is returned when a mood outside the enumerated set is supplied.
var ErrInvalidMood = errors.New("invalid mood")

// Valid returns true if m is one of the enumerated moods. The unspecified sentinel is not valid.
func (m Mood) Valid() bool {
	for _, k := range Moods {
		if k == m {
			return true
		}
	}
	return false
}

// ParseMood normalizes user input into a Mood. Empty input maps to MoodUnspecified.
func ParseMood(s string) (Mood, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == string(MoodUnspecified) {
		return MoodUnspecified, nil
	}
	m := Mood(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: %q (valid moods: %s)", ErrInvalidMood, s, MoodNames())
	}
	return m, nil
}

// MoodNames returns the enumerated moods as a comma-separated list.
func MoodNames() string {
	names := make([]string, len(Moods))
	for i, m := range Moods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

// JournalEntry is one private journal record. Entries are immutable once created.
type JournalEntry struct {
	ID   int64
	Text string
	Mood Mood
	Date time.Time
}

// NewJournalEntry creates an entry with trimmed text. An empty mood becomes MoodUnspecified.
func NewJournalEntry(id int64, text string, mood Mood, date time.Time) *JournalEntry {
	if mood == "" {
		mood = MoodUnspecified
	}
	return &JournalEntry{
		ID:   id,
		Text: strings.TrimSpace(text),
		Mood: mood,
		Date: date,
	}
}

// Preview returns the entry text cut to maxLen runes, adding "..." if truncated.
func (e *JournalEntry) Preview(maxLen int) string {
	runes := []rune(e.Text)
	if maxLen <= 0 || len(runes) <= maxLen {
		return e.Text
	}
	return string(runes[:maxLen]) + "..."
}
