// ABOUTME: Encode/decode contract for the persisted journal collection.
// ABOUTME: The payload is a JSON array of {id, text, mood, date} records, newest first.
package journal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/2389-research/brightmind/internal/models"
)

// dateLayout writes UTC timestamps with millisecond precision.
const dateLayout = "2006-01-02T15:04:05.000Z07:00"

type record struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	Mood string `json:"mood"`
	Date string `json:"date"`
}

// Encode serializes entries in their stored order.
func Encode(entries []*models.JournalEntry) ([]byte, error) {
	records := make([]record, 0, len(entries))
	for _, e := range entries {
		records = append(records, record{
			ID:   e.ID,
			Text: e.Text,
			Mood: string(e.Mood),
			Date: e.Date.UTC().Format(dateLayout),
		})
	}
	return json.Marshal(records)
}

// Decode parses a persisted payload. An empty or null payload yields no entries.
// Any record with blank text or an unparseable date invalidates the whole payload.
func Decode(data []byte) ([]*models.JournalEntry, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse journal payload: %w", err)
	}

	entries := make([]*models.JournalEntry, 0, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.Text) == "" {
			return nil, fmt.Errorf("record %d: empty text", i)
		}
		date, err := time.Parse(time.RFC3339Nano, r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: invalid date: %w", i, err)
		}
		mood := models.Mood(r.Mood)
		if mood == "" {
			mood = models.MoodUnspecified
		}
		entries = append(entries, &models.JournalEntry{
			ID:   r.ID,
			Text: r.Text,
			Mood: mood,
			Date: date,
		})
	}
	return entries, nil
}
