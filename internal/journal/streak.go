// ABOUTME: Current-streak calculation over journal entry calendar days.
// ABOUTME: Counts consecutive local days with an entry, walking back from today.
package journal

import (
	"time"

	"github.com/2389-research/brightmind/internal/models"
)

const dayLayout = "2006-01-02"

// ComputeStreak counts consecutive calendar days, ending today, on which at least one
// entry was written. Days are taken in now's location. If today has no entry the streak is 0.
func ComputeStreak(entries []*models.JournalEntry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		days[e.Date.In(loc).Format(dayLayout)] = struct{}{}
	}

	y, m, d := now.Date()
	streak := 0
	for i := 0; ; i++ {
		day := time.Date(y, m, d-i, 0, 0, 0, 0, loc).Format(dayLayout)
		if _, ok := days[day]; !ok {
			break
		}
		streak++
	}
	return streak
}
