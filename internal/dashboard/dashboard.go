// ABOUTME: Builds the wellness dashboard summary from the journal store.
// ABOUTME: Aggregates mood breakdown, streak, check-ins, recent previews, and the mood timeline.
package dashboard

import (
	"github.com/2389-research/brightmind/internal/models"
)

// Source is the read side of the journal store used by the dashboard.
type Source interface {
	List() []*models.JournalEntry
	Count() int
	Recent(limit int) []*models.JournalEntry
	MoodBreakdown(keys []models.Mood) map[models.Mood]int
	Streak() int
}

// Options controls how much of the journal the summary shows.
type Options struct {
	RecentLimit   int
	TimelineLimit int
	PreviewLength int
}

// DefaultOptions mirrors the dashboard sizes of the web prototype.
var DefaultOptions = Options{
	RecentLimit:   3,
	TimelineLimit: 10,
	PreviewLength: 60,
}

// MoodCount pairs a mood with the number of entries tagged with it.
type MoodCount struct {
	Mood  models.Mood
	Count int
}

// Preview is a shortened view of a recent entry.
type Preview struct {
	Entry *models.JournalEntry
	Text  string
}

// Summary is everything the dashboard renders.
type Summary struct {
	Breakdown []MoodCount
	Streak    int
	CheckIns  int
	Recent    []Preview
	Timeline  []*models.JournalEntry
	Tips      []string
}

// Tips are the fixed recommendations shown under the dashboard.
var Tips = []string{
	"Keep your journal streak going, consistency helps mood tracking.",
	"Try a grounding exercise when anxiety increases.",
	"Share an anonymous supportive message in the community once a week.",
}

// Build assembles a Summary. Zero-valued options fall back to DefaultOptions.
func Build(src Source, opts Options) Summary {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = DefaultOptions.RecentLimit
	}
	if opts.TimelineLimit <= 0 {
		opts.TimelineLimit = DefaultOptions.TimelineLimit
	}
	if opts.PreviewLength <= 0 {
		opts.PreviewLength = DefaultOptions.PreviewLength
	}

	counts := src.MoodBreakdown(models.Moods)
	breakdown := make([]MoodCount, 0, len(models.Moods))
	for _, m := range models.Moods {
		breakdown = append(breakdown, MoodCount{Mood: m, Count: counts[m]})
	}

	recent := src.Recent(opts.RecentLimit)
	previews := make([]Preview, 0, len(recent))
	for _, e := range recent {
		previews = append(previews, Preview{Entry: e, Text: e.Preview(opts.PreviewLength)})
	}

	return Summary{
		Breakdown: breakdown,
		Streak:    src.Streak(),
		CheckIns:  src.Count(),
		Recent:    previews,
		Timeline:  src.Recent(opts.TimelineLimit),
		Tips:      Tips,
	}
}
