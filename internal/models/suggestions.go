// ABOUTME: Static catalogue of mood-based activity, music, and movie suggestions.
// ABOUTME: Read-only lookup table keyed by the enumerated moods.
package models

// Suggestion is the content picked for a mood.
type Suggestion struct {
	Title string
	Desc  string
	Music string
	Movie string
}

var suggestions = map[Mood]Suggestion{
	MoodHappy: {
		Title: "Energy Builder",
		Desc:  "A fun rhythm tap game to celebrate your good mood!",
		Music: "https://open.spotify.com/embed/track/1?si=mock",
		Movie: "The Grand Budapest Hotel (Uplifting)",
	},
	MoodSad: {
		Title: "Comfort Color",
		Desc:  "A calming coloring activity and soothing music.",
		Music: "https://open.spotify.com/embed/track/2?si=mock",
		Movie: "The Pursuit of Happyness (Inspiring)",
	},
	MoodAnxious: {
		Title: "Breathe Maze",
		Desc:  "Guided breathing with a simple gentle puzzle to ground you.",
		Music: "https://open.spotify.com/embed/track/3?si=mock",
		Movie: "Inside Out (Light & comforting)",
	},
	MoodAngry: {
		Title: "Smash Bubbles",
		Desc:  "Safe, cathartic popping game to release tension.",
		Music: "https://open.spotify.com/embed/track/4?si=mock",
		Movie: "Mad Max: Fury Road (High-energy catharsis)",
	},
	MoodLonely: {
		Title: "Kindness Quest",
		Desc:  "Small anonymous tasks to connect with community and share kindness.",
		Music: "https://open.spotify.com/embed/track/5?si=mock",
		Movie: "Stand By Me (Friendship)",
	},
}

// SuggestionFor returns the suggestion for an enumerated mood.
func SuggestionFor(m Mood) (Suggestion, bool) {
	s, ok := suggestions[m]
	return s, ok
}
