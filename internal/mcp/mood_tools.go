// ABOUTME: MCP tool implementations for mood insights.
// ABOUTME: Registers mood_breakdown, journal_streak, and mood_suggestion.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/brightmind/internal/models"
)

func (s *Server) registerMoodTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "mood_breakdown",
		Description: "Count journal entries per mood. Entries without a mood are not counted.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleMoodBreakdown)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "journal_streak",
		Description: "Get the current journaling streak: consecutive days up to and including today with at least one entry.",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleJournalStreak)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "mood_suggestion",
		Description: "Suggest an activity, music, and a movie for a mood.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"mood": {"type": "string", "enum": ["happy", "sad", "anxious", "angry", "lonely"], "description": "Mood to get a suggestion for"}
			},
			"required": ["mood"]
		}`),
	}, s.handleMoodSuggestion)
}

func (s *Server) handleMoodBreakdown(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	counts := s.journal.MoodBreakdown(models.Moods)

	var sb strings.Builder
	for _, m := range models.Moods {
		sb.WriteString(fmt.Sprintf("%s: %d\n", m, counts[m]))
	}
	sb.WriteString(fmt.Sprintf("Total entries: %d\n", s.journal.Count()))

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

func (s *Server) handleJournalStreak(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	streak := s.journal.Streak()
	unit := "days"
	if streak == 1 {
		unit = "day"
	}
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf("Journal streak: %d %s", streak, unit)}},
	}, nil
}

func (s *Server) handleMoodSuggestion(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Mood string `json:"mood"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	mood, err := models.ParseMood(args.Mood)
	if err != nil {
		return toolError("%v", err), nil
	}
	suggestion, ok := models.SuggestionFor(mood)
	if !ok {
		return toolError("mood is required (valid moods: %s)", models.MoodNames()), nil
	}

	text := fmt.Sprintf("Game: %s\n%s\nMusic: %s\nMovie: %s",
		suggestion.Title, suggestion.Desc, suggestion.Music, suggestion.Movie)
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}, nil
}
