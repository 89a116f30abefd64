// ABOUTME: MCP tool implementations for journal operations.
// ABOUTME: Registers write_journal and list_journal_entries.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/brightmind/internal/journal"
	"github.com/2389-research/brightmind/internal/models"
)

func (s *Server) registerJournalTools() {
	s.mcp.AddTool(&gomcp.Tool{
		Name:        "write_journal",
		Description: "Write a private journal entry. Text is required; mood is optional and must be one of happy, sad, anxious, angry, lonely.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"text": {"type": "string", "description": "Journal entry text"},
				"mood": {"type": "string", "enum": ["happy", "sad", "anxious", "angry", "lonely", "unspecified"], "description": "Mood at the time of writing (default: unspecified)"}
			},
			"required": ["text"]
		}`),
	}, s.handleWriteJournal)

	s.mcp.AddTool(&gomcp.Tool{
		Name:        "list_journal_entries",
		Description: "List journal entries, newest first.",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"limit": {"type": "number", "description": "Maximum number of entries to return (default: 10)"}
			}
		}`),
	}, s.handleListJournalEntries)
}

func (s *Server) handleWriteJournal(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Text string `json:"text"`
		Mood string `json:"mood"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
		return toolError("invalid arguments: %v", err), nil
	}

	if strings.TrimSpace(args.Text) == "" {
		return toolError("text is required"), nil
	}

	mood, err := models.ParseMood(args.Mood)
	if err != nil {
		return toolError("%v", err), nil
	}

	entry, err := s.journal.Add(args.Text, mood)
	if err != nil && !errors.Is(err, journal.ErrPersist) {
		return toolError("failed to write entry: %v", err), nil
	}

	text := fmt.Sprintf("Journal entry written (ID: %d, mood: %s)\nEntries: %d", entry.ID, entry.Mood, s.journal.Count())
	if err != nil {
		text += fmt.Sprintf("\nWarning: %v", err)
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: text}},
	}, nil
}

func (s *Server) handleListJournalEntries(ctx context.Context, req *gomcp.CallToolRequest) (*gomcp.CallToolResult, error) {
	var args struct {
		Limit int `json:"limit"`
	}
	if len(req.Params.Arguments) > 0 {
		if err := json.Unmarshal(req.Params.Arguments, &args); err != nil {
			return toolError("invalid arguments: %v", err), nil
		}
	}
	if args.Limit <= 0 {
		args.Limit = 10
	}

	entries := s.journal.Recent(args.Limit)
	if len(entries) == 0 {
		return &gomcp.CallToolResult{
			Content: []gomcp.Content{&gomcp.TextContent{Text: "No journal entries yet."}},
		}, nil
	}

	var sb strings.Builder
	for _, entry := range entries {
		sb.WriteString(fmt.Sprintf("- %s [%s] %s\n",
			entry.Date.Local().Format("2006-01-02 15:04:05"),
			entry.Mood,
			entry.Text,
		))
	}

	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: sb.String()}},
	}, nil
}

// toolError creates an error result for MCP tool responses.
func toolError(format string, args ...interface{}) *gomcp.CallToolResult {
	return &gomcp.CallToolResult{
		Content: []gomcp.Content{&gomcp.TextContent{Text: fmt.Sprintf(format, args...)}},
		IsError: true,
	}
}
