// ABOUTME: MCP server initialization and configuration for brightmind.
// ABOUTME: Sets up the server with journal, mood, and streak tools for AI agent access.
package mcp

import (
	"context"
	"fmt"

	gomcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/2389-research/brightmind/internal/dashboard"
	"github.com/2389-research/brightmind/internal/models"
)

// Journal is the journal store surface the tools need.
type Journal interface {
	dashboard.Source
	Add(text string, mood models.Mood) (*models.JournalEntry, error)
}

// Server wraps the MCP server with journal storage.
type Server struct {
	mcp     *gomcp.Server
	journal Journal
	version string
}

// ServerOption configures optional Server settings.
type ServerOption func(*Server)

// WithVersion sets the implementation version reported to clients.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		s.version = v
	}
}

// NewServer creates an MCP server with journal capabilities.
func NewServer(journal Journal, opts ...ServerOption) (*Server, error) {
	if journal == nil {
		return nil, fmt.Errorf("journal store is required")
	}

	s := &Server{
		journal: journal,
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = gomcp.NewServer(
		&gomcp.Implementation{
			Name:    "brightmind",
			Version: s.version,
		},
		nil,
	)

	s.registerJournalTools()
	s.registerMoodTools()

	return s, nil
}

// Serve starts the MCP server in stdio mode.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcp.Run(ctx, &gomcp.StdioTransport{})
}
