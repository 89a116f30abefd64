// ABOUTME: Tests for MCP server creation and validation.
// ABOUTME: Verifies the server requires a journal store and applies options.
package mcp

import (
	"testing"

	"github.com/2389-research/brightmind/internal/journal"
	"github.com/2389-research/brightmind/internal/storage"
)

func TestNewServerRequiresJournalStore(t *testing.T) {
	_, err := NewServer(nil)
	if err == nil {
		t.Error("expected error when journal store is nil")
	}
}

func TestNewServerSuccess(t *testing.T) {
	store, _ := journal.Open(storage.NewMemoryKV(), "")

	server, err := NewServer(store)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server == nil {
		t.Error("expected non-nil server")
	}
}

func TestNewServerWithVersion(t *testing.T) {
	store, _ := journal.Open(storage.NewMemoryKV(), "")

	server, err := NewServer(store, WithVersion("2.3.4"))
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if server.version != "2.3.4" {
		t.Errorf("expected version 2.3.4, got %q", server.version)
	}
}
