// ABOUTME: CLI commands for journal operations.
// ABOUTME: Provides write, list, and timeline subcommands for the journal.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/2389-research/brightmind/internal/journal"
	"github.com/2389-research/brightmind/internal/models"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Manage journal entries",
	Long:  "Write and list private journal entries.",
}

var journalWriteCmd = &cobra.Command{
	Use:   "write <text>",
	Short: "Write a journal entry",
	Long:  "Save a journal entry, optionally tagged with how you feel.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runJournalWrite,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List journal entries",
	Long:  "List journal entries, newest first.",
	RunE:  runJournalList,
}

var journalTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Show the recent mood timeline",
	Long:  "Show the most recent entries with their moods.",
	RunE:  runJournalTimeline,
}

// Flags
var (
	journalMood  string
	journalLimit int
)

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalWriteCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalTimelineCmd)

	journalWriteCmd.Flags().StringVar(&journalMood, "mood", "", "Mood: "+models.MoodNames())

	journalListCmd.Flags().IntVar(&journalLimit, "limit", 0, "Maximum number of entries to show (0 = all)")
}

func runJournalWrite(cmd *cobra.Command, args []string) error {
	mood, err := models.ParseMood(journalMood)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	entry, err := globalJournal.Add(text, mood)
	if err != nil {
		if !errors.Is(err, journal.ErrPersist) {
			return fmt.Errorf("failed to write entry: %w", err)
		}
		warnf(cmd, "%v", err)
	}
	if entry == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to save.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Journal entry saved (mood: %s)\n", entry.Mood)
	fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\n", globalJournal.Count())
	return nil
}

func runJournalList(cmd *cobra.Command, args []string) error {
	entries := globalJournal.List()
	if journalLimit > 0 {
		entries = globalJournal.Recent(journalLimit)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries yet - try writing one!")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), entryTable(entries, 0))
	return nil
}

func runJournalTimeline(cmd *cobra.Command, args []string) error {
	entries := globalJournal.Recent(globalConfig.Dashboard.TimelineLimit)
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entries yet - try writing one!")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), entryTable(entries, globalConfig.Dashboard.PreviewLength))
	return nil
}

// entryTable renders entries as a DATE/MOOD/TEXT table. maxText > 0 truncates the text column.
func entryTable(entries []*models.JournalEntry, maxText int) string {
	table := uitable.New()
	table.MaxColWidth = 80
	table.Wrap = true
	table.AddRow("DATE", "MOOD", "TEXT")
	for _, e := range entries {
		table.AddRow(e.Date.Local().Format("2006-01-02 15:04"), string(e.Mood), e.Preview(maxText))
	}
	return table.String()
}
