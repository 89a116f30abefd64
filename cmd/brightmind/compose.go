// ABOUTME: Cobra command for the interactive journal composer.
// ABOUTME: Launches a bubbletea wizard that picks a mood and saves one entry.
package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/2389-research/brightmind/internal/journal"
	"github.com/2389-research/brightmind/internal/models"
	"github.com/2389-research/brightmind/internal/tui"
)

var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Write a journal entry interactively",
	Long:  "Interactive wizard: choose how you feel, then write a private journal entry.",
	RunE:  runCompose,
}

var composeMood string

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringVar(&composeMood, "mood", "", "Preselect a mood: "+models.MoodNames())
}

func runCompose(cmd *cobra.Command, args []string) error {
	mood, err := models.ParseMood(composeMood)
	if err != nil {
		return err
	}

	// A failed disk write still keeps the entry in memory, so the wizard
	// treats it as saved and the warning is shown once the TUI has exited.
	var persistErr error
	save := func(text string, mood models.Mood) (*models.JournalEntry, error) {
		entry, err := globalJournal.Add(text, mood)
		if err != nil && errors.Is(err, journal.ErrPersist) {
			persistErr = err
			return entry, nil
		}
		return entry, err
	}

	p := tea.NewProgram(tui.NewComposeModel(mood, save))
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if persistErr != nil {
		warnf(cmd, "%v", persistErr)
	}

	final := result.(tui.ComposeModel)
	entry := final.Saved()
	if entry == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing saved.")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Journal entry saved (mood: %s)\n", entry.Mood)
	return nil
}
