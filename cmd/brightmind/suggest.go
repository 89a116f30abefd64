// ABOUTME: CLI command for mood-based suggestions.
// ABOUTME: Prints the game, music, and movie picks for a mood.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/2389-research/brightmind/internal/models"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <mood>",
	Short: "Suggest a game, music, and a movie for a mood",
	Long:  "Show an activity, music, and a movie that suit how you feel.\n\nMoods: " + models.MoodNames(),
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	mood, err := models.ParseMood(args[0])
	if err != nil {
		return err
	}
	s, ok := models.SuggestionFor(mood)
	if !ok {
		return fmt.Errorf("no suggestions for mood %q (choose one of: %s)", mood, models.MoodNames())
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	bold.Fprintf(out, "Game: %s\n", s.Title)
	fmt.Fprintf(out, "  %s\n", s.Desc)
	bold.Fprint(out, "Music: ")
	fmt.Fprintln(out, s.Music)
	bold.Fprint(out, "Movie: ")
	fmt.Fprintln(out, s.Movie)
	return nil
}
