// ABOUTME: CLI commands for journal insights.
// ABOUTME: Provides stats and dashboard (table or interactive) views of the journal.
package main

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/2389-research/brightmind/internal/dashboard"
	"github.com/2389-research/brightmind/internal/tui"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mood breakdown and streak",
	Long:  "Show how many entries carry each mood, the current streak, and total check-ins.",
	RunE:  runStats,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show the wellness dashboard",
	Long:  "Show mood breakdown, streak, recent journals, the mood timeline, and recommendations.",
	RunE:  runDashboard,
}

var dashboardInteractive bool

func init() {
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().BoolVarP(&dashboardInteractive, "interactive", "i", false, "Open the interactive dashboard")
}

func runStats(cmd *cobra.Command, args []string) error {
	sum := dashboard.Build(globalJournal, dashboardOptions())
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, breakdownTable(sum.Breakdown))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Journal streak: %d days\n", sum.Streak)
	fmt.Fprintf(out, "Check-ins: %d\n", sum.CheckIns)
	return nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	load := func() dashboard.Summary {
		return dashboard.Build(globalJournal, dashboardOptions())
	}

	if dashboardInteractive {
		p := tea.NewProgram(tui.NewDashboardModel(load))
		if _, err := p.Run(); err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	}

	printDashboard(cmd.OutOrStdout(), load())
	return nil
}

func printDashboard(out io.Writer, sum dashboard.Summary) {
	fmt.Fprintln(out, "== Mood Breakdown")
	fmt.Fprintln(out, breakdownTable(sum.Breakdown))

	fmt.Fprintln(out, "\n== Streaks & Progress")
	fmt.Fprintf(out, "Journal streak: %d days\n", sum.Streak)
	fmt.Fprintf(out, "Check-ins: %d\n", sum.CheckIns)

	fmt.Fprintln(out, "\n== Recent Journals")
	if len(sum.Recent) == 0 {
		fmt.Fprintln(out, "No entries yet - try writing one!")
	}
	for _, p := range sum.Recent {
		fmt.Fprintf(out, "%s: %s\n", p.Entry.Date.Local().Format("2006-01-02"), p.Text)
	}

	fmt.Fprintln(out, "\n== Mood Timeline (recent)")
	if len(sum.Timeline) > 0 {
		fmt.Fprintln(out, entryTable(sum.Timeline, 0))
	}

	fmt.Fprintln(out, "\n== Recommendations")
	for _, tip := range sum.Tips {
		fmt.Fprintf(out, "- %s\n", tip)
	}
}

func breakdownTable(rows []dashboard.MoodCount) string {
	table := uitable.New()
	table.AddRow("MOOD", "ENTRIES")
	for _, row := range rows {
		table.AddRow(string(row.Mood), row.Count)
	}
	return table.String()
}

