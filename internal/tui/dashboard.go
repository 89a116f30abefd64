// ABOUTME: Bubbletea view of the wellness dashboard.
// ABOUTME: Renders breakdown, streak, recent entries, timeline, and tips; r reloads, q quits.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/brightmind/internal/dashboard"
)

// LoadFn produces a fresh dashboard summary.
type LoadFn func() dashboard.Summary

// DashboardModel is the bubbletea model for the dashboard view.
type DashboardModel struct {
	load    LoadFn
	summary dashboard.Summary
	width   int
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			MarginRight(1)
	headingStyle = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewDashboardModel creates a dashboard view and loads the first summary.
func NewDashboardModel(load LoadFn) DashboardModel {
	return DashboardModel{
		load:    load,
		summary: load(),
	}
}

// Init implements tea.Model.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			return m, tea.Quit
		case tea.KeyRunes:
			switch msg.Runes[0] {
			case 'q':
				return m, tea.Quit
			case 'r':
				m.summary = m.load()
			}
		}
	}
	return m, nil
}

// Summary returns the summary currently on screen.
func (m DashboardModel) Summary() dashboard.Summary {
	return m.summary
}

// View implements tea.Model.
func (m DashboardModel) View() string {
	s := m.summary
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   BrightMind"))
	b.WriteString(titleStyle.Render(" - Your Wellness Dashboard"))
	b.WriteString("\n\n")

	var breakdown strings.Builder
	breakdown.WriteString(headingStyle.Render("Mood Breakdown"))
	for _, row := range s.Breakdown {
		breakdown.WriteString(fmt.Sprintf("\n%-10s %3d", row.Mood, row.Count))
	}

	var recent strings.Builder
	recent.WriteString(headingStyle.Render("Recent Journals"))
	if len(s.Recent) == 0 {
		recent.WriteString("\n" + dimStyle.Render("No entries yet, try writing one!"))
	}
	for _, p := range s.Recent {
		recent.WriteString(fmt.Sprintf("\n%s: %s", p.Entry.Date.Local().Format("2006-01-02"), p.Text))
	}

	progress := fmt.Sprintf("%s\nJournal streak: %d days\nCheck-ins: %d",
		headingStyle.Render("Streaks & Progress"), s.Streak, s.CheckIns)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(breakdown.String()),
		panelStyle.Render(recent.String()),
		panelStyle.Render(progress),
	))
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Mood Timeline (recent)"))
	b.WriteString("\n")
	for _, e := range s.Timeline {
		b.WriteString(fmt.Sprintf("  %s  %-11s %s\n",
			dimStyle.Render(e.Date.Local().Format("2006-01-02 15:04")), e.Mood, e.Text))
	}
	if len(s.Timeline) == 0 {
		b.WriteString(dimStyle.Render("  nothing yet"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(headingStyle.Render("Recommendations"))
	b.WriteString("\n")
	for _, tip := range s.Tips {
		b.WriteString("  • " + tip + "\n")
	}
	b.WriteString("\n")
	b.WriteString(promptStyle.Render("[r]efresh  [q]uit"))
	b.WriteString("\n")

	return b.String()
}
