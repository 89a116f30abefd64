// ABOUTME: Interactive TUI wizard for writing a journal entry.
// ABOUTME: 2-step bubbletea model: pick a mood, write the entry, then save through a SaveFn.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/brightmind/internal/models"
)

// Step represents the current wizard step.
type Step int

const (
	StepMood Step = iota
	StepText
	StepDone
	StepFailed
)

// SaveFn persists a composed entry. A returned error is shown and the entry may be retried.
type SaveFn func(text string, mood models.Mood) (*models.JournalEntry, error)

// ComposeModel is the bubbletea model for the compose wizard.
type ComposeModel struct {
	step     Step
	moodIdx  int // index into models.Moods; len(models.Moods) means unspecified
	input    textinput.Model
	saveFn   SaveFn
	saved    *models.JournalEntry
	saveErr  error
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 1)
	moodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Padding(0, 1)
)

// NewComposeModel creates a compose wizard, preselecting mood when it is one of the enumerated moods.
func NewComposeModel(mood models.Mood, save SaveFn) ComposeModel {
	input := textinput.New()
	input.Placeholder = "Write a few lines..."
	input.Width = 60
	input.CharLimit = 2000

	idx := len(models.Moods)
	for i, m := range models.Moods {
		if m == mood {
			idx = i
		}
	}

	return ComposeModel{
		step:    StepMood,
		moodIdx: idx,
		input:   input,
		saveFn:  save,
	}
}

// Init implements tea.Model.
func (m ComposeModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEscape:
		m.quitting = true
		return m, tea.Quit
	}

	switch m.step {
	case StepMood:
		return m.updateMood(keyMsg)
	case StepText:
		return m.updateText(keyMsg)
	case StepFailed:
		return m.updateFailed(keyMsg)
	}
	return m, nil
}

func (m ComposeModel) updateMood(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	options := len(models.Moods) + 1

	switch msg.Type {
	case tea.KeyLeft, tea.KeyShiftTab:
		m.moodIdx = (m.moodIdx + options - 1) % options
	case tea.KeyRight, tea.KeyTab:
		m.moodIdx = (m.moodIdx + 1) % options
	case tea.KeyEnter:
		m.step = StepText
		m.input.Focus()
		return m, textinput.Blink
	case tea.KeyRunes:
		switch msg.Runes[0] {
		case 'h':
			m.moodIdx = (m.moodIdx + options - 1) % options
		case 'l':
			m.moodIdx = (m.moodIdx + 1) % options
		case 'u':
			m.moodIdx = len(models.Moods)
		case 'q':
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ComposeModel) updateText(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		// Don't advance on blank text
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		return m.save()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ComposeModel) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		switch msg.Runes[0] {
		case 'r':
			m.saveErr = nil
			return m.save()
		case 'q':
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ComposeModel) save() (tea.Model, tea.Cmd) {
	m.input.Blur()
	entry, err := m.saveFn(m.input.Value(), m.Mood())
	if err != nil {
		m.saveErr = err
		m.step = StepFailed
		return m, nil
	}
	m.saved = entry
	m.step = StepDone
	return m, tea.Quit
}

// Mood returns the currently selected mood.
func (m ComposeModel) Mood() models.Mood {
	if m.moodIdx < len(models.Moods) {
		return models.Moods[m.moodIdx]
	}
	return models.MoodUnspecified
}

// View implements tea.Model.
func (m ComposeModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   BrightMind"))
	b.WriteString(titleStyle.Render(" - Journal"))
	b.WriteString("\n\n")

	switch m.step {
	case StepMood:
		b.WriteString(stepStyle.Render("Step 1 of 2: How are you feeling?"))
		b.WriteString("\n")
		b.WriteString(m.renderMoods())
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("←/→ choose  u unspecified  enter next"))
		b.WriteString("\n")

	case StepText:
		b.WriteString(fmt.Sprintf("  Mood: %s\n\n", m.Mood()))
		b.WriteString(stepStyle.Render("Step 2 of 2: Journal (private)"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("enter save  esc cancel"))
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("✓ Saved!"))
		b.WriteString("\n")

	case StepFailed:
		errMsg := "unknown error"
		if m.saveErr != nil {
			errMsg = m.saveErr.Error()
		}
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Save failed: %s", errMsg)))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("[r]etry  [q]uit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m ComposeModel) renderMoods() string {
	labels := make([]string, 0, len(models.Moods)+1)
	for i := 0; i <= len(models.Moods); i++ {
		name := string(models.MoodUnspecified)
		if i < len(models.Moods) {
			name = string(models.Moods[i])
		}
		if i == m.moodIdx {
			labels = append(labels, activeStyle.Render(name))
		} else {
			labels = append(labels, moodStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// Saved returns the entry written by the wizard, or nil if nothing was saved.
func (m ComposeModel) Saved() *models.JournalEntry {
	return m.saved
}

// Cancelled returns true if the user quit before an entry was saved.
func (m ComposeModel) Cancelled() bool {
	return m.quitting && m.saved == nil
}
