// ABOUTME: Unit tests for the compose wizard bubbletea model.
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions.
package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/2389-research/brightmind/internal/models"
)

type recordingSaver struct {
	calls []string
	moods []models.Mood
	err   error
}

func (r *recordingSaver) save(text string, mood models.Mood) (*models.JournalEntry, error) {
	r.calls = append(r.calls, text)
	r.moods = append(r.moods, mood)
	if r.err != nil {
		return nil, r.err
	}
	return models.NewJournalEntry(int64(len(r.calls)), text, mood, timeZero), nil
}

func press(t *testing.T, m ComposeModel, msg tea.KeyMsg) (ComposeModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(ComposeModel), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewComposeModel_Defaults(t *testing.T) {
	m := NewComposeModel("", (&recordingSaver{}).save)
	if m.step != StepMood {
		t.Errorf("expected initial step StepMood, got %d", m.step)
	}
	if m.Mood() != models.MoodUnspecified {
		t.Errorf("expected unspecified mood by default, got %q", m.Mood())
	}
}

func TestNewComposeModel_Preselect(t *testing.T) {
	m := NewComposeModel(models.MoodAngry, (&recordingSaver{}).save)
	if m.Mood() != models.MoodAngry {
		t.Errorf("expected preselected angry, got %q", m.Mood())
	}
}

func TestComposeModel_MoodCycling(t *testing.T) {
	m := NewComposeModel(models.MoodHappy, (&recordingSaver{}).save)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.Mood() != models.MoodSad {
		t.Errorf("expected sad after right, got %q", m.Mood())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.Mood() != models.MoodUnspecified {
		t.Errorf("expected wrap to unspecified, got %q", m.Mood())
	}
	m, _ = press(t, m, runes("l"))
	if m.Mood() != models.MoodHappy {
		t.Errorf("expected wrap back to happy, got %q", m.Mood())
	}
	m, _ = press(t, m, runes("u"))
	if m.Mood() != models.MoodUnspecified {
		t.Errorf("expected u to select unspecified, got %q", m.Mood())
	}
}

func TestComposeModel_SaveFlow(t *testing.T) {
	saver := &recordingSaver{}
	m := NewComposeModel(models.MoodLonely, saver.save)

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != StepText {
		t.Fatalf("expected StepText after Enter, got %d", m.step)
	}
	if cmd == nil {
		t.Error("expected blink cmd when focusing the input")
	}

	m.input.SetValue("missing my friends")
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != StepDone {
		t.Fatalf("expected StepDone, got %d", m.step)
	}
	if cmd == nil {
		t.Error("expected quit cmd after save")
	}
	if len(saver.calls) != 1 || saver.calls[0] != "missing my friends" || saver.moods[0] != models.MoodLonely {
		t.Errorf("unexpected save calls: %v %v", saver.calls, saver.moods)
	}
	if m.Saved() == nil || m.Cancelled() {
		t.Error("expected a saved entry and no cancellation")
	}
	if !strings.Contains(m.View(), "Saved") {
		t.Errorf("expected success view, got %q", m.View())
	}
}

func TestComposeModel_BlankTextDoesNotSave(t *testing.T) {
	saver := &recordingSaver{}
	m := NewComposeModel("", saver.save)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	m.input.SetValue("    ")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != StepText {
		t.Errorf("expected to stay on StepText, got %d", m.step)
	}
	if cmd != nil {
		t.Error("expected no cmd for blank text")
	}
	if len(saver.calls) != 0 {
		t.Errorf("expected no saves, got %d", len(saver.calls))
	}
}

func TestComposeModel_SaveFailureAndRetry(t *testing.T) {
	saver := &recordingSaver{err: errors.New("disk full")}
	m := NewComposeModel(models.MoodSad, saver.save)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m.input.SetValue("try me")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.step != StepFailed {
		t.Fatalf("expected StepFailed, got %d", m.step)
	}
	if !strings.Contains(m.View(), "disk full") {
		t.Errorf("expected error in view, got %q", m.View())
	}

	saver.err = nil
	m, _ = press(t, m, runes("r"))
	if m.step != StepDone {
		t.Errorf("expected StepDone after retry, got %d", m.step)
	}
	if len(saver.calls) != 2 {
		t.Errorf("expected 2 save attempts, got %d", len(saver.calls))
	}
}

func TestComposeModel_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEscape},
		runes("q"),
	} {
		m := NewComposeModel("", (&recordingSaver{}).save)
		m, cmd := press(t, m, msg)
		if !m.Cancelled() {
			t.Errorf("expected %v to cancel", msg)
		}
		if cmd == nil {
			t.Errorf("expected quit cmd for %v", msg)
		}
	}
}
