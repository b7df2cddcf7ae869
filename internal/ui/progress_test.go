package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelAbortOnCtrlC(t *testing.T) {
	m := NewTUIModel()

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	final := updated.(Model)

	if !final.Aborted() {
		t.Error("expected the model to record the abort")
	}
	if final.Finished() {
		t.Error("an aborted run must not read as finished")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.Quit, got %T", cmd())
	}
	if !strings.Contains(final.View(), "Canceled") {
		t.Errorf("expected the canceled view, got %q", final.View())
	}
}

func TestModelDone(t *testing.T) {
	m := NewTUIModel()

	updated, _ := m.Update(PagesMsg{Pages: 12})
	updated, cmd := updated.(Model).Update(DoneMsg{})
	final := updated.(Model)

	if !final.Finished() {
		t.Error("expected the model to read as finished after DoneMsg")
	}
	if final.Aborted() {
		t.Error("a completed run must not read as aborted")
	}
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if !strings.Contains(final.View(), "12 pages") {
		t.Errorf("expected the final page count in the view, got %q", final.View())
	}
}
