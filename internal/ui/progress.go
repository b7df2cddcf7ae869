// Package ui provides progress display for a pipeline run.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY returns true if stderr is a terminal.
func IsTTY() bool {
	return term.IsTerminal(os.Stderr.Fd())
}

// --- Plain text fallback ---

// PlainProgress prints progress messages to a callback function.
// Used when stderr is not a TTY (e.g., piped output).
type PlainProgress struct {
	print func(string)
}

// NewPlainProgress creates a new PlainProgress with the given print callback.
func NewPlainProgress(print func(string)) *PlainProgress {
	return &PlainProgress{print: print}
}

// Stage prints a message for a completed pipeline stage.
func (p *PlainProgress) Stage(done, total int, stage string) {
	p.print(fmt.Sprintf("[%d/%d] %s", done, total, stage))
}

// Done prints a completion message.
func (p *PlainProgress) Done(pages int) {
	p.print(fmt.Sprintf("Done! Fetched %d pages.", pages))
}

// --- TUI progress ---

// StageMsg is sent when a coarse pipeline stage completes.
type StageMsg struct {
	Done  int
	Total int
	Stage string
}

// PagesMsg carries the smoothed page counter.
type PagesMsg struct {
	Pages int
}

// DoneMsg is sent when the pipeline run finishes.
type DoneMsg struct{}

// Model is the bubbletea model for the progress TUI. The caller
// inspects the final model after Run to tell a completed pipeline from
// a user abort.
type Model struct {
	progress progress.Model
	done     bool
	aborted  bool
	pages    int
	stage    string
	stageNum int
	stages   int
}

// Finished reports whether the pipeline signaled completion before the
// program exited.
func (m Model) Finished() bool { return m.done }

// Aborted reports whether the user quit before the pipeline finished.
func (m Model) Aborted() bool { return m.aborted }

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewTUIModel creates a new bubbletea model for the progress TUI.
func NewTUIModel() Model {
	return Model{
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(50),
			progress.WithoutPercentage(),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.progress.Width = msg.Width - 10
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
	case StageMsg:
		m.stage = msg.Stage
		m.stageNum = msg.Done
		m.stages = msg.Total
		pct := float64(msg.Done) / float64(msg.Total)
		return m, m.progress.SetPercent(pct)
	case PagesMsg:
		m.pages = msg.Pages
		return m, nil
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m Model) View() string {
	if m.aborted {
		return fmt.Sprintf("\n  %s\n\n", infoStyle.Render("Canceled."))
	}
	if m.done {
		return fmt.Sprintf("\n  %s\n\n",
			titleStyle.Render(fmt.Sprintf("Done! Fetched %d pages.", m.pages)))
	}

	pad := strings.Repeat(" ", 2)
	counter := infoStyle.Render(fmt.Sprintf("%d pages", m.pages))
	desc := m.stage
	if desc == "" {
		desc = "Starting..."
	}

	return "\n" +
		pad + titleStyle.Render("Analyzing account") + "\n" +
		pad + m.progress.View() + "  " + counter + "\n" +
		pad + infoStyle.Render(desc) + "\n\n"
}

// RunTUI creates and returns a bubbletea program for the progress TUI.
// The program outputs to stderr so report output on stdout stays clean.
func RunTUI() *tea.Program {
	m := NewTUIModel()
	p := tea.NewProgram(m, tea.WithOutput(os.Stderr))
	return p
}
