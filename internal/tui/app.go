// Package tui is the interactive request refiner: type a request, see
// its notation, compiled instruction and contradictions on every submit.
// Normalization is synchronous and local, so there is no async command
// plumbing here beyond the bubbletea loop itself.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucid-sh/lucid/internal/pipeline"
)

type view int

const (
	viewInput view = iota
	viewResult
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp() *App {
	return &App{
		view:  viewInput,
		state: newState(),
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	if a.view == viewInput || a.view == viewResult {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewHelp {
			a.view = viewInput
			return nil
		}
		if a.view == viewResult {
			a.view = viewInput
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil

	case key.Matches(msg, keys.Tab):
		if a.view == viewResult {
			a.state.tab = (a.state.tab + 1) % 3
		}
		return nil

	case key.Matches(msg, keys.Enter):
		return a.handleSubmit()
	}

	return nil
}

func (a *App) handleSubmit() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}

	if strings.HasPrefix(input, "/") {
		switch strings.ToLower(input) {
		case "/help", "/h":
			a.view = viewHelp
			a.state.input.Reset()
			return nil
		case "/quit", "/q":
			a.quitting = true
			return tea.Quit
		}
		// Unknown command: treat it as a request.
	}

	a.state.result = pipeline.Normalize(input)
	a.view = viewResult
	return nil
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewResult:
		return a.renderResult()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderInput()
	}
}
