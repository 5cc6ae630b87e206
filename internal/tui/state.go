package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/lucid-sh/lucid/internal/pipeline"
)

// resultTab selects which encoding the result view shows.
type resultTab int

const (
	tabNotation resultTab = iota
	tabInstruction
	tabRecord
)

func (t resultTab) String() string {
	switch t {
	case tabInstruction:
		return "instruction"
	case tabRecord:
		return "record"
	default:
		return "notation"
	}
}

type state struct {
	input textinput.Model

	// Last submitted request and its frozen result.
	result *pipeline.Result
	tab    resultTab
}

func newState() *state {
	input := textinput.New()
	input.Placeholder = "Describe what you want... (/help for commands)"
	input.CharLimit = 500
	input.Width = 60
	input.Focus()

	return &state{input: input}
}
