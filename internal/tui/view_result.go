package tui

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lucid-sh/lucid/internal/intent"
)

func (a *App) renderResult() string {
	var b strings.Builder

	res := a.state.result
	if res == nil {
		return a.renderInput()
	}

	// What was asked
	asked := styleSubtitle.Render(fmt.Sprintf("> %s", res.Intent.RawInput))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, asked))
	b.WriteString("\n")

	// Conflict banner
	if banner := conflictBanner(res.Intent); banner != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, banner))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Tab line
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, a.tabLine()))
	b.WriteString("\n")

	// Body box
	body := a.tabBody()
	maxHeight := a.height - 12
	if maxHeight < 5 {
		maxHeight = 5
	}
	lines := strings.Split(body, "\n")
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
		body = strings.Join(lines, "\n")
	}

	bodyBox := styleBox.
		Width(min(76, a.width-4)).
		BorderForeground(colorPrimary).
		Render(body)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, bodyBox))
	b.WriteString("\n\n")

	// Input for the next refinement
	inputBox := styleBox.
		Width(min(76, a.width-4)).
		BorderForeground(colorMuted).
		Render(a.state.input.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, inputBox))
	b.WriteString("\n\n")

	status := styleStatusBar.Render("[Enter] Normalize  [Tab] Switch view  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, status))

	return a.centerVertically(b.String())
}

func (a *App) tabLine() string {
	var parts []string
	for _, t := range []resultTab{tabNotation, tabInstruction, tabRecord} {
		label := t.String()
		if t == a.state.tab {
			parts = append(parts, styleTabActive.Render("["+label+"]"))
		} else {
			parts = append(parts, styleSubtitle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (a *App) tabBody() string {
	res := a.state.result
	switch a.state.tab {
	case tabInstruction:
		return res.Instruction
	case tabRecord:
		data, err := json.MarshalIndent(res.Intent, "", "  ")
		if err != nil {
			return err.Error()
		}
		return string(data)
	default:
		return res.Notation
	}
}

func conflictBanner(i *intent.Intent) string {
	if len(i.Conflicts) == 0 {
		return ""
	}
	if i.RequiresClarification {
		return styleBlocking.Render(
			fmt.Sprintf("✗ %d contradiction(s) — clarification required", len(i.Conflicts)))
	}
	return styleWarning.Render(
		fmt.Sprintf("⚠ %d contradiction(s) detected", len(i.Conflicts)))
}
