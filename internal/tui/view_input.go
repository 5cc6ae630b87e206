package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `
 ██╗     ██╗   ██╗ ██████╗██╗██████╗
 ██║     ██║   ██║██╔════╝██║██╔══██╗
 ██║     ██║   ██║██║     ██║██║  ██║
 ██║     ██║   ██║██║     ██║██║  ██║
 ███████╗╚██████╔╝╚██████╗██║██████╔╝
 ╚══════╝ ╚═════╝  ╚═════╝╚═╝╚═════╝
`

func (a *App) renderInput() string {
	logoRendered := styleLogo.Render(logo)
	subtitle := styleSubtitle.Render("Say what you mean")

	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorPrimary).
		Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Normalize  [F1] Help  [Esc] Quit")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
