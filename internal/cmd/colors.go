package cmd

import "github.com/charmbracelet/lipgloss"

var styleHeading = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7C3AED")).
	Bold(true)
