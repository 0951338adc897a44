package ui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12")).
			Bold(true)

	toolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	toolFailedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)
)
