package tui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("86")
	ColorMuted   = lipgloss.Color("241")
	ColorBorder  = lipgloss.Color("240")
	ColorDanger  = lipgloss.Color("196")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	SummaryStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorDanger).
			Padding(1, 2)
)
