package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("135")
	colorMuted   = lipgloss.Color("243")
	colorDanger  = lipgloss.Color("203")
	colorSuccess = lipgloss.Color("78")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(colorMuted)
	tabActiveStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).
			Foreground(colorAccent).Underline(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	cardSelectedStyle = cardStyle.
				BorderForeground(colorAccent)

	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	dangerStyle = lipgloss.NewStyle().Foreground(colorDanger)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted)
)
