package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fentz26/pomotui/internal/pomodoro"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED")
	workColor    = lipgloss.Color("#EF4444")
	shortColor   = lipgloss.Color("#10B981")
	longColor    = lipgloss.Color("#06B6D4")
	warningColor = lipgloss.Color("#F59E0B")
	errorColor   = lipgloss.Color("#EF4444")
	mutedColor   = lipgloss.Color("#6B7280")
	fgColor      = lipgloss.Color("#F9FAFB")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(fgColor).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Padding(0, 1)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	focusedPanelStyle = panelStyle.Copy().
				BorderForeground(primaryColor)

	selectedRowStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	unitStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusStyle = lipgloss.NewStyle().
			Foreground(shortColor)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	pausedStyle = lipgloss.NewStyle().
			Foreground(warningColor).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)
)

// phaseColor picks the accent for the current phase.
func phaseColor(p pomodoro.Phase) lipgloss.Color {
	switch p {
	case pomodoro.PhaseShortBreak:
		return shortColor
	case pomodoro.PhaseLongBreak:
		return longColor
	default:
		return workColor
	}
}

func phaseStyle(p pomodoro.Phase) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(phaseColor(p))
}
