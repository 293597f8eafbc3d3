package tui

import "github.com/charmbracelet/lipgloss"

var (
	subtle    = lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}
	text      = lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	accent    = lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}
	highlight = lipgloss.AdaptiveColor{Light: "#d7827e", Dark: "#ebbcba"}
	gold      = lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"}
)

var (
	headingStyle    = lipgloss.NewStyle().Bold(true).Foreground(text).MarginBottom(1)
	sortStyle       = lipgloss.NewStyle().Foreground(accent).Padding(0, 1).Border(lipgloss.NormalBorder()).BorderForeground(subtle)
	sortActiveStyle = sortStyle.BorderForeground(highlight)

	panelStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1)
	suggestionStyle       = lipgloss.NewStyle().Foreground(text)
	suggestionActiveStyle = lipgloss.NewStyle().Foreground(highlight).Bold(true)

	cardStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 1).Width(44)
	cardTitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accent)
	platformsStyle     = lipgloss.NewStyle().Italic(true).Foreground(subtle)
	editorsChoiceStyle = lipgloss.NewStyle().Bold(true).Foreground(gold)

	hintStyle = lipgloss.NewStyle().Foreground(subtle).Italic(true)
	helpStyle = lipgloss.NewStyle().Foreground(subtle).MarginTop(1)
)
