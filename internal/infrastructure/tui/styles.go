package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
const (
	colorPrimary   = "#7D56F4"
	colorSuccess   = "#04B575"
	colorError     = "#FF5F56"
	colorWarn      = "#F5A623"
	colorInfo      = "#626262"
	colorHighlight = "#FAFAFA"
	colorBorder    = "#874BFD"
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorPrimary)).
		MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorSuccess))

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorError))

	NoticeStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorWarn))

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorInfo))

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorBorder)).
		Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorHighlight)).
		Background(lipgloss.Color(colorPrimary))

	InputStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight))
)
