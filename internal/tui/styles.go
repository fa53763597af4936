package tui

import "github.com/charmbracelet/lipgloss"

const channelPaneWidth = 30

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	selectedStyle = lipgloss.NewStyle().Reverse(true)
	activeStyle   = lipgloss.NewStyle().Bold(true)
	authorStyle   = lipgloss.NewStyle().Bold(true)
	timeStyle     = lipgloss.NewStyle().Faint(true)
)

var channelPaneStyle = lipgloss.NewStyle().
	Width(channelPaneWidth).
	Border(lipgloss.NormalBorder(), false, true, false, false).
	PaddingRight(1)

var messagePaneStyle = lipgloss.NewStyle().PaddingLeft(2)
