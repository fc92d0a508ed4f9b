package ui

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("205")
	fadedColor  = lipgloss.Color("243")
	errColor    = lipgloss.Color("203")

	titleBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 1)

	pageTitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	shelfLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	focusedShelfLabelStyle = shelfLabelStyle.
				Foreground(accentColor)

	indicatorStyle = lipgloss.NewStyle().Foreground(accentColor).Bold(true)

	hintStyle  = lipgloss.NewStyle().Foreground(fadedColor)
	errorStyle = lipgloss.NewStyle().Foreground(errColor).Bold(true)

	activeSortStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true).
			Padding(0, 1)

	inactiveSortStyle = lipgloss.NewStyle().
				Foreground(fadedColor).
				Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(fadedColor).
				Padding(0, 1)

	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("179")).
			Italic(true)

	detailLabelStyle = lipgloss.NewStyle().
				Foreground(fadedColor).
				Width(11)

	detailTitleStyle = lipgloss.NewStyle().
				Foreground(accentColor).
				Bold(true)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)
