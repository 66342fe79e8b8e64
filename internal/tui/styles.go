package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#00aeaf")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accent)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	focusedStyle = sectionStyle.Foreground(accent).Underline(true)

	headerStyle      = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	activeColStyle   = headerStyle.Foreground(accent)
	cellStyle        = lipgloss.NewStyle().Padding(0, 1)
	cursorRowStyle   = cellStyle.Reverse(true)
	selectedRowStyle = cellStyle.Foreground(lipgloss.Color("42"))
	borderStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	currentPageStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	mutedStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	disabledStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	optionStyle      = lipgloss.NewStyle().PaddingLeft(2)
	cursorStyle      = lipgloss.NewStyle().Foreground(accent).Bold(true)
	statusStyle      = lipgloss.NewStyle().MarginTop(1).Italic(true)
)
