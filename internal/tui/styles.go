package tui

import "github.com/charmbracelet/lipgloss"

const sheetHorizontalPadding = 2

var (
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	helperStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	modeBadgeStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f0f0f")).Background(lipgloss.Color("#ffd166")).Padding(0, 1)

	sheetColor       = lipgloss.Color("#1f1d2e")
	sheetAccentColor = lipgloss.Color("#ff8c00")

	sheetHandleStyle = lipgloss.NewStyle().Bold(true).Foreground(sheetAccentColor).Background(sheetColor)
	sheetBodyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e0def4")).Background(sheetColor).Padding(0, sheetHorizontalPadding/2)
	statusBarStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ecae6"))
)
