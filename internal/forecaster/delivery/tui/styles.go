package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.Color("#6366f1")
	secondary = lipgloss.Color("#8b5cf6")
	muted     = lipgloss.Color("#6b7280")
	danger    = lipgloss.Color("#ef4444")
	success   = lipgloss.Color("#10b981")

	titleStyle          = lipgloss.NewStyle().Foreground(primary).Bold(true)
	labelStyle          = lipgloss.NewStyle().Foreground(muted).Width(16)
	busyStyle           = lipgloss.NewStyle().Foreground(secondary)
	errorStyle          = lipgloss.NewStyle().Foreground(danger).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(danger).Padding(0, 1)
	buttonStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(primary).Padding(0, 2)
	disabledButtonStyle = lipgloss.NewStyle().Foreground(muted).Padding(0, 2)
	panelStyle          = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
	panelTitleStyle     = lipgloss.NewStyle().Foreground(primary).Bold(true)
	cardStyle           = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(muted).Padding(0, 1).MarginRight(1)
	positiveStyle       = lipgloss.NewStyle().Foreground(success).Bold(true)
	negativeStyle       = lipgloss.NewStyle().Foreground(danger).Bold(true)
)

func inputStyle(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(primary)
	}
	return lipgloss.NewStyle()
}
