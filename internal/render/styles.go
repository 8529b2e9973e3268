package render

import "github.com/charmbracelet/lipgloss"

var (
	boldStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	userStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	agentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	systemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	negStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	posStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
)

func barStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
