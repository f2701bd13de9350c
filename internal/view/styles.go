package view

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true).Width(12)
	okStyle    = lipgloss.NewStyle().Bold(true)
	failStyle  = lipgloss.NewStyle().Faint(true)
)
