package book

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	label   lipgloss.Style
	name    lipgloss.Style
	phone   lipgloss.Style
	seconds lipgloss.Style
	empty   lipgloss.Style
	warning lipgloss.Style
	prompt  lipgloss.Style
	bullet  lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		label:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		name:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		phone:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		seconds: lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		empty:   lipgloss.NewStyle().Faint(true),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("69")),
		bullet:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

var defaultStyles = newStyles()
