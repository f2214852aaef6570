package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title     lipgloss.Style
	Dim       lipgloss.Style
	Status    lipgloss.Style
	Query     lipgloss.Style
	HelpBox   lipgloss.Style
	Help      lipgloss.Style
	Main      lipgloss.Style
	Scroll    lipgloss.Style
	Active    lipgloss.Style
	Selected  lipgloss.Style
	Disabled  lipgloss.Style
	Marker    lipgloss.Style
	Section   lipgloss.Style
	HelpKey   lipgloss.Style
	HelpDesc  lipgloss.Style
	StatusOff lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Query: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help:      lipgloss.NewStyle().Faint(true),
		Main:      lipgloss.NewStyle().Padding(1, 2),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Active:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true), // green
		Disabled:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Marker:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Section:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		HelpKey:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StatusOff: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
	}
}
