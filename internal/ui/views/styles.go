package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Dim           lipgloss.Style
	Section       lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusLoading lipgloss.Style
	Main          lipgloss.Style
	Scroll        lipgloss.Style
	Highlight     lipgloss.Style
	SelectionBg   lipgloss.Style
	Price         lipgloss.Style
	Popup         lipgloss.Style
	Prompt        lipgloss.Style
	Backdrop      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim:     lipgloss.NewStyle().Faint(true),
		Section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusLoading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Backdrop: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
