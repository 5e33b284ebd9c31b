package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Prompt         lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Loading        lipgloss.Style
	Error          lipgloss.Style
	Item           lipgloss.Style
	Cursor         lipgloss.Style
	Dragging       lipgloss.Style
	DropZone       lipgloss.Style
	DropZoneActive lipgloss.Style
	DropZoneTitle  lipgloss.Style
	PantryItem     lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Loading: lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Item:    lipgloss.NewStyle(),
		Cursor:  lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Dragging: lipgloss.NewStyle().
			Foreground(lipgloss.Color("226")).
			Bold(true),
		DropZone: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		DropZoneActive: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("78")). // green
			Padding(0, 1),
		DropZoneTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		PantryItem:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		Help:          lipgloss.NewStyle().Faint(true),
	}
}
