package typeahead

import "github.com/charmbracelet/lipgloss"

// Styles contains the style definitions for the widget
type Styles struct {
	Prompt      lipgloss.Style
	Placeholder lipgloss.Style
	Clear       lipgloss.Style
	Dropdown    lipgloss.Style
	Status      lipgloss.Style // loading and no-results lines
	Error       lipgloss.Style
	Item        lipgloss.Style
	Match       lipgloss.Style
	ActiveItem  lipgloss.Style
	ActiveMatch lipgloss.Style
}

// DefaultStyles returns the default widget styles
func DefaultStyles() Styles {
	return Styles{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Clear:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dropdown: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Faint(true), // red
		Item:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Match:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
		ActiveItem:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")),
		ActiveMatch: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Background(lipgloss.Color("238")).Bold(true),
	}
}
