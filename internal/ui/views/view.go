package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the style of the status line
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width      int
	Height     int
	Title      string
	Source     string // source kind shown next to the title
	Widget     string // rendered typeahead
	Selection  string
	Status     string
	StatusKind StatusKind
	Help       string // rendered short help
}

// Renderer handles all view rendering
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{styles: NewStyles()}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Header renders the title line. The widget is drawn right below it, so its
// height decides where the widget starts on screen.
func (r *Renderer) Header(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	if state.Source == "" {
		return logo
	}

	right := r.styles.Dim.Render(fmt.Sprintf("[%s]", state.Source))
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	// Account for main container padding
	gap := termWidth - 2*MainPadLeft - lipgloss.Width(logo) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", gap), right)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	content.WriteString(r.Header(state))
	content.WriteString("\n")
	content.WriteString(state.Widget)
	content.WriteString("\n")

	if state.Selection != "" {
		line := r.styles.Dim.Render("Selected: ") + r.styles.Selection.Render(state.Selection)
		content.WriteString(r.styles.Status.Render(line))
		content.WriteString("\n")
	}

	if state.Status != "" {
		content.WriteString(r.statusStyle(state.StatusKind).Render(state.Status))
		content.WriteString("\n")
	}

	helpText := r.styles.Help.Render(state.Help)

	// Push the help line to the bottom
	currentLines := strings.Count(content.String(), "\n")
	availableLines := state.Height - 2*MainPadTop
	if availableLines <= 0 {
		availableLines = 22
	}
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString(helpText)

	return r.styles.Main.Render(content.String())
}

func (r *Renderer) statusStyle(kind StatusKind) lipgloss.Style {
	switch kind {
	case StatusError:
		return r.styles.StatusError.MarginTop(1)
	case StatusLoading:
		return r.styles.StatusLoading.MarginTop(1)
	case StatusSuccess:
		return r.styles.StatusSuccess.MarginTop(1)
	default:
		return r.styles.Status
	}
}
