package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	note    lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		key:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		note: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

func (r *HelpRenderer) line(b *strings.Builder, keys, desc string) {
	b.WriteString(fmt.Sprintf("  %s  %s\n", r.key.Render(fmt.Sprintf("%-14s", keys)), r.desc.Render(desc)))
}

func (r *HelpRenderer) binding(b *strings.Builder, kb key.Binding) {
	h := kb.Help()
	keys := strings.Join(kb.Keys(), ", ")
	if keys == "" {
		keys = h.Key
	}
	r.line(b, keys, h.Desc)
}

// RenderHelpContent generates the full help text, with colors, for the pager
func (r *HelpRenderer) RenderHelpContent(keys KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("Typeahead Help"))
	help.WriteString("\n")

	help.WriteString(r.section.Render("Suggestions"))
	help.WriteString("\n")
	r.binding(&help, keys.Input.Down)
	r.binding(&help, keys.Input.Up)
	r.binding(&help, keys.Input.Select)
	r.binding(&help, keys.Input.Close)
	r.binding(&help, keys.Input.Clear)
	help.WriteString("\n")

	help.WriteString(r.section.Render("Mouse"))
	help.WriteString("\n")
	r.line(&help, "click field", "Focus the field")
	r.line(&help, "click item", "Choose that suggestion")
	r.line(&help, "click ✕", "Clear the field")
	r.line(&help, "click outside", "Close the suggestions")
	help.WriteString("\n")

	help.WriteString(r.note.Render("  Suggestions are looked up once typing pauses; matches are highlighted."))
	help.WriteString("\n")

	help.WriteString(r.section.Render("Other"))
	help.WriteString("\n")
	r.binding(&help, keys.Focus)
	r.binding(&help, keys.Save)
	r.binding(&help, keys.Help)
	r.binding(&help, keys.Quit)
	r.line(&help, keys.Input.Close.Help().Key, "Quit when the suggestions are closed")

	return strings.TrimRight(help.String(), "\n")
}

// HelpOps handles help operations
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	return &HelpOps{
		program: program,
	}
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return errNoProgram
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(helpContent))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)

	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds j/k style movement and q/esc to leave. Actions
// not listed keep ov's defaults.
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = map[string][]string{}
	}
	config.Keybind["exit"] = []string{"Escape", "q", "f1"}
	config.Keybind["down"] = []string{"Enter", "Down", "ctrl+N", "j"}
	config.Keybind["up"] = []string{"Up", "ctrl+P", "k"}
	config.Keybind["top"] = []string{"Home", "g"}
	config.Keybind["bottom"] = []string{"End", "G"}
}
