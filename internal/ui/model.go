package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"typeahead/internal/config"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/handlers"
	"typeahead/internal/ui/state"
	"typeahead/internal/ui/typeahead"
	"typeahead/internal/ui/views"
)

const appTitle = "typeahead"

// Model is the full-screen host for the typeahead widget
type Model struct {
	config    *config.Config
	configSvc config.ConfigService

	widget       *typeahead.Model
	initialQuery string
	keys         KeyMap
	help         help.Model
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	state  *state.AppState
	events *handlers.EventHandler

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates the host model. initialQuery, when set, is typed into
// the field once it is focused.
func NewModel(bus eventbus.EventBus, cfg *config.Config, src typeahead.Source, initialQuery string) *Model {
	widget := typeahead.New(src, typeahead.Options{
		Placeholder:   cfg.Placeholder,
		Width:         cfg.Input.Width,
		MaxVisible:    cfg.Input.MaxVisible,
		Debounce:      cfg.Debounce(),
		LookupTimeout: cfg.LookupTimeout(),
	})

	appState := state.NewAppState()
	m := &Model{
		config:       cfg,
		widget:       widget,
		initialQuery: initialQuery,
		keys:         DefaultKeyMap(widget.KeyMap()),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		helpOps:      NewHelpOps(nil),
		state:        appState,
		events:       handlers.NewEventHandler(appState, bus),
	}
	m.layout()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// SetConfigService enables saving the settings from the UI
func (m *Model) SetConfigService(svc config.ConfigService) {
	m.configSvc = svc
}

// Selection returns the last chosen suggestion
func (m *Model) Selection() string {
	return m.state.Selection
}

// Init focuses the widget, which looks up the initial suggestions
func (m *Model) Init() tea.Cmd {
	cmd := m.widget.Focus()
	if m.initialQuery != "" {
		cmd = tea.Batch(cmd, m.widget.SetValue(m.initialQuery))
	}
	return cmd
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		first := m.state.SetSize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.layout()
		if first {
			m.events.Publish(eventbus.AppReadyEvent{StartedAt: time.Now()})
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, m.quit()
		case key.Matches(msg, m.keys.Help):
			return m, m.fetchHelpPager()
		case key.Matches(msg, m.keys.Save):
			return m, m.saveConfig()
		case key.Matches(msg, m.keys.Focus):
			if m.widget.Focused() {
				m.widget.Blur()
				return m, nil
			}
			return m, m.widget.Focus()
		case key.Matches(msg, m.keys.Input.Close) && !m.widget.Open():
			return m, m.quit()
		}

	case EventMsg:
		return m, m.events.HandleEvent(msg.Event)

	case configSavedMsg:
		if msg.err != nil {
			log.Error("failed to save settings", "path", msg.path, "err", msg.err)
			return m, m.events.Flash(views.StatusError, fmt.Sprintf("Could not save settings: %v", msg.err))
		}
		return m, nil

	case handlers.ClearStatusMsg:
		m.state.ClearStatus(msg.ID)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed: log only; do not surface in status bar
			log.Warn("help pager failed", "err", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil
	}

	// Outcomes the widget reported
	if m.events.HandleWidgetMsg(msg) {
		return m, nil
	}

	_, cmd := m.widget.Update(msg)
	return m, cmd
}

// View renders the UI
func (m *Model) View() string {
	if m.state.Width == 0 {
		return "Starting..."
	}
	if m.state.InPagerMode {
		return ""
	}
	return m.renderer.Render(m.viewState())
}

func (m *Model) viewState() views.ViewState {
	return views.ViewState{
		Width:      m.state.Width,
		Height:     m.state.Height,
		Title:      appTitle,
		Source:     m.config.Source.Kind,
		Widget:     m.widget.View(),
		Selection:  m.state.Selection,
		Status:     m.state.StatusMessage,
		StatusKind: m.state.StatusKind,
		Help:       m.help.View(m.keys),
	}
}

// layout sizes the widget to the terminal and tells it where it is drawn
func (m *Model) layout() {
	width := m.config.Input.Width
	if m.state.Width > 0 && width > m.state.Width-2*views.MainPadLeft {
		width = m.state.Width - 2*views.MainPadLeft
	}
	m.widget.SetWidth(width)

	header := m.renderer.Header(views.ViewState{
		Width:  m.state.Width,
		Title:  appTitle,
		Source: m.config.Source.Kind,
	})
	m.widget.SetOrigin(views.MainPadLeft, views.MainPadTop+lipgloss.Height(header))
}

func (m *Model) quit() tea.Cmd {
	m.widget.Close()
	return tea.Quit
}

// saveConfig writes the running settings, flag overrides included
func (m *Model) saveConfig() tea.Cmd {
	if m.configSvc == nil {
		return m.events.Flash(views.StatusError, "No config file to save to")
	}
	svc := m.configSvc
	cfg := *m.config
	return func() tea.Msg {
		return configSavedMsg{path: svc.Path(), err: svc.Save(&cfg)}
	}
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent(m.keys)
	program := m.program
	ops := m.helpOps
	return func() tea.Msg {
		if program == nil {
			return helpPagerMsg{err: errNoProgram}
		}
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := ops.ShowHelpInPager(content)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}
