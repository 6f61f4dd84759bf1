// Package typeahead implements a search-suggestion input for Bubble Tea.
//
// The widget owns the query text, the suggestion list and the dropdown.
// Typing schedules a debounced lookup against a Source; results arrive as
// messages and are applied only if they belong to the latest lookup.
package typeahead

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	defaultWidth      = 48
	defaultMaxVisible = 7
	defaultDebounce   = 300 * time.Millisecond
	minWidth          = 10
)

// Source delivers an ordered list of display strings for a query
type Source interface {
	Lookup(ctx context.Context, query string) ([]string, error)
}

// Options configures a Model
type Options struct {
	Placeholder   string
	InitialQuery  string
	OnSelect      func(value string)
	Width         int           // cells used by the field and the dropdown
	MaxVisible    int           // suggestion rows shown at once
	Debounce      time.Duration // quiet period before a lookup is sent
	LookupTimeout time.Duration // 0 leaves timing to the source
	KeyMap        *KeyMap
	Styles        *Styles
}

// Model is the typeahead widget
type Model struct {
	src    Source
	opts   Options
	keys   KeyMap
	styles Styles
	input  textinput.Model

	suggestions []string
	loading     bool
	open        bool
	active      int
	offset      int // first visible suggestion
	err         error

	// debounce handle: each text change supersedes the previous tick
	debounceID uint64
	debouncing bool

	// in-flight lookup
	requestSeq uint64
	cancel     context.CancelFunc

	state   State
	closed  bool
	originX int
	originY int
}

// New creates a widget reading suggestions from src
func New(src Source, opts Options) *Model {
	if opts.Width < minWidth {
		opts.Width = defaultWidth
	}
	if opts.MaxVisible < 1 {
		opts.MaxVisible = defaultMaxVisible
	}
	if opts.Debounce <= 0 {
		opts.Debounce = defaultDebounce
	}

	keys := DefaultKeyMap()
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	styles := DefaultStyles()
	if opts.Styles != nil {
		styles = *opts.Styles
	}

	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 256
	ti.PromptStyle = styles.Prompt
	ti.PlaceholderStyle = styles.Placeholder
	ti.SetValue(opts.InitialQuery)

	m := &Model{
		src:         src,
		opts:        opts,
		keys:        keys,
		styles:      styles,
		input:       ti,
		suggestions: []string{},
		active:      -1,
	}
	m.SetWidth(opts.Width)
	return m
}

// Init implements the Bubble Tea component contract
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles key, mouse and lookup messages
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case debounceMsg:
		cmd = m.handleDebounce(msg)

	case resultsMsg:
		cmd = m.handleResults(msg)

	case tea.KeyMsg:
		if m.closed || !m.input.Focused() {
			return m, nil
		}
		cmd = m.handleKey(msg)

	case tea.MouseMsg:
		if m.closed {
			return m, nil
		}
		cmd = m.handleMouse(msg)

	default:
		// Cursor blinks and similar belong to the text input
		m.input, cmd = m.input.Update(msg)
	}

	m.syncState()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.moveDown()
		return nil

	case key.Matches(msg, m.keys.Up):
		m.moveUp()
		return nil

	case key.Matches(msg, m.keys.Select):
		if m.active < 0 || m.active >= len(m.suggestions) {
			return nil
		}
		return m.selectItem(m.suggestions[m.active], "keyboard")

	case key.Matches(msg, m.keys.Close):
		m.closeDropdown()
		return nil

	case key.Matches(msg, m.keys.Clear):
		return m.clear()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		return tea.Batch(cmd, m.scheduleLookup(after))
	}
	return cmd
}

// moveDown advances the active index, wrapping to the first suggestion
func (m *Model) moveDown() {
	// the list is hidden behind the loading line
	if !m.open || m.loading {
		return
	}
	n := len(m.suggestions)
	if n == 0 {
		m.active = -1
		return
	}
	m.active = (m.active + 1) % n
	m.ensureVisible()
}

// moveUp moves the active index back, wrapping to the last suggestion.
// From -1 it lands on the last suggestion, mirroring moveDown.
func (m *Model) moveUp() {
	if !m.open || m.loading {
		return
	}
	n := len(m.suggestions)
	if n == 0 {
		m.active = -1
		return
	}
	if m.active <= 0 {
		m.active = n - 1
	} else {
		m.active--
	}
	m.ensureVisible()
}

func (m *Model) ensureVisible() {
	if m.active < 0 {
		return
	}
	if m.active < m.offset {
		m.offset = m.active
	}
	if m.active >= m.offset+m.opts.MaxVisible {
		m.offset = m.active - m.opts.MaxVisible + 1
	}
}

func (m *Model) closeDropdown() {
	m.open = false
	m.active = -1
	m.offset = 0
}

// scheduleLookup starts a new quiet period for query. Earlier ticks become
// stale because their id no longer matches.
func (m *Model) scheduleLookup(query string) tea.Cmd {
	m.debounceID++
	m.debouncing = true
	id := m.debounceID
	return tea.Tick(m.opts.Debounce, func(time.Time) tea.Msg {
		return debounceMsg{id: id, query: query}
	})
}

func (m *Model) handleDebounce(msg debounceMsg) tea.Cmd {
	if m.closed || msg.id != m.debounceID {
		return nil
	}
	m.debouncing = false
	return m.dispatch(msg.query)
}

// dispatch sends the lookup for query, cancelling the one in flight
func (m *Model) dispatch(query string) tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}

	var ctx context.Context
	if m.opts.LookupTimeout > 0 {
		ctx, m.cancel = context.WithTimeout(context.Background(), m.opts.LookupTimeout)
	} else {
		ctx, m.cancel = context.WithCancel(context.Background())
	}
	m.requestSeq++
	seq := m.requestSeq

	m.loading = true
	m.open = true
	m.err = nil
	// The list is hidden behind the loading line until results arrive
	m.active = -1

	log.Debug("lookup dispatched", "query", query, "seq", seq)

	src := m.src
	started := time.Now()
	return func() tea.Msg {
		items, err := src.Lookup(ctx, query)
		return resultsMsg{
			seq:     seq,
			query:   query,
			items:   items,
			err:     err,
			elapsed: time.Since(started),
		}
	}
}

func (m *Model) handleResults(msg resultsMsg) tea.Cmd {
	if m.closed || msg.seq != m.requestSeq {
		log.Debug("dropping stale lookup", "query", msg.query, "seq", msg.seq, "latest", m.requestSeq)
		return nil
	}

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.loading = false
	m.active = -1
	m.offset = 0

	if msg.err != nil {
		log.Warn("lookup failed", "query", msg.query, "err", msg.err)
		m.err = msg.err
		m.suggestions = []string{}
		m.open = false
		return notify(LookupFailedMsg{Query: msg.query, Err: msg.err})
	}

	// Copied so later changes by the source cannot leak in
	m.suggestions = append(make([]string, 0, len(msg.items)), msg.items...)
	log.Debug("lookup applied", "query", msg.query, "seq", msg.seq, "results", len(msg.items), "elapsed", msg.elapsed)

	return notify(LookupAppliedMsg{
		Query:   msg.query,
		Seq:     msg.seq,
		Results: len(m.suggestions),
		Elapsed: msg.elapsed,
	})
}

// invalidate drops any pending tick and any in-flight lookup
func (m *Model) invalidate() {
	m.debounceID++
	m.debouncing = false
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.requestSeq++
	m.loading = false
}

func (m *Model) selectItem(value, via string) tea.Cmd {
	previous := m.input.Value()
	m.input.SetValue(value)
	m.input.CursorEnd()
	m.closeDropdown()
	m.invalidate()

	log.Debug("suggestion selected", "value", value, "via", via)
	if m.opts.OnSelect != nil {
		m.opts.OnSelect(value)
	}
	return notify(SelectedMsg{Value: value, Query: previous, Via: via})
}

func (m *Model) clear() tea.Cmd {
	m.input.SetValue("")
	m.suggestions = []string{}
	m.err = nil
	m.closeDropdown()
	m.invalidate()
	return tea.Batch(m.input.Focus(), notify(ClearedMsg{}))
}

// Clear empties the field and the suggestion list, closes the dropdown and
// focuses the field
func (m *Model) Clear() tea.Cmd {
	if m.closed {
		return nil
	}
	cmd := m.clear()
	m.syncState()
	return cmd
}

// Focus focuses the field. When the dropdown is closed the text is reset
// and a lookup for the empty query is scheduled, so every suggestion shows.
func (m *Model) Focus() tea.Cmd {
	if m.closed {
		return nil
	}
	cmd := m.input.Focus()
	if m.open {
		return cmd
	}

	m.input.SetValue("")
	cmd = tea.Batch(cmd, m.scheduleLookup(""))
	m.syncState()
	return cmd
}

// SetValue replaces the query text as if it had been typed, scheduling a
// lookup for it
func (m *Model) SetValue(value string) tea.Cmd {
	if m.closed {
		return nil
	}
	m.input.SetValue(value)
	m.input.CursorEnd()
	cmd := m.scheduleLookup(m.input.Value())
	m.syncState()
	return cmd
}

// SetCursorMode sets how the field cursor is drawn
func (m *Model) SetCursorMode(mode cursor.Mode) tea.Cmd {
	return m.input.Cursor.SetMode(mode)
}

// Blur stops the field from taking keys. The dropdown is left as is.
func (m *Model) Blur() {
	m.input.Blur()
}

// Close tears the widget down: the pending tick and the in-flight lookup
// are cancelled and later lookup messages are ignored
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.invalidate()
	m.input.Blur()
	m.closed = true
	m.syncState()
}

// SetWidth sets the width of the field and dropdown in cells
func (m *Model) SetWidth(width int) {
	if width < minWidth {
		width = minWidth
	}
	m.opts.Width = width
	// Room for the prompt, the cursor cell and the clear affordance
	m.input.Width = width - 2 - lipgloss.Width(m.input.Prompt) - 1
}

// SetOrigin tells the widget where its top-left cell is on screen, for
// mouse hit-testing
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

func (m *Model) deriveState() State {
	switch {
	case m.closed:
		return StateIdle
	case m.debouncing:
		return StateDebouncing
	case m.loading:
		return StateLoading
	case m.open && len(m.suggestions) > 0:
		return StateShowingResults
	case m.open:
		return StateShowingEmpty
	default:
		return StateIdle
	}
}

func (m *Model) syncState() {
	next := m.deriveState()
	if next != m.state {
		log.Debug("typeahead state", "from", m.state, "to", next)
		m.state = next
	}
}

// Value returns the query text
func (m *Model) Value() string { return m.input.Value() }

// Suggestions returns a copy of the current suggestion list
func (m *Model) Suggestions() []string {
	return append([]string(nil), m.suggestions...)
}

// Loading reports whether a lookup is in flight
func (m *Model) Loading() bool { return m.loading }

// Open reports whether the dropdown is shown
func (m *Model) Open() bool { return m.open }

// ActiveIndex returns the highlighted suggestion, or -1
func (m *Model) ActiveIndex() int { return m.active }

// State returns the lookup-cycle state
func (m *Model) State() State { return m.state }

// Err returns the error of the last failed lookup
func (m *Model) Err() error { return m.err }

// Focused reports whether the field takes keys
func (m *Model) Focused() bool { return m.input.Focused() }

// KeyMap returns the active bindings, for help rendering
func (m *Model) KeyMap() KeyMap { return m.keys }
