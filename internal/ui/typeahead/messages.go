package typeahead

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// debounceMsg fires when a quiet period ends. Only the tick whose id is the
// latest issued dispatches a lookup.
type debounceMsg struct {
	id    uint64
	query string
}

// resultsMsg carries the outcome of a dispatched lookup
type resultsMsg struct {
	seq     uint64
	query   string
	items   []string
	err     error
	elapsed time.Duration
}

// SelectedMsg is emitted when a suggestion is chosen
type SelectedMsg struct {
	Value string
	Query string // field text before the selection replaced it
	Via   string // "keyboard" or "mouse"
}

// ClearedMsg is emitted after the clear action
type ClearedMsg struct{}

// LookupAppliedMsg is emitted when a lookup's results replace the list
type LookupAppliedMsg struct {
	Query   string
	Seq     uint64
	Results int
	Elapsed time.Duration
}

// LookupFailedMsg is emitted when the current lookup fails or times out
type LookupFailedMsg struct {
	Query string
	Err   error
}

func notify(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
