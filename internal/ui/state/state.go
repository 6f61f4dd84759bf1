package state

import (
	"typeahead/internal/ui/views"
)

// AppState contains the host's state outside the widget
type AppState struct {
	// Terminal
	Width       int
	Height      int
	Ready       bool // set once the first size is known
	InPagerMode bool // the help pager owns the terminal

	Selection string // last chosen suggestion, printed on exit

	// Status line
	StatusMessage string
	StatusKind    views.StatusKind
	statusID      uint64
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{}
}

// SetSize records the terminal size. It reports whether this was the
// first size, which is when the UI becomes ready.
func (s *AppState) SetSize(width, height int) bool {
	s.Width = width
	s.Height = height
	if s.Ready {
		return false
	}
	s.Ready = true
	return true
}

// Status line operations

// SetStatus replaces the status line and returns its id
func (s *AppState) SetStatus(kind views.StatusKind, text string) uint64 {
	s.statusID++
	s.StatusMessage = text
	s.StatusKind = kind
	return s.statusID
}

// ClearStatus clears the status line if it still shows message id
func (s *AppState) ClearStatus(id uint64) bool {
	if id != s.statusID {
		return false
	}
	s.StatusMessage = ""
	s.StatusKind = views.StatusInfo
	return true
}

// StatusID returns the id of the current status message
func (s *AppState) StatusID() uint64 {
	return s.statusID
}
