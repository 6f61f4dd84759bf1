package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"typeahead/internal/domain"
	"typeahead/internal/eventbus"
	"typeahead/internal/ui/state"
	"typeahead/internal/ui/typeahead"
	"typeahead/internal/ui/views"
)

// StatusFlashPeriod is how long flashed status messages stay up
const StatusFlashPeriod = 3 * time.Second

// ClearStatusMsg clears the status line if it still shows message ID
type ClearStatusMsg struct {
	ID uint64
}

// EventHandler turns widget outcomes and domain events into state changes
type EventHandler struct {
	state *state.AppState
	bus   eventbus.EventBus
	now   func() time.Time
}

// NewEventHandler creates a new event handler. bus may be nil.
func NewEventHandler(appState *state.AppState, bus eventbus.EventBus) *EventHandler {
	return &EventHandler{
		state: appState,
		bus:   bus,
		now:   time.Now,
	}
}

// HandleWidgetMsg records a widget outcome and publishes the matching
// domain event. It reports whether msg was a widget outcome.
func (h *EventHandler) HandleWidgetMsg(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case typeahead.SelectedMsg:
		h.state.Selection = msg.Value
		h.Publish(eventbus.SuggestionSelectedEvent{Selection: domain.Selection{
			Value: msg.Value,
			Query: msg.Query,
			Via:   msg.Via,
			At:    h.now(),
		}})
		h.state.SetStatus(views.StatusSuccess, fmt.Sprintf("Chose %q", msg.Value))

	case typeahead.ClearedMsg:
		h.Publish(eventbus.QueryClearedEvent{})
		h.state.SetStatus(views.StatusInfo, "")

	case typeahead.LookupAppliedMsg:
		lookup := domain.Lookup{
			Query:    msg.Query,
			Seq:      msg.Seq,
			Results:  msg.Results,
			Duration: msg.Elapsed,
		}
		h.Publish(eventbus.LookupCompletedEvent{Lookup: lookup})
		h.state.SetStatus(views.StatusLoading, LookupSummary(lookup))

	case typeahead.LookupFailedMsg:
		h.Publish(eventbus.LookupFailedEvent{Query: msg.Query, Err: msg.Err})
		h.state.SetStatus(views.StatusError, fmt.Sprintf("Lookup for %q failed", msg.Query))

	default:
		return false
	}
	return true
}

// HandleEvent processes domain events forwarded from the bus
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ConfigSavedEvent:
		return h.Flash(views.StatusSuccess, fmt.Sprintf("Saved settings to %s", e.Path))
	default:
		log.Debug("ignoring event", "type", event.Type())
		return nil
	}
}

// Flash shows text and clears it after StatusFlashPeriod
func (h *EventHandler) Flash(kind views.StatusKind, text string) tea.Cmd {
	id := h.state.SetStatus(kind, text)
	return tea.Tick(StatusFlashPeriod, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

// Publish sends event on the bus, if there is one
func (h *EventHandler) Publish(event eventbus.DomainEvent) {
	if h.bus != nil {
		h.bus.Publish(event)
	}
}

// LookupSummary describes an applied lookup for the status line
func LookupSummary(lookup domain.Lookup) string {
	noun := "suggestions"
	if lookup.Results == 1 {
		noun = "suggestion"
	}
	return fmt.Sprintf("%d %s for %q in %s", lookup.Results, noun, lookup.Query, lookup.Duration.Round(time.Millisecond))
}
