package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventLookupCompleted    EventType = "LookupCompleted"
	EventLookupFailed       EventType = "LookupFailed"
	EventSuggestionSelected EventType = "SuggestionSelected"
	EventQueryCleared       EventType = "QueryCleared"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
	EventAppReady           EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LookupCompletedEvent is emitted when a lookup's results were applied
type LookupCompletedEvent struct {
	Lookup Lookup
}

func (e LookupCompletedEvent) Type() EventType { return EventLookupCompleted }

// LookupFailedEvent is emitted when the current lookup returned an error
type LookupFailedEvent struct {
	Query string
	Err   error
}

func (e LookupFailedEvent) Type() EventType { return EventLookupFailed }

// SuggestionSelectedEvent is emitted when the user picks a suggestion
type SuggestionSelectedEvent struct {
	Selection Selection
}

func (e SuggestionSelectedEvent) Type() EventType { return EventSuggestionSelected }

// QueryClearedEvent is emitted when the clear action empties the field
type QueryClearedEvent struct{}

func (e QueryClearedEvent) Type() EventType { return EventQueryCleared }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	SourceKind string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted once the UI has started
type AppReadyEvent struct {
	StartedAt time.Time
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
