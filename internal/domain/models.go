package domain

import "time"

// Lookup describes one applied suggestion lookup
type Lookup struct {
	Query    string
	Seq      uint64 // request sequence number within the widget
	Results  int
	Duration time.Duration
}

// Selection is a suggestion chosen by the user
type Selection struct {
	Value string
	Query string // text in the field before the selection replaced it
	Via   string // "keyboard" or "mouse"
	At    time.Time
}
