package typeahead

// State is the widget's position in the lookup cycle.
//
//	Idle ──text change / focus──▶ Debouncing ──quiet period──▶ Loading
//	Loading ──results──▶ ShowingResults | ShowingEmpty
//	Loading ──error / timeout──▶ Idle
//	any ──text change──▶ Debouncing
//	any ──esc / select / outside click / clear──▶ Idle (or Debouncing/Loading
//	      if a lookup is still pending)
type State int

const (
	StateIdle State = iota
	StateDebouncing
	StateLoading
	StateShowingResults
	StateShowingEmpty
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDebouncing:
		return "debouncing"
	case StateLoading:
		return "loading"
	case StateShowingResults:
		return "showing-results"
	case StateShowingEmpty:
		return "showing-empty"
	default:
		return "unknown"
	}
}
