package search

import (
	"net/url"
	"strings"

	"shopgrip/internal/domain"
	"shopgrip/internal/ui/services/selection"
)

// State is the complete popup search state. It is a value type; Reduce
// returns a new State for every event.
type State struct {
	settings Settings

	open      bool
	raw       string
	committed string

	debounce   Debouncer
	requestGen uint64
	inFlight   bool
	showLoader bool
	failed     bool
	err        error

	results domain.ResultSet
	cursor  selection.Cursor
}

// NewState returns a closed popup
func NewState(settings Settings) State {
	return State{settings: settings, cursor: selection.NewCursor(0)}
}

func (s State) Settings() Settings { return s.settings }
func (s State) Open() bool { return s.open }
func (s State) Raw() string { return s.raw }
func (s State) Committed() string { return s.committed }
func (s State) Results() domain.ResultSet { return s.results }
func (s State) Cursor() selection.Cursor { return s.cursor }
func (s State) ShowLoader() bool { return s.showLoader }
func (s State) Loading() bool { return s.inFlight }
func (s State) Err() error { return s.err }
func (s State) RequestGen() uint64 { return s.requestGen }
func (s State) DebounceGen() uint64 { return s.debounce.Gen() }
func (s State) ActiveDescendant() string { return s.cursor.ActiveDescendant() }

// Term is the trimmed committed query used for display and highlighting
func (s State) Term() string {
	return strings.TrimSpace(s.committed)
}

// Selected returns the highlighted result, if any
func (s State) Selected() (domain.ResultItem, bool) {
	return s.results.At(s.cursor.Index())
}

// HasResults reports whether the current result set has any items
func (s State) HasResults() bool {
	return !s.results.IsEmpty()
}

// Phase derives the lifecycle stage
func (s State) Phase() Phase {
	switch {
	case !s.open:
		return PhaseIdle
	case s.debounce.Pending():
		return PhaseDebouncing
	case s.inFlight:
		return PhaseLoading
	case s.failed:
		return PhaseErrored
	case s.Term() != "":
		return PhaseSettled
	default:
		return PhaseIdle
	}
}

// SearchPageURL builds the full search page link for term
func SearchPageURL(path, term string) string {
	if path == "" {
		path = "/search"
	}
	return path + "?q=" + url.QueryEscape(term)
}

// reset clears everything but the settings and the generation counters,
// which keep increasing so timers and responses from an earlier session are
// never mistaken for current ones.
func (s State) reset(open bool) State {
	s.debounce.Cancel()
	return State{
		settings:   s.settings,
		open:       open,
		debounce:   s.debounce,
		requestGen: s.requestGen + 1,
		cursor:     selection.NewCursor(0),
	}
}
