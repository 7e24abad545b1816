package search

import (
	"strings"

	"shopgrip/internal/domain"
	"shopgrip/internal/ui/services/selection"
)

// Reduce applies ev to s and returns the next state together with the effects
// the runtime must perform. It never blocks and never touches the outside world.
func Reduce(s State, ev Event) (State, []Effect) {
	switch e := ev.(type) {
	case Opened:
		if s.open {
			return s, nil
		}
		return s.reset(true), nil

	case Closed:
		if !s.open {
			return s, nil
		}
		return s.reset(false), nil

	case QueryChanged:
		if !s.open || e.Raw == s.raw {
			return s, nil
		}
		s.raw = e.Raw
		s.cursor = s.cursor.Reset(s.results.Len())
		gen := s.debounce.Push(e.Raw)
		return s, []Effect{ScheduleDebounce{Gen: gen, After: s.settings.Debounce}}

	case DebounceElapsed:
		if !s.open {
			return s, nil
		}
		value, ok := s.debounce.Elapsed(e.Gen)
		if !ok {
			return s, nil
		}
		return s.commit(value)

	case LoaderDelayElapsed:
		if !s.current(e.Gen) {
			return s, nil
		}
		s.showLoader = true
		return s, nil

	case ResultsReceived:
		if !s.current(e.Gen) {
			return s, nil
		}
		s.inFlight = false
		s.showLoader = false
		s.failed = false
		s.err = nil
		s.results = e.Results
		s.cursor = selection.NewCursor(e.Results.Len())
		return s, nil

	case RequestFailed:
		if !s.current(e.Gen) {
			return s, nil
		}
		s.inFlight = false
		s.showLoader = false
		s.failed = true
		s.err = e.Err
		s.results = domain.ResultSet{}
		s.cursor = selection.NewCursor(0)
		return s, nil

	case KeyPressed:
		if !s.open {
			return s, nil
		}
		return s.key(e.Key)
	}
	return s, nil
}

// current reports whether a response or loader timer for gen still matters
func (s State) current(gen uint64) bool {
	return s.open && s.inFlight && gen == s.requestGen
}

func (s State) commit(value string) (State, []Effect) {
	if value == s.committed {
		return s, nil
	}
	s.committed = value
	s.cursor = s.cursor.Reset(s.results.Len())

	// a new commit supersedes whatever is still in flight
	s.requestGen++
	s.showLoader = false
	s.failed = false
	s.err = nil

	query := strings.TrimSpace(value)
	if query == "" {
		s.inFlight = false
		s.results = domain.ResultSet{}
		s.cursor = selection.NewCursor(0)
		return s, nil
	}

	s.inFlight = true
	return s, []Effect{
		IssueRequest{Gen: s.requestGen, Query: query},
		ScheduleLoader{Gen: s.requestGen, After: s.settings.LoaderDelay},
	}
}

func (s State) key(k Key) (State, []Effect) {
	switch k {
	case KeyDown, KeyUp:
		prev := s.cursor.Index()
		if k == KeyDown {
			s.cursor = s.cursor.Down()
		} else {
			s.cursor = s.cursor.Up()
		}
		idx := s.cursor.Index()
		if idx == prev || idx == selection.None {
			return s, nil
		}
		return s, []Effect{ScrollIntoView{Index: idx}}

	case KeyEnter:
		target := s.enterTarget()
		if target == "" {
			return s, nil
		}
		return s.reset(false), []Effect{Navigate{URL: target}, ClosePopup{}}

	case KeyEscape:
		return s.reset(false), []Effect{ClosePopup{}}
	}
	return s, nil
}

// enterTarget resolves where Enter goes: the highlighted item, else the full
// search page for the typed text, else nowhere.
func (s State) enterTarget() string {
	query := strings.TrimSpace(s.raw)
	if item, ok := s.Selected(); ok {
		if item.URL != "" {
			return item.URL
		}
		if query == "" {
			query = item.Title
		}
	}
	if query == "" {
		return ""
	}
	return SearchPageURL(s.settings.SearchPagePath, query)
}
