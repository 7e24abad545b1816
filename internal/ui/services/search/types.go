package search

import (
	"time"

	"shopgrip/internal/domain"
)

// Phase is the lifecycle stage of the popup, derived from State
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDebouncing
	PhaseLoading
	PhaseSettled
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseDebouncing:
		return "debouncing"
	case PhaseLoading:
		return "loading"
	case PhaseSettled:
		return "settled"
	case PhaseErrored:
		return "errored"
	default:
		return "idle"
	}
}

// Key is a navigation key the popup reacts to
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyEnter
	KeyEscape
)

// Event is an input to Reduce
type Event interface {
	isEvent()
}

type Opened struct{}

type Closed struct{}

// QueryChanged carries the raw text of the input field
type QueryChanged struct {
	Raw string
}

type DebounceElapsed struct {
	Gen uint64
}

type LoaderDelayElapsed struct {
	Gen uint64
}

type ResultsReceived struct {
	Gen     uint64
	Results domain.ResultSet
}

type RequestFailed struct {
	Gen uint64
	Err error
}

type KeyPressed struct {
	Key Key
}

func (Opened) isEvent()             {}
func (Closed) isEvent()             {}
func (QueryChanged) isEvent()       {}
func (DebounceElapsed) isEvent()    {}
func (LoaderDelayElapsed) isEvent() {}
func (ResultsReceived) isEvent()    {}
func (RequestFailed) isEvent()      {}
func (KeyPressed) isEvent()         {}

// Effect is an instruction returned by Reduce for the runtime to carry out
type Effect interface {
	isEffect()
}

type ScheduleDebounce struct {
	Gen   uint64
	After time.Duration
}

type IssueRequest struct {
	Gen   uint64
	Query string
}

type ScheduleLoader struct {
	Gen   uint64
	After time.Duration
}

type Navigate struct {
	URL string
}

type ClosePopup struct{}

type ScrollIntoView struct {
	Index int
}

func (ScheduleDebounce) isEffect() {}
func (IssueRequest) isEffect()     {}
func (ScheduleLoader) isEffect()   {}
func (Navigate) isEffect()         {}
func (ClosePopup) isEffect()       {}
func (ScrollIntoView) isEffect()   {}

// Settings tunes timing and the full search page fallback
type Settings struct {
	Debounce       time.Duration
	LoaderDelay    time.Duration
	SearchPagePath string
}

// DefaultSettings returns the stock timings
func DefaultSettings() Settings {
	return Settings{
		Debounce:       250 * time.Millisecond,
		LoaderDelay:    300 * time.Millisecond,
		SearchPagePath: "/search",
	}
}
