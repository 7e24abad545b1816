package search

import (
	"go.uber.org/zap"

	"shopgrip/internal/eventbus"
	"shopgrip/internal/logging"
)

// Service owns the popup search state and announces lifecycle changes on the bus.
// It is not safe for concurrent use; the UI loop is the only caller.
type Service struct {
	state  State
	bus    eventbus.EventBus
	logger *zap.Logger
}

// NewService creates a closed popup. bus may be nil.
func NewService(settings Settings, bus eventbus.EventBus, logger *zap.Logger) *Service {
	return &Service{
		state:  NewState(settings),
		bus:    bus,
		logger: logging.OrNop(logger).Named("search"),
	}
}

// State returns the current state
func (s *Service) State() State {
	return s.state
}

// Dispatch feeds ev through Reduce and returns the resulting effects
func (s *Service) Dispatch(ev Event) []Effect {
	prev := s.state
	next, effects := Reduce(prev, ev)
	s.state = next

	if prev.Phase() != next.Phase() {
		s.logger.Debug("phase",
			zap.Stringer("from", prev.Phase()),
			zap.Stringer("to", next.Phase()),
			zap.Uint64("request_gen", next.requestGen))
	}
	s.announce(prev, next, ev, effects)
	return effects
}

func (s *Service) announce(prev, next State, ev Event, effects []Effect) {
	if s.bus == nil {
		return
	}

	if !prev.open && next.open {
		s.bus.Publish(eventbus.PopupOpenedEvent{})
	}

	navigated := false
	for _, eff := range effects {
		switch e := eff.(type) {
		case IssueRequest:
			s.bus.Publish(eventbus.SearchCommittedEvent{Query: e.Query})
		case Navigate:
			navigated = true
		}
	}

	// a response was accepted when the in-flight flag drops without a new commit
	if prev.inFlight && !next.inFlight && next.open && prev.requestGen == next.requestGen {
		switch e := ev.(type) {
		case ResultsReceived:
			s.bus.Publish(eventbus.SearchSettledEvent{Query: prev.Term(), Count: e.Results.Len()})
		case RequestFailed:
			s.logger.Warn("predictive search failed", zap.String("query", prev.Term()), zap.Error(e.Err))
			s.bus.Publish(eventbus.SearchFailedEvent{Query: prev.Term(), Err: e.Err})
		}
	}

	if prev.open && !next.open {
		s.bus.Publish(eventbus.PopupClosedEvent{Navigated: navigated})
	}
}
