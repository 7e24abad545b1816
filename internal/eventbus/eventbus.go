package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"shopgrip/internal/domain"
	"shopgrip/internal/logging"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPopupOpened         = domain.EventPopupOpened
	EventPopupClosed         = domain.EventPopupClosed
	EventSearchCommitted     = domain.EventSearchCommitted
	EventSearchSettled       = domain.EventSearchSettled
	EventSearchFailed        = domain.EventSearchFailed
	EventNavigationRequested = domain.EventNavigationRequested
	EventCartLoaded          = domain.EventCartLoaded
	EventError               = domain.EventError
	EventConfigLoaded        = domain.EventConfigLoaded
)

// Re-export domain event types
type PopupOpenedEvent = domain.PopupOpenedEvent
type PopupClosedEvent = domain.PopupClosedEvent
type SearchCommittedEvent = domain.SearchCommittedEvent
type SearchSettledEvent = domain.SearchSettledEvent
type SearchFailedEvent = domain.SearchFailedEvent
type NavigationRequestedEvent = domain.NavigationRequestedEvent
type CartLoadedEvent = domain.CartLoadedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup // dispatcher
	inflight  sync.WaitGroup // handler goroutines
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus
func New(logger *zap.Logger) EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logging.OrNop(logger).Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	b.logger.Debug("publishing event", zap.String("type", string(event.Type())))

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher and waits for running handlers
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
		b.inflight.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Drain remaining events
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.RUnlock()

	for _, s := range subs {
		b.inflight.Add(1)
		go func(h EventHandler) {
			defer b.inflight.Done()
			defer func() {
				if r := recover(); r != nil {
					b.logger.Error("event handler panic",
						zap.String("type", string(event.Type())),
						zap.Any("panic", r),
						zap.ByteString("stack", debug.Stack()))
				}
			}()
			h(event)
		}(s.handler)
	}
}
