// Package nav hands destinations to the host router and keeps the store menu.
package nav

import (
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"

	"shopgrip/internal/eventbus"
	"shopgrip/internal/logging"
)

// ErrEmptyDestination is returned when asked to navigate nowhere
var ErrEmptyDestination = errors.New("nav: empty destination")

// Router performs client-side navigation to a store URL
type Router interface {
	Navigate(url string) error
}

// BusRouter records destinations and announces them on the event bus
type BusRouter struct {
	base    string
	bus     eventbus.EventBus
	history *History
	logger  *zap.Logger
}

// NewBusRouter creates a router rooted at the storefront base URL. bus and history may be nil.
func NewBusRouter(base string, bus eventbus.EventBus, history *History, logger *zap.Logger) *BusRouter {
	return &BusRouter{
		base:    base,
		bus:     bus,
		history: history,
		logger:  logging.OrNop(logger).Named("nav"),
	}
}

// Navigate resolves url against the store and publishes it
func (r *BusRouter) Navigate(url string) error {
	url = strings.TrimSpace(url)
	if url == "" {
		return ErrEmptyDestination
	}
	dest := Resolve(r.base, url)

	r.logger.Info("navigate", zap.String("url", dest))
	if r.history != nil {
		r.history.Push(dest)
	}
	if r.bus != nil {
		r.bus.Publish(eventbus.NavigationRequestedEvent{URL: dest})
	}
	return nil
}

// History is a bounded, most-recent-last list of visited destinations
type History struct {
	mu      sync.RWMutex
	entries []string
	limit   int
}

// NewHistory keeps at most limit entries; limit <= 0 means 50
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 50
	}
	return &History{limit: limit}
}

// Push appends a destination, evicting the oldest entry when full
func (h *History) Push(url string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries, url)
	if over := len(h.entries) - h.limit; over > 0 {
		h.entries = append(h.entries[:0:0], h.entries[over:]...)
	}
}

// Last returns the most recent destination
func (h *History) Last() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.entries) == 0 {
		return "", false
	}
	return h.entries[len(h.entries)-1], true
}

// Entries returns a copy of the history, oldest first
func (h *History) Entries() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
