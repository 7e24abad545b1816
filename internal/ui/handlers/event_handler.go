package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/eventbus"
	"shopgrip/internal/ui/state"
)

// StatusTimeout is how long a status message stays on screen
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status bar once it is the latest status
type ClearStatusMsg struct {
	Seq int
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
	seq   int
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.NavigationRequestedEvent:
		h.state.RecordNavigation(e.URL)
		return h.status(fmt.Sprintf("Opened %s", e.URL), false)

	case eventbus.SearchFailedEvent:
		// the popup shows its own no-results text; the status bar carries the cause
		return h.status(fmt.Sprintf("Search for %q failed: %v", e.Query, e.Err), true)

	case eventbus.CartLoadedEvent:
		if e.Cart != nil {
			return h.status(fmt.Sprintf("Cart updated (%d items)", e.Cart.TotalQuantity), false)
		}

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return h.status("Error: "+msg, true)
	}

	return nil
}

// ClearStatus empties the status bar unless a newer message replaced it
func (h *EventHandler) ClearStatus(msg ClearStatusMsg) {
	if msg.Seq == h.seq {
		h.state.ClearStatus()
	}
}

func (h *EventHandler) status(msg string, isError bool) tea.Cmd {
	h.seq++
	h.state.SetStatus(msg, isError)
	seq := h.seq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{Seq: seq} })
}
