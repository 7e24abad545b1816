package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPopupOpened         EventType = "PopupOpened"
	EventPopupClosed         EventType = "PopupClosed"
	EventSearchCommitted     EventType = "SearchCommitted"
	EventSearchSettled       EventType = "SearchSettled"
	EventSearchFailed        EventType = "SearchFailed"
	EventNavigationRequested EventType = "NavigationRequested"
	EventCartLoaded          EventType = "CartLoaded"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PopupOpenedEvent is emitted when the search popup opens
type PopupOpenedEvent struct{}

func (e PopupOpenedEvent) Type() EventType { return EventPopupOpened }

// PopupClosedEvent is emitted when the search popup closes
type PopupClosedEvent struct {
	Navigated bool // true when the close followed a navigation
}

func (e PopupClosedEvent) Type() EventType { return EventPopupClosed }

// SearchCommittedEvent is emitted when a debounced query is committed
type SearchCommittedEvent struct {
	Query string
}

func (e SearchCommittedEvent) Type() EventType { return EventSearchCommitted }

// SearchSettledEvent is emitted when the latest request resolves
type SearchSettledEvent struct {
	Query string
	Count int
}

func (e SearchSettledEvent) Type() EventType { return EventSearchSettled }

// SearchFailedEvent is emitted when the latest request fails
type SearchFailedEvent struct {
	Query string
	Err   error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// NavigationRequestedEvent is emitted when a destination is handed to the router
type NavigationRequestedEvent struct {
	URL string
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// CartLoadedEvent is emitted when the cart has been fetched
type CartLoadedEvent struct {
	Cart *Cart
}

func (e CartLoadedEvent) Type() EventType { return EventCartLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }
