package state

import (
	"shopgrip/internal/domain"
	"shopgrip/internal/nav"
)

// AppState contains the main screen state. The popup's own state lives in
// the search service.
type AppState struct {
	// Store data
	Endpoint string
	Menu     []nav.Entry
	CartID   string

	// Cart state
	Cart        *domain.Cart
	CartErr     error
	CartLoading bool

	// Navigation state
	LastDestination string
	Navigations     int

	// UI state
	Width         int
	Height        int
	StatusMessage string // status bar message
	StatusIsError bool
	InPager       bool // ov has the terminal
}

// NewAppState creates a new application state
func NewAppState(endpoint, cartID string, menu nav.Menu) *AppState {
	return &AppState{
		Endpoint: endpoint,
		Menu:     menu.Flatten(),
		CartID:   cartID,
	}
}

// SetStatus replaces the status bar message
func (s *AppState) SetStatus(msg string, isError bool) {
	s.StatusMessage = msg
	s.StatusIsError = isError
}

// ClearStatus empties the status bar
func (s *AppState) ClearStatus() {
	s.SetStatus("", false)
}

// RecordNavigation notes a destination handed to the router
func (s *AppState) RecordNavigation(url string) {
	s.LastDestination = url
	s.Navigations++
}

// SetCart stores the outcome of a cart fetch. A failed reload keeps the
// previously loaded cart.
func (s *AppState) SetCart(cart *domain.Cart, err error) {
	s.CartLoading = false
	s.CartErr = err
	if err == nil {
		s.Cart = cart
	}
}
