package types

import "shopgrip/internal/ui/services/search"

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// OpenPopupAction opens the predictive search popup
type OpenPopupAction struct{}

func (a OpenPopupAction) Type() string { return "open_popup" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

// SearchKeyAction forwards one of the popup's navigation keys to the controller
type SearchKeyAction struct {
	Key search.Key
}

func (a SearchKeyAction) Type() string { return "search_key" }

type ShowHelpAction struct{}

func (a ShowHelpAction) Type() string { return "show_help" }

type ReloadCartAction struct{}

func (a ReloadCartAction) Type() string { return "reload_cart" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
