package types

import "github.com/charmbracelet/bubbles/key"

// NormalKeyMap holds the main screen bindings
type NormalKeyMap struct {
	Search key.Binding
	Cart   key.Binding
	Help   key.Binding
	Quit   key.Binding
	Force  key.Binding
}

// SearchKeyMap holds the bindings the popup recognizes
type SearchKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
	Force  key.Binding
}

var NormalKeys = NormalKeyMap{
	Search: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Cart:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload cart")),
	Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Force:  key.NewBinding(key.WithKeys("ctrl+c")),
}

var SearchKeys = SearchKeyMap{
	Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous")),
	Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next")),
	Enter:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	Force:  key.NewBinding(key.WithKeys("ctrl+c")),
}

// ShortHelp implements help.KeyMap
func (k NormalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Cart, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k NormalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ShortHelp implements help.KeyMap
func (k SearchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Enter, k.Escape}
}

// FullHelp implements help.KeyMap
func (k SearchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
