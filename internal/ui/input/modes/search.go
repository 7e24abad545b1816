package modes

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/ui/input/types"
	"shopgrip/internal/ui/services/search"
)

// SearchMode drives the predictive search popup. Only the arrow keys, Enter
// and Escape are intercepted; everything else edits the query.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}

func (m *SearchMode) Enter(ctx types.Context) []types.Action {
	m.TextInputMode.Enter(ctx)
	return []types.Action{types.OpenPopupAction{}}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.SearchKeys
	switch {
	case key.Matches(msg, keys.Up):
		return []types.Action{types.SearchKeyAction{Key: search.KeyUp}}, true
	case key.Matches(msg, keys.Down):
		return []types.Action{types.SearchKeyAction{Key: search.KeyDown}}, true
	case key.Matches(msg, keys.Enter):
		return []types.Action{types.SearchKeyAction{Key: search.KeyEnter}}, true
	case key.Matches(msg, keys.Escape):
		return []types.Action{types.SearchKeyAction{Key: search.KeyEscape}}, true
	}
	return m.TextInputMode.HandleKey(msg, ctx)
}
