package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"shopgrip/internal/ui/input/types"
)

type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	keys := types.NormalKeys
	switch {
	case key.Matches(msg, keys.Force):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, keys.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
	case key.Matches(msg, keys.Help):
		return []types.Action{types.ShowHelpAction{}}, true
	case key.Matches(msg, keys.Cart):
		if !ctx.HasCart() {
			return nil, false
		}
		return []types.Action{types.ReloadCartAction{}}, true
	}
	return nil, false
}
