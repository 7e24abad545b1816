package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopgrip/internal/ui/input/types"
	"shopgrip/internal/ui/services/search"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestSlashOpensSearch(t *testing.T) {
	h := New()
	actions, _ := h.HandleKey(runes("/"), &ModelContext{})

	assert.Equal(t, types.ModeSearch, h.CurrentMode())
	assert.Equal(t, []types.Action{types.OpenPopupAction{}}, actions)
	require.NotNil(t, h.TextInput())
	assert.Empty(t, h.TextInput().Value())
}

func TestTypingUpdatesQuery(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), &ModelContext{})

	var last []types.Action
	for _, r := range "red" {
		last, _ = h.HandleKey(runes(string(r)), &ModelContext{Open: true})
	}
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "red"}}, last)

	// q is text inside the popup, not quit
	last, _ = h.HandleKey(runes("q"), &ModelContext{Open: true})
	assert.Equal(t, []types.Action{types.UpdateTextAction{Text: "redq"}}, last)
}

func TestPopupKeysGoToController(t *testing.T) {
	h := New()
	h.HandleKey(runes("/"), &ModelContext{})

	tests := []struct {
		msg  tea.KeyMsg
		want search.Key
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, search.KeyUp},
		{tea.KeyMsg{Type: tea.KeyDown}, search.KeyDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, search.KeyEnter},
		{tea.KeyMsg{Type: tea.KeyEsc}, search.KeyEscape},
	}
	for _, tt := range tests {
		actions, _ := h.HandleKey(tt.msg, &ModelContext{Open: true})
		assert.Equal(t, []types.Action{types.SearchKeyAction{Key: tt.want}}, actions)
	}
	// the mode only changes when the controller closes the popup
	assert.Equal(t, types.ModeSearch, h.CurrentMode())

	h.ChangeMode(types.ModeNormal)
	assert.Nil(t, h.TextInput())
}

func TestNormalModeKeys(t *testing.T) {
	h := New()

	actions, _ := h.HandleKey(runes("?"), &ModelContext{})
	assert.Equal(t, []types.Action{types.ShowHelpAction{}}, actions)

	actions, _ = h.HandleKey(runes("q"), &ModelContext{})
	assert.Equal(t, []types.Action{types.QuitAction{}}, actions)

	actions, _ = h.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlC}, &ModelContext{})
	assert.Equal(t, []types.Action{types.QuitAction{Force: true}}, actions)

	actions, _ = h.HandleKey(runes("r"), &ModelContext{})
	assert.Empty(t, actions)
	actions, _ = h.HandleKey(runes("r"), &ModelContext{CartID: "demo"})
	assert.Equal(t, []types.Action{types.ReloadCartAction{}}, actions)

	actions, _ = h.HandleKey(runes("x"), &ModelContext{})
	assert.Empty(t, actions)
}
