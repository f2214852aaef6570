package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"listkit/internal/ui/input/types"
)

// HelpMode shows the full key reference until dismissed
type HelpMode struct {
	keys types.KeyMap
}

func NewHelpMode(keys types.KeyMap) *HelpMode {
	return &HelpMode{keys: keys}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenHelpPagerAction{}}, true
	case key.Matches(msg, m.keys.Help, m.keys.Clear):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeListbox}}, true
	}

	switch msg.String() {
	case "q", "?":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeListbox}}, true
	}

	// The list underneath stays frozen while help is up.
	return nil, true
}
