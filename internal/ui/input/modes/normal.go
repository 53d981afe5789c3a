package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/carousel"
	"carousel/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Forward):
		return []types.Action{types.NavigateAction{Direction: carousel.Forward}}, true

	case key.Matches(msg, m.keys.Back):
		return []types.Action{types.NavigateAction{Direction: carousel.Back}}, true

	case key.Matches(msg, m.keys.Reset):
		// Nothing to confirm when already on the first item
		if ctx.State().CurrentIndex == 0 {
			return []types.Action{types.StatusAction{Message: "Already at the first item"}}, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeResetConfirm}}, true

	case key.Matches(msg, m.keys.Offset):
		return []types.Action{types.ToggleOffsetAction{}}, true

	case key.Matches(msg, m.keys.Save):
		return []types.Action{types.SaveAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
