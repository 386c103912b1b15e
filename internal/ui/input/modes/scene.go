package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"meshview/internal/ui/input/types"
)

// SceneMode handles the screen level keys of the Scene screen. Keys it
// does not consume belong to the scene view's camera.
type SceneMode struct{}

func NewSceneMode() *SceneMode {
	return &SceneMode{}
}

func (m *SceneMode) Name() string {
	return "scene"
}

func (m *SceneMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *SceneMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *SceneMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "esc", "backspace":
		return []types.Action{types.BackAction{}}, true
	case "r":
		return []types.Action{types.ReloadAction{}}, true
	case "i":
		if !ctx.HasScene() {
			return nil, true
		}
		return []types.Action{types.ToggleInfoAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
