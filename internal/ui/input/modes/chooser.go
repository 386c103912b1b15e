package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"meshview/internal/ui/input/types"
)

// ChooserMode handles keys on the Chooser screen
type ChooserMode struct{}

func NewChooserMode() *ChooserMode {
	return &ChooserMode{}
}

func (m *ChooserMode) Name() string {
	return "chooser"
}

func (m *ChooserMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ChooserMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ChooserMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{}}, true
	case "o", "enter":
		return []types.Action{types.ChooseFileAction{}}, true
	case "v":
		// Viewing is disabled until a file is chosen
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.ViewFileAction{}}, true
	case "g", ":":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeOpenPath}}, true
	case "L":
		return []types.Action{types.OpenLogAction{}}, true
	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true
	}
	return nil, false
}
