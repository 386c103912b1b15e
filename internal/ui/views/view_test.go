package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestRenderChooser(t *testing.T) {
	r := NewRenderer()

	out := r.Render(ViewState{Width: 80, Height: 24, Screen: ScreenChooser})
	assert.Contains(t, out, "meshview")
	assert.Contains(t, out, "Selected file: none")
	assert.Contains(t, out, "[v] View File")
	assert.Contains(t, out, "q quit")
	assert.Equal(t, 24, lipgloss.Height(out), "footer sits on the last line")

	out = r.Render(ViewState{
		Width:         80,
		Height:        24,
		Screen:        ScreenChooser,
		SelectedPath:  "/models/house.obj",
		HasSelection:  true,
		StatusMessage: "Selected house.obj",
		StatusLevel:   StatusSuccess,
	})
	assert.Contains(t, out, "Selected file: house.obj")
	assert.Contains(t, out, "Selected house.obj")
	assert.NotContains(t, out, "q quit", "status replaces the key hints")
}

func TestRenderPrompt(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:     80,
		Height:    24,
		Screen:    ScreenChooser,
		InputMode: "open-path",
		Prompt:    "Path: ",
		TextInput: "/tmp/x.obj",
	})
	assert.Contains(t, out, "Path:")
	assert.Contains(t, out, "/tmp/x.obj")
}

func TestRenderSceneFailure(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{
		Width:        80,
		Height:       24,
		Screen:       ScreenScene,
		SelectedPath: "/models/empty.obj",
		Failure:      "file contains no faces",
	})
	assert.Contains(t, out, "Could not show empty.obj")
	assert.Contains(t, out, "file contains no faces")
	assert.Contains(t, out, "esc to go back")
	assert.NotContains(t, out, "[o] Open File")
}

func TestRenderScene(t *testing.T) {
	r := NewRenderer()
	canvas := strings.Repeat("⣿", 10)
	out := r.Render(ViewState{
		Width:        80,
		Height:       24,
		Screen:       ScreenScene,
		SelectedPath: "/models/house.obj",
		Scene:        canvas,
		SceneStats:   "8 vertices · 12 triangles · wireframe",
	})
	assert.Contains(t, out, "house.obj")
	assert.Contains(t, out, "8 vertices · 12 triangles · wireframe")
	assert.Contains(t, out, canvas)
	assert.Contains(t, out, "esc back")
}

func TestSceneSize(t *testing.T) {
	r := NewRenderer()
	w, h := r.SceneSize(80, 24)
	assert.Equal(t, 80, w)
	assert.Equal(t, 24-sceneChrome, h)

	w, h = r.SceneSize(0, 2)
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestRenderPanelCentersContent(t *testing.T) {
	pr := NewPopupRenderer(NewStyles())
	out := pr.RenderPanel("hello", 40, 9, lipgloss.NewStyle().Border(lipgloss.NormalBorder()))
	assert.Equal(t, 9, lipgloss.Height(out))
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Contains(t, out, "hello")
}
