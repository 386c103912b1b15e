package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Screen names as used in ViewState
const (
	ScreenChooser = "chooser"
	ScreenScene   = "scene"
)

// StatusLevel picks the status line color
type StatusLevel int

const (
	StatusInfo StatusLevel = iota
	StatusSuccess
	StatusWarning
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int
	Screen string

	SelectedPath string
	HasSelection bool

	StatusMessage string
	StatusLevel   StatusLevel

	InputMode string
	Prompt    string
	TextInput string

	Scene      string // rendered canvas
	SceneStats string
	Failure    string

	HelpModel help.Model
	SceneKeys help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// title and its margin, the scene header line and the footer line
const sceneChrome = 4

// SceneSize returns the cells available to the scene canvas
func (r *Renderer) SceneSize(width, height int) (int, int) {
	return max(width, 0), max(height-sceneChrome, 0)
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}
	content.WriteString(r.styles.Title.Render("meshview"))
	content.WriteString("\n")

	var footer string
	if state.Screen == ScreenScene {
		content.WriteString(r.renderScene(state))
		footer = r.renderSceneFooter(state)
	} else {
		content.WriteString(r.styles.Main.Render(r.renderChooser(state)))
		footer = r.renderChooserFooter(state)
	}

	// Push the footer to the bottom line
	lines := strings.Count(content.String(), "\n") + 1
	if pad := state.Height - lines - 1; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(footer)
	return content.String()
}

func (r *Renderer) renderChooser(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Label.Render("Selected file: "))
	if state.HasSelection {
		b.WriteString(r.styles.Path.Render(filepath.Base(state.SelectedPath)))
		b.WriteString("\n")
		b.WriteString(r.styles.Dim.Render(state.SelectedPath))
	} else {
		b.WriteString(r.styles.Dim.Render("none"))
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	b.WriteString(r.menuItem("o", "Open File", true))
	b.WriteString("\n")
	b.WriteString(r.menuItem("v", "View File", state.HasSelection))
	b.WriteString("\n")
	b.WriteString(r.menuItem("g", "Open Path", true))
	b.WriteString("\n")

	if state.InputMode != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Prompt.Render(state.Prompt))
		b.WriteString(state.TextInput)
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) menuItem(key, label string, enabled bool) string {
	if !enabled {
		return r.styles.MenuDisabled.Render(fmt.Sprintf("[%s] %s", key, label))
	}
	return fmt.Sprintf("%s %s", r.styles.Key.Render("["+key+"]"), r.styles.MenuItem.Render(label))
}

func (r *Renderer) renderScene(state ViewState) string {
	name := filepath.Base(state.SelectedPath)
	width, height := r.SceneSize(state.Width, state.Height)

	if state.Failure != "" {
		var panel strings.Builder
		panel.WriteString(r.styles.ErrorTitle.Render("Could not show " + name))
		panel.WriteString("\n\n")
		panel.WriteString(state.Failure)
		panel.WriteString("\n\n")
		panel.WriteString(r.styles.Dim.Render("esc to go back"))
		return r.styles.SceneHeader.Render(name) + "\n" +
			r.popupRender.RenderPanel(panel.String(), width, height, r.styles.ErrorPanel)
	}

	header := r.styles.SceneHeader.Render(name)
	if state.SceneStats != "" {
		header += r.styles.Dim.Render("  " + state.SceneStats)
	}
	return header + "\n" + r.styles.Canvas.Render(state.Scene)
}

func (r *Renderer) renderChooserFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.renderStatus(state)
	}
	return r.styles.Help.Render("o open • v view • g path • L log • ? help • q quit")
}

func (r *Renderer) renderSceneFooter(state ViewState) string {
	if state.StatusMessage != "" {
		return r.renderStatus(state)
	}
	screenKeys := "esc back • r reload • i info • ? help"
	if state.Failure != "" || state.SceneKeys == nil {
		return r.styles.Help.Render(screenKeys)
	}
	return state.HelpModel.View(state.SceneKeys) + r.styles.Help.Render(" • "+screenKeys)
}

func (r *Renderer) renderStatus(state ViewState) string {
	style := r.styles.Status
	switch state.StatusLevel {
	case StatusSuccess:
		style = r.styles.StatusSuccess
	case StatusWarning:
		style = r.styles.StatusWarning
	case StatusError:
		style = r.styles.StatusError
	}
	return style.Render(state.StatusMessage)
}

// RenderHelpContent renders the help text shown in the pager
func (r *Renderer) RenderHelpContent() string {
	sectionStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)
	descStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	var help strings.Builder
	line := func(keys, desc string) {
		help.WriteString(fmt.Sprintf("  %s  %s\n", r.styles.Key.Render(fmt.Sprintf("%-12s", keys)), descStyle.Render(desc)))
	}

	help.WriteString(r.styles.Title.Render("meshview Help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Chooser"))
	help.WriteString("\n")
	line("o, enter", "Open a file")
	line("v", "View the selected file")
	line("g, :", "Type a path to open")
	line("L", "Show the log file")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Scene"))
	help.WriteString("\n")
	line("←/→, h/l", "Orbit left/right")
	line("↑/↓, k/j", "Orbit up/down")
	line("H/J/K/L", "Pan (also shift+arrows)")
	line("+/-", "Zoom in/out (also mouse wheel)")
	line("drag", "Orbit with left button, pan with middle")
	line("0", "Reset camera")
	line("w", "Toggle wireframe/points")
	line("a", "Toggle axes")
	line("r", "Reload from disk")
	line("i", "Scene info")
	line("esc", "Back to chooser")
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	line("?", "Show this help")
	line("q, ctrl+c", "Quit")

	return help.String()
}
