package scene

import (
	"math"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"meshview/internal/geometry"
	"meshview/internal/render"
)

const (
	orbitStep     = math.Pi / 12
	dragOrbitStep = math.Pi / 60
	panStep       = 0.1
	zoomInFactor  = 0.8
	zoomOutFactor = 1.25
)

// KeyMap defines the camera bindings of a View
type KeyMap struct {
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	OrbitUp    key.Binding
	OrbitDown  key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	PanUp      key.Binding
	PanDown    key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Reset      key.Binding
	ToggleMode key.Binding
	ToggleAxes key.Binding
}

// DefaultKeyMap returns the default camera bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		OrbitLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "orbit left")),
		OrbitRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "orbit right")),
		OrbitUp:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "orbit up")),
		OrbitDown:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "orbit down")),
		PanLeft:    key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("H", "pan left")),
		PanRight:   key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("L", "pan right")),
		PanUp:      key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "pan up")),
		PanDown:    key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "pan down")),
		ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:    key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "zoom out")),
		Reset:      key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset camera")),
		ToggleMode: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "wireframe/points")),
		ToggleAxes: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "axes")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.OrbitLeft, k.PanLeft, k.ZoomIn, k.ZoomOut, k.Reset}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.OrbitLeft, k.OrbitRight, k.OrbitUp, k.OrbitDown},
		{k.PanLeft, k.PanRight, k.PanUp, k.PanDown},
		{k.ZoomIn, k.ZoomOut, k.Reset, k.ToggleMode, k.ToggleAxes},
	}
}

// ViewOptions configure a new View
type ViewOptions struct {
	Mode     render.Mode
	ShowAxes bool
}

// View is an interactive 3D view of one mesh. It owns its camera and
// handles orbit, pan and zoom input itself; the screen embedding it only
// forwards messages and sizes.
type View struct {
	scene  *render.Scene
	camera *render.Camera
	canvas *render.Canvas
	opts   render.Options
	keys   KeyMap

	width, height int
	dirty         bool
	dragging      bool
	lastX, lastY  int
}

// NewView frames the mesh and returns a view ready to draw
func NewView(mesh *geometry.Mesh, opts ViewOptions) *View {
	cam := render.NewCamera()
	cam.Frame(mesh.Center(), mesh.Radius())
	return &View{
		scene:  render.NewScene(mesh),
		camera: cam,
		canvas: render.NewCanvas(0, 0),
		opts:   render.Options{Mode: opts.Mode, ShowAxes: opts.ShowAxes},
		keys:   DefaultKeyMap(),
		dirty:  true,
	}
}

// Mesh returns the geometry shown
func (v *View) Mesh() *geometry.Mesh { return v.scene.Mesh() }

// Camera exposes the camera, mostly for tests and the info pager
func (v *View) Camera() *render.Camera { return v.camera }

// Mode returns the current render mode
func (v *View) Mode() render.Mode { return v.opts.Mode }

// Keys returns the camera bindings for help rendering
func (v *View) Keys() KeyMap { return v.keys }

// EdgeCount is the number of edges drawn in wireframe mode
func (v *View) EdgeCount() int { return v.scene.EdgeCount() }

// SetSize sets the size in terminal cells
func (v *View) SetSize(width, height int) {
	if width == v.width && height == v.height {
		return
	}
	v.width, v.height = max(width, 0), max(height, 0)
	v.canvas = render.NewCanvas(v.width, v.height)
	v.dirty = true
}

// Update applies camera input. It reports whether msg was used so the
// caller can route unhandled keys elsewhere.
func (v *View) Update(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg), nil
	case tea.MouseMsg:
		return v.handleMouse(msg), nil
	}
	return false, nil
}

func (v *View) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, v.keys.OrbitLeft):
		v.camera.Orbit(-orbitStep, 0)
	case key.Matches(msg, v.keys.OrbitRight):
		v.camera.Orbit(orbitStep, 0)
	case key.Matches(msg, v.keys.OrbitUp):
		v.camera.Orbit(0, orbitStep)
	case key.Matches(msg, v.keys.OrbitDown):
		v.camera.Orbit(0, -orbitStep)
	case key.Matches(msg, v.keys.PanLeft):
		v.camera.Pan(-panStep, 0)
	case key.Matches(msg, v.keys.PanRight):
		v.camera.Pan(panStep, 0)
	case key.Matches(msg, v.keys.PanUp):
		v.camera.Pan(0, panStep)
	case key.Matches(msg, v.keys.PanDown):
		v.camera.Pan(0, -panStep)
	case key.Matches(msg, v.keys.ZoomIn):
		v.camera.Zoom(zoomInFactor)
	case key.Matches(msg, v.keys.ZoomOut):
		v.camera.Zoom(zoomOutFactor)
	case key.Matches(msg, v.keys.Reset):
		v.camera.Reset()
	case key.Matches(msg, v.keys.ToggleMode):
		v.opts.Mode = v.opts.Mode.Next()
	case key.Matches(msg, v.keys.ToggleAxes):
		v.opts.ShowAxes = !v.opts.ShowAxes
	default:
		return false
	}
	v.dirty = true
	return true
}

// handleMouse orbits on left drag, pans on middle drag and zooms on the wheel
func (v *View) handleMouse(msg tea.MouseMsg) bool {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		v.camera.Zoom(zoomInFactor)
	case msg.Button == tea.MouseButtonWheelDown:
		v.camera.Zoom(zoomOutFactor)
	case msg.Action == tea.MouseActionPress && (msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonMiddle):
		v.dragging = true
		v.lastX, v.lastY = msg.X, msg.Y
		return true
	case msg.Action == tea.MouseActionRelease:
		v.dragging = false
		return true
	case msg.Action == tea.MouseActionMotion && v.dragging:
		dx, dy := msg.X-v.lastX, msg.Y-v.lastY
		v.lastX, v.lastY = msg.X, msg.Y
		if msg.Button == tea.MouseButtonMiddle {
			v.camera.Pan(-float64(dx)*panStep/2, float64(dy)*panStep/2)
		} else {
			v.camera.Orbit(float64(dx)*dragOrbitStep, float64(dy)*dragOrbitStep)
		}
	default:
		return false
	}
	v.dirty = true
	return true
}

// View renders the scene; it redraws only after input or a resize
func (v *View) View() string {
	if v.dirty {
		v.scene.Draw(v.canvas, v.camera, v.opts)
		v.dirty = false
	}
	return v.canvas.String()
}
