// Package navigation decides which screen is shown and keeps the scene
// handle in step with it.
package navigation

import (
	"log"

	"meshview/internal/chooser"
	"meshview/internal/eventbus"
	"meshview/internal/scene"
	"meshview/internal/selection"
)

// Screen is one of the two top level screens
type Screen int

const (
	ScreenChooser Screen = iota
	ScreenScene
)

func (s Screen) String() string {
	if s == ScreenScene {
		return "scene"
	}
	return "chooser"
}

// Controller derives the screen from the selection state. Every change
// goes through sync, which mounts a scene on entering the Scene screen and
// closes it on leaving, so a Scene screen is never reused across entries.
type Controller struct {
	state     *selection.State
	presenter scene.Presenter
	bus       eventbus.EventBus

	handle  *scene.Handle
	failure error
}

// New creates a controller. bus may be nil.
func New(state *selection.State, presenter scene.Presenter, bus eventbus.EventBus) *Controller {
	return &Controller{state: state, presenter: presenter, bus: bus}
}

// Screen is recomputed from the selection state on every call
func (c *Controller) Screen() Screen {
	if c.state.ViewRequested() {
		return ScreenScene
	}
	return ScreenChooser
}

// Selection returns the underlying state
func (c *Controller) Selection() *selection.State {
	return c.state
}

// Handle is the mounted scene, or nil on the Chooser screen and after a
// failed presentation
func (c *Controller) Handle() *scene.Handle {
	return c.handle
}

// Failure is the error of the last presentation while the Scene screen
// shows it
func (c *Controller) Failure() error {
	return c.failure
}

// ChooseFile runs the chooser through the selection state. It is only
// offered on the Chooser screen.
func (c *Controller) ChooseFile(fc chooser.FileChooser, t chooser.Terminal) selection.Outcome {
	if c.Screen() != ScreenChooser {
		return selection.Outcome{Cancelled: true}
	}
	out := c.state.RequestFileChoice(fc, t)
	switch {
	case out.Err != nil:
		c.publish(eventbus.ChooserFailedEvent{Err: out.Err})
	case out.Cancelled:
		c.publish(eventbus.ChoiceCancelledEvent{})
	default:
		c.publish(eventbus.FileChosenEvent{Path: out.Path})
	}
	return out
}

// RequestView enters the Scene screen for the selected file. It returns
// false when there is no selection or the Scene screen is already shown.
func (c *Controller) RequestView() bool {
	prev := c.Screen()
	if prev == ScreenScene {
		return false
	}
	if !c.state.RequestView() {
		return false
	}
	c.sync(prev)
	return true
}

// Back leaves the Scene screen. It does nothing on the Chooser screen.
func (c *Controller) Back() {
	prev := c.Screen()
	c.state.DismissView()
	c.sync(prev)
}

// Reload shows the selected file again after it changed on disk. It
// passes through the Chooser screen so the old scene is closed before the
// new one is built.
func (c *Controller) Reload() bool {
	if c.Screen() != ScreenScene {
		return false
	}
	c.Back()
	return c.RequestView()
}

// Close tears down any mounted scene
func (c *Controller) Close() {
	c.teardown()
}

func (c *Controller) sync(prev Screen) {
	next := c.Screen()
	if prev == next {
		return
	}
	log.Printf("Navigation: %s -> %s", prev, next)
	switch next {
	case ScreenScene:
		c.mount()
	case ScreenChooser:
		path, _ := c.state.SelectedPath()
		c.teardown()
		c.publish(eventbus.ViewDismissedEvent{Path: path})
	}
}

func (c *Controller) mount() {
	path, _ := c.state.SelectedPath()
	c.publish(eventbus.ViewRequestedEvent{Path: path})

	view, err := c.presenter.Present(path)
	if err != nil {
		c.failure = err
		c.publish(eventbus.ExtractionFailedEvent{Path: path, Err: err})
		return
	}
	c.handle = scene.NewHandle(path, view)
	mesh := view.Mesh()
	c.publish(eventbus.ScenePresentedEvent{
		HandleID:  c.handle.ID.String(),
		Path:      path,
		Vertices:  len(mesh.Vertices),
		Triangles: len(mesh.Triangles),
	})
}

func (c *Controller) teardown() {
	c.handle.Close()
	c.handle = nil
	c.failure = nil
}

func (c *Controller) publish(event eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(event)
	}
}
