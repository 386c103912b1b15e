package input

import (
	"meshview/internal/navigation"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Nav *navigation.Controller
}

// HasSelection returns true once a file has been chosen
func (c *ModelContext) HasSelection() bool {
	_, ok := c.Nav.Selection().SelectedPath()
	return ok
}

// SelectedPath returns the chosen file or ""
func (c *ModelContext) SelectedPath() string {
	path, _ := c.Nav.Selection().SelectedPath()
	return path
}

// InScene returns true on the Scene screen
func (c *ModelContext) InScene() bool {
	return c.Nav.Screen() == navigation.ScreenScene
}

// HasScene returns true when a scene is mounted
func (c *ModelContext) HasScene() bool {
	return c.Nav.Handle() != nil
}
