// Package selection holds the file the user chose and whether they asked
// to view it.
package selection

import (
	"log"

	"meshview/internal/chooser"
)

// Outcome describes what a file choice did to the state
type Outcome struct {
	Path      string
	Cancelled bool
	// Err is set when the chooser could not run; the state is unchanged
	Err error
}

// Chosen reports whether the choice replaced the selected path
func (o Outcome) Chosen() bool {
	return !o.Cancelled && o.Err == nil
}

// State is the selection and view-request state of one session. It is
// owned by the UI loop and not safe for concurrent use.
type State struct {
	selectedPath  string
	hasPath       bool
	viewRequested bool
}

// New returns an empty state
func New() *State {
	return &State{}
}

// SelectedPath returns the chosen file, if any
func (s *State) SelectedPath() (string, bool) {
	return s.selectedPath, s.hasPath
}

// ViewRequested reports whether the Scene screen was asked for
func (s *State) ViewRequested() bool {
	return s.viewRequested
}

// RequestFileChoice runs c on t and blocks until the user confirms or
// cancels. A confirmed file replaces the selection; a cancel or a chooser
// failure leaves the state untouched. The view request flag never
// changes here.
func (s *State) RequestFileChoice(c chooser.FileChooser, t chooser.Terminal) Outcome {
	path, ok, err := c.Choose(t)
	if err != nil {
		log.Printf("Selection: chooser failed: %v", err)
		return Outcome{Err: err}
	}
	if !ok || path == "" {
		log.Printf("Selection: choice cancelled")
		return Outcome{Cancelled: true}
	}

	s.selectedPath = path
	s.hasPath = true
	log.Printf("Selection: selected %s", path)
	return Outcome{Path: path}
}

// Preselect sets the selection without running a chooser, for a file
// given on the command line
func (s *State) Preselect(path string) {
	if path == "" {
		return
	}
	s.selectedPath = path
	s.hasPath = true
}

// RequestView asks for the Scene screen. Without a selection it does
// nothing and returns false.
func (s *State) RequestView() bool {
	if !s.hasPath {
		log.Printf("Selection: view requested without a file, ignoring")
		return false
	}
	s.viewRequested = true
	return true
}

// DismissView returns to the Chooser screen. The selection is kept.
func (s *State) DismissView() {
	s.viewRequested = false
}
