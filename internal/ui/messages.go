package ui

import (
	"meshview/internal/eventbus"
	"meshview/internal/selection"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// choiceDoneMsg carries the result of the modal file chooser
type choiceDoneMsg struct {
	outcome selection.Outcome
	err     error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct {
	seq int
}
