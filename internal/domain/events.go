package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventFileChosen       EventType = "FileChosen"
	EventChoiceCancelled  EventType = "ChoiceCancelled"
	EventChooserFailed    EventType = "ChooserFailed"
	EventViewRequested    EventType = "ViewRequested"
	EventViewDismissed    EventType = "ViewDismissed"
	EventScenePresented   EventType = "ScenePresented"
	EventExtractionFailed EventType = "ExtractionFailed"
	EventSourceChanged    EventType = "SourceChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// FileChosenEvent is emitted when the user confirms a file in the chooser
type FileChosenEvent struct {
	Path string
}

func (e FileChosenEvent) Type() EventType { return EventFileChosen }

// ChoiceCancelledEvent is emitted when the chooser is dismissed without a file
type ChoiceCancelledEvent struct{}

func (e ChoiceCancelledEvent) Type() EventType { return EventChoiceCancelled }

// ChooserFailedEvent is emitted when the chooser itself could not run
type ChooserFailedEvent struct {
	Err error
}

func (e ChooserFailedEvent) Type() EventType { return EventChooserFailed }

// ViewRequestedEvent is emitted when the Scene screen is entered
type ViewRequestedEvent struct {
	Path string
}

func (e ViewRequestedEvent) Type() EventType { return EventViewRequested }

// ViewDismissedEvent is emitted when the Scene screen is left
type ViewDismissedEvent struct {
	Path string
}

func (e ViewDismissedEvent) Type() EventType { return EventViewDismissed }

// ScenePresentedEvent is emitted after a scene handle has been mounted
type ScenePresentedEvent struct {
	HandleID  string
	Path      string
	Vertices  int
	Triangles int
}

func (e ScenePresentedEvent) Type() EventType { return EventScenePresented }

// ExtractionFailedEvent is emitted when no scene could be built for a path
type ExtractionFailedEvent struct {
	Path string
	Err  error
}

func (e ExtractionFailedEvent) Type() EventType { return EventExtractionFailed }

// SourceChangedEvent is emitted by the watcher when the shown file changes on disk
type SourceChangedEvent struct {
	Path string
}

func (e SourceChangedEvent) Type() EventType { return EventSourceChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
