package types

// Chooser screen actions
type ChooseFileAction struct{}

func (a ChooseFileAction) Type() string { return "choose_file" }

type ViewFileAction struct{}

func (a ViewFileAction) Type() string { return "view_file" }

// Scene screen actions
type BackAction struct{}

func (a BackAction) Type() string { return "back" }

type ReloadAction struct{}

func (a ReloadAction) Type() string { return "reload" }

type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Global actions
type OpenLogAction struct{}

func (a OpenLogAction) Type() string { return "open_log" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
