package ui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"meshview/internal/chooser"
	"meshview/internal/config"
	"meshview/internal/eventbus"
	"meshview/internal/navigation"
	"meshview/internal/ui/input"
	inputtypes "meshview/internal/ui/input/types"
	"meshview/internal/ui/views"
)

const statusTimeout = 4 * time.Second

// SourceWatcher follows the file shown in the Scene screen
type SourceWatcher interface {
	Watch(path string) error
	Stop()
}

// Options wires the model to its collaborators
type Options struct {
	Bus       eventbus.EventBus
	Config    *config.Config
	Navigator *navigation.Controller
	Chooser   chooser.FileChooser
	// Watcher is optional; nil disables reloading on change
	Watcher SourceWatcher
	LogPath string
}

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	nav     *navigation.Controller
	chooser chooser.FileChooser
	watcher SourceWatcher
	logPath string

	width  int
	height int
	help   help.Model

	status      string
	statusLevel views.StatusLevel
	statusSeq   int

	renderer     *views.Renderer
	inputHandler *input.Handler
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Model{
		bus:          opts.Bus,
		config:       cfg,
		nav:          opts.Navigator,
		chooser:      opts.Chooser,
		watcher:      opts.Watcher,
		logPath:      opts.LogPath,
		help:         help.New(),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
	}
}

// Init starts watching when the program opens straight into a scene
func (m *Model) Init() tea.Cmd {
	m.syncMode()
	if m.nav.Screen() == navigation.ScreenScene {
		m.watchSource()
	}
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeScene()
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Nav: m.nav}
		actions, cmd, consumed := m.inputHandler.HandleKey(msg, ctx)
		if !consumed {
			// Everything the screen does not use belongs to the camera
			if h := m.nav.Handle(); h != nil {
				h.View.Update(msg)
			}
			return m, nil
		}

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncMode()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		if h := m.nav.Handle(); h != nil {
			h.View.Update(msg)
		}
		return m, nil

	default:
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case choiceDoneMsg:
		return m, m.handleChoice(msg)

	case pagerDoneMsg:
		if msg.err != nil {
			log.Printf("Pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), views.StatusError)
		}

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
	}
	return m, nil
}

func (m *Model) handleChoice(msg choiceDoneMsg) tea.Cmd {
	if msg.err != nil {
		log.Printf("Chooser dialog failed: %v", msg.err)
		return m.setStatus(fmt.Sprintf("Chooser failed: %v", msg.err), views.StatusError)
	}
	out := msg.outcome
	switch {
	case out.Err != nil:
		return m.setStatus(fmt.Sprintf("Chooser failed: %v", out.Err), views.StatusError)
	case out.Cancelled:
		return m.setStatus("No file selected", views.StatusInfo)
	default:
		return m.setStatus("Selected "+filepath.Base(out.Path), views.StatusSuccess)
	}
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.SourceChangedEvent:
		if m.nav.Screen() != navigation.ScreenScene || !m.isSelected(e.Path) {
			return nil
		}
		log.Printf("Source %s changed, reloading", e.Path)
		return m.reload()
	}
	return nil
}

func (m *Model) isSelected(path string) bool {
	selected, ok := m.nav.Selection().SelectedPath()
	if !ok {
		return false
	}
	abs, err := filepath.Abs(selected)
	if err != nil {
		return false
	}
	return abs == filepath.Clean(path)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ChooseFileAction:
		return m.chooseFile()

	case inputtypes.ViewFileAction:
		if !m.nav.RequestView() {
			return nil
		}
		m.resizeScene()
		m.watchSource()
		if err := m.nav.Failure(); err != nil {
			log.Printf("View failed: %v", err)
		}

	case inputtypes.BackAction:
		m.nav.Back()
		if m.watcher != nil {
			m.watcher.Stop()
		}

	case inputtypes.ReloadAction:
		return m.reload()

	case inputtypes.ToggleInfoAction:
		if h := m.nav.Handle(); h != nil {
			return showInPager(buildSceneInfo(h))
		}

	case inputtypes.ToggleHelpAction:
		return showInPager(m.renderer.RenderHelpContent())

	case inputtypes.OpenLogAction:
		if m.logPath == "" {
			return m.setStatus("Logging is disabled", views.StatusWarning)
		}
		return showFileInPager(m.logPath)

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeOpenPath {
			return m.openPath(a.Text)
		}

	case inputtypes.CancelTextAction, inputtypes.UpdateTextAction:
		// The handler owns the text input

	case inputtypes.QuitAction:
		m.nav.Close()
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return tea.Quit
	}

	return nil
}

// chooseFile runs the chooser modally. The closure runs on the program's
// loop while the terminal is released, before done is called.
func (m *Model) chooseFile() tea.Cmd {
	var done choiceDoneMsg
	return chooser.Exec(
		func(t chooser.Terminal) {
			done.outcome = m.nav.ChooseFile(m.chooser, t)
		},
		func(err error) tea.Msg {
			done.err = err
			return done
		},
	)
}

func (m *Model) openPath(text string) tea.Cmd {
	path := strings.TrimSpace(text)
	if path == "" {
		return nil
	}
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		return m.setStatus(fmt.Sprintf("Cannot open %s: %v", path, err), views.StatusError)
	case info.IsDir():
		return m.setStatus(path+" is a directory", views.StatusError)
	}
	m.nav.Selection().Preselect(path)
	if m.bus != nil {
		m.bus.Publish(eventbus.FileChosenEvent{Path: path})
	}
	return m.setStatus("Selected "+filepath.Base(path), views.StatusSuccess)
}

func (m *Model) reload() tea.Cmd {
	if !m.nav.Reload() {
		return nil
	}
	m.resizeScene()
	if m.nav.Failure() != nil {
		return m.setStatus("Reload failed", views.StatusError)
	}
	return m.setStatus("Reloaded", views.StatusSuccess)
}

func (m *Model) watchSource() {
	if m.watcher == nil || !m.config.UI.WatchSource {
		return
	}
	path, ok := m.nav.Selection().SelectedPath()
	if !ok {
		return
	}
	if err := m.watcher.Watch(path); err != nil {
		log.Printf("Cannot watch %s: %v", path, err)
	}
}

func (m *Model) resizeScene() {
	if h := m.nav.Handle(); h != nil {
		h.View.SetSize(m.renderer.SceneSize(m.width, m.height))
	}
}

// syncMode keeps the input mode in step with the screen
func (m *Model) syncMode() {
	mode := inputtypes.ModeChooser
	if m.nav.Screen() == navigation.ScreenScene {
		mode = inputtypes.ModeScene
	}
	m.inputHandler.SyncMode(mode, &input.ModelContext{Nav: m.nav})
}

func (m *Model) setStatus(text string, level views.StatusLevel) tea.Cmd {
	m.statusSeq++
	m.status = text
	m.statusLevel = level
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	path, hasPath := m.nav.Selection().SelectedPath()
	state := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Screen:        views.ScreenChooser,
		SelectedPath:  path,
		HasSelection:  hasPath,
		StatusMessage: m.status,
		StatusLevel:   m.statusLevel,
		HelpModel:     m.help,
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		state.InputMode = m.inputHandler.ModeName()
		state.Prompt = m.inputHandler.Prompt()
		state.TextInput = ti.View()
	}

	if m.nav.Screen() == navigation.ScreenScene {
		state.Screen = views.ScreenScene
		if err := m.nav.Failure(); err != nil {
			state.Failure = err.Error()
		} else if h := m.nav.Handle(); h != nil {
			state.Scene = h.View.View()
			state.SceneStats = sceneStats(h.View)
			state.SceneKeys = h.View.Keys()
		}
	}

	return m.renderer.Render(state)
}
