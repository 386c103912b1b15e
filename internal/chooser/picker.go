package chooser

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pickerChrome = 4 // title, directory, blank line, footer

var (
	pickerTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	pickerDirStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	pickerDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	pickerWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// Picker is a full screen file browser. It selects regular files only.
type Picker struct {
	StartDir     string
	AllowedTypes []string
	ShowHidden   bool
}

// Choose runs the browser as its own program on t and blocks until the
// user picks a file or cancels
func (p *Picker) Choose(t Terminal) (string, bool, error) {
	m := newPickerModel(p)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if t.In != nil {
		opts = append(opts, tea.WithInput(t.In))
	}
	if t.Out != nil {
		opts = append(opts, tea.WithOutput(t.Out))
	}

	final, err := tea.NewProgram(m, opts...).Run()
	if err != nil {
		return "", false, fmt.Errorf("file picker: %w", err)
	}
	result := final.(pickerModel)
	if !result.chosen {
		log.Printf("Picker: cancelled in %s", result.fp.CurrentDirectory)
		return "", false, nil
	}
	log.Printf("Picker: chose %s", result.path)
	return result.path, true, nil
}

type pickerModel struct {
	fp     filepicker.Model
	keys   pickerKeys
	path   string
	chosen bool
	notice string
}

type pickerKeys struct {
	Cancel key.Binding
}

func newPickerModel(p *Picker) pickerModel {
	fp := filepicker.New()
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.ShowHidden = p.ShowHidden
	fp.ShowPermissions = false
	fp.AllowedTypes = p.AllowedTypes
	fp.AutoHeight = false
	fp.Height = 20
	fp.CurrentDirectory = startDir(p.StartDir)
	// esc closes the picker instead of going up a directory
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"), key.WithHelp("h", "back"))

	return pickerModel{
		fp: fp,
		keys: pickerKeys{
			Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
		},
	}
}

func startDir(dir string) string {
	dir = expandHome(dir)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	log.Printf("Picker: start directory %q not usable, using working directory", dir)
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func (m pickerModel) Init() tea.Cmd {
	return m.fp.Init()
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Cancel) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.fp.Height = max(msg.Height-pickerChrome, 1)
	}

	var cmd tea.Cmd
	m.fp, cmd = m.fp.Update(msg)

	if ok, path := m.fp.DidSelectFile(msg); ok {
		m.path = path
		m.chosen = true
		return m, tea.Quit
	}
	if ok, path := m.fp.DidSelectDisabledFile(msg); ok {
		m.notice = fmt.Sprintf("%s is not one of: %s", path, strings.Join(m.fp.AllowedTypes, " "))
		return m, cmd
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		m.notice = ""
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Open File"))
	b.WriteString("\n")
	b.WriteString(pickerDirStyle.Render(m.fp.CurrentDirectory))
	b.WriteString("\n\n")
	b.WriteString(m.fp.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(pickerWarnStyle.Render(m.notice))
	} else {
		b.WriteString(pickerDimStyle.Render("enter: open • h: up • esc: cancel"))
	}
	return b.String()
}
