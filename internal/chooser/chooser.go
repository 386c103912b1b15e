package chooser

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoCommand is returned by a Command chooser without arguments
var ErrNoCommand = errors.New("chooser command is empty")

// Terminal is the terminal a chooser may take over while it runs
type Terminal struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// StdTerminal returns the process terminal
func StdTerminal() Terminal {
	return Terminal{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// FileChooser asks the user for one file. It blocks until the user
// confirms or cancels. ok is false on cancel; err is set only when the
// chooser itself could not run.
type FileChooser interface {
	Choose(t Terminal) (path string, ok bool, err error)
}

// Dialog runs a choice as a tea.ExecCommand, so the calling program
// releases the terminal for the duration of the dialog and the UI waits
// for it.
type Dialog struct {
	run  func(Terminal)
	term Terminal
}

// NewDialog wraps run, which receives the released terminal
func NewDialog(run func(Terminal)) *Dialog {
	return &Dialog{run: run, term: StdTerminal()}
}

func (d *Dialog) Run() error {
	d.run(d.term)
	return nil
}

func (d *Dialog) SetStdin(r io.Reader)  { d.term.In = r }
func (d *Dialog) SetStdout(w io.Writer) { d.term.Out = w }
func (d *Dialog) SetStderr(w io.Writer) { d.term.Err = w }

// Exec returns a command that runs the dialog modally and reports back
// through done
func Exec(run func(Terminal), done func(error) tea.Msg) tea.Cmd {
	return tea.Exec(NewDialog(run), done)
}

// expandHome resolves a leading ~ and falls back to the home directory
// for an empty path
func expandHome(dir string) string {
	home, _ := os.UserHomeDir()
	switch {
	case dir == "" || dir == "~":
		if home == "" {
			return "."
		}
		return home
	case strings.HasPrefix(dir, "~/") && home != "":
		return filepath.Join(home, dir[2:])
	}
	return dir
}
