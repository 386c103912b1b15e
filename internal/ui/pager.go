package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerDoneMsg is sent when the pager exits
type pagerDoneMsg struct {
	err error
}

// pagerCommand shows text, or a file, in ov while the program has
// released the terminal. It implements tea.ExecCommand.
type pagerCommand struct {
	content string
	file    string
}

func (p *pagerCommand) Run() error {
	var (
		root *oviewer.Root
		err  error
	)
	if p.file != "" {
		root, err = oviewer.Open(p.file)
	} else {
		root, err = oviewer.NewRoot(strings.NewReader(p.content))
	}
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showInPager returns a command that pages content
func showInPager(content string) tea.Cmd {
	return tea.Exec(&pagerCommand{content: content}, func(err error) tea.Msg {
		return pagerDoneMsg{err: err}
	})
}

// showFileInPager returns a command that pages a file
func showFileInPager(path string) tea.Cmd {
	return tea.Exec(&pagerCommand{file: path}, func(err error) tea.Msg {
		return pagerDoneMsg{err: err}
	})
}
