package chooser

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not available on windows")
	}
	path := filepath.Join(t.TempDir(), "choose.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCommandChooser(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		dir      string
		wantPath string
		wantOK   bool
		wantErr  string
	}{
		{name: "absolute path", script: `printf '/tmp/house.obj\n'`, wantPath: "/tmp/house.obj", wantOK: true},
		{name: "first line only", script: `printf '/tmp/a.obj\n/tmp/b.obj\n'`, wantPath: "/tmp/a.obj", wantOK: true},
		{name: "relative path", script: `printf 'models/house.obj'`, dir: "/srv", wantPath: "/srv/models/house.obj", wantOK: true},
		{name: "exit 1 cancels", script: `exit 1`},
		{name: "empty output cancels", script: `printf '  \n'`},
		{name: "other exit status fails", script: `echo boom >&2; exit 3`, wantErr: "exit status 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			c := &Command{Args: []string{writeScript(t, tt.script)}, Dir: tt.dir}
			if tt.dir != "" {
				c.Dir = t.TempDir()
				tt.wantPath = strings.Replace(tt.wantPath, tt.dir, c.Dir, 1)
			}

			path, ok, err := c.Choose(Terminal{In: strings.NewReader(""), Err: &stderr})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Contains(t, stderr.String(), "boom")
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}

func TestCommandChooserMissingProgram(t *testing.T) {
	_, ok, err := (&Command{}).Choose(Terminal{})
	assert.ErrorIs(t, err, ErrNoCommand)
	assert.False(t, ok)

	_, ok, err = (&Command{Args: []string{"meshview-no-such-chooser"}}).Choose(Terminal{})
	require.Error(t, err)
	assert.False(t, ok)
}

func TestDialogRunsOnGivenTerminal(t *testing.T) {
	var got Terminal
	d := NewDialog(func(term Terminal) { got = term })

	in := strings.NewReader("x")
	var out, errOut bytes.Buffer
	d.SetStdin(in)
	d.SetStdout(&out)
	d.SetStderr(&errOut)
	require.NoError(t, d.Run())

	assert.Same(t, in, got.In)
	assert.Same(t, &out, got.Out)
	assert.Same(t, &errOut, got.Err)
	assert.NotNil(t, Exec(func(Terminal) {}, func(error) tea.Msg { return nil }))
}

func runPickerInit(t *testing.T, m pickerModel) pickerModel {
	t.Helper()
	cmd := m.Init()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(pickerModel)
}

func TestPickerSelectsFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "house.obj"), []byte("v 0 0 0\n"), 0o644))

	m := runPickerInit(t, newPickerModel(&Picker{StartDir: dir}))
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(pickerModel)

	assert.True(t, m.chosen)
	assert.Equal(t, filepath.Join(dir, "house.obj"), m.path)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestPickerCancel(t *testing.T) {
	m := newPickerModel(&Picker{StartDir: t.TempDir()})
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
	} {
		next, cmd := m.Update(k)
		assert.False(t, next.(pickerModel).chosen, k.String())
		require.NotNil(t, cmd, k.String())
		assert.Equal(t, tea.Quit(), cmd(), k.String())
	}
}

func TestPickerStartDir(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, dir, newPickerModel(&Picker{StartDir: dir}).fp.CurrentDirectory)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, newPickerModel(&Picker{StartDir: filepath.Join(dir, "missing")}).fp.CurrentDirectory)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "models"), expandHome("~/models"))
	assert.Equal(t, "/srv", expandHome("/srv"))
}

func TestPickerViewShowsDirectory(t *testing.T) {
	dir := t.TempDir()
	m := newPickerModel(&Picker{StartDir: dir})
	view := m.View()
	assert.Contains(t, view, "Open File")
	assert.Contains(t, view, dir)
	assert.Contains(t, view, "esc: cancel")
}
