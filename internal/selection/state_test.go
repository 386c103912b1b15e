package selection

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meshview/internal/chooser"
)

// scriptedChooser returns canned answers in order
type scriptedChooser struct {
	answers []answer
	calls   int
}

type answer struct {
	path string
	ok   bool
	err  error
}

func (c *scriptedChooser) Choose(chooser.Terminal) (string, bool, error) {
	a := c.answers[c.calls]
	c.calls++
	return a.path, a.ok, a.err
}

func TestInitialState(t *testing.T) {
	s := New()
	_, ok := s.SelectedPath()
	assert.False(t, ok)
	assert.False(t, s.ViewRequested())
}

func TestChoiceReplacesSelection(t *testing.T) {
	s := New()
	c := &scriptedChooser{answers: []answer{
		{path: "/tmp/a.obj", ok: true},
		{path: "/tmp/b.ifc", ok: true},
	}}

	out := s.RequestFileChoice(c, chooser.Terminal{})
	assert.True(t, out.Chosen())
	assert.Equal(t, "/tmp/a.obj", out.Path)

	s.RequestFileChoice(c, chooser.Terminal{})
	path, ok := s.SelectedPath()
	require.True(t, ok)
	assert.Equal(t, "/tmp/b.ifc", path)
	assert.False(t, s.ViewRequested(), "choosing never requests a view")
}

func TestCancelKeepsSelection(t *testing.T) {
	s := New()
	c := &scriptedChooser{answers: []answer{
		{path: "/tmp/a.obj", ok: true},
		{ok: false},
		{path: "", ok: true},
	}}
	s.RequestFileChoice(c, chooser.Terminal{})
	require.True(t, s.RequestView())

	out := s.RequestFileChoice(c, chooser.Terminal{})
	assert.True(t, out.Cancelled)
	assert.False(t, out.Chosen())

	out = s.RequestFileChoice(c, chooser.Terminal{})
	assert.True(t, out.Cancelled, "an empty path counts as a cancel")

	path, ok := s.SelectedPath()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/a.obj", path)
	assert.True(t, s.ViewRequested())
}

func TestChooserFailureKeepsState(t *testing.T) {
	s := New()
	boom := errors.New("no display")
	out := s.RequestFileChoice(&scriptedChooser{answers: []answer{{err: boom}}}, chooser.Terminal{})
	assert.ErrorIs(t, out.Err, boom)
	assert.False(t, out.Chosen())
	_, ok := s.SelectedPath()
	assert.False(t, ok)
}

func TestViewRequiresSelection(t *testing.T) {
	s := New()
	assert.False(t, s.RequestView())
	assert.False(t, s.ViewRequested())

	s.Preselect("")
	assert.False(t, s.RequestView())

	s.Preselect("/tmp/house.obj")
	assert.True(t, s.RequestView())
	assert.True(t, s.ViewRequested())
}

func TestDismissIsIdempotent(t *testing.T) {
	s := New()
	s.Preselect("/tmp/house.obj")
	s.RequestView()

	s.DismissView()
	s.DismissView()
	assert.False(t, s.ViewRequested())
	path, ok := s.SelectedPath()
	assert.True(t, ok)
	assert.Equal(t, "/tmp/house.obj", path)
}

func TestPreselectIgnoresEmptyPath(t *testing.T) {
	s := New()
	s.Preselect("")
	_, ok := s.SelectedPath()
	require.False(t, ok)

	s.Preselect("/tmp/a.obj")
	s.Preselect("")
	path, ok := s.SelectedPath()
	require.True(t, ok)
	assert.Equal(t, "/tmp/a.obj", path)
}
