//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	cfg, err := tf.WriteChooserConfig("")
	require.NoError(t, err)

	require.NoError(t, tf.StartWithConfig(cfg))
	require.True(t, tf.Ready(), "Should show the chooser screen")
	require.True(t, tf.SeePlain("meshview"), "Should show meshview title")

	require.NoError(t, tf.Quit())
	if err := tf.WaitExit(1500 * time.Millisecond); err != nil {
		t.Logf("'q' did not exit: %v", err)
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		t.Fail()
	}
}

func TestStartsWithoutConfigFile(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)

	require.NoError(t, tf.StartApp("--log-file", ""))
	require.True(t, tf.Ready(), "Should show the chooser screen with default settings")
	require.NoError(t, tf.Quit())
	require.NoError(t, tf.WaitExit(2*time.Second))

	_, err = os.Stat(filepath.Join(workspace, ".config", "meshview", "config.toml"))
	require.True(t, os.IsNotExist(err), "No config file should be written")
}

func TestHelpCommand(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help command should run without error")

	output := string(out)
	require.Contains(t, output, "Usage:")
	require.Contains(t, output, "meshview [file]")
	require.Contains(t, output, "--config")
	require.Contains(t, output, "--dir")
}
