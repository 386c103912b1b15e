//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const cubeOBJ = `# unit cube
o cube
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 0 0 1
v 1 0 1
v 1 1 1
v 0 1 1
f 1 2 3 4
f 5 6 7 8
f 1 2 6 5
f 2 3 7 6
f 3 4 8 7
f 4 1 5 8
`

// CreateTestWorkspace creates the temporary directory used as $HOME
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteFile writes a file relative to the workspace and returns its path
func (tf *TUITestFramework) WriteFile(name, content string) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}
	path := filepath.Join(tf.workspace, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}
	return path, os.WriteFile(path, []byte(content), 0644)
}

// WriteCube writes a unit cube OBJ file
func (tf *TUITestFramework) WriteCube(name string) (string, error) {
	return tf.WriteFile(name, cubeOBJ)
}

// WriteChooserConfig writes a config whose chooser command prints path,
// or exits 1 when path is empty
func (tf *TUITestFramework) WriteChooserConfig(path string) (string, error) {
	command := `["sh", "-c", "exit 1"]`
	if path != "" {
		command = fmt.Sprintf(`["printf", "%%s\\n", %q]`, path)
	}
	var b strings.Builder
	b.WriteString("version = 1\n\n")
	b.WriteString("[chooser]\n")
	b.WriteString("command = " + command + "\n\n")
	b.WriteString("[extract]\n")
	b.WriteString("timeout = \"10s\"\n\n")
	b.WriteString("[ui]\n")
	b.WriteString("render_mode = \"wireframe\"\n")
	b.WriteString("watch_source = true\n")
	b.WriteString("show_axes = false\n")
	return tf.WriteFile("config.toml", b.String())
}

// StartWithConfig starts the app with the given config and a log file in
// the workspace
func (tf *TUITestFramework) StartWithConfig(configPath string, args ...string) error {
	base := []string{"--config", configPath, "--log-file", filepath.Join(tf.workspace, "meshview.log")}
	return tf.StartApp(append(base, args...)...)
}
