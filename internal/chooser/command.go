package chooser

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os/exec"
	"path/filepath"
	"strings"
)

// Command delegates the choice to an external program such as
// `zenity --file-selection`. The program prints the chosen path on
// stdout; exit status 1 or empty output means the user cancelled.
type Command struct {
	Args []string
	// Dir resolves relative paths printed by the program
	Dir string
}

func (c *Command) Choose(t Terminal) (string, bool, error) {
	if len(c.Args) == 0 {
		return "", false, ErrNoCommand
	}

	dir := c.Dir
	if dir != "" {
		dir = expandHome(dir)
	}

	var stdout bytes.Buffer
	cmd := exec.Command(c.Args[0], c.Args[1:]...)
	cmd.Stdin = t.In
	cmd.Stdout = &stdout
	cmd.Stderr = t.Err
	cmd.Dir = dir

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
			log.Printf("Command chooser: %s cancelled", c.Args[0])
			return "", false, nil
		}
		return "", false, fmt.Errorf("chooser command %s: %w", c.Args[0], err)
	}

	path, _, _ := strings.Cut(stdout.String(), "\n")
	path = strings.TrimSpace(path)
	if path == "" {
		return "", false, nil
	}
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return filepath.Clean(path), true, nil
}
