package geometry

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// IFCExtractor converts IFC building models with IfcOpenShell's IfcConvert
// into a temporary OBJ file and reads that.
type IFCExtractor struct {
	Binary  string
	Timeout time.Duration
}

func (e *IFCExtractor) Extract(ctx context.Context, path string) (*Mesh, error) {
	binary := e.Binary
	if binary == "" {
		binary = "IfcConvert"
	}
	if _, err := exec.LookPath(binary); err != nil {
		return nil, fmt.Errorf("IFC files need %s in PATH: %w", binary, err)
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	tmpDir, err := os.MkdirTemp("", "meshview-ifc-")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	objPath := filepath.Join(tmpDir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".obj")

	var output bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, path, objPath)
	cmd.Stdout = &output
	cmd.Stderr = &output
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s timed out: %w", binary, ctx.Err())
		}
		return nil, fmt.Errorf("%s failed: %w: %s", binary, err, lastLine(output.String()))
	}

	mesh, err := OBJExtractor{}.Extract(ctx, objPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read converted geometry: %w", err)
	}
	mesh.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return mesh, nil
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
