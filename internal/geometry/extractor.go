package geometry

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	// ErrUnsupportedFormat is returned when no extractor handles a file's extension
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrEmptyGeometry is returned when a file parses but yields no faces
	ErrEmptyGeometry = errors.New("file contains no faces")
)

// Extractor turns a file on disk into a mesh
type Extractor interface {
	Extract(ctx context.Context, path string) (*Mesh, error)
}

// ExtractorFunc adapts a function to the Extractor interface
type ExtractorFunc func(ctx context.Context, path string) (*Mesh, error)

func (f ExtractorFunc) Extract(ctx context.Context, path string) (*Mesh, error) {
	return f(ctx, path)
}

// Registry dispatches extraction on the lower-cased file extension
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{byExt: make(map[string]Extractor)}
}

// DefaultRegistry registers the OBJ reader and the IfcConvert-backed IFC reader
func DefaultRegistry(ifcConvert string, timeout time.Duration) *Registry {
	r := NewRegistry()
	r.Register(".obj", OBJExtractor{})
	r.Register(".ifc", &IFCExtractor{Binary: ifcConvert, Timeout: timeout})
	return r
}

// Register binds ext (with or without the leading dot) to e
func (r *Registry) Register(ext string, e Extractor) {
	r.byExt[normalizeExt(ext)] = e
}

// Extensions lists the registered extensions in sorted order
func (r *Registry) Extensions() []string {
	exts := make([]string, 0, len(r.byExt))
	for ext := range r.byExt {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Extract picks the extractor for path and runs it
func (r *Registry) Extract(ctx context.Context, path string) (*Mesh, error) {
	ext := normalizeExt(filepath.Ext(path))
	e, ok := r.byExt[ext]
	if !ok {
		if ext == "" {
			return nil, fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, filepath.Base(path))
		}
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	mesh, err := e.Extract(ctx, path)
	if err != nil {
		return nil, err
	}
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrEmptyGeometry)
	}
	return mesh, nil
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
