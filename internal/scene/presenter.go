package scene

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"meshview/internal/geometry"
)

// ExtractionError reports that no scene could be built from a file
type ExtractionError struct {
	Path string
	Err  error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("cannot show %s: %v", e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Presenter turns a file path into a ready-to-show View. A failed call
// returns a nil View; there is never a partially built scene.
type Presenter interface {
	Present(path string) (*View, error)
}

// ExtractingPresenter extracts geometry on every call. It keeps no cache,
// so presenting the same path twice reads the file twice.
type ExtractingPresenter struct {
	extractor geometry.Extractor
	opts      ViewOptions
	timeout   time.Duration
}

// NewPresenter creates a presenter over an extractor. A zero timeout means
// extraction is only bounded by the extractor itself.
func NewPresenter(extractor geometry.Extractor, opts ViewOptions, timeout time.Duration) *ExtractingPresenter {
	return &ExtractingPresenter{extractor: extractor, opts: opts, timeout: timeout}
}

// Present extracts the geometry at path and frames a new View on it
func (p *ExtractingPresenter) Present(path string) (*View, error) {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	start := time.Now()
	mesh, err := p.extractor.Extract(ctx, path)
	if err != nil {
		log.Printf("Scene: extraction of %s failed: %v", path, err)
		return nil, &ExtractionError{Path: path, Err: err}
	}
	log.Printf("Scene: extracted %s (%d vertices, %d triangles) in %s",
		path, len(mesh.Vertices), len(mesh.Triangles), time.Since(start).Round(time.Millisecond))
	return NewView(mesh, p.opts), nil
}

// Handle is the resource behind a shown scene. Each presentation gets a
// fresh ID so logs and events can tell repeated views of one file apart.
type Handle struct {
	ID         uuid.UUID
	SourcePath string
	View       *View
	CreatedAt  time.Time
}

// NewHandle wraps a freshly presented view
func NewHandle(path string, view *View) *Handle {
	return &Handle{
		ID:         uuid.New(),
		SourcePath: path,
		View:       view,
		CreatedAt:  time.Now(),
	}
}

// Close drops the view. Calling it more than once is harmless.
func (h *Handle) Close() {
	if h == nil || h.View == nil {
		return
	}
	log.Printf("Scene: closing %s (%s)", h.ID, h.SourcePath)
	h.View = nil
}

// Closed reports whether Close was called
func (h *Handle) Closed() bool {
	return h == nil || h.View == nil
}
