package render

import (
	"gonum.org/v1/gonum/spatial/r3"

	"meshview/internal/geometry"
)

// Mode selects how a mesh is drawn
type Mode int

const (
	Wireframe Mode = iota
	Points
)

func (m Mode) String() string {
	switch m {
	case Points:
		return "points"
	default:
		return "wireframe"
	}
}

// ParseMode maps a config value to a Mode, defaulting to Wireframe
func ParseMode(s string) Mode {
	if s == "points" {
		return Points
	}
	return Wireframe
}

// Next cycles through the modes
func (m Mode) Next() Mode {
	if m == Wireframe {
		return Points
	}
	return Wireframe
}

// Options control a single Draw call
type Options struct {
	Mode     Mode
	ShowAxes bool
}

// Scene draws a mesh with a camera. Edges are computed once since they do
// not change while the mesh is shown.
type Scene struct {
	mesh  *geometry.Mesh
	edges [][2]int
	axes  [3][2]r3.Vec

	camSpace []r3.Vec
}

// NewScene prepares a mesh for repeated drawing
func NewScene(mesh *geometry.Mesh) *Scene {
	s := &Scene{
		mesh:     mesh,
		edges:    mesh.Edges(),
		camSpace: make([]r3.Vec, len(mesh.Vertices)),
	}
	origin := mesh.Bounds().Min
	length := mesh.Radius() * 0.3
	s.axes = [3][2]r3.Vec{
		{origin, r3.Add(origin, r3.Vec{X: length})},
		{origin, r3.Add(origin, r3.Vec{Y: length})},
		{origin, r3.Add(origin, r3.Vec{Z: length})},
	}
	return s
}

// Mesh returns the mesh being drawn
func (s *Scene) Mesh() *geometry.Mesh {
	return s.mesh
}

// EdgeCount is the number of distinct edges drawn in wireframe mode
func (s *Scene) EdgeCount() int {
	return len(s.edges)
}

// Draw renders the scene into canvas, replacing its previous content
func (s *Scene) Draw(canvas *Canvas, cam *Camera, opts Options) {
	canvas.Clear()
	if canvas.Width() == 0 || canvas.Height() == 0 {
		return
	}

	v := cam.view()
	w, h := float64(canvas.Width()), float64(canvas.Height())
	for i, p := range s.mesh.Vertices {
		s.camSpace[i] = v.toCamera(p)
	}

	switch opts.Mode {
	case Points:
		for _, p := range s.camSpace {
			if p.Z < nearPlane {
				continue
			}
			x, y := v.project(p, w, h)
			canvas.Set(int(x), int(y))
		}
	default:
		for _, e := range s.edges {
			drawSegment(canvas, v, s.camSpace[e[0]], s.camSpace[e[1]], w, h)
		}
	}

	if opts.ShowAxes {
		for _, axis := range s.axes {
			drawSegment(canvas, v, v.toCamera(axis[0]), v.toCamera(axis[1]), w, h)
		}
	}
}

func drawSegment(canvas *Canvas, v view, a, b r3.Vec, w, h float64) {
	a, b, ok := clipNear(a, b)
	if !ok {
		return
	}
	x0, y0 := v.project(a, w, h)
	x1, y1 := v.project(b, w, h)
	canvas.Line(x0, y0, x1, y1)
}
