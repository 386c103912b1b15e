package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle holds three indices into Mesh.Vertices
type Triangle [3]int

// Object is a named run of triangles, from an OBJ "o" or "g" statement
type Object struct {
	Name  string
	First int // index of the first triangle
	Count int
}

// Mesh is the extracted geometry of one file
type Mesh struct {
	Name      string
	Vertices  []r3.Vec
	Triangles []Triangle
	Objects   []Object
}

// Bounds returns the axis-aligned box around all vertices
func (m *Mesh) Bounds() r3.Box {
	if len(m.Vertices) == 0 {
		return r3.Box{}
	}
	inf := math.Inf(1)
	box := r3.Box{
		Min: r3.Vec{X: inf, Y: inf, Z: inf},
		Max: r3.Vec{X: -inf, Y: -inf, Z: -inf},
	}
	for _, v := range m.Vertices {
		box.Min.X = math.Min(box.Min.X, v.X)
		box.Min.Y = math.Min(box.Min.Y, v.Y)
		box.Min.Z = math.Min(box.Min.Z, v.Z)
		box.Max.X = math.Max(box.Max.X, v.X)
		box.Max.Y = math.Max(box.Max.Y, v.Y)
		box.Max.Z = math.Max(box.Max.Z, v.Z)
	}
	return box
}

// Center returns the center of Bounds
func (m *Mesh) Center() r3.Vec {
	b := m.Bounds()
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}

// Radius returns half the diagonal of Bounds
func (m *Mesh) Radius() float64 {
	b := m.Bounds()
	return r3.Norm(r3.Sub(b.Max, b.Min)) / 2
}

// Edges returns every triangle edge once, lower index first
func (m *Mesh) Edges() [][2]int {
	seen := make(map[[2]int]struct{}, len(m.Triangles)*3/2)
	edges := make([][2]int, 0, len(m.Triangles)*3/2)
	for _, t := range m.Triangles {
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			e := [2]int{a, b}
			if _, ok := seen[e]; ok {
				continue
			}
			seen[e] = struct{}{}
			edges = append(edges, e)
		}
	}
	return edges
}

// beginObject starts a new named run, dropping the previous one if it
// ended up empty.
func (m *Mesh) beginObject(name string) {
	if n := len(m.Objects); n > 0 && m.Objects[n-1].Count == 0 {
		m.Objects = m.Objects[:n-1]
	}
	m.Objects = append(m.Objects, Object{Name: name, First: len(m.Triangles)})
}

func (m *Mesh) addTriangle(t Triangle) {
	if len(m.Objects) == 0 {
		m.Objects = append(m.Objects, Object{Name: "default"})
	}
	m.Triangles = append(m.Triangles, t)
	m.Objects[len(m.Objects)-1].Count++
}

func (m *Mesh) finish() {
	if n := len(m.Objects); n > 0 && m.Objects[n-1].Count == 0 {
		m.Objects = m.Objects[:n-1]
	}
}
