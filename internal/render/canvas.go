package render

import (
	"math"
	"strings"
)

// braille dot bits indexed by [y][x] inside a 2x4 cell
var brailleBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas is a grid of terminal cells, each holding a 2x4 braille dot
// pattern, so a cols x rows canvas has cols*2 x rows*4 addressable dots.
type Canvas struct {
	cols, rows int
	cells      []uint8
}

// NewCanvas creates an empty canvas; negative sizes are treated as zero
func NewCanvas(cols, rows int) *Canvas {
	cols, rows = max(cols, 0), max(rows, 0)
	return &Canvas{cols: cols, rows: rows, cells: make([]uint8, cols*rows)}
}

// Width is the number of dots across
func (c *Canvas) Width() int { return c.cols * 2 }

// Height is the number of dots down
func (c *Canvas) Height() int { return c.rows * 4 }

// Clear removes every dot
func (c *Canvas) Clear() {
	clear(c.cells)
}

// Set lights the dot at x, y; points outside the canvas are ignored
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return
	}
	c.cells[(y/4)*c.cols+x/2] |= brailleBits[y%4][x%2]
}

// IsSet reports whether the dot at x, y is lit
func (c *Canvas) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x >= c.Width() || y >= c.Height() {
		return false
	}
	return c.cells[(y/4)*c.cols+x/2]&brailleBits[y%4][x%2] != 0
}

// Line draws a segment between two points in dot coordinates. The segment
// is clipped to the canvas first so far off-screen geometry stays cheap.
func (c *Canvas) Line(x0, y0, x1, y1 float64) {
	x0, y0, x1, y1, ok := clipRect(x0, y0, x1, y1, float64(c.Width()-1), float64(c.Height()-1))
	if !ok {
		return
	}

	// Bresenham
	ix0, iy0 := int(math.Round(x0)), int(math.Round(y0))
	ix1, iy1 := int(math.Round(x1)), int(math.Round(y1))
	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}
	e := dx + dy
	for {
		c.Set(ix0, iy0)
		if ix0 == ix1 && iy0 == iy1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			ix0 += sx
		}
		if e2 <= dx {
			e += dx
			iy0 += sy
		}
	}
}

// String renders the canvas as rows of braille characters. Empty cells are
// spaces.
func (c *Canvas) String() string {
	var b strings.Builder
	b.Grow(c.rows * (c.cols*3 + 1))
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < c.cols; col++ {
			bits := c.cells[row*c.cols+col]
			if bits == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteRune(rune(0x2800 + int(bits)))
		}
	}
	return b.String()
}

// clipRect is Liang-Barsky clipping against [0, maxX] x [0, maxY]
func clipRect(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0},
		{dx, maxX - x0},
		{-dy, y0},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
