package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	defaultFOV   = math.Pi / 3
	defaultYaw   = math.Pi / 4
	defaultPitch = math.Pi / 6
	maxPitch     = math.Pi/2 - 0.01
	nearPlane    = 1e-3
)

var worldUp = r3.Vec{Y: 1}

// Camera orbits a target point at a given distance. Yaw turns around the
// world Y axis, pitch tilts towards it.
type Camera struct {
	Target   r3.Vec
	Yaw      float64
	Pitch    float64
	Distance float64
	FOV      float64

	home       pose
	minDist    float64
	panPerUnit float64
}

type pose struct {
	target               r3.Vec
	yaw, pitch, distance float64
}

// NewCamera returns a camera looking at the origin from a unit distance
func NewCamera() *Camera {
	c := &Camera{}
	c.Frame(r3.Vec{}, 1)
	return c
}

// Frame points the camera at center from far enough away for a sphere of
// the given radius to fit the view, and remembers that pose for Reset.
func (c *Camera) Frame(center r3.Vec, radius float64) {
	if radius <= 0 || math.IsInf(radius, 0) || math.IsNaN(radius) {
		radius = 1
	}
	c.FOV = defaultFOV
	c.Target = center
	c.Yaw = defaultYaw
	c.Pitch = defaultPitch
	c.Distance = 1.2 * radius / math.Sin(c.FOV/2)
	c.minDist = radius * 0.05
	c.panPerUnit = radius

	c.home = pose{target: c.Target, yaw: c.Yaw, pitch: c.Pitch, distance: c.Distance}
}

// Reset returns to the pose chosen by the last Frame
func (c *Camera) Reset() {
	c.Target = c.home.target
	c.Yaw = c.home.yaw
	c.Pitch = c.home.pitch
	c.Distance = c.home.distance
}

// Orbit rotates around the target by the given angles in radians
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw = math.Mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dPitch))
}

// Zoom scales the distance to the target; factors below 1 move closer
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = math.Max(c.minDist, c.Distance*factor)
}

// Pan moves the target in the view plane. dx and dy are fractions of the
// framed radius.
func (c *Camera) Pan(dx, dy float64) {
	right, up, _ := c.basis()
	c.Target = r3.Add(c.Target, r3.Scale(dx*c.panPerUnit, right))
	c.Target = r3.Add(c.Target, r3.Scale(dy*c.panPerUnit, up))
}

// Eye returns the camera position
func (c *Camera) Eye() r3.Vec {
	offset := r3.Vec{
		X: math.Cos(c.Pitch) * math.Sin(c.Yaw),
		Y: math.Sin(c.Pitch),
		Z: math.Cos(c.Pitch) * math.Cos(c.Yaw),
	}
	return r3.Add(c.Target, r3.Scale(c.Distance, offset))
}

func (c *Camera) basis() (right, up, forward r3.Vec) {
	forward = r3.Unit(r3.Sub(c.Target, c.Eye()))
	right = r3.Unit(r3.Cross(forward, worldUp))
	up = r3.Cross(right, forward)
	return right, up, forward
}

// view transforms world points into camera space: X right, Y up, Z depth
type view struct {
	eye                r3.Vec
	right, up, forward r3.Vec
	focal              float64
}

func (c *Camera) view() view {
	right, up, forward := c.basis()
	return view{
		eye:     c.Eye(),
		right:   right,
		up:      up,
		forward: forward,
		focal:   1 / math.Tan(c.FOV/2),
	}
}

func (v view) toCamera(p r3.Vec) r3.Vec {
	d := r3.Sub(p, v.eye)
	return r3.Vec{X: r3.Dot(d, v.right), Y: r3.Dot(d, v.up), Z: r3.Dot(d, v.forward)}
}

// project maps a camera-space point in front of the near plane to canvas
// coordinates of a w x h dot grid.
func (v view) project(p r3.Vec, w, h float64) (x, y float64) {
	scale := v.focal / p.Z * h / 2
	return w/2 + p.X*scale, h/2 - p.Y*scale
}

// clipNear cuts the segment a-b to the part in front of the near plane
func clipNear(a, b r3.Vec) (r3.Vec, r3.Vec, bool) {
	if a.Z < nearPlane && b.Z < nearPlane {
		return a, b, false
	}
	if a.Z < nearPlane {
		a = lerp(b, a, (b.Z-nearPlane)/(b.Z-a.Z))
	} else if b.Z < nearPlane {
		b = lerp(a, b, (a.Z-nearPlane)/(a.Z-b.Z))
	}
	return a, b, true
}

func lerp(a, b r3.Vec, t float64) r3.Vec {
	return r3.Add(a, r3.Scale(t, r3.Sub(b, a)))
}
