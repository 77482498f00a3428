package field

import "math"

// Vec is a 2D vector in surface units.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64        { return math.Hypot(v.X, v.Y) }

// Node is one moving point of the field. ID is unique across generations.
type Node struct {
	ID     uint64
	Pos    Vec
	Vel    Vec
	Radius float64
}

// Edge is a connection between two nodes, valid for a single frame only.
type Edge struct {
	A, B     int
	Distance float64
	Opacity  float64
}

// EdgeOpacity fades linearly from peak at distance 0 to 0 at the radius.
// Pairs at or beyond the radius are not connected.
func EdgeOpacity(dist, radius, peak float64) float64 {
	if dist >= radius {
		return 0
	}
	return (radius - dist) / radius * peak
}

// Repulsion returns the displacement applied to a node at pos by a pointer.
// It is recomputed each frame and never stored in the velocity.
func Repulsion(pos, pointer Vec, radius, k float64) Vec {
	d := pointer.Sub(pos)
	dist := d.Len()
	if dist >= radius {
		return Vec{}
	}
	force := (radius - dist) / radius * k
	return d.Scale(-force)
}

// reflect flips a velocity component when the position left [0, limit].
// The position is left as is, so a node may sit outside for a frame.
func reflect(pos, vel, limit float64) float64 {
	if pos < 0 || pos > limit {
		return -vel
	}
	return vel
}
