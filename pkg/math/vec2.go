// Package math provides the small linear algebra kit used by the editor:
// column-major 4x4 matrices, 2D vectors and a 3x3 solver.
package math

import "math"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v * scalar.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Length returns the magnitude.
func (v Vec2) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// Centroid returns the mean of a, b and c.
func Centroid(a, b, c Vec2) Vec2 {
	return Vec2{(a.X + b.X + c.X) / 3, (a.Y + b.Y + c.Y) / 3}
}

// Barycentric solves [a b c; 1 1 1] * w = [p; 1] for the weights of p
// relative to triangle abc. ok is false when the triangle is degenerate.
func Barycentric(p, a, b, c Vec2) (w [3]float32, ok bool) {
	// Cramer's rule in float64; the float32 inputs lose precision fast on
	// slivers otherwise.
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	cx, cy := float64(c.X), float64(c.Y)
	px, py := float64(p.X), float64(p.Y)

	det := (bx-ax)*(cy-ay) - (cx-ax)*(by-ay)
	if det == 0 {
		return w, false
	}
	w1 := ((bx-px)*(cy-py) - (cx-px)*(by-py)) / det
	w2 := ((cx-px)*(ay-py) - (ax-px)*(cy-py)) / det
	w3 := 1 - w1 - w2
	return [3]float32{float32(w1), float32(w2), float32(w3)}, true
}
