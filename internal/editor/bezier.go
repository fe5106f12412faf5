package editor

import (
	"github.com/Faultbox/vecedit/pkg/math"
)

// Bezier evaluates the cubic Bezier with control values v1..v4 at t by
// blending two quadratic interpolations (de Casteljau).
func Bezier(v1, v2, v3, v4, t float32) float32 {
	s := 1 - t
	q1 := (v1*s+v2*t)*s + (v2*s+v3*t)*t
	q2 := (v2*s+v3*t)*s + (v3*s+v4*t)*t
	return q1*s + q2*t
}

// BezierPoint evaluates the curve through control points c at t.
func BezierPoint(c [4]math.Vec2, t float32) math.Vec2 {
	return math.Vec2{
		X: Bezier(c[0].X, c[1].X, c[2].X, c[3].X, t),
		Y: Bezier(c[0].Y, c[1].Y, c[2].Y, c[3].Y, t),
	}
}

// SampleBezier fills out with len(out) points evenly spaced in t from 0 to 1
// inclusive.
func SampleBezier(c [4]math.Vec2, out []math.Vec2) {
	n := len(out)
	if n == 1 {
		out[0] = c[0]
		return
	}
	for j := range out {
		out[j] = BezierPoint(c, float32(j)/float32(n-1))
	}
}
