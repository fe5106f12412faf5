package editor

import (
	"github.com/Faultbox/vecedit/pkg/math"
)

// SetViewport records the drawable size in pixels and keeps the view's
// horizontal scale at aspect times the vertical one so that world units stay
// square. Non-positive sizes are ignored.
func (e *Engine) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	e.width, e.height = float32(width), float32(height)
	e.aspect = e.height / e.width

	if sy := e.view.At(1, 1); sy != 0 && e.view.At(0, 0)/sy != e.aspect {
		e.view.Set(0, 0, e.aspect*sy)
	}
}

// Viewport returns the last size passed to SetViewport.
func (e *Engine) Viewport() (width, height int) {
	return int(e.width), int(e.height)
}

// PixelToWorld maps window pixel (px, py), with the origin at the top-left
// corner, to world coordinates through the inverse view.
func (e *Engine) PixelToWorld(px, py float32, width, height int) math.Vec2 {
	if width <= 0 || height <= 0 {
		return math.Vec2{}
	}
	w, h := float32(width), float32(height)
	py = h - 1 - py

	clip := math.Vec4{px/w*2 - 1, py/h*2 - 1, 0, 1}
	p := e.view.Inverse().MulVec4(clip)
	return math.Vec2{X: p[0], Y: p[1]}
}

// Zoom scales the linear part of the view by f.
func (e *Engine) Zoom(f float32) {
	if f <= 0 {
		return
	}
	e.view.ScaleLinear(f)
}

// pan shifts the view by a fraction of the world extent of half the screen.
func (e *Engine) pan(a Action) {
	half := e.view.Inverse().MulVec4(math.Vec4{1, 1, 0, 0})
	k := e.opts.PanFraction
	sy := e.view.At(1, 1)

	dy := k * half[1] * sy
	dx := k * half[0] * e.aspect * sy

	switch a {
	case ActionPanUp:
		e.view.Set(1, 3, e.view.At(1, 3)+dy)
	case ActionPanDown:
		e.view.Set(1, 3, e.view.At(1, 3)-dy)
	case ActionPanLeft:
		e.view.Set(0, 3, e.view.At(0, 3)-dx)
	case ActionPanRight:
		e.view.Set(0, 3, e.view.At(0, 3)+dx)
	}
}
