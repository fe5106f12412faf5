package editor

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/vecedit/pkg/math"
)

// Direction selects the sense of a rotation.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Do executes an abstract action. Only the snapshot action can fail.
func (e *Engine) Do(a Action) error {
	if e.Done() {
		return nil
	}
	if m, ok := a.modeFor(); ok {
		e.SwitchMode(m)
		return nil
	}

	switch a {
	case ActionRotateCW:
		e.RotateBy(e.opts.RotateDegrees, Clockwise)
	case ActionRotateCCW:
		e.RotateBy(e.opts.RotateDegrees, CounterClockwise)
	case ActionScaleUp:
		e.ScaleBy(e.opts.ScalePercent, true)
	case ActionScaleDown:
		e.ScaleBy(e.opts.ScalePercent, false)
	case ActionPanUp, ActionPanDown, ActionPanLeft, ActionPanRight:
		e.pan(a)
	case ActionZoomIn:
		e.Zoom(e.opts.ZoomIn)
	case ActionZoomOut:
		e.Zoom(e.opts.ZoomOut)
	case ActionSnapshot:
		_, err := e.Snapshot()
		return err
	case ActionDump:
		e.Dump()
	default:
		if d := a.Digit(); d > 0 {
			e.digit(d)
		}
	}
	return nil
}

// RotateBy rotates the selected triangle about its barycenter. It only acts
// in translate mode with a selection and reports whether it did.
func (e *Engine) RotateBy(degrees float64, dir Direction) bool {
	if e.mode != ModeTranslate || e.selected == None {
		return false
	}
	theta := degrees * gomath.Pi / 180
	if dir == Clockwise {
		theta = -theta
	}

	tr := e.scene.Transform(e.selected)
	pivot := e.scene.Barycenter(e.selected)
	tr.Rotation = math.About(math.RotateZ(theta), pivot).Mul(tr.Rotation)
	e.refreshModel()
	return true
}

// ScaleBy scales the selected triangle about its barycenter by 1-p when up is
// set and by 1+p otherwise, so up then down leaves a factor of 1-p².
func (e *Engine) ScaleBy(p float32, up bool) bool {
	if e.mode != ModeTranslate || e.selected == None {
		return false
	}
	f := 1 + p
	if up {
		f = 1 - p
	}

	tr := e.scene.Transform(e.selected)
	pivot := e.scene.Barycenter(e.selected)
	tr.Scaling = math.About(math.Scale(f, f, 1), pivot).Mul(tr.Scaling)
	e.refreshModel()
	return true
}

// digit applies a digit key: a color code in colorize mode, an animation type
// in animate mode.
func (e *Engine) digit(d int) {
	switch e.mode {
	case ModeColorize:
		if e.vertex == None || e.vertex >= e.scene.committedEnd() {
			return
		}
		e.scene.verts[e.vertex].Color = float32(d)
		e.touch()
		e.log.Debug("vertex colored", zap.Int("vertex", e.vertex), zap.Int("color", d))

	case ModeAnimate:
		if d > maxAnimationType {
			return
		}
		e.animType = d
		e.applyAnimation()
	}
}
