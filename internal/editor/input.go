package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vecedit/pkg/math"
)

// PointerMove records a new world-space cursor position and applies the drag
// or rubber-band behavior of the current gesture.
func (e *Engine) PointerMove(p math.Vec2) {
	if !e.tracking {
		e.prev, e.cursor = p, p
		e.tracking = true
	} else {
		e.prev, e.cursor = e.cursor, p
	}
	delta := e.cursor.Sub(e.prev)

	switch e.mode {
	case ModeInsert:
		if e.step == 1 || e.step == 2 {
			e.trackLast()
		}

	case ModeTranslate:
		if e.selected != None && e.held {
			tr := e.scene.Transform(e.selected)
			tr.Translation.Set(0, 3, tr.Translation.At(0, 3)+delta.X)
			tr.Translation.Set(1, 3, tr.Translation.At(1, 3)+delta.Y)
			e.refreshModel()
		}

	case ModeBezier:
		switch {
		case e.step >= 1 && e.step <= 3:
			e.trackLast()
		case e.step == bezierDragStep && e.vertex != None:
			e.scene.moveBy(e.vertex, delta)
			e.resample()
		}
	}
}

// trackLast moves the newest transient column to the cursor.
func (e *Engine) trackLast() {
	if last := e.scene.Columns() - 1; last >= e.scene.committedEnd() {
		e.scene.setPos(last, e.cursor)
		e.touch()
	}
}

// Press handles a button going down at the current cursor. Only the left
// button drives gestures.
func (e *Engine) Press(b Button) {
	if b != ButtonLeft {
		return
	}

	switch e.mode {
	case ModeInsert:
		e.pressInsert()
	case ModeTranslate:
		e.selected = e.scene.HitTest(e.cursor)
		e.held = e.selected != None
	case ModeDelete:
		if t := e.scene.HitTest(e.cursor); t != None {
			e.scene.deleteTriangle(t)
			e.touch()
			e.log.Debug("triangle deleted", zap.Int("index", t), zap.Int("triangles", e.scene.TriangleCount()))
		}
		// Indices may have moved; never keep one across a delete.
		e.selected = None
		e.vertex = None
		e.held = false
	case ModeColorize:
		e.vertex = e.scene.NearestVertex(e.cursor, 0, e.scene.committedEnd(), SpaceWorld, e.opts.PickRadius)
	case ModeAnimate:
		e.pressAnimate()
	case ModeBezier:
		e.pressBezier()
	}
}

// Release handles a button going up.
func (e *Engine) Release(b Button) {
	if b != ButtonLeft {
		return
	}

	switch e.mode {
	case ModeTranslate, ModeAnimate:
		e.held = false
	case ModeDelete:
		e.selected = None
	case ModeBezier:
		if e.step == bezierDragStep {
			e.step = bezierDragStep - 1
			e.vertex = None
		}
	}
}

func (e *Engine) pressInsert() {
	e.step++
	switch e.step {
	case 1:
		e.scene.dropTransient()
		// Two coincident vertices: the anchor and the rubber-band end.
		e.scene.appendTransient(2, e.cursor)
	case 2:
		e.scene.appendTransient(1, e.cursor)
	case insertSteps:
		e.scene.commit()
		e.step = 0
		e.log.Debug("triangle inserted", zap.Int("triangles", e.scene.TriangleCount()))
	}
	e.touch()
}

func (e *Engine) pressAnimate() {
	if e.selected != None {
		e.selected = None
		e.held = false
		return
	}
	if t := e.scene.HitTest(e.cursor); t != None {
		e.selected = t
		e.held = true
		e.applyAnimation()
	}
}

// applyAnimation tags the selected triangle with the current animation type.
func (e *Engine) applyAnimation() {
	if e.selected == None {
		return
	}
	first, end := vertexRange(e.selected)
	for i := first; i < end; i++ {
		e.scene.verts[i].Anim = float32(e.animType)
	}
	e.touch()
}

func (e *Engine) pressBezier() {
	if e.step == bezierDragStep {
		return
	}
	e.step++

	base := e.scene.committedEnd()
	switch e.step {
	case 1:
		e.scene.dropTransient()
		e.scene.appendTransient(2, e.cursor)
	case 2, 3:
		e.scene.appendTransient(1, e.cursor)
	case 4:
		e.scene.appendTransient(len(e.samples), math.Vec2{})
		e.resample()
	case bezierDragStep:
		e.vertex = e.scene.NearestVertex(e.cursor, base, base+bezierControls, SpaceRaw, e.opts.PickRadius)
		return
	}
	e.touch()
}

// controls returns the authored control points. ok is false before all four
// exist.
func (e *Engine) controls() (c [4]math.Vec2, ok bool) {
	base := e.scene.committedEnd()
	if e.mode != ModeBezier || e.scene.Columns() < base+bezierControls {
		return c, false
	}
	for k := range c {
		c[k] = e.scene.verts[base+k].Pos()
	}
	return c, true
}

// resample rewrites the curve sample columns from the control points.
func (e *Engine) resample() {
	c, ok := e.controls()
	first := e.scene.committedEnd() + bezierControls
	if !ok || e.step < 4 || e.scene.Columns() < first+len(e.samples) {
		return
	}
	SampleBezier(c, e.samples)
	for j, p := range e.samples {
		e.scene.verts[first+j] = Vertex{X: p.X, Y: p.Y}
	}
	e.touch()
}
