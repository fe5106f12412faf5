package editor

import (
	gomath "math"

	"github.com/Faultbox/vecedit/pkg/math"
)

// Primitive is the draw topology of a column range.
type Primitive int

const (
	PrimitiveNone Primitive = iota
	PrimitiveLines
	PrimitiveLineLoop
	PrimitiveLineStrip
)

// Range is a run of vertex buffer columns drawn with one primitive.
type Range struct {
	First     int
	Count     int
	Primitive Primitive
}

// Empty reports whether there is nothing to draw.
func (r Range) Empty() bool {
	return r.Count <= 0 || r.Primitive == PrimitiveNone
}

// TriangleDraw carries the per-triangle draw parameters.
type TriangleDraw struct {
	Index      int
	First      int // first vertex column
	Model      math.Mat4
	Barycenter math.Vec2
	Phase      float32 // animation time offset, derived from the first vertex
	Selected   bool
	Held       bool
}

// Frame describes what to draw this frame. Slices are reused between calls.
type Frame struct {
	Mode     Mode
	Step     int
	View     math.Mat4
	Animated bool
	Version  uint64

	Triangles []TriangleDraw

	// Preview is the rubber band of an insert gesture or the control polygon
	// of a Bezier gesture.
	Preview Range
	// Curve holds the sampled Bezier curve once all four controls exist.
	Curve Range
}

// Frame refreshes the model of the triangle being edited and returns the draw
// description of the current state. The result is valid until the next call.
func (e *Engine) Frame() *Frame {
	e.refreshModel()

	f := &e.frame
	f.Mode = e.mode
	f.Step = e.step
	f.View = e.view
	f.Animated = e.mode == ModeAnimate
	f.Version = e.version
	f.Triangles = f.Triangles[:0]
	f.Preview = Range{}
	f.Curve = Range{}

	base := e.scene.committedEnd()
	transient := e.scene.Columns() - base

	if e.mode != ModeBezier {
		for t := 0; t < e.scene.TriangleCount(); t++ {
			first, _ := vertexRange(t)
			f.Triangles = append(f.Triangles, TriangleDraw{
				Index:      t,
				First:      first,
				Model:      e.scene.xforms[t].Model,
				Barycenter: e.scene.Barycenter(t),
				Phase:      float32(gomath.Floor(float64(e.scene.verts[first].X) * 1000)),
				Selected:   t == e.selected,
				Held:       t == e.selected && e.held,
			})
		}
	}

	switch e.mode {
	case ModeInsert:
		switch {
		case e.step == 1 && transient >= 2:
			f.Preview = Range{First: base, Count: 2, Primitive: PrimitiveLines}
		case e.step == 2 && transient >= 3:
			f.Preview = Range{First: base, Count: 3, Primitive: PrimitiveLineLoop}
		}

	case ModeBezier:
		switch n := min(transient, bezierControls, e.step+1); {
		case e.step == 1 && n == 2:
			f.Preview = Range{First: base, Count: 2, Primitive: PrimitiveLines}
		case e.step >= 2 && n >= 3:
			f.Preview = Range{First: base, Count: n, Primitive: PrimitiveLineStrip}
		}
		if e.step >= 4 && transient >= bezierControls+len(e.samples) {
			f.Curve = Range{First: base + bezierControls, Count: len(e.samples), Primitive: PrimitiveLineStrip}
		}
	}

	return f
}
