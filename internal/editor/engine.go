// Package editor implements the triangle and Bezier editor: the interaction
// state machine, the scene with its per-triangle transforms, and the geometric
// queries behind picking.
//
// An Engine is driven by a single goroutine. The harness feeds it world-space
// pointer positions, button presses and abstract Actions, re-uploads the
// vertex buffer whenever Version changes, and draws from Frame every frame.
package editor

import (
	"go.uber.org/zap"

	"github.com/Faultbox/vecedit/pkg/math"
)

// Button identifies a pointer button.
type Button int

const (
	ButtonLeft Button = iota + 1
	ButtonMiddle
	ButtonRight
)

// Options configures an Engine. Zero fields take the DefaultOptions value.
type Options struct {
	RotateDegrees float64 // rotation step of the rotate actions
	ScalePercent  float32 // scale step of the scale actions, in (0, 1)
	ZoomIn        float32
	ZoomOut       float32
	PanFraction   float32 // pan step as a fraction of the half screen
	PickRadius    float32 // nearest-vertex cutoff in world units
	CurveSamples  int
	AnimationType int // initial animation type, 1..7

	ExportDir    string
	ExportPrefix string
	ExportPNG    bool

	Logger *zap.Logger
}

// DefaultOptions returns the stock engine settings.
func DefaultOptions() Options {
	return Options{
		RotateDegrees: 10,
		ScalePercent:  0.25,
		ZoomIn:        1.2,
		ZoomOut:       0.8,
		PanFraction:   0.4,
		PickRadius:    10,
		CurveSamples:  100,
		AnimationType: 1,
		ExportDir:     ".",
		ExportPrefix:  "snap",
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RotateDegrees == 0 {
		o.RotateDegrees = d.RotateDegrees
	}
	if o.ScalePercent == 0 {
		o.ScalePercent = d.ScalePercent
	}
	if o.ZoomIn == 0 {
		o.ZoomIn = d.ZoomIn
	}
	if o.ZoomOut == 0 {
		o.ZoomOut = d.ZoomOut
	}
	if o.PanFraction == 0 {
		o.PanFraction = d.PanFraction
	}
	if o.PickRadius == 0 {
		o.PickRadius = d.PickRadius
	}
	if o.CurveSamples < 2 {
		o.CurveSamples = d.CurveSamples
	}
	if o.AnimationType < 1 || o.AnimationType > maxAnimationType {
		o.AnimationType = d.AnimationType
	}
	if o.ExportDir == "" {
		o.ExportDir = d.ExportDir
	}
	if o.ExportPrefix == "" {
		o.ExportPrefix = d.ExportPrefix
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

const (
	maxAnimationType = 7
	insertSteps      = 3
	bezierControls   = 4
	bezierDragStep   = 5
)

// Engine owns the scene and the interaction state.
type Engine struct {
	opts  Options
	log   *zap.Logger
	scene *Scene

	view   math.Mat4
	width  float32
	height float32
	aspect float32 // height / width

	mode     Mode
	step     int  // gesture step: insert 0..3, bezier 0..5
	selected int  // selected triangle or None
	vertex   int  // selected vertex column or None
	held     bool // pointer is down on the selected triangle
	animType int

	prev, cursor math.Vec2
	tracking     bool // cursor has been seen at least once

	snapshots int
	version   uint64

	samples []math.Vec2
	frame   Frame
}

// New creates an engine holding the default triangle, in idle mode.
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		opts:     opts,
		log:      opts.Logger,
		scene:    NewScene(),
		view:     math.Identity(),
		aspect:   1,
		selected: None,
		vertex:   None,
		animType: opts.AnimationType,
		samples:  make([]math.Vec2, opts.CurveSamples),
	}
}

// Scene returns the engine's scene for read access.
func (e *Engine) Scene() *Scene { return e.scene }

// Mode returns the current interaction mode.
func (e *Engine) Mode() Mode { return e.mode }

// Step returns the step of the gesture in progress.
func (e *Engine) Step() int { return e.step }

// Selected returns the selected triangle or None.
func (e *Engine) Selected() int { return e.selected }

// SelectedVertex returns the selected vertex column or None.
func (e *Engine) SelectedVertex() int { return e.vertex }

// Held reports whether the pointer is down on the selected triangle.
func (e *Engine) Held() bool { return e.held }

// AnimationType returns the animation applied to newly selected triangles.
func (e *Engine) AnimationType() int { return e.animType }

// Cursor returns the last world-space pointer position.
func (e *Engine) Cursor() math.Vec2 { return e.cursor }

// View returns the world to clip matrix.
func (e *Engine) View() math.Mat4 { return e.view }

// Vertices returns the vertex buffer for upload. It stays valid until the
// next mutating call.
func (e *Engine) Vertices() []Vertex { return e.scene.Vertices() }

// Version increases every time the vertex buffer changes.
func (e *Engine) Version() uint64 { return e.version }

// Done reports whether the editor has been asked to quit.
func (e *Engine) Done() bool { return e.mode == ModeQuit }

func (e *Engine) touch() {
	e.version++
}

// SwitchMode enters m from any mode. The gesture in progress is abandoned:
// step, selections and the held flag are reset and transient columns are
// dropped. Quit is terminal.
func (e *Engine) SwitchMode(m Mode) {
	if e.Done() {
		return
	}

	e.step = 0
	e.selected = None
	e.vertex = None
	e.held = false
	if e.scene.Columns() != e.scene.committedEnd() {
		e.scene.dropTransient()
		e.touch()
	}

	from := e.mode
	e.mode = m
	e.log.Info("mode changed", zap.Stringer("from", from), zap.Stringer("to", m))
}

// refreshModel recomputes the model matrix of the triangle being edited in
// translate mode. Other triangles keep their last composition.
func (e *Engine) refreshModel() {
	if e.mode == ModeTranslate && e.selected != None {
		e.scene.Transform(e.selected).compose()
	}
}
