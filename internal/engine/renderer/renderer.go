// Package renderer draws editor frames with OpenGL.
package renderer

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/vecedit/internal/editor"
	"github.com/Faultbox/vecedit/internal/engine/renderer/shaders"
	"github.com/Faultbox/vecedit/internal/engine/shader"
	"github.com/Faultbox/vecedit/internal/export"
	"github.com/Faultbox/vecedit/internal/logger"
	"github.com/Faultbox/vecedit/pkg/math"
)

// vertexStride is the size of one editor.Vertex in bytes.
const vertexStride = int32(unsafe.Sizeof(editor.Vertex{}))

// Config holds renderer configuration.
type Config struct {
	Width   int
	Height  int
	Samples int
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config  Config
	program *shader.Program

	vao uint32
	vbo uint32

	capacity int    // VBO size in vertices
	version  uint64 // editor version of the buffer contents
	uploaded bool

	start    time.Time
	identity math.Mat4
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:   cfg,
		start:    time.Now(),
		identity: math.Identity(),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.Samples > 0 {
		gl.Enable(gl.MULTISAMPLE)
	}
	gl.ClearColor(1, 1, 1, 1)

	var err error
	r.program, err = shader.New(shaders.EditorVertexShader, shaders.EditorFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Debug("shader program created", zap.Uint32("program", r.program.ID()))

	r.program.Use()
	r.program.SetVec3Array("palette", export.Palette())

	r.createBuffers()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize sets the GL viewport to the drawable size in pixels.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Upload copies the vertex buffer to the GPU unless version is already
// resident.
func (r *Renderer) Upload(version uint64, verts []editor.Vertex) {
	if r.uploaded && version == r.version {
		return
	}
	r.version = version
	r.uploaded = true

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	defer gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if len(verts) == 0 {
		return
	}
	size := len(verts) * int(vertexStride)
	if len(verts) > r.capacity {
		// Grow geometrically.
		r.capacity = max(len(verts), 2*r.capacity)
		gl.BufferData(gl.ARRAY_BUFFER, r.capacity*int(vertexStride), nil, gl.DYNAMIC_DRAW)
		logger.Debug("vertex buffer grown", zap.Int("vertices", r.capacity))
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&verts[0]))
}

// Draw renders one frame.
func (r *Renderer) Draw(f *editor.Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	p := r.program
	p.Use()
	gl.BindVertexArray(r.vao)
	defer gl.BindVertexArray(0)

	view := f.View
	p.SetMat4("view", &view)
	p.SetBool("animated", f.Animated)
	p.SetBool("overlay", false)

	elapsed := float32(time.Since(r.start).Seconds())
	for i := range f.Triangles {
		t := &f.Triangles[i]
		p.SetBool("selected", t.Selected)
		p.SetBool("held", t.Held)
		p.SetVec2("barycenter", t.Barycenter.X, t.Barycenter.Y)
		p.SetFloat("time", elapsed+t.Phase)
		p.SetMat4("model", &t.Model)
		gl.DrawArrays(gl.TRIANGLES, int32(t.First), 3)
	}

	// Gesture overlays are drawn untransformed in a flat color.
	p.SetBool("animated", false)
	p.SetBool("selected", false)
	p.SetBool("held", false)
	p.SetBool("overlay", true)
	p.SetMat4("model", &r.identity)

	p.SetVec3("overlayColor", 0.2, 0.2, 0.2)
	r.drawRange(f.Preview)
	p.SetVec3("overlayColor", 0, 0, 0)
	r.drawRange(f.Curve)
}

func (r *Renderer) drawRange(rg editor.Range) {
	if rg.Empty() {
		return
	}
	var mode uint32
	switch rg.Primitive {
	case editor.PrimitiveLines:
		mode = gl.LINES
	case editor.PrimitiveLineLoop:
		mode = gl.LINE_LOOP
	case editor.PrimitiveLineStrip:
		mode = gl.LINE_STRIP
	default:
		return
	}
	gl.DrawArrays(mode, int32(rg.First), int32(rg.Count))
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// Position (location = 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// Color code (location = 1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, vertexStride, 2*4)
	gl.EnableVertexAttribArray(1)
	// Animation type (location = 2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(2)

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex buffers created",
		zap.Uint32("vao", r.vao),
		zap.Uint32("vbo", r.vbo),
	)
}
