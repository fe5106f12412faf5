package editor

import (
	"github.com/Faultbox/vecedit/pkg/math"
)

// Color and animation codes stored on vertices.
const (
	ColorUncolored float32 = -1
	AnimNone       float32 = 0
)

// Vertex is one column of the vertex buffer. The layout (4 packed float32)
// is what the renderer uploads as-is.
type Vertex struct {
	X, Y  float32
	Color float32 // palette code, -1 = uncolored
	Anim  float32 // animation type, 0 = none
}

// Pos returns the raw position of the vertex.
func (v Vertex) Pos() math.Vec2 {
	return math.Vec2{X: v.X, Y: v.Y}
}

// Transform holds the per-triangle matrices. Model caches
// Translation * Rotation * Scaling.
type Transform struct {
	Model       math.Mat4
	Translation math.Mat4
	Rotation    math.Mat4
	Scaling     math.Mat4
}

func identityTransform() Transform {
	id := math.Identity()
	return Transform{Model: id, Translation: id, Rotation: id, Scaling: id}
}

// compose recomputes Model from its parts.
func (t *Transform) compose() {
	t.Model = t.Translation.Mul(t.Rotation).Mul(t.Scaling)
}

// Scene is the dense vertex buffer plus one Transform per committed triangle.
// Triangle t owns vertex columns [3t, 3t+2]. Columns past 3*TriangleCount()
// are transient scratch space of the gesture in progress.
type Scene struct {
	verts  []Vertex
	xforms []Transform
}

// NewScene returns a scene holding the default triangle.
func NewScene() *Scene {
	s := &Scene{}
	s.verts = []Vertex{
		{X: 0, Y: 0.3, Color: ColorUncolored},
		{X: 0.3, Y: -0.3, Color: ColorUncolored},
		{X: -0.3, Y: -0.3, Color: ColorUncolored},
	}
	s.xforms = []Transform{identityTransform()}
	return s
}

// TriangleCount returns the number of committed triangles.
func (s *Scene) TriangleCount() int {
	return len(s.xforms)
}

// Columns returns the vertex buffer length, transient columns included.
func (s *Scene) Columns() int {
	return len(s.verts)
}

// Vertices returns the vertex buffer. The slice is owned by the scene.
func (s *Scene) Vertices() []Vertex {
	return s.verts
}

// Vertex returns column i.
func (s *Scene) Vertex(i int) Vertex {
	return s.verts[i]
}

// Transform returns the matrices of triangle t.
func (s *Scene) Transform(t int) *Transform {
	return &s.xforms[t]
}

// vertexRange returns the first column of triangle t and the column after its
// last one.
func vertexRange(t int) (first, end int) {
	return 3 * t, 3*t + 3
}

// triangleOf returns the triangle owning committed column i.
func triangleOf(i int) int {
	return i / 3
}

// committedEnd is the first transient column.
func (s *Scene) committedEnd() int {
	return 3 * s.TriangleCount()
}

// Triangle returns the raw vertices of triangle t.
func (s *Scene) Triangle(t int) [3]Vertex {
	first, _ := vertexRange(t)
	return [3]Vertex{s.verts[first], s.verts[first+1], s.verts[first+2]}
}

// WorldTriangle returns the vertices of triangle t transformed by its model.
func (s *Scene) WorldTriangle(t int) [3]math.Vec2 {
	m := s.xforms[t].Model
	tri := s.Triangle(t)
	return [3]math.Vec2{
		m.TransformVec2(tri[0].Pos()),
		m.TransformVec2(tri[1].Pos()),
		m.TransformVec2(tri[2].Pos()),
	}
}

// Barycenter returns the mean of the raw vertices of triangle t.
func (s *Scene) Barycenter(t int) math.Vec2 {
	tri := s.Triangle(t)
	return math.Centroid(tri[0].Pos(), tri[1].Pos(), tri[2].Pos())
}

// worldPos returns column i transformed by its triangle's model. Transient
// columns have no model and are returned raw.
func (s *Scene) worldPos(i int) math.Vec2 {
	p := s.verts[i].Pos()
	if i >= s.committedEnd() {
		return p
	}
	return s.xforms[triangleOf(i)].Model.TransformVec2(p)
}

func (s *Scene) setPos(i int, p math.Vec2) {
	s.verts[i].X, s.verts[i].Y = p.X, p.Y
}

func (s *Scene) moveBy(i int, d math.Vec2) {
	s.verts[i].X += d.X
	s.verts[i].Y += d.Y
}

// appendTransient adds n scratch columns at p.
func (s *Scene) appendTransient(n int, p math.Vec2) {
	for i := 0; i < n; i++ {
		s.verts = append(s.verts, Vertex{X: p.X, Y: p.Y})
	}
}

// dropTransient truncates the buffer to the committed triangles.
func (s *Scene) dropTransient() {
	s.verts = s.verts[:s.committedEnd()]
}

// commit turns the first three transient columns into a triangle.
// It reports false when there are fewer than three.
func (s *Scene) commit() bool {
	first, end := vertexRange(s.TriangleCount())
	if end > len(s.verts) {
		return false
	}
	for i := first; i < end; i++ {
		s.verts[i].Color = ColorUncolored
		s.verts[i].Anim = AnimNone
	}
	s.xforms = append(s.xforms, identityTransform())
	return true
}

// deleteTriangle removes triangle t by moving the last triangle into its slot
// and truncating. Any transient columns are discarded. The index of the former
// last triangle becomes t.
func (s *Scene) deleteTriangle(t int) bool {
	n := s.TriangleCount()
	if t < 0 || t >= n {
		return false
	}
	last := n - 1
	dst, _ := vertexRange(t)
	src, _ := vertexRange(last)
	copy(s.verts[dst:dst+3], s.verts[src:src+3])
	s.xforms[t] = s.xforms[last]

	s.xforms = s.xforms[:last]
	s.verts = s.verts[:3*last]
	return true
}
