package editor

import (
	"github.com/Faultbox/vecedit/pkg/math"
)

// None marks an empty triangle or vertex selection.
const None = -1

// Space selects which positions the nearest-vertex search compares.
type Space int

const (
	// SpaceRaw uses the stored vertex positions.
	SpaceRaw Space = iota
	// SpaceWorld applies the owning triangle's model matrix first.
	SpaceWorld
)

// HitTest returns the topmost committed triangle containing p in world space,
// or None. Triangles are scanned newest first and the first strict interior
// hit wins; points on an edge and degenerate triangles never hit.
func (s *Scene) HitTest(p math.Vec2) int {
	for t := s.TriangleCount() - 1; t >= 0; t-- {
		w := s.WorldTriangle(t)
		b, ok := math.Barycentric(p, w[0], w[1], w[2])
		if ok && b[0] > 0 && b[1] > 0 && b[2] > 0 {
			return t
		}
	}
	return None
}

// NearestVertex returns the column in [from, to) closest to p, or None when no
// column lies strictly within radius. The range is clamped to the buffer.
func (s *Scene) NearestVertex(p math.Vec2, from, to int, space Space, radius float32) int {
	from = max(from, 0)
	to = min(to, s.Columns())

	best, dist := None, radius
	for i := from; i < to; i++ {
		v := s.verts[i].Pos()
		if space == SpaceWorld {
			v = s.worldPos(i)
		}
		if d := p.Distance(v); d < dist {
			best, dist = i, d
		}
	}
	return best
}
