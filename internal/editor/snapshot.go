package editor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/vecedit/internal/export"
	"github.com/Faultbox/vecedit/pkg/math"
)

// ErrNoViewport is returned by exports taken before SetViewport.
var ErrNoViewport = errors.New("viewport size not set")

// ExportScene returns the committed triangles in world space at the current
// viewport size. The authored Bezier curve is included once it is sampled.
func (e *Engine) ExportScene() export.Scene {
	s := export.Scene{
		Width:     e.width,
		Height:    e.height,
		Aspect:    e.aspect,
		Triangles: make([]export.Triangle, 0, e.scene.TriangleCount()),
	}
	for t := 0; t < e.scene.TriangleCount(); t++ {
		tri := e.scene.Triangle(t)
		s.Triangles = append(s.Triangles, export.Triangle{
			Points: e.scene.WorldTriangle(t),
			Colors: [3]float32{tri[0].Color, tri[1].Color, tri[2].Color},
		})
	}

	if e.mode == ModeBezier && e.step >= 4 {
		first := e.scene.committedEnd() + bezierControls
		if e.scene.Columns() >= first+len(e.samples) {
			s.Curve = make([]math.Vec2, len(e.samples))
			for j := range s.Curve {
				s.Curve[j] = e.scene.verts[first+j].Pos()
			}
		}
	}
	return s
}

// Export writes the current scene as an SVG document to path, replacing any
// existing file.
func (e *Engine) Export(path string) error {
	if e.width <= 0 || e.height <= 0 {
		return ErrNoViewport
	}
	if err := export.WriteSVG(path, e.ExportScene()); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// Snapshot writes the next numbered snapshot into the export directory and
// returns the SVG path. A PNG preview is written next to it when enabled.
// The counter only advances on success, and a failed snapshot leaves no SVG
// behind.
func (e *Engine) Snapshot() (string, error) {
	name := fmt.Sprintf("%s%d", e.opts.ExportPrefix, e.snapshots)
	svgPath := filepath.Join(e.opts.ExportDir, name+".svg")
	if err := e.Export(svgPath); err != nil {
		return "", err
	}

	if e.opts.ExportPNG {
		pngPath := filepath.Join(e.opts.ExportDir, name+".png")
		if err := export.WritePNG(pngPath, e.ExportScene()); err != nil {
			if rmErr := os.Remove(svgPath); rmErr != nil {
				e.log.Warn("failed to remove partial snapshot", zap.String("path", svgPath), zap.Error(rmErr))
			}
			return "", fmt.Errorf("export %s: %w", pngPath, err)
		}
	}

	e.snapshots++
	e.log.Debug("snapshot written", zap.String("path", svgPath), zap.Int("triangles", e.scene.TriangleCount()))
	return svgPath, nil
}

// Dump logs the view, the transforms and the vertex buffer.
func (e *Engine) Dump() {
	e.log.Info("editor state",
		zap.Stringer("mode", e.mode),
		zap.Int("step", e.step),
		zap.Int("selected", e.selected),
		zap.Int("vertex", e.vertex),
		zap.Bool("held", e.held),
		zap.Int("triangles", e.scene.TriangleCount()),
		zap.Int("columns", e.scene.Columns()),
		zap.Float32s("view", e.view[:]),
		zap.Any("transforms", e.scene.xforms),
		zap.Any("vertices", e.scene.verts),
	)
}
