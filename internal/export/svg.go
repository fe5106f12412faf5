// Package export writes editor snapshots as SVG documents and PNG previews.
package export

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Faultbox/vecedit/pkg/math"
)

// Triangle is one committed triangle in world space.
type Triangle struct {
	Points [3]math.Vec2 // model-transformed vertices
	Colors [3]float32   // per-vertex color codes
}

// Scene is everything a snapshot needs: the viewport it was taken at and the
// world-space geometry.
type Scene struct {
	Width     float32
	Height    float32
	Aspect    float32 // height / width
	Triangles []Triangle
	Curve     []math.Vec2 // sampled Bezier curve, empty when none is authored
}

// Viewport returns the matrix taking world coordinates to snapshot pixels.
func (s Scene) Viewport() math.Mat4 {
	return math.Viewport(s.Width, s.Height, s.Aspect)
}

type svgDocument struct {
	XMLName xml.Name `xml:"svg"`
	Xmlns   string   `xml:"xmlns,attr"`
	Version string   `xml:"version,attr"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	Group   svgGroup `xml:"g"`
}

type svgGroup struct {
	Transform  string        `xml:"transform,attr"`
	Background svgRect       `xml:"rect"`
	Gradients  []svgGradient `xml:"defs>linearGradient"`
	Paths      []svgPath     `xml:"path"`
	Curve      *svgPolyline  `xml:"polyline,omitempty"`
}

type svgRect struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Fill   string `xml:"fill,attr"`
}

type svgGradient struct {
	ID    string    `xml:"id,attr"`
	Units string    `xml:"gradientUnits,attr"`
	X1    string    `xml:"x1,attr"`
	Y1    string    `xml:"y1,attr"`
	X2    string    `xml:"x2,attr"`
	Y2    string    `xml:"y2,attr"`
	Stops []svgStop `xml:"stop"`
}

type svgStop struct {
	Offset  string `xml:"offset,attr"`
	Color   string `xml:"stop-color,attr"`
	Opacity string `xml:"stop-opacity,attr,omitempty"`
}

type svgPath struct {
	D    string `xml:"d,attr"`
	Fill string `xml:"fill,attr"`
}

type svgPolyline struct {
	Points      string `xml:"points,attr"`
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
}

// EncodeSVG writes the scene as an SVG document. The y axis is flipped by the
// root group so world "up" is image "up".
func EncodeSVG(w io.Writer, s Scene) error {
	doc := svgDocument{
		Xmlns:   "http://www.w3.org/2000/svg",
		Version: "1.1",
		Width:   num(s.Width),
		Height:  num(s.Height),
		Group: svgGroup{
			Transform: "matrix(1 0 0 -1 0 " + num(s.Height) + ")",
			Background: svgRect{
				X: "0", Y: "0",
				Width:  num(s.Width),
				Height: num(s.Height),
				Fill:   "white",
			},
		},
	}

	vp := s.Viewport()
	for i, tri := range s.Triangles {
		var px [3]math.Vec2
		for k, p := range tri.Points {
			px[k] = vp.TransformVec2(p)
		}
		n := normalize(px)
		mid := n[1].Add(n[2]).Scale(0.5)

		edgeID := fmt.Sprintf("tri%d-edge", i)
		fadeID := fmt.Sprintf("tri%d-fade", i)
		c0, c1, c2 := hexOf(resolve(tri.Colors[0])), hexOf(resolve(tri.Colors[1])), hexOf(resolve(tri.Colors[2]))

		doc.Group.Gradients = append(doc.Group.Gradients,
			svgGradient{
				ID: edgeID, Units: "objectBoundingBox",
				X1: num(n[1].X), Y1: num(n[1].Y), X2: num(n[2].X), Y2: num(n[2].Y),
				Stops: []svgStop{
					{Offset: "0%", Color: c1},
					{Offset: "100%", Color: c2},
				},
			},
			svgGradient{
				ID: fadeID, Units: "objectBoundingBox",
				X1: num(n[0].X), Y1: num(n[0].Y), X2: num(mid.X), Y2: num(mid.Y),
				Stops: []svgStop{
					{Offset: "0%", Color: c0},
					{Offset: "100%", Color: c0, Opacity: "0"},
				},
			},
		)

		d := pathData(px)
		doc.Group.Paths = append(doc.Group.Paths,
			svgPath{D: d, Fill: "url(#" + edgeID + ")"},
			svgPath{D: d, Fill: "url(#" + fadeID + ")"},
		)
	}

	if len(s.Curve) > 1 {
		pts := make([]string, len(s.Curve))
		for i, p := range s.Curve {
			q := vp.TransformVec2(p)
			pts[i] = num(q.X) + "," + num(q.Y)
		}
		doc.Group.Curve = &svgPolyline{
			Points:      strings.Join(pts, " "),
			Fill:        "none",
			Stroke:      "#000000",
			StrokeWidth: "2",
		}
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding svg: %w", err)
	}
	return enc.Flush()
}

// WriteSVG encodes the scene and replaces the file at path with it.
func WriteSVG(path string, s Scene) error {
	var buf bytes.Buffer
	if err := EncodeSVG(&buf, s); err != nil {
		return err
	}
	return writeFileAtomic(path, buf.Bytes())
}

// normalize maps points into their bounding box as 0..1 coordinates. A zero
// extent on an axis maps that axis to 0.
func normalize(p [3]math.Vec2) [3]math.Vec2 {
	minX, maxX := p[0].X, p[0].X
	minY, maxY := p[0].Y, p[0].Y
	for _, q := range p[1:] {
		minX, maxX = min(minX, q.X), max(maxX, q.X)
		minY, maxY = min(minY, q.Y), max(maxY, q.Y)
	}
	w, h := maxX-minX, maxY-minY

	var out [3]math.Vec2
	for i, q := range p {
		if w > 0 {
			out[i].X = (q.X - minX) / w
		}
		if h > 0 {
			out[i].Y = (q.Y - minY) / h
		}
	}
	return out
}

func pathData(p [3]math.Vec2) string {
	return "M " + num(p[0].X) + "," + num(p[0].Y) +
		" L " + num(p[1].X) + "," + num(p[1].Y) +
		" " + num(p[2].X) + "," + num(p[2].Y) + " Z"
}

func num(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
