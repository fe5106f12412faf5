package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	gomath "math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/vecedit/pkg/math"
)

// curveWidth is the stroke width of the Bezier curve in preview pixels.
const curveWidth = 2

// Rasterize renders a flat-shaded preview of the scene. Each triangle is
// filled with the mean of its vertex colors; the image origin is top-left.
func Rasterize(s Scene) (*image.RGBA, error) {
	w, h := int(s.Width), int(s.Height)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid raster size %dx%d", w, h)
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	vp := s.Viewport()
	toPixel := func(p math.Vec2) math.Vec2 {
		q := vp.TransformVec2(p)
		// Flip Y: the viewport is bottom-left based, images are top-left.
		return math.Vec2{X: q.X, Y: s.Height - q.Y}
	}

	for _, tri := range s.Triangles {
		r := vector.NewRasterizer(w, h)
		a, b, c := toPixel(tri.Points[0]), toPixel(tri.Points[1]), toPixel(tri.Points[2])
		r.MoveTo(a.X, a.Y)
		r.LineTo(b.X, b.Y)
		r.LineTo(c.X, c.Y)
		r.ClosePath()
		r.Draw(img, img.Bounds(), image.NewUniform(meanColor(tri.Colors)), image.Point{})
	}

	if len(s.Curve) > 1 {
		r := vector.NewRasterizer(w, h)
		for i := 1; i < len(s.Curve); i++ {
			strokeSegment(r, toPixel(s.Curve[i-1]), toPixel(s.Curve[i]), curveWidth)
		}
		r.Draw(img, img.Bounds(), image.Black, image.Point{})
	}

	return img, nil
}

// WritePNG rasterizes the scene and replaces the file at path with it.
func WritePNG(path string, s Scene) error {
	img, err := Rasterize(s)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return writeFileAtomic(path, buf.Bytes())
}

// strokeSegment adds the quad covering segment ab at the given width.
func strokeSegment(r *vector.Rasterizer, a, b math.Vec2, width float32) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return
	}
	// Unit normal scaled to half the width.
	n := math.Vec2{X: -d.Y / l, Y: d.X / l}.Scale(width / 2)
	r.MoveTo(a.X+n.X, a.Y+n.Y)
	r.LineTo(b.X+n.X, b.Y+n.Y)
	r.LineTo(b.X-n.X, b.Y-n.Y)
	r.LineTo(a.X-n.X, a.Y-n.Y)
	r.ClosePath()
}

func meanColor(codes [3]float32) color.RGBA {
	var r, g, b float64
	for _, code := range codes {
		c := resolve(code)
		r += float64(c.R)
		g += float64(c.G)
		b += float64(c.B)
	}
	return color.RGBA{
		R: uint8(gomath.Round(r / 3)),
		G: uint8(gomath.Round(g / 3)),
		B: uint8(gomath.Round(b / 3)),
		A: 0xFF,
	}
}
