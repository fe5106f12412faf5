package export

import (
	"fmt"
	"image/color"
	"math"
)

// Uncolored is the color code freshly inserted triangles carry.
const Uncolored = -1

// palette maps color codes -1..9 (index code+1) to their fill colors.
var palette = [...]color.RGBA{
	{R: 0xBF, G: 0x33, B: 0x2E, A: 0xFF}, // -1 uncolored
	{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}, // 0
	{R: 0xF0, G: 0x80, B: 0x80, A: 0xFF}, // 1 light coral
	{R: 0xFF, G: 0xA5, B: 0x00, A: 0xFF}, // 2 orange
	{R: 0xF0, G: 0xE6, B: 0x8C, A: 0xFF}, // 3 khaki
	{R: 0x90, G: 0xEE, B: 0x90, A: 0xFF}, // 4 light green
	{R: 0x66, G: 0xFA, B: 0xAA, A: 0xFF}, // 5
	{R: 0x20, G: 0xB2, B: 0xAA, A: 0xFF}, // 6 light sea green
	{R: 0x41, G: 0x69, B: 0xE1, A: 0xFF}, // 7 royal blue
	{R: 0x7B, G: 0x68, B: 0xEE, A: 0xFF}, // 8 medium slate blue
	{R: 0xFF, G: 0xB6, B: 0xC1, A: 0xFF}, // 9 light pink
}

// Color returns the fill color for a vertex color code. ok is false for
// codes outside -1..9 and for non-integral codes.
func Color(code float32) (c color.RGBA, ok bool) {
	if code != float32(math.Trunc(float64(code))) {
		return color.RGBA{}, false
	}
	i := int(code) + 1
	if i < 0 || i >= len(palette) {
		return color.RGBA{}, false
	}
	return palette[i], true
}

// Hex returns the "#RRGGBB" form of Color. Unmapped codes return "", false.
func Hex(code float32) (string, bool) {
	c, ok := Color(code)
	if !ok {
		return "", false
	}
	return hexOf(c), true
}

// Palette returns the colors for codes -1..9 in order, normalized to 0..1,
// for upload as a shader uniform array.
func Palette() [][3]float32 {
	out := make([][3]float32, len(palette))
	for i, c := range palette {
		out[i] = [3]float32{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
	}
	return out
}

func hexOf(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// resolve maps a code to a color, falling back to the uncolored color so
// every exported triangle gets a valid fill.
func resolve(code float32) color.RGBA {
	if c, ok := Color(code); ok {
		return c
	}
	return palette[0]
}
