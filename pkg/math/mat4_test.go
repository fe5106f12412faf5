package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m.At(0, 3) != 5 || m.At(1, 3) != 10 || m.At(2, 3) != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestSetAt(t *testing.T) {
	var m Mat4
	m.Set(1, 3, 7)
	if m[13] != 7 {
		t.Errorf("Set(1, 3) should write index 13, got %v", m)
	}
	if m.At(1, 3) != 7 {
		t.Errorf("At(1, 3) = %f, want 7", m.At(1, 3))
	}
}

func TestTransformVec2(t *testing.T) {
	m := Translate(10, 20, 0).Mul(Scale(2, 2, 1))
	got := m.TransformVec2(Vec2{1, 2})
	want := Vec2{12, 24}
	if got != want {
		t.Errorf("TransformVec2: got %v, want %v", got, want)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(math.Pi / 2)
	got := m.TransformVec2(Vec2{1, 0})

	// Counter-clockwise: (1,0) goes to (0,1)
	if abs(got.X) > 0.001 || abs(got.Y-1) > 0.001 {
		t.Errorf("RotateZ 90: got %v, want (0, 1)", got)
	}
}

func TestAboutKeepsPivotFixed(t *testing.T) {
	pivot := Vec2{3, -2}
	for _, m := range []Mat4{RotateZ(0.7), Scale(0.5, 0.5, 1)} {
		got := About(m, pivot).TransformVec2(pivot)
		if abs(got.X-pivot.X) > 1e-5 || abs(got.Y-pivot.Y) > 1e-5 {
			t.Errorf("pivot moved to %v", got)
		}
	}
}

func TestInverse(t *testing.T) {
	m := Translate(1, -2, 0).Mul(RotateZ(0.3)).Mul(Scale(2, 3, 1))
	got := m.Mul(m.Inverse())
	if !got.ApproxEqual(Identity(), 1e-5) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
}

func TestInverseSingular(t *testing.T) {
	var zero Mat4
	if zero.Inverse() != Identity() {
		t.Error("singular matrix should invert to identity")
	}
}

func TestViewport(t *testing.T) {
	// Square 100x100 target, aspect 1.
	vp := Viewport(100, 100, 1)

	tests := []struct {
		in   Vec2
		want Vec2
	}{
		{Vec2{-1, -1}, Vec2{-0.5, -0.5}},
		{Vec2{0, 0}, Vec2{49.5, 49.5}},
		{Vec2{1, 1}, Vec2{99.5, 99.5}},
	}
	for _, tt := range tests {
		got := vp.TransformVec2(tt.in)
		if abs(got.X-tt.want.X) > 1e-4 || abs(got.Y-tt.want.Y) > 1e-4 {
			t.Errorf("Viewport(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestScaleLinear(t *testing.T) {
	m := Translate(4, 5, 0)
	m.ScaleLinear(2)
	if m.At(0, 0) != 2 || m.At(1, 1) != 2 {
		t.Errorf("ScaleLinear should scale the 2x2 block, got %v", m)
	}
	if m.At(0, 3) != 4 || m.At(2, 2) != 1 {
		t.Errorf("ScaleLinear should leave translation and z alone, got %v", m)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
