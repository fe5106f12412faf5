package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Distance(t *testing.T) {
	got := Vec2{1, 1}.Distance(Vec2{4, 5})
	if got != 5 {
		t.Errorf("Vec2.Distance() = %v, want 5", got)
	}
}

func TestCentroid(t *testing.T) {
	got := Centroid(Vec2{0, 0}, Vec2{3, 0}, Vec2{0, 3})
	want := Vec2{1, 1}
	if got != want {
		t.Errorf("Centroid() = %v, want %v", got, want)
	}
}

func TestBarycentric(t *testing.T) {
	a, b, c := Vec2{0, 0}, Vec2{1, 0}, Vec2{0, 1}

	tests := []struct {
		name   string
		p      Vec2
		inside bool
	}{
		{"centroid", Centroid(a, b, c), true},
		{"near vertex a", Vec2{0.01, 0.01}, true},
		{"outside", Vec2{1, 1}, false},
		{"on edge", Vec2{0.5, 0}, false},
		{"negative side", Vec2{-0.1, 0.2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, ok := Barycentric(tt.p, a, b, c)
			if !ok {
				t.Fatal("unexpected degenerate triangle")
			}
			inside := w[0] > 0 && w[1] > 0 && w[2] > 0
			if inside != tt.inside {
				t.Errorf("weights %v: inside = %v, want %v", w, inside, tt.inside)
			}
			sum := w[0] + w[1] + w[2]
			if abs(sum-1) > 1e-5 {
				t.Errorf("weights sum to %f, want 1", sum)
			}
		})
	}
}

func TestBarycentricDegenerate(t *testing.T) {
	_, ok := Barycentric(Vec2{0, 0}, Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 2})
	if ok {
		t.Error("collinear triangle should be reported as degenerate")
	}
}
