package vmath

import (
	"math"
	"math/rand/v2"
	"testing"
)

const epsilon = 1e-9

func TestNormalizeUnitLength(t *testing.T) {
	tests := []Vec2{
		{X: 3, Y: 4},
		{X: -1, Y: 0},
		{X: 0.0001, Y: -0.0002},
		{X: 1e6, Y: 1e6},
	}

	for _, v := range tests {
		n := Normalize(v)
		if got := Length(n); math.Abs(got-1) > epsilon {
			t.Errorf("Expected unit length for %v, got %f", v, got)
		}
	}
}

func TestNormalizeZero(t *testing.T) {
	n := Normalize(Vec2{})
	if n != (Vec2{}) {
		t.Errorf("Expected zero vector, got %v", n)
	}
	if math.IsNaN(n.X) || math.IsNaN(n.Y) {
		t.Error("Expected no NaN components")
	}
}

func TestScaleAndAdd(t *testing.T) {
	v := Scale(2.5, Vec2{X: 2, Y: -4})
	if v.X != 5 || v.Y != -10 {
		t.Errorf("Expected (5, -10), got %v", v)
	}

	s := Add(Vec2{X: 1, Y: 2}, Vec2{X: -3, Y: 0.5})
	if s.X != -2 || s.Y != 2.5 {
		t.Errorf("Expected (-2, 2.5), got %v", s)
	}
}

func TestLength(t *testing.T) {
	if got := Length(Vec2{X: 3, Y: 4}); got != 5 {
		t.Errorf("Expected 5, got %f", got)
	}
}

func TestTruncateTowardZero(t *testing.T) {
	tests := []struct {
		in, want Vec2
	}{
		{Vec2{X: 102.7, Y: 297.2}, Vec2{X: 102, Y: 297}},
		{Vec2{X: -1.9, Y: -0.5}, Vec2{X: -1, Y: 0}},
		{Vec2{X: 4, Y: -4}, Vec2{X: 4, Y: -4}},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in); got != tt.want {
			t.Errorf("Truncate(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestRandomUnitRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 10000; i++ {
		v := RandomUnit(rng, 1, 6)
		if math.Abs(Length(v)-1) > epsilon {
			t.Fatalf("Sample %d: expected unit vector, got %v (len %f)", i, v, Length(v))
		}
	}
}

func TestRandomUnitDegenerate(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	v := RandomUnit(rng, 0, 0)
	if v != Up {
		t.Errorf("Expected fallback %v for zero ranges, got %v", Up, v)
	}
}

func TestRandomUnitSingleAxis(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 1000; i++ {
		v := RandomUnit(rng, 0, 2)
		if v.X != 0 {
			t.Fatalf("Expected x=0 with zero x range, got %v", v)
		}
		if math.Abs(math.Abs(v.Y)-1) > epsilon {
			t.Fatalf("Expected |y|=1, got %v", v)
		}
	}
}
