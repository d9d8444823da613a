package vmath

import (
	"math"
	"math/rand/v2"
)

// maxUnitRetries bounds redraws of a zero-length sample in RandomUnit
const maxUnitRetries = 8

// Vec2 is a float64 2D vector in screen units (y grows downward)
type Vec2 struct {
	X, Y float64
}

// Up is the fallback unit vector, pointing toward the top of the screen
var Up = Vec2{X: 0, Y: -1}

// Add returns a + b
func Add(a, b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Scale multiplies both components by s
func Scale(s float64, v Vec2) Vec2 {
	return Vec2{X: s * v.X, Y: s * v.Y}
}

// Length returns the Euclidean norm
func Length(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length, zero-safe: a zero vector stays zero
func Normalize(v Vec2) Vec2 {
	l := Length(v)
	if l == 0 {
		return Vec2{}
	}
	inv := 1.0 / l
	return Vec2{X: v.X * inv, Y: v.Y * inv}
}

// Truncate drops the fractional part of both components, rounding toward zero
func Truncate(v Vec2) Vec2 {
	return Vec2{X: math.Trunc(v.X), Y: math.Trunc(v.Y)}
}

// RandomUnit draws x in [-xRange/2, xRange/2) and y in [-yRange/2, yRange/2)
// and normalizes the sample. Zero-length draws are redrawn; if every attempt
// is degenerate (both ranges zero) the result is Up.
func RandomUnit(rng *rand.Rand, xRange, yRange float64) Vec2 {
	for range maxUnitRetries {
		v := Vec2{
			X: -xRange/2 + rng.Float64()*xRange,
			Y: -yRange/2 + rng.Float64()*yRange,
		}
		if Length(v) > 0 {
			return Normalize(v)
		}
	}
	return Up
}
