package core

import "github.com/lixenwraith/fountain/vmath"

// Transform is the mutable motion state of one particle
// Units are surface pixels per tick; no delta-time scaling is applied
type Transform struct {
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Accel  vmath.Vec2
	Active bool
}
