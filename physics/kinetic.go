package physics

import (
	"github.com/lixenwraith/fountain/core"
	"github.com/lixenwraith/fountain/parameter"
	"github.com/lixenwraith/fountain/vmath"
)

// Advance steps a transform by one tick with explicit Euler integration
// Retires the transform instead of moving it once it leaves the vertical range
// [0, screenHeight+CullSlack]; horizontal position is never bounded
func Advance(t *core.Transform, screenWidth, screenHeight float64) {
	if !t.Active {
		return
	}

	if OutOfBounds(t.Pos, screenHeight) {
		t.Active = false
		return
	}

	// Snap to whole pixels after the position step
	t.Pos = vmath.Truncate(vmath.Add(t.Pos, t.Vel))
	t.Vel = vmath.Add(t.Vel, t.Accel)
}

// OutOfBounds reports whether pos is above the top edge or past the slack below the bottom
func OutOfBounds(pos vmath.Vec2, screenHeight float64) bool {
	return pos.Y < 0 || pos.Y > screenHeight+parameter.CullSlack
}
