package core

import (
	"github.com/lixenwraith/fountain/render"
)

// Particle couples a transform with the shape drawn at its position
type Particle struct {
	Transform Transform
	Shape     render.Shape
}

// Draw renders the shape at the current position, active or not
func (p *Particle) Draw(s render.Surface) {
	if p.Shape == nil {
		return
	}
	p.Shape.Draw(s, p.Transform.Pos)
}
