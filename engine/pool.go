package engine

import "github.com/lixenwraith/fountain/core"

// Pool is a fixed-capacity arena of particle slots indexed 0..N-1
// Slots are rewritten in place; the slice is never resized after creation
type Pool struct {
	slots []core.Particle
}

func NewPool(size int) *Pool {
	return &Pool{slots: make([]core.Particle, size)}
}

// Len returns the fixed slot count
func (p *Pool) Len() int {
	return len(p.slots)
}

// At returns the slot at index i for in-place mutation
func (p *Pool) At(i int) *core.Particle {
	return &p.slots[i]
}

// ActiveCount returns the number of slots with an active transform
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Transform.Active {
			n++
		}
	}
	return n
}
