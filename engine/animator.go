package engine

import (
	"errors"
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/fountain/parameter"
	"github.com/lixenwraith/fountain/physics"
	"github.com/lixenwraith/fountain/render"
	"github.com/lixenwraith/fountain/system"
)

var (
	// ErrNoSurface is returned when the drawing surface is missing or has no area
	ErrNoSurface = errors.New("drawing surface unavailable")
	// ErrNoTypesetter is returned when glyph shapes cannot be rasterized
	ErrNoTypesetter = errors.New("typesetter required")
)

// LaunchListener is notified after a recycle pass relaunched at least one particle
type LaunchListener func(relaunched int)

// Options configures an Animator; zero values take parameter defaults
type Options struct {
	PoolSize        int
	RecycleInterval int
	// Reshuffle picks a fresh random shape on recycle instead of keeping the old one
	Reshuffle  bool
	Spawner    *system.Spawner
	Typesetter render.Typesetter
	OnLaunch   LaunchListener
}

// Stats is a snapshot of loop counters
type Stats struct {
	Ticks    uint64
	Recycled uint64
	Active   int
	Size     int
}

// Animator owns the particle pool and drives the per-frame draw/update cycle
// All state is mutated from Tick on the host's frame goroutine
type Animator struct {
	opts      Options
	pool      *Pool
	surface   render.Surface
	scheduler FrameScheduler

	width, height float64
	spawnX        float64
	spawnY        float64

	tick  uint64
	stats Stats
}

func NewAnimator(opts Options) *Animator {
	if opts.PoolSize <= 0 {
		opts.PoolSize = parameter.NumParticles
	}
	if opts.RecycleInterval <= 0 {
		opts.RecycleInterval = parameter.RecycleInterval
	}
	if opts.Spawner == nil {
		opts.Spawner = system.NewSeededSpawner(rand.Uint64(), parameter.DefaultFontFamily)
	}
	return &Animator{
		opts: opts,
		pool: NewPool(opts.PoolSize),
	}
}

// Start binds the surface, populates every slot at the spawn point and requests the first frame
// Positive width and height resize a Resizer surface (full-screen mode); otherwise the
// surface's own size is used. A nil scheduler leaves ticking to the caller.
func (a *Animator) Start(s render.Surface, scheduler FrameScheduler, width, height int) error {
	if s == nil {
		return ErrNoSurface
	}
	if a.opts.Typesetter == nil {
		return ErrNoTypesetter
	}

	if width > 0 && height > 0 {
		if r, ok := s.(render.Resizer); ok {
			r.Resize(width, height)
		}
	}

	w, h := s.Size()
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: surface size %dx%d", ErrNoSurface, w, h)
	}

	a.surface = s
	a.scheduler = scheduler
	a.width, a.height = float64(w), float64(h)
	a.spawnX, a.spawnY = a.width/2, a.height

	for i := 0; i < a.pool.Len(); i++ {
		p := a.pool.At(i)
		p.Transform = a.opts.Spawner.SpawnTransform(a.spawnX, a.spawnY)
		p.Shape = a.opts.Spawner.SpawnShape(a.opts.Typesetter)
	}
	a.refreshStats()

	log.Printf("animator started: %dx%d, %d particles, recycle every %d ticks, reshuffle=%v",
		w, h, a.pool.Len(), a.opts.RecycleInterval, a.opts.Reshuffle)

	if a.scheduler != nil {
		a.scheduler.RequestFrame(a.Tick)
	}
	return nil
}

// Tick runs one frame: clear, then per slot draw before advancing physics,
// then the recycle pass on every RecycleInterval-th tick, then re-requests itself
// Retired slots are skipped; a slot is drawn in the frame it crosses the bound
// because drawing precedes the physics step that retires it
func (a *Animator) Tick() {
	if a.surface == nil {
		return
	}

	a.surface.Clear()

	for i := 0; i < a.pool.Len(); i++ {
		p := a.pool.At(i)
		if !p.Transform.Active {
			// Retired slots stay hidden until recycled rather than frozen on screen
			continue
		}
		p.Draw(a.surface)
		physics.Advance(&p.Transform, a.width, a.height)
	}

	relaunched := 0
	if a.tick%uint64(a.opts.RecycleInterval) == 0 {
		relaunched = a.recycle()
	}
	a.tick++

	a.stats.Recycled += uint64(relaunched)
	a.refreshStats()

	if relaunched > 0 && a.opts.OnLaunch != nil {
		a.opts.OnLaunch(relaunched)
	}

	if a.scheduler != nil {
		a.scheduler.RequestFrame(a.Tick)
	}
}

// recycle rewrites the transform of every retired slot in place, returns the count
func (a *Animator) recycle() int {
	n := 0
	for i := 0; i < a.pool.Len(); i++ {
		p := a.pool.At(i)
		if p.Transform.Active {
			continue
		}
		p.Transform = a.opts.Spawner.SpawnTransform(a.spawnX, a.spawnY)
		if a.opts.Reshuffle {
			p.Shape = a.opts.Spawner.SpawnShape(a.opts.Typesetter)
		}
		n++
	}
	return n
}

func (a *Animator) refreshStats() {
	a.stats.Ticks = a.tick
	a.stats.Active = a.pool.ActiveCount()
	a.stats.Size = a.pool.Len()
}

// Stats returns a copy of the loop counters
func (a *Animator) Stats() Stats {
	return a.stats
}

// Pool exposes the particle arena for inspection
func (a *Animator) Pool() *Pool {
	return a.pool
}

// Bounds returns the surface size captured at Start
func (a *Animator) Bounds() (width, height float64) {
	return a.width, a.height
}
