package system

import (
	"math/rand/v2"

	"github.com/lixenwraith/fountain/core"
	"github.com/lixenwraith/fountain/parameter"
	"github.com/lixenwraith/fountain/render"
	"github.com/lixenwraith/fountain/vmath"
)

// emojiRanges are inclusive code point ranges of common pictographs
var emojiRanges = [][2]rune{
	{0x1f330, 0x1f335},
	{0x1f337, 0x1f37c},
	{0x1f380, 0x1f393},
	{0x1f3a0, 0x1f3c4},
	{0x1f3c6, 0x1f3ca},
	{0x1f3e0, 0x1f3f0},
	{0x1f400, 0x1f43e},
	{0x1f440, 0x1f440},
	{0x1f442, 0x1f4f7},
	{0x1f4f9, 0x1f4fc},
}

// Spawner draws all launch randomness from one seedable source
// Owned by the frame goroutine, not safe for concurrent use
type Spawner struct {
	rng    *rand.Rand
	family string
}

// NewSpawner creates a spawner; family selects the glyph font family
func NewSpawner(rng *rand.Rand, family string) *Spawner {
	return &Spawner{rng: rng, family: family}
}

// NewSeededSpawner creates a spawner with a deterministic PCG source
func NewSeededSpawner(seed uint64, family string) *Spawner {
	return NewSpawner(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), family)
}

// RandomInt returns an integer in [lo, hi], inclusive
func (s *Spawner) RandomInt(lo, hi int) int {
	return s.rng.IntN(hi-lo+1) + lo
}

// SpawnVelocity returns an upward launch velocity; Y is always strictly negative
func (s *Spawner) SpawnVelocity() vmath.Vec2 {
	dir := vmath.RandomUnit(s.rng, parameter.SpawnRangeX, parameter.SpawnRangeY)
	if dir.Y > 0 {
		dir.Y = -dir.Y
	}
	speed := s.rng.Float64() * parameter.SpawnSpeedMax
	vel := vmath.Scale(speed, dir)
	vel.Y -= parameter.SpawnLift
	return vel
}

// SpawnTransform returns an active transform at (x, y) with a fresh launch velocity
func (s *Spawner) SpawnTransform(x, y float64) core.Transform {
	return core.Transform{
		Pos:    vmath.Vec2{X: x, Y: y},
		Vel:    s.SpawnVelocity(),
		Accel:  vmath.Vec2{X: 0, Y: parameter.Gravity},
		Active: true,
	}
}

// SpawnShape makes one draw and picks circle, glyph or rectangle by ordered thresholds
func (s *Spawner) SpawnShape(ts render.Typesetter) render.Shape {
	p := s.rng.Float64()
	switch {
	case p < parameter.ChanceCircle:
		st := render.DefaultCircleStyle()
		st.Radius = parameter.SpawnCircleRadius
		st.Fill = s.RandomColor(false)
		st.Border = s.RandomColor(false)
		return render.NewCircle(st)

	case p < parameter.ChanceGlyph:
		return render.NewGlyph(ts, render.GlyphStyle{
			Text:   s.RandomEmoji(),
			Size:   float64(parameter.GlyphSizeMin + s.rng.IntN(parameter.GlyphSizeMax-parameter.GlyphSizeMin)),
			Family: s.family,
			Fill:   s.RandomColor(false),
		})

	default:
		st := render.DefaultRectangleStyle()
		st.Fill = s.RandomColor(false)
		st.Border = s.RandomColor(false)
		return render.NewRectangle(st)
	}
}

// RandomEmoji picks a range uniformly, then a code point uniformly within it
func (s *Spawner) RandomEmoji() string {
	r := emojiRanges[s.rng.IntN(len(emojiRanges))]
	return string(rune(s.RandomInt(int(r[0]), int(r[1]))))
}

// RandomColor returns channels in [ColorChannelMin, ColorChannelMax]
// alpha is drawn from [ColorAlphaMin, 1) when requested, otherwise 1
func (s *Spawner) RandomColor(alpha bool) render.Color {
	a := 1.0
	if alpha {
		a = parameter.ColorAlphaMin + s.rng.Float64()*(1-parameter.ColorAlphaMin)
	}
	return render.Color{
		R: uint8(s.RandomInt(parameter.ColorChannelMin, parameter.ColorChannelMax)),
		G: uint8(s.RandomInt(parameter.ColorChannelMin, parameter.ColorChannelMax)),
		B: uint8(s.RandomInt(parameter.ColorChannelMin, parameter.ColorChannelMax)),
		A: a,
	}
}
