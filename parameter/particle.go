package parameter

// Pool
const (
	// NumParticles is the fixed number of pool slots
	NumParticles = 20
	// RecycleInterval is the tick cadence of the recycle pass (every Nth tick)
	RecycleInterval = 10
)

// Physics, in screen units per tick
const (
	// Gravity is the constant downward acceleration applied to every particle
	Gravity = 0.3
	// CullSlack lets particles below the visible area finish their arc before retiring
	CullSlack = 70.0
)

// Launch velocity
const (
	// SpawnRangeX/SpawnRangeY are the sampling ranges of the launch direction
	SpawnRangeX = 1.0
	SpawnRangeY = 6.0
	// SpawnSpeedMax bounds the launch speed drawn from [0, SpawnSpeedMax)
	SpawnSpeedMax = 16.0
	// SpawnLift is extra upward velocity added after speed scaling
	SpawnLift = 2.0
)

// Shape selection thresholds, evaluated in order on a single draw p in [0,1)
const (
	// ChanceCircle: p < ChanceCircle
	ChanceCircle = 0.05
	// ChanceGlyph: ChanceCircle <= p < ChanceGlyph; remainder is rectangle
	ChanceGlyph = 0.95
)

// Spawned shape geometry
const (
	SpawnCircleRadius = 15.0
	// GlyphSizeMin/GlyphSizeMax bound the font size drawn from [min, max)
	GlyphSizeMin = 30
	GlyphSizeMax = 100
)

// Colors
const (
	// ColorChannelMin/ColorChannelMax bound each spawned RGB channel, inclusive
	ColorChannelMin = 60
	ColorChannelMax = 255
	// ColorAlphaMin is the lower bound of a randomized alpha; upper bound is 1
	ColorAlphaMin = 0.5
)
