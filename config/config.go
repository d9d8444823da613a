package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/lixenwraith/fountain/parameter"
)

// Backend names
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config holds the runtime settings resolved from defaults, env and flags
type Config struct {
	Backend    string
	Width      int
	Height     int
	Fullscreen bool
	Particles  int
	Recycle    int
	Reshuffle  bool
	FontPath   string
	Family     string
	// Seed 0 picks a random seed
	Seed  uint64
	Sound bool
	Debug bool
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Backend:   BackendWindow,
		Width:     parameter.DefaultWidth,
		Height:    parameter.DefaultHeight,
		Particles: parameter.NumParticles,
		Recycle:   parameter.RecycleInterval,
		Family:    parameter.DefaultFontFamily,
	}
}

// Load returns defaults overridden by FOUNTAIN_* environment variables
func Load() *Config {
	cfg := Default()
	cfg.LoadEnv(os.Getenv)
	return cfg
}

// LoadEnv overrides fields from the environment; unparsable values are ignored
func (c *Config) LoadEnv(getenv func(string) string) {
	if v := getenv("FOUNTAIN_BACKEND"); v != "" {
		c.Backend = v
	}
	envInt(getenv, "FOUNTAIN_WIDTH", &c.Width)
	envInt(getenv, "FOUNTAIN_HEIGHT", &c.Height)
	envBool(getenv, "FOUNTAIN_FULLSCREEN", &c.Fullscreen)
	envInt(getenv, "FOUNTAIN_PARTICLES", &c.Particles)
	envInt(getenv, "FOUNTAIN_RECYCLE", &c.Recycle)
	envBool(getenv, "FOUNTAIN_RESHUFFLE", &c.Reshuffle)
	if v := getenv("FOUNTAIN_FONT"); v != "" {
		c.FontPath = v
	}
	if v := getenv("FOUNTAIN_SEED"); v != "" {
		if val, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = val
		}
	}
	envBool(getenv, "FOUNTAIN_SOUND", &c.Sound)
	envBool(getenv, "FOUNTAIN_DEBUG", &c.Debug)
}

// BindFlags registers one flag per field, defaulting to the current values
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "Render backend: window, terminal")
	fs.IntVar(&c.Width, "width", c.Width, "Window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "Window height in pixels")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Size the surface to the whole screen")
	fs.IntVar(&c.Particles, "particles", c.Particles, "Number of particles in the pool")
	fs.IntVar(&c.Recycle, "recycle", c.Recycle, "Recycle retired particles every N ticks")
	fs.BoolVar(&c.Reshuffle, "reshuffle", c.Reshuffle, "Pick a new shape when a particle is recycled")
	fs.StringVar(&c.FontPath, "font", c.FontPath, "TrueType/OpenType font file for glyphs")
	fs.StringVar(&c.Family, "family", c.Family, "Font family name for glyphs")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "Random seed, 0 for random")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "Play a chime when particles relaunch")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Write logs to logs/ and show stats")
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		errs = append(errs, fmt.Errorf("backend: unknown %q", c.Backend))
	}
	if c.Particles <= 0 {
		errs = append(errs, fmt.Errorf("particles: must be positive, got %d", c.Particles))
	}
	if c.Recycle <= 0 {
		errs = append(errs, fmt.Errorf("recycle: must be positive, got %d", c.Recycle))
	}
	if c.Backend == BackendWindow && !c.Fullscreen && (c.Width <= 0 || c.Height <= 0) {
		errs = append(errs, fmt.Errorf("size: must be positive, got %dx%d", c.Width, c.Height))
	}
	if c.Family == "" {
		errs = append(errs, errors.New("family: must not be empty"))
	}
	return errors.Join(errs...)
}

func envInt(getenv func(string) string, key string, dst *int) {
	if v := getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			*dst = val
		}
	}
}

func envBool(getenv func(string) string, key string, dst *bool) {
	if v := getenv(key); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			*dst = val
		}
	}
}
