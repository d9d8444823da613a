package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// DefaultSampleRate is the speaker rate used when none is configured
	DefaultSampleRate = 44100
	DefaultVolume     = 0.5
)

// Chime plays a pop through the system speaker whenever particles are relaunched
type Chime struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool
}

// NewChime creates an unstarted chime; volume is linear in [0, 1]
func NewChime(sampleRate int, volume float64) *Chime {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Chime{
		rate:   beep.SampleRate(sampleRate),
		volume: min(max(volume, 0), 1),
	}
}

// Start initializes the speaker with a 100ms buffer
func (c *Chime) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	c.initialized = true
	return nil
}

// Launched is an engine.LaunchListener; it is a no-op until Start succeeds
func (c *Chime) Launched(relaunched int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || relaunched <= 0 {
		return
	}
	pop, err := CreatePopSound(c.rate, relaunched, c.volume)
	if err != nil {
		log.Printf("pop sound: %v", err)
		return
	}
	speaker.Play(pop)
}

// Close stops playback and releases the speaker
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
