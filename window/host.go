package window

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/fountain/engine"
	"github.com/lixenwraith/fountain/parameter"
)

// ErrSurfaceUnavailable is returned when the window or its graphics context cannot be created
var ErrSurfaceUnavailable = errors.New("window surface unavailable")

// WindowTitle is shown in the title bar
const WindowTitle = "fountain"

// StatsSource supplies the counters shown in the debug overlay
type StatsSource interface {
	Stats() engine.Stats
}

// Host is the ebiten Game; Draw serves the animator's frame requests
type Host struct {
	engine.FrameSlot

	surface    *Surface
	stats      StatsSource
	fullscreen bool
	debug      bool
}

// NewHost creates a window host; non-positive sizes fall back to the defaults
func NewHost(width, height int, fullscreen, debug bool) *Host {
	if width <= 0 {
		width = parameter.DefaultWidth
	}
	if height <= 0 {
		height = parameter.DefaultHeight
	}
	return &Host{
		surface:    NewSurface(width, height),
		fullscreen: fullscreen,
		debug:      debug,
	}
}

// Surface returns the drawing surface
func (h *Host) Surface() *Surface {
	return h.surface
}

// FullscreenSize reports the monitor size when full-screen was requested, zero otherwise
func (h *Host) FullscreenSize() (width, height int) {
	if !h.fullscreen {
		return 0, 0
	}
	return ebiten.ScreenSizeInFullscreen()
}

func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	h.surface.Bind(screen)
	h.FrameSlot.Run()
	h.surface.EndFrame()

	if h.debug && h.stats != nil {
		s := h.stats.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS: %0.1f\nTick: %d\nActive: %d/%d\nRecycled: %d",
			ebiten.ActualTPS(), s.Ticks, s.Active, s.Size, s.Recycled))
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.surface.Size()
}

// Run opens the window and blocks until it is closed or Escape is pressed
func (h *Host) Run(stats StatsSource) error {
	h.stats = stats
	defer h.surface.Release()

	w, hgt := h.surface.Size()
	ebiten.SetWindowSize(w, hgt)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetFullscreen(h.fullscreen)
	ebiten.SetTPS(parameter.FrameRate)

	err := ebiten.RunGame(h)
	if err == nil || errors.Is(err, ebiten.Termination) {
		log.Printf("window closed")
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
}
