package terminal

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/fountain/engine"
	"github.com/lixenwraith/fountain/parameter"
)

// ErrSurfaceUnavailable is returned when no terminal screen can be acquired
var ErrSurfaceUnavailable = errors.New("terminal surface unavailable")

// StatsSource supplies the counters shown on the debug line
type StatsSource interface {
	Stats() engine.Stats
}

// Host owns the tcell screen and paces frames with a fixed ticker
// The embedded FrameSlot is the animator's FrameScheduler
type Host struct {
	engine.FrameSlot

	screen  tcell.Screen
	surface *Surface
	debug   bool

	stop     chan struct{}
	stopOnce sync.Once
}

// NewHost acquires and initializes the process terminal
func NewHost(debug bool) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	return NewHostWithScreen(screen, debug)
}

// NewHostWithScreen initializes the given screen, used with simulation screens in tests
func NewHostWithScreen(screen tcell.Screen, debug bool) (*Host, error) {
	if screen == nil {
		return nil, ErrSurfaceUnavailable
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	screen.HideCursor()
	screen.Clear()

	return &Host{
		screen:  screen,
		surface: NewSurface(screen),
		debug:   debug,
		stop:    make(chan struct{}),
	}, nil
}

// Surface returns the drawing surface bound to the screen
func (h *Host) Surface() *Surface {
	return h.surface
}

// Screen exposes the tcell screen for crash-time restoration
func (h *Host) Screen() tcell.Screen {
	return h.screen
}

// Run drives frames at FrameRate until a quit key, Stop, or the event stream ends
func (h *Host) Run(stats StatsSource) error {
	events := make(chan tcell.Event, 16)
	// done releases the poller once nothing reads events anymore
	done := make(chan struct{})
	defer close(done)

	go func() {
		defer close(events)
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / parameter.FrameRate)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.handleEvent(ev) {
				log.Printf("quit requested")
				return nil
			}
		case <-ticker.C:
			h.Step(stats)
		}
	}
}

// Step runs the pending frame callback and presents the result
func (h *Host) Step(stats StatsSource) {
	h.FrameSlot.Run()
	if h.debug && stats != nil {
		h.drawStats(stats.Stats())
	}
	h.screen.Show()
}

// Stop ends Run from another goroutine
func (h *Host) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
}

// Fini restores the terminal
func (h *Host) Fini() {
	h.screen.Fini()
}

// handleEvent returns true when the event asks to quit
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			return ev.Rune() == 'q'
		}
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

func (h *Host) drawStats(s engine.Stats) {
	line := fmt.Sprintf(" tick %d  active %d/%d  recycled %d ", s.Ticks, s.Active, s.Size, s.Recycled)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	cols, _ := h.screen.Size()
	col := 0
	for _, ch := range line {
		w := runewidth.RuneWidth(ch)
		if col+w > cols {
			return
		}
		h.screen.SetContent(col, 0, ch, nil, style)
		col += w
	}
}
