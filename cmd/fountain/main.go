package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fountain/audio"
	"github.com/lixenwraith/fountain/config"
	"github.com/lixenwraith/fountain/engine"
	"github.com/lixenwraith/fountain/render"
	"github.com/lixenwraith/fountain/system"
	"github.com/lixenwraith/fountain/terminal"
	"github.com/lixenwraith/fountain/window"
)

// activeScreen is restored by the crash handler when the terminal backend is running
var activeScreen tcell.Screen

func main() {
	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			if activeScreen != nil {
				activeScreen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\nFOUNTAIN CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	cfg := config.Load()
	cfg.BindFlags(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(cfg.Debug)
	code := run(cfg)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

// run wires the animator to the selected backend and returns the exit code
func run(cfg *config.Config) int {
	book, err := render.NewFontBook()
	if err != nil {
		return fail("Failed to load default font: %v", err)
	}
	if cfg.FontPath != "" {
		if err := book.RegisterFile(cfg.Family, cfg.FontPath); err != nil {
			log.Printf("font %s unavailable, using default family: %v", cfg.FontPath, err)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("seed %d", seed)

	opts := engine.Options{
		PoolSize:        cfg.Particles,
		RecycleInterval: cfg.Recycle,
		Reshuffle:       cfg.Reshuffle,
		Spawner:         system.NewSeededSpawner(seed, cfg.Family),
		Typesetter:      book,
	}

	if cfg.Sound {
		chime := audio.NewChime(audio.DefaultSampleRate, audio.DefaultVolume)
		if err := chime.Start(); err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer chime.Close()
			opts.OnLaunch = chime.Launched
		}
	}

	anim := engine.NewAnimator(opts)

	switch cfg.Backend {
	case config.BackendTerminal:
		return runTerminal(cfg, anim)
	default:
		return runWindow(cfg, anim)
	}
}

func runTerminal(cfg *config.Config, anim *engine.Animator) int {
	host, err := terminal.NewHost(cfg.Debug)
	if err != nil {
		return fail("Failed to initialize terminal: %v", err)
	}
	activeScreen = host.Screen()

	if err := anim.Start(host.Surface(), host, 0, 0); err != nil {
		host.Fini()
		activeScreen = nil
		return fail("Failed to start animation: %v", err)
	}

	err = host.Run(anim)
	host.Fini()
	activeScreen = nil
	if err != nil {
		return fail("Terminal loop failed: %v", err)
	}
	return 0
}

func runWindow(cfg *config.Config, anim *engine.Animator) int {
	host := window.NewHost(cfg.Width, cfg.Height, cfg.Fullscreen, cfg.Debug)

	fw, fh := host.FullscreenSize()
	if err := anim.Start(host.Surface(), host, fw, fh); err != nil {
		return fail("Failed to start animation: %v", err)
	}

	if err := host.Run(anim); err != nil {
		return fail("Window failed: %v", err)
	}
	return 0
}

// fail logs and reports an error on stderr, returning exit code 1
func fail(format string, args ...any) int {
	msg := fmt.Sprintf(format, args...)
	log.Print(msg)
	fmt.Fprintln(os.Stderr, msg)
	return 1
}
