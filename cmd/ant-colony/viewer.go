package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ant-colony/audio"
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/render"
	"github.com/lixenwraith/ant-colony/sim"
	"github.com/lixenwraith/ant-colony/system"
	"github.com/lixenwraith/ant-colony/vmath"
)

const helpText = "q quit  space pause  s speed  d debug  c scent  m mute  r reset  f fit  arrows pan  [ ] zoom"

// viewer owns the screen and translates keys into simulation events
type viewer struct {
	sim      *sim.Sim
	renderer *render.Renderer
	sound    *audio.SoundManager
	log      *log.Logger

	debug     bool
	lastSpeed engine.TickRate
}

func runViewer(ctx context.Context, s *sim.Sim, sm *audio.SoundManager, debug bool, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.HideCursor()

	v := &viewer{
		sim:       s,
		renderer:  render.NewRenderer(screen),
		sound:     sm,
		log:       logger,
		debug:     debug,
		lastSpeed: engine.RateNormal,
	}
	v.renderer.Message = helpText

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 64)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	})

	simDone := s.Scheduler.Start(ctx)
	frames := time.NewTicker(parameter.FrameUpdateInterval)
	defer frames.Stop()

	logger.Info("viewer started")
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-simDone:
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		case ev := <-events:
			if !v.handle(ev) {
				logger.Info("viewer quit")
				return nil
			}
		case <-frames.C:
			v.renderer.Draw(s.World, s.Scheduler.Rate())
		}
	}
}

// handle applies one terminal event, returning false on quit
func (v *viewer) handle(ev tcell.Event) bool {
	screen := v.renderer.Screen()
	switch ev := ev.(type) {
	case *tcell.EventResize:
		screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			v.renderer.Camera.Pan(-4, 0)
		case tcell.KeyRight:
			v.renderer.Camera.Pan(4, 0)
		case tcell.KeyUp:
			v.renderer.Camera.Pan(0, -2)
		case tcell.KeyDown:
			v.renderer.Camera.Pan(0, 2)
		case tcell.KeyRune:
			return v.handleRune(ev.Rune())
		}
	}
	return true
}

func (v *viewer) handleRune(r rune) bool {
	s := v.sim
	switch r {
	case 'q':
		return false
	case ' ':
		rate := s.Scheduler.Rate()
		next := engine.RatePaused
		if rate == engine.RatePaused {
			next = v.lastSpeed
		} else {
			v.lastSpeed = rate
		}
		s.Emit(event.EventTickRateChange, &event.TickRatePayload{Multiplier: int(next)})
	case 's':
		next := s.Scheduler.Rate().Next()
		v.lastSpeed = next
		s.Emit(event.EventTickRateChange, &event.TickRatePayload{Multiplier: int(next)})
	case 'd':
		v.debug = !v.debug
		v.toggleDebug()
	case 'c':
		v.renderer.ShowScent = !v.renderer.ShowScent
	case 'm':
		if v.sound != nil {
			v.sound.SetMuted(!v.sound.Muted())
		}
	case 'r':
		s.Emit(event.EventWorldClear, nil)
		// Reset re-inits systems, which turns the overlay off
		if v.debug {
			v.toggleDebug()
		}
		v.log.Info("reset requested")
	case 'f':
		w, h := v.renderer.Screen().Size()
		var lo, hi vmath.Vec2
		s.World.RunSafe(func() { lo, hi = s.Bounds() })
		v.renderer.Camera.Fit(lo, hi, w, h)
	case '[':
		v.renderer.Camera.Zoom(0.5)
	case ']':
		v.renderer.Camera.Zoom(2)
	case '?':
		if v.renderer.Message == "" {
			v.renderer.Message = helpText
		} else {
			v.renderer.Message = ""
		}
	}
	return true
}

func (v *viewer) toggleDebug() {
	v.sim.Emit(event.EventSystemToggle, &event.SystemTogglePayload{SystemName: system.DebugSystemName, Enabled: v.debug})
}
