package engine

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/status"
)

// Scheduler drives world ticks from a wall-clock ticker
// Real elapsed time is scaled by the tick rate and clamped before systems see it
type Scheduler struct {
	world    *World
	clock    Clock
	interval time.Duration

	rate      atomic.Int32
	tickCount atomic.Uint64
	running   atomic.Bool

	statTicks   *atomic.Int64
	statRate    *atomic.Int64
	statDropped *atomic.Int64
	statTickMs  *status.AtomicFloat
	statSeconds *status.AtomicFloat
}

// NewScheduler creates a scheduler and registers it for tick rate events
func NewScheduler(world *World, clock Clock, interval time.Duration) *Scheduler {
	if clock == nil {
		clock = RealClock{}
	}
	reg := world.Resources.Status
	s := &Scheduler{
		world:       world,
		clock:       clock,
		interval:    interval,
		statTicks:   reg.Ints.Get(status.KeyTicks),
		statRate:    reg.Ints.Get(status.KeyTickRate),
		statDropped: reg.Ints.Get(status.KeyEventsDrop),
		statTickMs:  reg.Floats.Get(status.KeyTickMs),
		statSeconds: reg.Floats.Get(status.KeySimSeconds),
	}
	s.SetRate(RateNormal)
	world.AddHandler(s)
	return s
}

// SetRate changes the simulation speed
func (s *Scheduler) SetRate(r TickRate) {
	s.rate.Store(int32(r))
	s.statRate.Store(int64(r))
}

// Rate returns the current simulation speed
func (s *Scheduler) Rate() TickRate {
	return TickRate(s.rate.Load())
}

// TickCount returns the number of ticks that advanced simulation time
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) EventTypes() []event.EventType {
	return []event.EventType{event.EventTickRateChange}
}

func (s *Scheduler) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.TickRatePayload); ok {
		r, err := ParseTickRate(p.Multiplier)
		if err != nil {
			s.world.Resources.Log.Warn("tick rate rejected", "error", err)
			return
		}
		s.SetRate(r)
	}
}

// Step runs one tick for real elapsed time: events, then every system with the scaled delta
// Returns false when paused; events are still dispatched so an unpause can take effect
func (s *Scheduler) Step(elapsed time.Duration) bool {
	s.world.Lock()
	defer s.world.Unlock()

	start := time.Now()
	s.world.DispatchEvents()

	dt := ScaledDelta(s.Rate(), elapsed)
	if dt <= 0 {
		return false
	}

	res := s.world.Resources
	res.Time.Advance(dt)
	s.world.Update()

	s.tickCount.Add(1)
	s.statTicks.Store(res.Time.TickNumber)
	s.statSeconds.Set(res.Time.SimTime.Seconds())
	s.statDropped.Store(int64(res.Event.Dropped()))
	s.statTickMs.Set(float64(time.Since(start).Microseconds()) / 1000)
	return true
}

// Run ticks until ctx is cancelled and returns ctx.Err()
func (s *Scheduler) Run(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	defer s.running.Store(false)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	last := s.clock.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := s.clock.Now()
			s.Step(now.Sub(last))
			last = now
		}
	}
}

// Start runs the scheduler on its own goroutine with crash handling
func (s *Scheduler) Start(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	core.Go(func() {
		done <- s.Run(ctx)
	})
	return done
}
