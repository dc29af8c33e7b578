package sim

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

func newSim(t *testing.T, edit func(*config.Settings)) *Sim {
	t.Helper()
	cfg := config.Default()
	if edit != nil {
		edit(cfg)
	}
	s, err := New(cfg, Options{})
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Ant.MaxSpeed = 0
	_, err := New(cfg, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestFirstTickSeedsAntsAndFood(t *testing.T) {
	s := newSim(t, nil)
	s.StepN(1)

	c := &s.World.Components
	assert.Equal(t, s.Settings.Colony.StartingAnts, c.Ant.Count())
	assert.Equal(t, 1, c.Food.Count())

	colonies := c.Colony.All()
	require.Len(t, colonies, 1)
	colony, _ := c.Colony.Get(colonies[0])
	assert.Equal(t, s.Settings.Colony.StartingAnts, colony.Population)
}

func TestLaborReachesRequestedCounts(t *testing.T) {
	s := newSim(t, nil)
	s.StepN(5)

	reg := s.World.Resources.Status
	assert.Equal(t, int64(12), reg.Int(status.KeyAntsForager))
	assert.Equal(t, int64(6), reg.Int(status.KeyAntsNurse))
	assert.Equal(t, int64(7), reg.Int(status.KeyAntsIdle))
	assert.Equal(t, int64(25), reg.Int(status.KeyAntsTotal))
}

func TestAntsLayScent(t *testing.T) {
	s := newSim(t, nil)
	s.StepN(120)

	field := s.World.Resources.Scent
	assert.Positive(t, field.Len(scent.AntSmell))
	assert.Positive(t, field.IndexedLen(scent.AntSmell))
}

func TestSimulationIsDeterministic(t *testing.T) {
	positions := func() []vmath.Vec2 {
		s := newSim(t, nil)
		s.StepN(600)
		var out []vmath.Vec2
		for _, e := range s.World.Components.Nav.All() {
			n, _ := s.World.Components.Nav.Get(e)
			out = append(out, n.Position)
		}
		return out
	}

	a, b := positions(), positions()
	require.NotEmpty(t, a)
	assert.Equal(t, a, b)
	for _, p := range a {
		assert.True(t, p.IsFinite())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := newSim(t, nil)
	b := newSim(t, func(c *config.Settings) { c.Sim.Seed = 99 })
	a.StepN(60)
	b.StepN(60)

	ea := a.World.Components.Nav.All()
	eb := b.World.Components.Nav.All()
	require.NotEmpty(t, ea)
	na, _ := a.World.Components.Nav.Get(ea[0])
	nb, _ := b.World.Components.Nav.Get(eb[0])
	assert.NotEqual(t, na.Position, nb.Position)
}

func TestWorldClearReseeds(t *testing.T) {
	s := newSim(t, nil)
	s.StepN(30)

	s.Emit(event.EventWorldClear, nil)
	s.StepN(1)

	c := &s.World.Components
	assert.Len(t, c.Colony.All(), 1)
	assert.Equal(t, s.Settings.Colony.StartingAnts, c.Ant.Count())
	assert.Equal(t, 1, c.Food.Count())
}

func TestPausedSimDoesNotAdvance(t *testing.T) {
	s := newSim(t, func(c *config.Settings) { c.Sim.Speed = 0 })
	assert.Zero(t, s.StepN(10))
	assert.Zero(t, s.World.Components.Ant.Count())

	s.Emit(event.EventTickRateChange, &event.TickRatePayload{Multiplier: 1})
	assert.Positive(t, s.StepN(1))
}

func TestMultipleColonies(t *testing.T) {
	s := newSim(t, func(c *config.Settings) {
		c.Sim.Colonies = 3
		c.Colony.StartingAnts = 4
	})
	s.StepN(1)

	assert.Len(t, s.World.Components.Colony.All(), 3)
	assert.Equal(t, 12, s.World.Components.Ant.Count())

	lo, hi := s.Bounds()
	assert.Less(t, lo.X, hi.X)
	assert.GreaterOrEqual(t, hi.X-lo.X, ColonySpacing)
}

func TestColonyStockGrowsWithDefaults(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulated run")
	}
	s := newSim(t, nil)
	reg := s.World.Resources.Status
	start := reg.Int(status.KeyFoodColony)

	// Four simulated minutes, sampled once per second
	perSecond := int(time.Second / s.Settings.Sim.TickInterval.Duration)
	var peak int64
	for sec := 0; sec < 240; sec++ {
		s.StepN(perSecond)
		peak = max(peak, reg.Int(status.KeyFoodColony))
	}

	delivered := reg.Int(status.KeyFoodDelivered)
	assert.GreaterOrEqual(t, delivered, int64(4*s.Settings.Ant.CarryCapacity), "foragers delivered %d", delivered)
	assert.Greater(t, peak, start)
	assert.Positive(t, reg.Int(status.KeyAntsTotal))
}
