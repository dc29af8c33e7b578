package engine

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/ant-colony/config"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
	"github.com/lixenwraith/ant-colony/scent"
	"github.com/lixenwraith/ant-colony/spatial"
	"github.com/lixenwraith/ant-colony/status"
	"github.com/lixenwraith/ant-colony/vmath"
)

// Resource holds the simulation singletons, owned by the World
type Resource struct {
	Time    *TimeResource
	Config  *config.Settings
	Event   *event.EventQueue
	Status  *status.Registry
	Scent   *scent.Field
	Spatial *SpatialResource
	Rand    *vmath.FastRand
	Log     *log.Logger
}

// NewResource builds fresh resources for one simulation
func NewResource(settings *config.Settings, logger *log.Logger) *Resource {
	if settings == nil {
		settings = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Resource{
		Time:    &TimeResource{},
		Config:  settings,
		Event:   event.NewEventQueue(),
		Status:  status.NewRegistry(),
		Scent:   scent.NewField(),
		Spatial: NewSpatialResource(),
		Rand:    vmath.NewFastRand(settings.Sim.Seed),
		Log:     logger,
	}
}

// TimeResource is simulation time, updated by the scheduler before systems run
type TimeResource struct {
	// SimTime is accumulated scaled time
	SimTime time.Duration

	// DeltaTime is the scaled step handed to systems this tick
	DeltaTime time.Duration

	// Delta is DeltaTime in seconds
	Delta float64

	// TickNumber counts ticks that ran systems; paused ticks are not counted
	TickNumber int64
}

// Advance moves simulation time by an already scaled dt
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.DeltaTime = dt
	tr.Delta = dt.Seconds()
	tr.SimTime += dt
	tr.TickNumber++
}

// SpatialResource holds the neighbor grids per entity kind
type SpatialResource struct {
	Ants     *spatial.Grid
	Food     *spatial.Grid
	Spawners *spatial.Grid

	// Static grids rebuild on a slower cadence than ants
	StaticSince time.Duration
}

// NewSpatialResource creates empty grids
func NewSpatialResource() *SpatialResource {
	return &SpatialResource{
		Ants:     spatial.NewGrid(parameter.SpatialCellSize),
		Food:     spatial.NewGrid(parameter.SpatialCellSize),
		Spawners: spatial.NewGrid(parameter.SpatialCellSize),
	}
}
