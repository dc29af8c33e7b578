// Package status is the atomic metrics registry shared by systems and the viewer
package status

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Metric keys published by the simulation
const (
	KeyTicks         = "sim.ticks"
	KeyTickMs        = "sim.tick_ms"
	KeySimSeconds    = "sim.seconds"
	KeyTickRate      = "sim.rate"
	KeyAntsTotal     = "ants.total"
	KeyAntsForager   = "ants.forager"
	KeyAntsNurse     = "ants.nursemaid"
	KeyAntsIdle      = "ants.idle"
	KeyAntsBorn      = "ants.born"
	KeyAntsDied      = "ants.died"
	KeyScentAnt      = "scent.ant_cells"
	KeyScentFood     = "scent.food_cells"
	KeyFoodColony    = "food.colony"
	KeyFoodChunks    = "food.chunks"
	KeyFoodGround    = "food.ground"
	KeyFoodDelivered = "food.delivered"
	KeyLarvaCount    = "larva.count"
	KeyEventsDrop    = "events.dropped"
	KeyNavArrivals   = "nav.arrivals"
	KeyNavDiscarded  = "nav.discarded"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; Update loops write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Metric is one formatted key/value pair
type Metric struct {
	Key   string
	Value string
}

// Snapshot returns every metric in key order, ints first
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out = append(out, Metric{Key: key, Value: strconv.FormatInt(v.Load(), 10)})
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out = append(out, Metric{Key: key, Value: fmt.Sprintf("%.2f", v.Get())})
	})
	return out
}

// Int returns the current value of an int metric, zero when unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}
