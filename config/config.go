// Package config loads simulation settings from an optional TOML file layered over parameter defaults
package config

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/ant-colony/parameter"
)

// Duration decodes TOML strings like "500ms" into time.Duration
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Sim holds loop and world-level settings
type Sim struct {
	Seed         uint64   `toml:"seed"`
	TickInterval Duration `toml:"tick_interval"`
	Speed        int      `toml:"speed"` // 0 paused, 1, 2, 4
	Colonies     int      `toml:"colonies"`
	Sound        bool     `toml:"sound"`
}

type Scent struct {
	DecayRate        float64  `toml:"decay_rate"`
	SmellRadius      float64  `toml:"smell_radius"`
	StartingStrength float64  `toml:"starting_strength"`
	MaxStrength      float64  `toml:"max_strength"`
	MaintainInterval Duration `toml:"maintain_interval"`
	EmitInterval     Duration `toml:"emit_interval"`
}

type Ant struct {
	MaxSpeed      float64 `toml:"max_speed"`
	MaxTurnRate   float64 `toml:"max_turn_rate"`
	Lifespan      float64 `toml:"lifespan"`
	CarryCapacity int     `toml:"carry_capacity"`
}

type Drift struct {
	Strength       float64 `toml:"strength"`
	MaxMagnitude   float64 `toml:"max_magnitude"`
	NeighborRadius float64 `toml:"neighbor_radius"`
	ApplyThreshold float64 `toml:"apply_threshold"`
	ApplyCap       float64 `toml:"apply_cap"`
	Overshoot      float64 `toml:"overshoot"`
}

type Forager struct {
	SightRadius float64  `toml:"sight_radius"`
	HomeRadius  float64  `toml:"home_radius"`
	DropOff     float64  `toml:"drop_off"`
	SeekTimeout Duration `toml:"seek_timeout"`
}

type Food struct {
	SpawnInterval Duration `toml:"spawn_interval"`
	MaxChunks     int      `toml:"max_chunks"`
	MinDist       float64  `toml:"min_dist"`
	MaxDist       float64  `toml:"max_dist"`
	FirstChunk    int      `toml:"first_chunk"`
}

type Larva struct {
	NursemaidsPerLarva int      `toml:"nursemaids_per_larva"`
	FoodPerTick        int      `toml:"food_per_tick"`
	TicksToGrow        int      `toml:"ticks_to_grow"`
	GrowthInterval     Duration `toml:"growth_interval"`
}

type Colony struct {
	AntCapacity    int     `toml:"ant_capacity"`
	StartingAnts   int     `toml:"starting_ants"`
	StartingFood   int     `toml:"starting_food"`
	ForagerShare   float64 `toml:"forager_share"`
	NursemaidShare float64 `toml:"nursemaid_share"`
}

// Settings is the full simulation configuration
type Settings struct {
	Sim     Sim     `toml:"sim"`
	Scent   Scent   `toml:"scent"`
	Ant     Ant     `toml:"ant"`
	Drift   Drift   `toml:"drift"`
	Forager Forager `toml:"forager"`
	Food    Food    `toml:"food"`
	Larva   Larva   `toml:"larva"`
	Colony  Colony  `toml:"colony"`
}

// Default returns settings populated from parameter constants
func Default() *Settings {
	return &Settings{
		Sim: Sim{
			Seed:         parameter.DefaultSeed,
			TickInterval: Duration{parameter.SimUpdateInterval},
			Speed:        1,
			Colonies:     1,
			Sound:        true,
		},
		Scent: Scent{
			DecayRate:        parameter.ScentDecayRate,
			SmellRadius:      parameter.ScentSmellRadius,
			StartingStrength: parameter.ScentStartingStrength,
			MaxStrength:      parameter.ScentMaxStrength,
			MaintainInterval: Duration{parameter.ScentMaintainInterval},
			EmitInterval:     Duration{parameter.ScentEmitInterval},
		},
		Ant: Ant{
			MaxSpeed:      parameter.AntMaxSpeed,
			MaxTurnRate:   parameter.AntMaxTurnRate,
			Lifespan:      parameter.AntLifespan,
			CarryCapacity: parameter.AntCarryCapacity,
		},
		Drift: Drift{
			Strength:       parameter.DriftStrength,
			MaxMagnitude:   parameter.DriftMaxMagnitude,
			NeighborRadius: parameter.DriftNeighborRadius,
			ApplyThreshold: parameter.DriftApplyThreshold,
			ApplyCap:       parameter.DriftApplyCap,
			Overshoot:      parameter.DriftOvershoot,
		},
		Forager: Forager{
			SightRadius: parameter.ForagerSightRadius,
			HomeRadius:  parameter.ForagerHomeSightRadius,
			DropOff:     parameter.ForagerDropOffRadius,
			SeekTimeout: Duration{parameter.ForagerSeekTimeout},
		},
		Food: Food{
			SpawnInterval: Duration{parameter.FoodSpawnInterval},
			MaxChunks:     parameter.FoodMaxChunks,
			MinDist:       parameter.FoodSpawnMinDist,
			MaxDist:       parameter.FoodSpawnMaxDist,
			FirstChunk:    parameter.FoodFirstChunk,
		},
		Larva: Larva{
			NursemaidsPerLarva: parameter.NursemaidsPerLarva,
			FoodPerTick:        parameter.LarvaFoodPerTick,
			TicksToGrow:        parameter.LarvaTicksToGrow,
			GrowthInterval:     Duration{parameter.LarvaGrowthInterval},
		},
		Colony: Colony{
			AntCapacity:    parameter.ColonyAntCapacity,
			StartingAnts:   parameter.SpawnerStartingAnts,
			StartingFood:   parameter.ColonyStartingFood,
			ForagerShare:   parameter.ColonyForagerShare,
			NursemaidShare: parameter.ColonyNursemaidShare,
		},
	}
}

// Load reads path over defaults; an empty path returns defaults
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	md, err := toml.DecodeFile(path, s)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return s, nil
}

// Decode parses TOML text over defaults
func Decode(data string) (*Settings, error) {
	s := Default()
	if _, err := toml.Decode(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid setting")

// Validate checks ranges that would stall or destabilize the simulation
func (s *Settings) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"ant.max_speed", s.Ant.MaxSpeed},
		{"ant.max_turn_rate", s.Ant.MaxTurnRate},
		{"ant.lifespan", s.Ant.Lifespan},
		{"scent.smell_radius", s.Scent.SmellRadius},
		{"scent.max_strength", s.Scent.MaxStrength},
		{"drift.max_magnitude", s.Drift.MaxMagnitude},
		{"drift.overshoot", s.Drift.Overshoot},
		{"forager.sight_radius", s.Forager.SightRadius},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			return fmt.Errorf("%s must be positive, got %v: %w", p.name, p.v, ErrInvalid)
		}
	}

	intervals := []struct {
		name string
		v    time.Duration
	}{
		{"sim.tick_interval", s.Sim.TickInterval.Duration},
		{"scent.maintain_interval", s.Scent.MaintainInterval.Duration},
		{"scent.emit_interval", s.Scent.EmitInterval.Duration},
		{"food.spawn_interval", s.Food.SpawnInterval.Duration},
		{"larva.growth_interval", s.Larva.GrowthInterval.Duration},
	}
	for _, iv := range intervals {
		if iv.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v: %w", iv.name, iv.v, ErrInvalid)
		}
	}

	if s.Scent.DecayRate < 0 {
		return fmt.Errorf("scent.decay_rate must not be negative: %w", ErrInvalid)
	}
	switch s.Sim.Speed {
	case 0, 1, 2, 4:
	default:
		return fmt.Errorf("sim.speed must be 0, 1, 2 or 4, got %d: %w", s.Sim.Speed, ErrInvalid)
	}
	if s.Sim.Colonies < 1 {
		return fmt.Errorf("sim.colonies must be at least 1: %w", ErrInvalid)
	}
	if s.Larva.NursemaidsPerLarva < 1 || s.Larva.TicksToGrow < 1 {
		return fmt.Errorf("larva settings must be at least 1: %w", ErrInvalid)
	}
	if s.Food.MinDist > s.Food.MaxDist {
		return fmt.Errorf("food.min_dist exceeds food.max_dist: %w", ErrInvalid)
	}
	return nil
}

// Encode writes settings as TOML, used by -dump-config
func (s *Settings) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
