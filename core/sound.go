package core

// SoundType represents colony sound cues
type SoundType int

const (
	SoundAntBorn   SoundType = iota // Larva hatched or ant spawned
	SoundAntDeath                   // Ant reached its lifespan
	SoundFoodSpawn                  // Free chunk appeared
	SoundFoodEmpty                  // Chunk fully harvested
	SoundTypeCount
)

func (s SoundType) String() string {
	switch s {
	case SoundAntBorn:
		return "ant_born"
	case SoundAntDeath:
		return "ant_death"
	case SoundFoodSpawn:
		return "food_spawn"
	case SoundFoodEmpty:
		return "food_empty"
	default:
		return "unknown"
	}
}
