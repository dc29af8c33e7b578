package parameter

import "time"

// Colony
const (
	// ColonyAntCapacity is the default max population
	ColonyAntCapacity = 20

	// ColonyStartingFood is the colony store at creation
	ColonyStartingFood = 0

	// ColonyForagerShare is the default fraction of capacity requested as foragers
	ColonyForagerShare = 0.6

	// ColonyNursemaidShare is the default fraction of capacity requested as nursemaids
	ColonyNursemaidShare = 0.3
)

// Spawner
const (
	// SpawnerStartingAnts are created once around the spawner
	SpawnerStartingAnts = 25

	// SpawnerRingMin and SpawnerRingMax bound the initial placement ring
	SpawnerRingMin = 2.0
	SpawnerRingMax = 40.0
)

// Larva
const (
	// NursemaidsPerLarva determines larva target per colony
	NursemaidsPerLarva = 5

	// LarvaFoodPerTick is consumed from the colony store per growth tick
	LarvaFoodPerTick = 1

	// LarvaTicksToGrow is the number of growth ticks to hatch
	LarvaTicksToGrow = 20

	// LarvaGrowthInterval is the growth tick period
	LarvaGrowthInterval = 4 * time.Second
)

// Food
const (
	// FoodChunkUnit is the quantity that maps to one exclusion step
	FoodChunkUnit = 1800

	// FoodExclusionPerUnit is exclusion distance per chunk unit
	FoodExclusionPerUnit = 65.0

	// FoodMinInteraction is the floor for pickup distance
	FoodMinInteraction = 3.0

	// FoodSpawnInterval is the free chunk cadence
	FoodSpawnInterval = 15 * time.Second

	// FoodMaxChunks caps live chunks
	FoodMaxChunks = 200

	// FoodSpawnMinDist and FoodSpawnMaxDist bound free chunk placement from origin
	FoodSpawnMinDist = 80.0
	FoodSpawnMaxDist = 600.0

	// FoodSpawnAttempts bounds placement retries against exclusion zones
	FoodSpawnAttempts = 16

	// FoodSpawnAmountMin, FoodSpawnAmountMax and FoodSpawnAmountStep define rand[min, max) * step
	FoodSpawnAmountMin  = 9
	FoodSpawnAmountMax  = 90
	FoodSpawnAmountStep = 20

	// FoodFirstChunk is the starting chunk quantity, placed FoodSpawnMinDist from origin
	FoodFirstChunk = 1800
)
