package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 80 * time.Millisecond

	// AudioVolume is linear gain applied to every cue
	AudioVolume = 0.25
)

// Cue shapes
const (
	CueAttack  = 5 * time.Millisecond
	CueRelease = 40 * time.Millisecond

	AntBornFreq     = 880.0
	AntBornDuration = 90 * time.Millisecond

	AntDeathFreq     = 220.0
	AntDeathDuration = 140 * time.Millisecond

	FoodSpawnFreq     = 660.0
	FoodSpawnDuration = 120 * time.Millisecond

	FoodEmptyFreq     = 330.0
	FoodEmptyDuration = 160 * time.Millisecond
)
