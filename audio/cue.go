package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
)

// Cue builds the streamer for a colony sound at the given linear gain
// Unknown sound types return nil
func Cue(st core.SoundType, rate beep.SampleRate, gain float64) beep.Streamer {
	var s beep.Streamer
	switch st {
	case core.SoundAntBorn:
		// Rising chirp with an octave on top
		d := parameter.AntBornDuration
		s = beep.Mix(
			tone(NewGlide(parameter.AntBornFreq, parameter.AntBornFreq*1.25, d, WaveSine, rate), d, rate),
			newVolume(tone(NewOscillator(parameter.AntBornFreq*2, d, WaveSine, rate), d, rate), 0.3),
		)
	case core.SoundAntDeath:
		d := parameter.AntDeathDuration
		s = tone(NewGlide(parameter.AntDeathFreq, parameter.AntDeathFreq/2, d, WaveSaw, rate), d, rate)
	case core.SoundFoodSpawn:
		// Two short square notes a fifth apart
		half := parameter.FoodSpawnDuration / 2
		s = newVolume(beep.Seq(
			tone(NewOscillator(parameter.FoodSpawnFreq, half, WaveSquare, rate), half, rate),
			tone(NewOscillator(parameter.FoodSpawnFreq*1.5, half, WaveSquare, rate), half, rate),
		), 0.5)
	case core.SoundFoodEmpty:
		d := parameter.FoodEmptyDuration
		s = beep.Mix(
			newVolume(tone(NewOscillator(0, d, WaveNoise, rate), d, rate), 0.2),
			tone(NewGlide(parameter.FoodEmptyFreq, parameter.FoodEmptyFreq*0.75, d, WaveSine, rate), d, rate),
		)
	default:
		return nil
	}
	return beep.Take(rate.N(CueLength(st)), newVolume(s, gain))
}

// CueLength is the playing time of a sound's cue
func CueLength(st core.SoundType) time.Duration {
	switch st {
	case core.SoundAntBorn:
		return parameter.AntBornDuration
	case core.SoundAntDeath:
		return parameter.AntDeathDuration
	case core.SoundFoodSpawn:
		return 2 * (parameter.FoodSpawnDuration / 2)
	case core.SoundFoodEmpty:
		return parameter.FoodEmptyDuration
	default:
		return 0
	}
}

func tone(s beep.Streamer, d time.Duration, rate beep.SampleRate) beep.Streamer {
	attack := parameter.CueAttack
	release := min(parameter.CueRelease, d-attack)
	return NewEnvelope(s, d, attack, release, rate)
}
