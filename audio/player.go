// Package audio plays short synthesized cues for colony events through the system speaker
package audio

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes colony cues onto the speaker
// Every method is safe before Initialize and after Cleanup; cues are dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	last        [core.SoundTypeCount]time.Time
	now         func() time.Time
	gain        float64
	muted       atomic.Bool
	initialized bool
}

// NewSoundManager creates an uninitialized manager at the given linear gain
func NewSoundManager(gain float64) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		now:   time.Now,
		gain:  gain,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles cue output without closing the speaker
func (sm *SoundManager) SetMuted(m bool) { sm.muted.Store(m) }

// Muted reports the mute flag
func (sm *SoundManager) Muted() bool { return sm.muted.Load() }

// Play queues the cue for st unless the same cue played within MinSoundGap
func (sm *SoundManager) Play(st core.SoundType) {
	if st < 0 || st >= core.SoundTypeCount || sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.admit(st) || !sm.initialized {
		return
	}
	s := Cue(st, sampleRate, sm.gain)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// admit applies the per-cue throttle; caller holds mu
func (sm *SoundManager) admit(st core.SoundType) bool {
	now := sm.now()
	if prev := sm.last[st]; !prev.IsZero() && now.Sub(prev) < parameter.MinSoundGap {
		return false
	}
	sm.last[st] = now
	return true
}
