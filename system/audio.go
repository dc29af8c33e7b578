package system

import (
	"github.com/lixenwraith/ant-colony/core"
	"github.com/lixenwraith/ant-colony/engine"
	"github.com/lixenwraith/ant-colony/event"
	"github.com/lixenwraith/ant-colony/parameter"
)

// SoundPlayer plays a sound cue without blocking
type SoundPlayer interface {
	Play(core.SoundType)
}

// AudioSystem consumes sound request events and plays them
// Decouples simulation systems from the audio backend
type AudioSystem struct {
	engine.SystemBase

	player SoundPlayer

	enabled bool
}

// NewAudioSystem creates an audio system with the given player
// player may be nil when audio is disabled
func NewAudioSystem(world *engine.World, player SoundPlayer) engine.System {
	s := &AudioSystem{
		SystemBase: engine.NewSystemBase(world, "audio"),
		player:     player,
	}
	s.Init()
	return s
}

func (s *AudioSystem) Init() {
	s.enabled = s.Resource.Config.Sim.Sound
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSoundRequest,
		event.EventSystemToggle,
	}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if enabled, ok := engine.ToggleFor(s.Name(), ev); ok {
		s.enabled = enabled
		return
	}
	if !s.enabled || s.player == nil || ev.Type != event.EventSoundRequest {
		return
	}
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		s.player.Play(p.Sound)
	}
}

// Update implements System; playback is event driven
func (s *AudioSystem) Update() {}
