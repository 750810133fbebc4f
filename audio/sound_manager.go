package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
)

// SoundManager mixes cue effects, one active cue per channel
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	channels    [core.ChannelCount]*beep.Ctrl
	initialized bool
	// speaker.Lock and speaker.Unlock once initialized
	lockSpeaker func()
	unlock      func()
}

// NewSoundManager creates a sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:         cfg,
		mixer:       &beep.Mixer{},
		lockSpeaker: func() {},
		unlock:      func() {},
	}
}

// Initialize opens the speaker and starts the mixer, disabled configs are a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.lockSpeaker = speaker.Lock
	sm.unlock = speaker.Unlock
	sm.initialized = true
	return nil
}

// Cleanup stops all channels and detaches the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lockSpeaker()
	for i, ctrl := range sm.channels {
		if ctrl != nil {
			ctrl.Streamer = nil
			sm.channels[i] = nil
		}
	}
	sm.mixer.Clear()
	sm.unlock()

	speaker.Clear()
	sm.lockSpeaker = func() {}
	sm.unlock = func() {}
	sm.initialized = false
}

// Play starts cue on ch, cutting whatever the channel was playing
func (sm *SoundManager) Play(ch core.SoundChannel, cue core.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || ch < 0 || ch >= core.ChannelCount {
		return
	}
	s := GetCueEffect(cue, sm.cfg)
	if s == nil {
		return
	}
	sm.play(ch, s)
}

// play swaps the channel stream, a nil Ctrl streamer ends and is dropped by the mixer
func (sm *SoundManager) play(ch core.SoundChannel, s beep.Streamer) {
	sm.lockSpeaker()
	defer sm.unlock()

	if prev := sm.channels[ch]; prev != nil {
		prev.Streamer = nil
	}
	ctrl := &beep.Ctrl{Streamer: s}
	sm.channels[ch] = ctrl
	sm.mixer.Add(ctrl)
}

// PlayingCount returns the number of streamers held by the mixer
func (sm *SoundManager) PlayingCount() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.lockSpeaker()
	defer sm.unlock()
	return sm.mixer.Len()
}

// SoundHandler routes sound request events to a SoundManager for any dispatch context
type SoundHandler[T any] struct {
	sm *SoundManager
}

func NewSoundHandler[T any](sm *SoundManager) *SoundHandler[T] {
	return &SoundHandler[T]{sm: sm}
}

func (h *SoundHandler[T]) EventTypes() []event.EventType {
	return []event.EventType{event.EventSoundRequest}
}

func (h *SoundHandler[T]) HandleEvent(_ T, ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
		h.sm.Play(p.Channel, p.Cue)
	}
}
