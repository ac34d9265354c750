package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/sixer/event"
	"github.com/lixenwraith/sixer/parameter"
)

// speakerInit opens the audio device; replaced in tests
var speakerInit = speaker.Init

// SoundManager turns game events into sound cues on a shared mixer
// Without Initialize the mixer is headless: cues queue but nothing drains them
// except an explicit Stream call. A failed Initialize drops every later cue.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	unavailable atomic.Bool
	muted       atomic.Bool
	played      atomic.Int64
}

// NewSoundManager creates a sound manager, nil cfg uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts playing the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speakerInit(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		sm.unavailable.Store(true)
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		sm.mixer.Clear()
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted toggles output; muted cues are dropped, not delayed
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// ToggleMute flips mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Muted reports whether cues are being dropped
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Played returns the number of cues queued since creation
func (sm *SoundManager) Played() int64 {
	return sm.played.Load()
}

// Play queues the cue for ev, returns false when ev is silent or audio is off
func (sm *SoundManager) Play(ev event.GameEvent) bool {
	sound, ok := SoundFor(ev)
	if !ok {
		return false
	}
	return sm.PlaySound(sound)
}

// PlaySound queues a cue by type
func (sm *SoundManager) PlaySound(sound SoundType) bool {
	if !sm.cfg.Enabled || sm.unavailable.Load() || sm.muted.Load() {
		return false
	}
	streamer := GetSoundEffect(sound, sm.cfg)
	if streamer == nil {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		sm.mixer.Add(streamer)
		speaker.Unlock()
	} else {
		sm.mixer.Add(streamer)
	}
	sm.played.Add(1)
	return true
}

// PlayAll queues cues for a drained event batch
func (sm *SoundManager) PlayAll(events []event.GameEvent) {
	for _, ev := range events {
		sm.Play(ev)
	}
}

// Stream pulls samples from a headless mixer
func (sm *SoundManager) Stream(samples [][2]float64) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return 0
	}
	n, _ := sm.mixer.Stream(samples)
	return n
}

// Available reports whether cues can still be queued after Initialize
func (sm *SoundManager) Available() bool {
	return sm.cfg.Enabled && !sm.unavailable.Load()
}

// Pending returns the number of cues still sounding
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}
