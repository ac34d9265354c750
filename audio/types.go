// Package audio synthesizes the game's sound cues with beep
package audio

import "github.com/lixenwraith/sixer/event"

// SoundType represents different sound effects
type SoundType int

const (
	SoundTick    SoundType = iota // Countdown start
	SoundBowl                     // Delivery released
	SoundHit                      // Bat contact
	SoundSuccess                  // Attempt succeeded
	SoundWin                      // Target reached
	SoundLost                     // Session lost
	soundTypeCount
)

var soundNames = [...]string{
	SoundTick:    "tick",
	SoundBowl:    "bowl",
	SoundHit:     "hit",
	SoundSuccess: "success",
	SoundWin:     "win",
	SoundLost:    "lost",
}

func (s SoundType) String() string {
	if s < 0 || s >= soundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundFor maps a game event to its cue, false when the event is silent
func SoundFor(ev event.GameEvent) (SoundType, bool) {
	switch ev.Type {
	case event.EventCountdown:
		return SoundTick, true
	case event.EventDelivery:
		return SoundBowl, true
	case event.EventHit:
		return SoundHit, true
	case event.EventAttemptSucceeded:
		return SoundSuccess, true
	case event.EventGameWon:
		return SoundWin, true
	case event.EventGameLost:
		return SoundLost, true
	}
	return 0, false
}
