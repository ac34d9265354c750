package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Default Volumes (0.0-1.0)
const (
	AudioMasterVolume = 0.5
)

// Countdown Tick Sound
const (
	TickSoundDuration = 60 * time.Millisecond
	TickSoundAttack   = 2 * time.Millisecond
	TickSoundRelease  = 30 * time.Millisecond
	TickSoundFreq     = 660.0
)

// Bowl Whoosh Sound
const (
	BowlSoundDuration = 250 * time.Millisecond
	BowlSoundAttack   = 120 * time.Millisecond
	BowlSoundRelease  = 120 * time.Millisecond
)

// Bat Crack Sound
const (
	HitSoundDuration  = 90 * time.Millisecond
	HitSoundAttack    = 1 * time.Millisecond
	HitSoundRelease   = 70 * time.Millisecond
	HitSoundBodyFreq  = 180.0
	HitSoundNoiseMix  = 0.6
	HitSoundToneMix   = 0.4
	HitSoundCrackTime = 20 * time.Millisecond
)

// Success Coin Sound
const (
	SuccessSoundNote1Duration = 80 * time.Millisecond
	SuccessSoundNote2Duration = 280 * time.Millisecond
	SuccessSoundAttack        = 5 * time.Millisecond
	SuccessSoundNote1Release  = 40 * time.Millisecond
	SuccessSoundNote2Release  = 200 * time.Millisecond
)

// Win Bell Arpeggio
const (
	WinSoundNoteDuration = 300 * time.Millisecond
	WinSoundAttack       = 5 * time.Millisecond
	WinSoundRelease      = 250 * time.Millisecond
)

// WinSoundNotes is C6 E6 G6 C7
var WinSoundNotes = []float64{1046.50, 1318.51, 1567.98, 2093.00}

// Loss Buzz Sound
const (
	LostSoundDuration = 300 * time.Millisecond
	LostSoundAttack   = 5 * time.Millisecond
	LostSoundRelease  = 120 * time.Millisecond
	LostSoundFreq     = 100.0
)
