package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sixer/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so zero volume is handled as silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func effectVolume(cfg *AudioConfig, s SoundType) float64 {
	return cfg.EffectVolumes[s] * cfg.MasterVolume
}

// CreateTickSound generates the short countdown blip
func CreateTickSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.TickSoundFreq, parameter.TickSoundDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, parameter.TickSoundDuration, parameter.TickSoundAttack, parameter.TickSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundTick))
}

// CreateBowlSound generates a swelling noise for the released delivery
func CreateBowlSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.BowlSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.BowlSoundDuration, parameter.BowlSoundAttack, parameter.BowlSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundBowl))
}

// CreateHitSound layers a noise crack over a low square body
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	crack := NewOscillator(0, parameter.HitSoundCrackTime, WaveNoise, rate)
	crackShaped := NewEnvelope(crack, parameter.HitSoundCrackTime, parameter.HitSoundAttack, parameter.HitSoundCrackTime/2, rate)

	body := NewOscillator(parameter.HitSoundBodyFreq, parameter.HitSoundDuration, WaveSquare, rate)
	bodyShaped := NewEnvelope(body, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)

	// Mix may not terminate on its own, Take bounds it
	mixed := beep.Take(rate.N(parameter.HitSoundDuration), beep.Mix(
		newVolume(crackShaped, parameter.HitSoundNoiseMix),
		newVolume(bodyShaped, parameter.HitSoundToneMix),
	))
	return newVolume(mixed, effectVolume(cfg, SoundHit))
}

// CreateSuccessSound generates a two-note chime
func CreateSuccessSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// B5 then E6
	n1 := NewOscillator(987.77, parameter.SuccessSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.SuccessSoundNote1Duration, parameter.SuccessSoundAttack, parameter.SuccessSoundNote1Release, rate)

	n2 := NewOscillator(1318.51, parameter.SuccessSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.SuccessSoundNote2Duration, parameter.SuccessSoundAttack, parameter.SuccessSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), effectVolume(cfg, SoundSuccess))
}

// CreateWinSound plays a rising bell arpeggio
func CreateWinSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := make([]beep.Streamer, 0, len(parameter.WinSoundNotes))
	for _, freq := range parameter.WinSoundNotes {
		fund := NewOscillator(freq, parameter.WinSoundNoteDuration, WaveSine, rate)
		fundShaped := NewEnvelope(fund, parameter.WinSoundNoteDuration, parameter.WinSoundAttack, parameter.WinSoundRelease, rate)

		over := NewOscillator(freq*2, parameter.WinSoundNoteDuration, WaveSine, rate)
		overShaped := NewEnvelope(over, parameter.WinSoundNoteDuration, parameter.WinSoundAttack, parameter.WinSoundRelease/2, rate)

		note := beep.Mix(newVolume(fundShaped, 0.7), newVolume(overShaped, 0.3))
		notes = append(notes, beep.Take(rate.N(parameter.WinSoundNoteDuration), note))
	}

	return newVolume(beep.Seq(notes...), effectVolume(cfg, SoundWin))
}

// CreateLostSound generates a low harsh buzz
func CreateLostSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(parameter.LostSoundFreq, parameter.LostSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.LostSoundDuration, parameter.LostSoundAttack, parameter.LostSoundRelease, rate)

	return newVolume(shaped, effectVolume(cfg, SoundLost))
}

// GetSoundEffect returns the sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundTick:
		return CreateTickSound(cfg)
	case SoundBowl:
		return CreateBowlSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundSuccess:
		return CreateSuccessSound(cfg)
	case SoundWin:
		return CreateWinSound(cfg)
	case SoundLost:
		return CreateLostSound(cfg)
	default:
		return nil
	}
}
