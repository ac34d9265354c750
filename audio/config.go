package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/sixer/parameter"
)

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns audio enabled at half volume with every effect at full level
func DefaultAudioConfig() *AudioConfig {
	vols := make(map[SoundType]float64, soundTypeCount)
	for s := SoundType(0); s < soundTypeCount; s++ {
		vols[s] = 1.0
	}
	return &AudioConfig{
		Enabled:       true,
		SampleRate:    parameter.AudioSampleRate,
		MasterVolume:  parameter.AudioMasterVolume,
		EffectVolumes: vols,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("SIXER_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("SIXER_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampUnit(float64(val) / 100.0)
		}
	}

	// Effect volumes as JSON keyed by sound name, e.g. {"hit":0.8}
	if effectVols := os.Getenv("SIXER_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for s := SoundType(0); s < soundTypeCount; s++ {
				if v, ok := volumes[s.String()]; ok {
					cfg.EffectVolumes[s] = clampUnit(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv("SIXER_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
