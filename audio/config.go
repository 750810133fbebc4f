package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64
	CueVolumes   [core.CueCount]float64
	SampleRate   int
}

// cueKeys names cues in the volume override JSON
var cueKeys = map[string]core.SoundCue{
	"attack":    core.CueAttackStart,
	"beam":      core.CueTractorBeam,
	"beam2":     core.CueTractorBeam2,
	"explosion": core.CueExplosion,
	"damage":    core.CueOwlDamage,
	"captured":  core.CueCaptured,
}

func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.CueVolumes {
		cfg.CueVolumes[i] = 1.0
	}
	cfg.CueVolumes[core.CueExplosion] = 0.6
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("GALANGUA_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// 0-100 converted to 0.0-1.0
	if volume := os.Getenv("GALANGUA_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	if cueVols := os.Getenv("GALANGUA_SFX_VOLUMES"); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for key, v := range volumes {
				if cue, ok := cueKeys[key]; ok {
					cfg.CueVolumes[cue] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("GALANGUA_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}
