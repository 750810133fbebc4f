package audio

import (
	"testing"

	"github.com/lixenwraith/galangua/core"
)

// TestLoadAudioConfigDefaults verifies defaults without environment overrides
func TestLoadAudioConfigDefaults(t *testing.T) {
	t.Setenv("GALANGUA_AUDIO_ENABLED", "")
	t.Setenv("GALANGUA_MASTER_VOLUME", "")
	t.Setenv("GALANGUA_SFX_VOLUMES", "")
	t.Setenv("GALANGUA_SAMPLE_RATE", "")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

// TestLoadAudioConfigOverrides verifies environment overrides and clamping
func TestLoadAudioConfigOverrides(t *testing.T) {
	t.Setenv("GALANGUA_AUDIO_ENABLED", "false")
	t.Setenv("GALANGUA_MASTER_VOLUME", "150")
	t.Setenv("GALANGUA_SFX_VOLUMES", `{"explosion": 0.25, "unknown": 1}`)
	t.Setenv("GALANGUA_SAMPLE_RATE", "22050")

	cfg := LoadAudioConfig()
	if cfg.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.MasterVolume != 1 {
		t.Errorf("Expected master volume clamped to 1, got %f", cfg.MasterVolume)
	}
	if cfg.CueVolumes[core.CueExplosion] != 0.25 {
		t.Errorf("Expected explosion volume 0.25, got %f", cfg.CueVolumes[core.CueExplosion])
	}
	if cfg.SampleRate != 22050 {
		t.Errorf("Expected sample rate 22050, got %d", cfg.SampleRate)
	}
}

// TestLoadAudioConfigIgnoresGarbage verifies malformed values keep defaults
func TestLoadAudioConfigIgnoresGarbage(t *testing.T) {
	t.Setenv("GALANGUA_AUDIO_ENABLED", "maybe")
	t.Setenv("GALANGUA_MASTER_VOLUME", "loud")
	t.Setenv("GALANGUA_SFX_VOLUMES", "{not json")
	t.Setenv("GALANGUA_SAMPLE_RATE", "-5")

	cfg := LoadAudioConfig()
	def := DefaultAudioConfig()
	if *cfg != *def {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}
