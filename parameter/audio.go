package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines latency and mixer tick rate
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue Timing
const (
	AttackCueDuration    = 250 * time.Millisecond
	BeamCueDuration      = 900 * time.Millisecond
	CaptureCueDuration   = 600 * time.Millisecond
	ExplosionCueDuration = 300 * time.Millisecond
	DamageCueDuration    = 80 * time.Millisecond
	CueAttack            = 5 * time.Millisecond
	CueRelease           = 40 * time.Millisecond
)
