package core

// SoundChannel is a mixer channel, a new cue on a channel cuts the previous one
type SoundChannel int

const (
	ChannelAttack  SoundChannel = iota // Dive starts
	ChannelJingle                      // Tractor beam and capture jingles
	ChannelExplode                     // Enemy destruction
	ChannelCount
)

// SoundCue identifies a synthesized sound effect
type SoundCue int

const (
	CueAttackStart  SoundCue = iota // Enemy breaks formation
	CueTractorBeam                  // Beam deployed
	CueTractorBeam2                 // Beam captures player
	CueExplosion                    // Enemy destroyed
	CueOwlDamage                    // Owl hit without destruction
	CueCaptured                     // Player capture completed
	CueCount
)
