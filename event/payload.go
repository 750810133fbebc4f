package event

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/vmath"
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}

// EnemyShotPayload carries the muzzle position in fixed point
type EnemyShotPayload struct {
	Pos vmath.Vec2I
}

// EnemyExplosionPayload describes a scoring hit
type EnemyExplosionPayload struct {
	Pos   vmath.Vec2I
	Angle int
	Type  core.EnemyType
	Point int
}

// CapturePlayerPayload carries the capture point in fixed point
type CapturePlayerPayload struct {
	Pos vmath.Vec2I
}

// SpawnCapturedFighterPayload places a captured fighter at a formation slot
type SpawnCapturedFighterPayload struct {
	Pos   vmath.Vec2I
	Index core.FormationIndex
}

// RecapturePlayerPayload identifies the freed captured fighter
type RecapturePlayerPayload struct {
	Index core.FormationIndex
}

// SoundRequestPayload selects a cue and its channel
type SoundRequestPayload struct {
	Channel core.SoundChannel
	Cue     core.SoundCue
}

// StageStatePayload carries the new stage state as its ordinal
type StageStatePayload struct {
	State int
	Name  string
}
