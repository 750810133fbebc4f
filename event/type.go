package event

// EventType represents the type of game event
type EventType int

const (
	// EventNone is the zero value, never pushed
	EventNone EventType = iota

	// === Enemy Fire ===

	// EventEnemyShot requests an aimed enemy shot
	// Trigger: Attack cadence, scripted shot markers
	// Consumer: Stage manager shot pool | Payload: *EnemyShotPayload
	EventEnemyShot

	// EventEnemyExplosion reports a scoring hit
	// Trigger: Enemy damage with points
	// Consumer: Score, effects and audio | Payload: *EnemyExplosionPayload
	EventEnemyExplosion

	// === Capture Protocol ===

	// EventBeginCaptureAttack marks an Owl starting a capture dive
	// Trigger: Attack manager capture pick
	// Consumer: Player | Payload: nil
	EventBeginCaptureAttack

	// EventEndCaptureAttack marks a capture dive ending without a capture
	// Trigger: Owl fly out return, Owl destroyed while attacking
	// Consumer: Player | Payload: nil
	EventEndCaptureAttack

	// EventCapturePlayer starts pulling the player into the beam
	// Trigger: Player within a fully opened beam
	// Consumer: Player | Payload: *CapturePlayerPayload
	EventCapturePlayer

	// EventCapturePlayerCompleted marks the fighter taken
	// Trigger: Beam closed after capture
	// Consumer: Player | Payload: nil
	EventCapturePlayerCompleted

	// EventCaptureSequenceEnded marks the Owl back in formation with its prize
	// Trigger: Push up finished
	// Consumer: Player | Payload: nil
	EventCaptureSequenceEnded

	// EventSpawnCapturedFighter requests a captured fighter enemy
	// Trigger: Beam closed after capture
	// Consumer: Stage manager | Payload: *SpawnCapturedFighterPayload
	EventSpawnCapturedFighter

	// EventRecapturePlayer reports the captured fighter freed by an Owl kill
	// Trigger: Escorted Owl destroyed with its captured fighter in tow
	// Consumer: Player | Payload: *RecapturePlayerPayload
	EventRecapturePlayer

	// EventEscapeCapturing reports the player released mid beam
	// Trigger: Owl destroyed while tracting
	// Consumer: Player | Payload: nil
	EventEscapeCapturing

	// EventCapturedFighterDestroyed reports the player's captured ship shot down
	// Trigger: Captured fighter destroyed
	// Consumer: Player | Payload: nil
	EventCapturedFighterDestroyed

	// === Audio ===

	// EventSoundRequest requests audio playback
	// Trigger: Enemy behaviors requiring audio feedback
	// Consumer: SoundManager | Payload: *SoundRequestPayload
	EventSoundRequest

	// === Stage ===

	// EventStageStateChanged reports a stage state transition
	// Trigger: Stage manager state check
	// Consumer: Front end | Payload: *StageStatePayload
	EventStageStateChanged

	eventTypeCount
)
