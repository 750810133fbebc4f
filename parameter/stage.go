package parameter

// Stage Progression
const (
	// RushThreshold is the alive count at or below which the stage enters rush
	RushThreshold = 5

	// AppearanceUnitCount is the number of entry waves per stage
	AppearanceUnitCount = 5
	// AppearanceUnitSize is the number of formation enemies per wave
	AppearanceUnitSize = 8
	// AppearanceSpawnInterval is the tick spacing between enemies in a stream
	AppearanceSpawnInterval = 8
	// AppearanceUnitGap is the minimum tick gap between consecutive waves
	AppearanceUnitGap = 30
	// AppearanceAssaultStage is the first stage index adding assault enemies
	AppearanceAssaultStage = 1
	// AppearanceAssaultPerUnit is the number of assault enemies per wave after the first
	AppearanceAssaultPerUnit = 2
	// AppearanceCapturedDelay is the captured fighter lag behind its Owl in ticks
	AppearanceCapturedDelay = 4
)

// Attack Scheduling
const (
	AttackWaitBase      = 120
	AttackWaitMin       = 40
	AttackWaitRandom    = 60
	AttackWaitStageStep = 4
	AttackRushDivisor   = 3
	MaxAttackers        = 2
	RushMaxAttackers    = 4
	// AttackCaptureCycle makes every Nth pick prefer an Owl capture attack
	AttackCaptureCycle = 3
)

// Enemy Shot Speed (pixels scaled by vmath.One)
const (
	EnemyShotSpeedBase      = 2 * 256
	EnemyShotSpeedStageStep = 256 / 16
	EnemyShotSpeedMax       = 4 * 256
)
