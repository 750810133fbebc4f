package parameter

// Enemy Arena
const (
	// MaxEnemyCount is the arena capacity, one slot per formation and assault index
	MaxEnemyCount = FormationXCount * (FormationYCount + AssaultRows)

	// MaxTroops is the regular escort capacity of a leader
	MaxTroops = 3

	// EnemyCollisionSize is the square hit box edge in pixels
	EnemyCollisionSize = 12

	// EnemySpriteHalf is the sprite draw offset from center in pixels
	EnemySpriteHalf = 8

	// EnemySpriteRotations is the number of rotated sprite buckets
	EnemySpriteRotations = 16
)

// Enemy Motion (pixels scaled by vmath.One, angles by vmath.FullTurn)
const (
	// FormationAngleDecayDiv divides a full turn into the per-tick residual angle decay
	FormationAngleDecayDiv = 128

	// MoveTurnLimitNum / MoveTurnLimitDen derive the formation approach turn limit from speed
	MoveTurnLimitNum = 5
	MoveTurnLimitDen = 3

	// AssaultTurnLimit is the assault dive turn clamp in angle units
	AssaultTurnLimit = 5

	// OffscreenMarginY is how far below the screen an enemy travels before leaving
	OffscreenMarginY = 8

	// ReturnWarpY is the pixel y an enemy reenters from after flying off the bottom
	ReturnWarpY = -32
)

// Enemy Scoring
const (
	BeeFormationPoint       = 50
	BeeAttackPoint          = 100
	ButterflyFormationPoint = 80
	ButterflyAttackPoint    = 160
	OwlFormationPoint       = 150
	OwlAttackBasePoint      = 400
	CapturedFormationPoint  = 500
	CapturedAttackPoint     = 1000
)

// Enemy Life
const (
	OwlLife     = 2
	DefaultLife = 1
)

// Attack Shot Cadence
const (
	AttackShotBase      = 2
	AttackShotStageStep = 8
	AttackShotMax       = 5
	AttackShotInterval  = 20
	AttackShotStep      = 2
)

// Owl Destruction
const (
	// OwlDestroyShotWait pauses all enemy fire after an Owl goes down
	OwlDestroyShotWait = 180
)
