package parameter

// Enemy Shots
const (
	// MaxEnemyShotCount is the shot pool capacity
	MaxEnemyShotCount = 16

	// EnemyShotWidth and EnemyShotHeight are the hit box in pixels
	EnemyShotWidth  = 1
	EnemyShotHeight = 4

	// EnemyShotMargin is how far off screen a shot travels before it is dropped
	EnemyShotMargin = 16

	// TrajShotFirstStage is the first stage index honoring scripted shot markers
	TrajShotFirstStage = 1
)

// Trajectory Interpreter
const (
	// TrajMaxCommandsPerTick bounds zero-wait command runs in a single tick
	TrajMaxCommandsPerTick = 64
)
