package parameter

// Player Fighter (front end, pixels unless noted)
const (
	// PlayerY is the fighter's resting row
	PlayerY = ScreenHeight - 24
	// PlayerMargin keeps the fighter inside the playfield edges
	PlayerMargin = 8
	// PlayerSpeed is the horizontal speed in pixels per tick
	PlayerSpeed = 2
	// DualFighterOffset is the second fighter's distance to the right
	DualFighterOffset = 16
	// PlayerCollisionSize is the fighter's hit box edge
	PlayerCollisionSize = 12
	// PlayerCapturePullSpeed is the rise toward the beam point in pixels per tick
	PlayerCapturePullSpeed = 1
	// PlayerCaptureSpin is the heading change per tick while pulled in, in degrees
	PlayerCaptureSpin = 15
	// PlayerLives is the stock at game start, the fighter in play excluded
	PlayerLives = 2
	// PlayerRespawnWait is the minimum ticks before a lost fighter is replaced
	PlayerRespawnWait = 120
	// PlayerCrashPower is the damage of a body collision
	PlayerCrashPower = 2
)

// Player Shots
const (
	MaxMyShotCount = 2
	// MyShotSpeed is the shot's rise in pixels per tick
	MyShotSpeed  = 8
	MyShotWidth  = 2
	MyShotHeight = 8
	// MyShotPower is the damage dealt per hit
	MyShotPower = 1
)

// Input
const (
	// KeyHoldTicks is how long one key press keeps the fighter moving, terminals report no key release
	KeyHoldTicks = 8
)
