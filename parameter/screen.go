package parameter

import "time"

// Playfield in pixels
const (
	ScreenWidth  = 224
	ScreenHeight = 288
)

// Simulation Timing
const (
	// TickInterval is the fixed simulation step (~60 ticks per second)
	TickInterval = 16 * time.Millisecond

	// SpritePatternPeriod is the tick period of the two-frame sprite animation
	SpritePatternPeriod = 32
)
