package core

import "github.com/lixenwraith/galangua/vmath"

// Kinetic is heading-based motion state in fixed point
type Kinetic struct {
	// Pos is the sub-pixel position scaled by vmath.One
	Pos vmath.Vec2I
	// Angle is the heading, 0 = up, vmath.FullTurn per revolution
	Angle int
	// VAngle is the angular velocity per tick
	VAngle int
	// Speed is the displacement per tick along the heading
	Speed int
}
