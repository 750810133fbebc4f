package physics

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/vmath"
)

// arrivalShift drops precision before squaring so distances across the screen fit comfortably
const arrivalShift = vmath.OneBit / 2

// Forward integrates one tick along the mid-tick heading, then advances the heading
func Forward(k *core.Kinetic) {
	k.Pos = k.Pos.Add(vmath.CalcVelocity(k.Angle+k.VAngle/2, k.Speed))
	k.Angle += k.VAngle
}

// HeadingTo returns the heading from pos toward target
func HeadingTo(pos, target vmath.Vec2I) int {
	diff := target.Sub(pos)
	return vmath.Atan2(-diff.Y, diff.X)
}

// SteerToward turns the heading toward target by at most limit
// Returns true when the remaining heading error was within limit
func SteerToward(k *core.Kinetic, target vmath.Vec2I, limit int) bool {
	d := vmath.DiffAngle(HeadingTo(k.Pos, target), k.Angle)
	k.Angle += vmath.Clamp(d, -limit, limit)
	return vmath.Abs(d) <= limit
}

// Arrived reports whether target lies within one tick of travel, compared squared
func Arrived(k *core.Kinetic, target vmath.Vec2I) bool {
	diff := target.Sub(k.Pos)
	sq := vmath.Square(diff.X>>arrivalShift) + vmath.Square(diff.Y>>arrivalShift)
	return sq <= vmath.Square(k.Speed>>arrivalShift)
}

// DecayAngle moves the heading toward zero by at most step
func DecayAngle(k *core.Kinetic, step int) {
	k.Angle -= vmath.Clamp(k.Angle, -step, step)
}
