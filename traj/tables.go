package traj

import (
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// px scales pixels to fixed point
func px(v int) int { return v * vmath.One }

// au scales angle units (vmath.Angle per turn) to fixed point angles
func au(v int) int { return v * vmath.One }

var (
	exitY = px(parameter.ScreenHeight + parameter.OffscreenMarginY)
	warpY = -px(parameter.ScreenHeight + parameter.OffscreenMarginY - parameter.ReturnWarpY)
)

// Entry scripts, written for the left half and flipped for the right

// AppearanceTop drops from the top and loops outward
var AppearanceTop = []Command{
	Pos(px(parameter.ScreenWidth/2-24), px(-8)),
	Speed(px(3)),
	Angle(au(128)),
	Delay(24),
	DestAngle(au(256+32), au(4)),
	Delay(8),
	End(),
}

// AppearanceSide sweeps in from the lower side and loops over the top
var AppearanceSide = []Command{
	Pos(px(-8), px(210)),
	Speed(px(3)),
	Angle(au(48)),
	Delay(20),
	DestAngle(au(-64), au(4)),
	SkipIfOdd(1),
	Delay(6),
	Delay(10),
	End(),
}

// Attack scripts start from the formation slot, written for the left half

var BeeAttack = []Command{
	Speed(px(2)),
	Angle(0),
	DestAngle(au(-128), au(5)),
	Speed(px(3)),
	Shot(4),
	Delay(16),
	DestAngle(au(-152), au(2)),
	DestAngle(au(-104), au(2)),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}

var ButterflyAttack = []Command{
	Speed(px(2)),
	Angle(0),
	DestAngle(au(-128), au(5)),
	Speed(px(3)),
	Shot(8),
	DestAngle(au(-160), au(3)),
	DestAngle(au(-96), au(3)),
	Loop(2, 1),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}

// OwlAttack is the escorted dive, troops copy the leader heading
var OwlAttack = []Command{
	Speed(px(2)),
	Angle(0),
	DestAngle(au(-128), au(4)),
	Speed(px(5) / 2),
	Shot(6),
	Delay(20),
	DestAngle(au(-168), au(2)),
	MoveBy(px(-24), 0, 32),
	DestAngle(au(-108), au(2)),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}

// CapturedFighterAttack leaves the screen for good
var CapturedFighterAttack = []Command{
	Speed(px(2)),
	Angle(0),
	DestAngle(au(-128), au(5)),
	Speed(px(4)),
	Delay(12),
	DestAngle(au(-144), au(2)),
	WaitYG(exitY),
	End(),
}

// Rush scripts loop endlessly, each pass ends above the screen

var BeeRushAttack = []Command{
	Speed(px(3)),
	Angle(0),
	DestAngle(au(-128), au(6)),
	Speed(px(4)),
	Shot(4),
	Delay(10),
	DestAngle(au(-160), au(3)),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}

// BeeRushAttackCont keeps a rushing Bee diving from the top instead of returning
var BeeRushAttackCont = []Command{
	Speed(px(3)),
	Angle(au(128)),
	CopyFormationX(),
	Delay(30),
	DestAngle(au(160), au(3)),
	DestAngle(au(96), au(3)),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}

var ButterflyRushAttack = []Command{
	Speed(px(3)),
	Angle(0),
	DestAngle(au(-128), au(6)),
	Speed(px(4)),
	Shot(6),
	DestAngle(au(-168), au(4)),
	DestAngle(au(-88), au(4)),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}

var OwlRushAttack = []Command{
	Speed(px(3)),
	Angle(0),
	DestAngle(au(-128), au(5)),
	Speed(px(3)),
	Shot(6),
	MoveBy(px(-32), 0, 24),
	DestAngle(au(-100), au(3)),
	WaitYG(exitY),
	AddPos(0, warpY),
	End(),
}
