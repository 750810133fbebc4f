package traj

// Op is a trajectory command opcode
type Op uint8

const (
	OpPos Op = iota
	OpAddPos
	OpMoveBy
	OpSpeed
	OpAngle
	OpVAngle
	OpDelay
	OpDestAngle
	OpWaitYG
	OpWaitYL
	OpCopyFormationX
	OpSkipIfOdd
	OpShot
	OpLoop
	OpEnd
)

// Command is one scripted step
// Field meaning depends on Op: positions and speeds are pixels scaled by vmath.One,
// angles are vmath.FullTurn scaled, N is a tick or command count
type Command struct {
	Op   Op
	X, Y int
	N    int
}

// Pos sets the absolute world position
func Pos(x, y int) Command { return Command{Op: OpPos, X: x, Y: y} }

// AddPos displaces the position once
func AddPos(dx, dy int) Command { return Command{Op: OpAddPos, X: dx, Y: dy} }

// MoveBy translates by (dx, dy) over n ticks on top of heading motion
func MoveBy(dx, dy, n int) Command { return Command{Op: OpMoveBy, X: dx, Y: dy, N: n} }

func Speed(v int) Command  { return Command{Op: OpSpeed, X: v} }
func Angle(a int) Command  { return Command{Op: OpAngle, X: a} }
func VAngle(v int) Command { return Command{Op: OpVAngle, X: v} }

// Delay keeps the current motion for n ticks
func Delay(n int) Command { return Command{Op: OpDelay, N: n} }

// DestAngle turns by rate per tick until the heading reaches dest
func DestAngle(dest, rate int) Command { return Command{Op: OpDestAngle, X: dest, Y: rate} }

// WaitYG waits until y >= the given value
func WaitYG(y int) Command { return Command{Op: OpWaitYG, Y: y} }

// WaitYL waits until y <= the given value
func WaitYL(y int) Command { return Command{Op: OpWaitYL, Y: y} }

// CopyFormationX snaps x to the owner's formation slot
func CopyFormationX() Command { return Command{Op: OpCopyFormationX} }

// SkipIfOdd skips the next n commands when the owner's formation column is odd
func SkipIfOdd(n int) Command { return Command{Op: OpSkipIfOdd, N: n} }

// Shot requests a shot after wait ticks
func Shot(wait int) Command { return Command{Op: OpShot, N: wait} }

// Loop jumps back over the previous back commands, count times
func Loop(back, count int) Command { return Command{Op: OpLoop, X: back, N: count} }

func End() Command { return Command{Op: OpEnd} }
