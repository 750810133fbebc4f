package traj

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// Accessor supplies the world state a script may reference
type Accessor interface {
	FormationPos(fi core.FormationIndex) vmath.Vec2I
	StageNo() int
}

// linearMove is an in-progress MoveBy
type linearMove struct {
	dx, dy int
	n, k   int
}

func (m *linearMove) active() bool { return m.k < m.n }

// step returns the exact integer increment for the next tick
func (m *linearMove) step() vmath.Vec2I {
	m.k++
	return vmath.Vec2I{
		X: m.dx*m.k/m.n - m.dx*(m.k-1)/m.n,
		Y: m.dy*m.k/m.n - m.dy*(m.k-1)/m.n,
	}
}

// Traj interprets an immutable command table
// Angles are kept in script space; world values are mirrored when flipX is set
type Traj struct {
	table  []Command
	index  int
	offset vmath.Vec2I
	flipX  bool
	fi     core.FormationIndex

	pos    vmath.Vec2I
	angle  int
	vangle int
	speed  int

	delay   int
	move    linearMove
	loops   map[int]int
	shot    int
	hasShot bool
}

// New creates an interpreter for table, mirrored horizontally when flipX is set
func New(table []Command, offset vmath.Vec2I, flipX bool, fi core.FormationIndex) *Traj {
	return &Traj{
		table:  table,
		offset: offset,
		flipX:  flipX,
		fi:     fi,
	}
}

// SetPos seeds the world position for scripts that start relative to the owner
func (t *Traj) SetPos(pos vmath.Vec2I) { t.pos = pos }

func (t *Traj) Pos() vmath.Vec2I { return t.pos }
func (t *Traj) Speed() int       { return t.speed }
func (t *Traj) FlipX() bool      { return t.flipX }

// Angle returns the world heading
func (t *Traj) Angle() int { return t.mirror(t.angle) }

// VAngle returns the world angular velocity
func (t *Traj) VAngle() int { return t.mirror(t.vangle) }

// IsShot reports a shot marker hit during the last Update and its wait
func (t *Traj) IsShot() (int, bool) {
	return t.shot, t.hasShot
}

// Done reports exhaustion without advancing
func (t *Traj) Done() bool {
	return t.index >= len(t.table) && t.delay <= 0 && !t.move.active()
}

func (t *Traj) mirror(a int) int {
	if t.flipX {
		return -a
	}
	return a
}

func (t *Traj) mirrorX(dx int) int {
	if t.flipX {
		return -dx
	}
	return dx
}

// Update advances one tick, returns false once the script is exhausted
func (t *Traj) Update(acc Accessor) bool {
	t.hasShot = false
	if len(t.table) == 0 {
		return false
	}

	t.handleCommands(acc)

	vel := vmath.CalcVelocity(t.Angle()+t.VAngle()/2, t.speed)
	if t.move.active() {
		step := t.move.step()
		vel = vel.Add(step)
	}
	t.pos = t.pos.Add(vel)
	t.angle += t.vangle

	return !t.Done()
}

func (t *Traj) handleCommands(acc Accessor) {
	if t.delay > 0 {
		t.delay--
		return
	}
	if t.move.active() {
		return
	}

	for budget := parameter.TrajMaxCommandsPerTick; t.index < len(t.table); budget-- {
		if budget <= 0 {
			// Zero-wait loop, treat the table as malformed and exhaust it
			t.index = len(t.table)
			return
		}
		if !t.exec(t.table[t.index], acc) {
			return
		}
	}
}

// exec runs one command, returns false when the command blocks for this tick
func (t *Traj) exec(cmd Command, acc Accessor) bool {
	switch cmd.Op {
	case OpPos:
		x := cmd.X
		if t.flipX {
			x = parameter.ScreenWidth*vmath.One - x
		}
		t.pos = vmath.Vec2I{X: x, Y: cmd.Y}.Add(t.offset)
	case OpAddPos:
		t.pos = t.pos.Add(vmath.Vec2I{X: t.mirrorX(cmd.X), Y: cmd.Y})
	case OpMoveBy:
		t.index++
		if cmd.N > 0 {
			t.move = linearMove{dx: t.mirrorX(cmd.X), dy: cmd.Y, n: cmd.N}
			return false
		}
		t.pos = t.pos.Add(vmath.Vec2I{X: t.mirrorX(cmd.X), Y: cmd.Y})
		return true
	case OpSpeed:
		t.speed = cmd.X
	case OpAngle:
		t.angle = cmd.X
	case OpVAngle:
		t.vangle = cmd.X
	case OpDelay:
		t.index++
		if cmd.N > 0 {
			t.delay = cmd.N - 1
			return false
		}
		return true
	case OpDestAngle:
		rate := vmath.Abs(cmd.Y)
		d := cmd.X - t.angle
		if vmath.Abs(d) <= rate {
			t.angle = cmd.X
			t.vangle = 0
			break
		}
		t.vangle = vmath.Sign(d) * rate
		return false
	case OpWaitYG:
		if t.pos.Y < cmd.Y {
			return false
		}
	case OpWaitYL:
		if t.pos.Y > cmd.Y {
			return false
		}
	case OpCopyFormationX:
		t.pos.X = acc.FormationPos(t.fi).X
	case OpSkipIfOdd:
		if t.fi.X&1 != 0 {
			t.index += cmd.N
		}
	case OpShot:
		if acc.StageNo() >= parameter.TrajShotFirstStage {
			t.shot = cmd.N
			t.hasShot = true
		}
	case OpLoop:
		if t.loops == nil {
			t.loops = make(map[int]int)
		}
		if t.loops[t.index] < cmd.N && cmd.X > 0 {
			t.loops[t.index]++
			t.index -= cmd.X
			return true
		}
		delete(t.loops, t.index)
	case OpEnd:
		t.index = len(t.table)
		return true
	default:
		// Unknown opcode, exhaust
		t.index = len(t.table)
		return true
	}
	t.index++
	return true
}
