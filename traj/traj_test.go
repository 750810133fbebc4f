package traj

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

type stubAccessor struct {
	formation vmath.Vec2I
	stage     int
}

func (s *stubAccessor) FormationPos(core.FormationIndex) vmath.Vec2I { return s.formation }
func (s *stubAccessor) StageNo() int                                 { return s.stage }

func run(t *testing.T, tr *Traj, acc Accessor, max int) int {
	t.Helper()
	for i := 1; i <= max; i++ {
		if !tr.Update(acc) {
			return i
		}
	}
	t.Fatalf("trajectory still running after %d ticks", max)
	return 0
}

// TestEmptyTableExhaustsImmediately verifies malformed input ends on first update
func TestEmptyTableExhaustsImmediately(t *testing.T) {
	tr := New(nil, vmath.Vec2I{}, false, core.FormationIndex{})
	assert.False(t, tr.Update(&stubAccessor{}))
	assert.True(t, tr.Done())
}

// TestDelayCountsTicks verifies Delay(n) keeps moving for exactly n ticks
func TestDelayCountsTicks(t *testing.T) {
	table := []Command{Pos(0, 0), Speed(px(1)), Angle(au(64)), Delay(10)}
	tr := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	ticks := run(t, tr, &stubAccessor{}, 100)
	assert.Equal(t, 10, ticks)
	assert.Equal(t, vmath.V(px(10), 0), tr.Pos())
}

// TestMoveByExact verifies linear interpolation lands exactly on the delta
func TestMoveByExact(t *testing.T) {
	table := []Command{Pos(px(10), px(10)), MoveBy(px(7)+3, -px(5), 9)}
	tr := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	ticks := run(t, tr, &stubAccessor{}, 100)
	assert.Equal(t, 9, ticks)
	assert.Equal(t, vmath.V(px(17)+3, px(5)), tr.Pos())
}

// TestFlipXMirrors verifies flipped scripts mirror positions, deltas and headings
func TestFlipXMirrors(t *testing.T) {
	table := []Command{
		Pos(px(40), px(20)),
		Speed(px(2)),
		Angle(au(64)),
		VAngle(au(1)),
		Delay(5),
		MoveBy(px(10), px(3), 5),
	}
	acc := &stubAccessor{}
	a := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	b := New(table, vmath.Vec2I{}, true, core.FormationIndex{})
	for {
		ra, rb := a.Update(acc), b.Update(acc)
		require.Equal(t, ra, rb)
		center := px(parameter.ScreenWidth)
		assert.Equal(t, a.Pos().X, center-b.Pos().X)
		assert.Equal(t, a.Pos().Y, b.Pos().Y)
		assert.Equal(t, a.Angle(), -b.Angle())
		assert.Equal(t, a.VAngle(), -b.VAngle())
		if !ra {
			break
		}
	}
}

// TestDestAngleReachesTarget verifies turning stops exactly at the destination
func TestDestAngleReachesTarget(t *testing.T) {
	table := []Command{Speed(px(1)), Angle(0), DestAngle(-au(100), au(7))}
	tr := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	run(t, tr, &stubAccessor{}, 100)
	assert.Equal(t, -au(100), tr.Angle())
	assert.Equal(t, 0, tr.VAngle())
}

// TestSkipIfOddBranchesOnParity verifies the formation column parity branch
func TestSkipIfOddBranchesOnParity(t *testing.T) {
	table := []Command{Pos(0, 0), SkipIfOdd(1), AddPos(px(5), 0), AddPos(0, px(1))}
	acc := &stubAccessor{}

	even := New(table, vmath.Vec2I{}, false, core.FormationIndex{X: 4, Y: 2})
	even.Update(acc)
	assert.Equal(t, vmath.V(px(5), px(1)), even.Pos())

	odd := New(table, vmath.Vec2I{}, false, core.FormationIndex{X: 3, Y: 2})
	odd.Update(acc)
	assert.Equal(t, vmath.V(0, px(1)), odd.Pos())
}

// TestLoopRepeats verifies the loop body runs count+1 times
func TestLoopRepeats(t *testing.T) {
	table := []Command{Pos(0, 0), AddPos(px(1), 0), Delay(1), Loop(2, 3)}
	tr := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	run(t, tr, &stubAccessor{}, 100)
	assert.Equal(t, px(4), tr.Pos().X)
}

// TestZeroWaitLoopExhausts verifies a loop without blocking commands cannot spin forever
func TestZeroWaitLoopExhausts(t *testing.T) {
	table := []Command{AddPos(1, 0), Loop(1, 1<<30)}
	tr := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	assert.False(t, tr.Update(&stubAccessor{}))
}

// TestShotMarkerStageGate verifies markers surface once and respect the stage gate
func TestShotMarkerStageGate(t *testing.T) {
	table := []Command{Shot(12), Delay(3)}

	first := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	first.Update(&stubAccessor{stage: 0})
	_, ok := first.IsShot()
	assert.False(t, ok, "first stage ignores shot markers")

	later := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	acc := &stubAccessor{stage: parameter.TrajShotFirstStage}
	later.Update(acc)
	wait, ok := later.IsShot()
	assert.True(t, ok)
	assert.Equal(t, 12, wait)

	later.Update(acc)
	_, ok = later.IsShot()
	assert.False(t, ok, "marker is reported for a single tick")
}

// TestCopyFormationXAndWaitY verifies formation queries and y waits
func TestCopyFormationXAndWaitY(t *testing.T) {
	table := []Command{Pos(0, 0), CopyFormationX(), Speed(px(2)), Angle(au(128)), WaitYG(px(20))}
	acc := &stubAccessor{formation: vmath.V(px(77), px(40))}
	tr := New(table, vmath.Vec2I{}, false, core.FormationIndex{})
	run(t, tr, acc, 100)
	assert.Equal(t, px(77), tr.Pos().X)
	assert.GreaterOrEqual(t, tr.Pos().Y, px(20))
}

// TestTablesTerminate verifies every shipped table leaves the interpreter in bounded time
func TestTablesTerminate(t *testing.T) {
	tables := map[string][]Command{
		"AppearanceTop":         AppearanceTop,
		"AppearanceSide":        AppearanceSide,
		"BeeAttack":             BeeAttack,
		"ButterflyAttack":       ButterflyAttack,
		"OwlAttack":             OwlAttack,
		"CapturedFighterAttack": CapturedFighterAttack,
		"BeeRushAttack":         BeeRushAttack,
		"BeeRushAttackCont":     BeeRushAttackCont,
		"ButterflyRushAttack":   ButterflyRushAttack,
		"OwlRushAttack":         OwlRushAttack,
	}
	acc := &stubAccessor{formation: vmath.V(px(100), px(64)), stage: 3}
	for name, table := range tables {
		for _, flip := range []bool{false, true} {
			tr := New(table, vmath.Vec2I{}, flip, core.FormationIndex{X: 3, Y: 4})
			tr.SetPos(vmath.V(px(100), px(64)))
			ticks := 0
			for tr.Update(acc) {
				ticks++
				require.Less(t, ticks, 2000, "%s flip=%v does not terminate", name, flip)
			}
		}
	}
}
