package enemy

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/traj"
	"github.com/lixenwraith/galangua/vmath"
)

func (e *Enemy) updateAttack(acc Accessor, q *event.EventQueue) {
	switch e.phase {
	case PhaseTraj:
		e.updateAttackTraj(acc, q)
	case PhaseBeeTraj:
		e.updateBeeAttack(acc, q)
	case PhaseCaptureSteer:
		e.updateCaptureSteer(acc, q)
	case PhaseCaptureBeam:
		e.updateCaptureBeam(acc, q)
	case PhaseCaptureGoOut:
		e.updateCaptureGoOut(acc, q)
	case PhaseCaptureStart:
		e.updateCaptureStart(acc)
	case PhaseCaptureCloseBeam:
		e.updateCaptureCloseBeam(q)
	case PhaseCaptureDoneWait:
		e.updateCaptureDoneWait()
	case PhaseCaptureBack:
		e.updateCaptureBack(acc)
	case PhaseCapturePushUp:
		e.updateCapturePushUp(acc, q)
	}
}

// attackShotCount is the number of cadence shots per dive at stage
func attackShotCount(stage int) int {
	n := parameter.AttackShotBase + stage/parameter.AttackShotStageStep
	if n > parameter.AttackShotMax {
		return parameter.AttackShotMax
	}
	return n
}

// fireAttackShots fires on the first shotCount interval boundaries of a dive
func (e *Enemy) fireAttackShots(acc Accessor, q *event.EventQueue) {
	e.attackFrame++
	count := attackShotCount(acc.StageNo())
	interval := parameter.AttackShotInterval - parameter.AttackShotStep*count
	if e.attackFrame > interval*count || e.attackFrame%interval != 0 {
		return
	}

	q.Push(event.EventEnemyShot, &event.EnemyShotPayload{Pos: e.kin.Pos})
	for _, fi := range e.troops {
		if t := acc.EnemyAt(fi); t != nil {
			q.Push(event.EventEnemyShot, &event.EnemyShotPayload{Pos: t.kin.Pos})
		}
	}
}

func (e *Enemy) updateAttackTraj(acc Accessor, q *event.EventQueue) {
	e.fireAttackShots(acc, q)
	if e.updateTrajectory(acc, q) {
		return
	}

	if e.typ == core.EnemyCapturedFighter {
		e.disappeared = true
		return
	}
	if acc.IsRush() {
		e.removeDestroyedTroops(acc)
		e.rushAttack(q)
	}
}

func (e *Enemy) updateBeeAttack(acc Accessor, q *event.EventQueue) {
	e.fireAttackShots(acc, q)
	if e.updateTrajectory(acc, q) {
		return
	}

	if acc.IsRush() {
		t := traj.New(traj.BeeRushAttackCont, vmath.Vec2I{}, e.flipX(), e.fi)
		t.SetPos(e.kin.Pos)
		e.traj = t
		e.state = StateAttack
		e.phase = PhaseTraj
		playSound(q, core.ChannelAttack, core.CueAttackStart)
	}
}
