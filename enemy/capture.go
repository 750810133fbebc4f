package enemy

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/physics"
	"github.com/lixenwraith/galangua/vmath"
)

var (
	captureSnap       = parameter.CaptureSnapAngle * vmath.One
	captureAngleLimit = vmath.HalfTurn - vmath.FullTurn*parameter.CaptureAngleMarginDeg/360
	captureReturnSpd  = parameter.CaptureReturnSpeedNum * vmath.One / parameter.CaptureReturnSpeedDen
	exitY             = (parameter.ScreenHeight + parameter.OffscreenMarginY) * vmath.One
)

// startCaptureAttack begins the beam dive toward the player
func (e *Enemy) startCaptureAttack(acc Accessor, q *event.EventQueue) {
	e.capturing = CapturingAttacking
	e.troops = nil
	e.attackFrame = 0
	e.count = 0
	e.kin.Speed = parameter.CaptureSpeedNum * vmath.One / parameter.CaptureSpeedDen
	e.kin.Angle = 0
	if e.fi.X < parameter.FormationXCount/2 {
		e.kin.VAngle = -parameter.CaptureInitialVAngle * vmath.One
	} else {
		e.kin.VAngle = parameter.CaptureInitialVAngle * vmath.One
	}
	e.target = vmath.Vec2I{X: acc.PlayerPos().X, Y: parameter.CaptureTargetY * vmath.One}
	e.state = StateAttack
	e.phase = PhaseCaptureSteer
	q.Push(event.EventBeginCaptureAttack, nil)
}

// updateCaptureSteer loops over and descends steeply to the beam point
func (e *Enemy) updateCaptureSteer(_ Accessor, q *event.EventQueue) {
	target := physics.HeadingTo(e.kin.Pos, e.target)
	// Keep the descent within the margin of straight down
	if target >= 0 {
		target = max(target, captureAngleLimit)
	} else {
		target = min(target, -captureAngleLimit)
	}

	d := vmath.DiffAngle(target, e.kin.Angle)
	// Measure along the current turn direction so the loop never reverses across the wrap
	if e.kin.VAngle > 0 && d < 0 {
		d += vmath.FullTurn
	} else if e.kin.VAngle < 0 && d > 0 {
		d -= vmath.FullTurn
	}
	if -captureSnap <= d && d < captureSnap {
		e.kin.Angle = target
		e.kin.VAngle = 0
	}

	if e.kin.Pos.Y >= e.target.Y {
		e.kin.Pos.Y = e.target.Y
		e.kin.Speed = 0
		e.kin.Angle = vmath.HalfTurn
		e.kin.VAngle = 0
		e.beam = NewTractorBeam(e.kin.Pos.Add(vmath.PixelToFixed(0, parameter.TractorBeamOffsetY)))
		e.phase = PhaseCaptureBeam
		playSound(q, core.ChannelJingle, core.CueTractorBeam)
		return
	}
	physics.Forward(&e.kin)
}

// updateCaptureBeam waits for the player under an open beam
func (e *Enemy) updateCaptureBeam(acc Accessor, q *event.EventQueue) {
	if e.beam.Closed() {
		e.beam = nil
		e.kin.Speed = captureReturnSpd
		e.phase = PhaseCaptureGoOut
		return
	}

	if acc.CanPlayerCapture() && e.beam.CanCapture(acc.PlayerPos()) {
		q.Push(event.EventCapturePlayer, &event.CapturePlayerPayload{
			Pos: e.kin.Pos.Add(vmath.PixelToFixed(0, parameter.CapturedFighterOffsetY)),
		})
		e.beam.StartCapture()
		e.capturing = CapturingBeamTracting
		e.phase = PhaseCaptureStart
		playSound(q, core.ChannelJingle, core.CueTractorBeam2)
	}
}

// updateCaptureGoOut leaves through the bottom and reenters from the top
func (e *Enemy) updateCaptureGoOut(acc Accessor, q *event.EventQueue) {
	physics.Forward(&e.kin)
	if e.kin.Pos.Y < exitY {
		return
	}

	e.kin.Pos = vmath.Vec2I{X: acc.FormationPos(e.fi).X, Y: parameter.ReturnWarpY * vmath.One}
	e.capturing = CapturingNone
	q.Push(event.EventEndCaptureAttack, nil)
	if acc.IsRush() {
		e.rushAttack(q)
		return
	}
	e.SetState(StateMoveToFormation)
}

// updateCaptureStart holds the beam until the owner finishes pulling the player in
func (e *Enemy) updateCaptureStart(acc Accessor) {
	if acc.IsPlayerCaptureCompleted() {
		e.beam.CloseCapture()
		e.phase = PhaseCaptureCloseBeam
	}
}

// updateCaptureCloseBeam spawns the captured fighter once the beam is gone
func (e *Enemy) updateCaptureCloseBeam(q *event.EventQueue) {
	if !e.beam.Closed() {
		return
	}

	slot := e.capturedSlot()
	q.Push(event.EventSpawnCapturedFighter, &event.SpawnCapturedFighterPayload{
		Pos:   e.kin.Pos.Add(vmath.PixelToFixed(0, parameter.CapturedFighterOffsetY)),
		Index: slot,
	})
	e.addTroop(slot)
	e.beam = nil
	e.capturing = CapturingAttacking
	e.copyAngleToTroops = false
	e.count = 0
	e.phase = PhaseCaptureDoneWait
	q.Push(event.EventCapturePlayerCompleted, nil)
	playSound(q, core.ChannelJingle, core.CueCaptured)
}

func (e *Enemy) updateCaptureDoneWait() {
	e.count++
	if e.count >= parameter.CaptureDoneWait {
		e.kin.Speed = captureReturnSpd
		e.phase = PhaseCaptureBack
	}
}

func (e *Enemy) updateCaptureBack(acc Accessor) {
	if e.moveToFormation(acc) {
		e.kin.Speed = 0
		e.kin.Angle = vmath.NormalizeAngle(e.kin.Angle)
		e.phase = PhaseCapturePushUp
	}
}

// updateCapturePushUp raises the captured fighter into the slot above the Owl
func (e *Enemy) updateCapturePushUp(acc Accessor, q *event.EventQueue) {
	prevY := e.kin.Pos.Y
	e.kin.Pos = acc.FormationPos(e.fi)
	physics.DecayAngle(&e.kin, vmath.FullTurn/parameter.FormationAngleDecayDiv)

	if fighter := acc.EnemyAt(e.capturedSlot()); fighter != nil && fighter.state == StateTroop {
		// Offset relative to the Owl before this tick's pin; troop propagation adds the pin delta
		rel := fighter.kin.Pos.Y - prevY
		goal := -parameter.CapturedFighterOffsetY * vmath.One
		if rel > goal {
			rel = max(rel-parameter.CapturePushUpStep*vmath.One, goal)
			fighter.kin.Pos.Y = prevY + rel
			return
		}
	}

	q.Push(event.EventCaptureSequenceEnded, nil)
	e.capturing = CapturingNone
	e.releaseTroops(acc)
	e.SetToFormation()
}
