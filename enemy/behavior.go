package enemy

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/traj"
	"github.com/lixenwraith/galangua/vmath"
)

// behavior is the per-type dispatch entry
type behavior struct {
	life       int
	setAttack  func(e *Enemy, capture bool, acc Accessor, q *event.EventQueue)
	rushTable  []traj.Command
	calcPoint  func(e *Enemy, acc Accessor) int
	spriteName func(e *Enemy, pat int) string
	setDamage  func(e *Enemy, power int, acc Accessor, q *event.EventQueue) DamageResult
}

var behaviors [core.EnemyTypeCount]behavior

func init() {
	behaviors = [core.EnemyTypeCount]behavior{
		core.EnemyBee: {
			life:       parameter.DefaultLife,
			setAttack:  beeSetAttack,
			rushTable:  traj.BeeRushAttack,
			calcPoint:  pointsByState(parameter.BeeFormationPoint, parameter.BeeAttackPoint),
			spriteName: animated("bee1", "bee2"),
			setDamage:  defaultSetDamage,
		},
		core.EnemyButterfly: {
			life:       parameter.DefaultLife,
			setAttack:  scriptedSetAttack(traj.ButterflyAttack),
			rushTable:  traj.ButterflyRushAttack,
			calcPoint:  pointsByState(parameter.ButterflyFormationPoint, parameter.ButterflyAttackPoint),
			spriteName: animated("butterfly1", "butterfly2"),
			setDamage:  defaultSetDamage,
		},
		core.EnemyOwl: {
			life:       parameter.OwlLife,
			setAttack:  owlSetAttack,
			rushTable:  traj.OwlRushAttack,
			calcPoint:  owlCalcPoint,
			spriteName: owlSpriteName,
			setDamage:  owlSetDamage,
		},
		core.EnemyCapturedFighter: {
			life:       parameter.DefaultLife,
			setAttack:  scriptedSetAttack(traj.CapturedFighterAttack),
			calcPoint:  pointsByState(parameter.CapturedFormationPoint, parameter.CapturedAttackPoint),
			spriteName: func(*Enemy, int) string { return "captured_fighter" },
			setDamage:  capturedFighterSetDamage,
		},
	}
}

// --- Points ---

func pointsByState(formation, attack int) func(*Enemy, Accessor) int {
	return func(e *Enemy, _ Accessor) int {
		if e.state == StateFormation {
			return formation
		}
		return attack
	}
}

// owlCalcPoint doubles the dive value per live escort
func owlCalcPoint(e *Enemy, acc Accessor) int {
	if e.state == StateFormation {
		return parameter.OwlFormationPoint
	}
	return parameter.OwlAttackBasePoint << e.liveEscorts(acc)
}

// --- Sprites ---

func animated(a, b string) func(*Enemy, int) string {
	return func(_ *Enemy, pat int) string {
		if pat&1 == 0 {
			return a
		}
		return b
	}
}

func owlSpriteName(e *Enemy, pat int) string {
	if e.life <= 1 {
		return animated("owl_damaged1", "owl_damaged2")(e, pat)
	}
	return animated("owl1", "owl2")(e, pat)
}

// --- Attack initiation ---

func (e *Enemy) flipX() bool {
	return e.fi.X >= parameter.FormationXCount/2
}

// startScriptedAttack runs table from the current position
func (e *Enemy) startScriptedAttack(table []traj.Command, phase Phase) {
	t := traj.New(table, vmath.Vec2I{}, e.flipX(), e.fi)
	t.SetPos(e.kin.Pos)
	e.traj = t
	e.count = 0
	e.attackFrame = 0
	e.state = StateAttack
	e.phase = phase
}

func beeSetAttack(e *Enemy, _ bool, _ Accessor, q *event.EventQueue) {
	e.startScriptedAttack(traj.BeeAttack, PhaseBeeTraj)
	playSound(q, core.ChannelAttack, core.CueAttackStart)
}

func scriptedSetAttack(table []traj.Command) func(*Enemy, bool, Accessor, *event.EventQueue) {
	return func(e *Enemy, _ bool, _ Accessor, q *event.EventQueue) {
		e.startScriptedAttack(table, PhaseTraj)
		playSound(q, core.ChannelAttack, core.CueAttackStart)
	}
}

func owlSetAttack(e *Enemy, capture bool, acc Accessor, q *event.EventQueue) {
	e.troops = nil
	if capture {
		e.startCaptureAttack(acc, q)
	} else {
		e.chooseTroops(acc)
		e.copyAngleToTroops = true
		e.startScriptedAttack(traj.OwlAttack, PhaseTraj)
	}
	playSound(q, core.ChannelAttack, core.CueAttackStart)
}

// rushAttack restarts a dive with the type's rush script
func (e *Enemy) rushAttack(q *event.EventQueue) {
	e.startScriptedAttack(behaviors[e.typ].rushTable, PhaseTraj)
	playSound(q, core.ChannelAttack, core.CueAttackStart)
}

// --- Damage ---

func explode(e *Enemy, point int, q *event.EventQueue) {
	q.Push(event.EventEnemyExplosion, &event.EnemyExplosionPayload{
		Pos:   e.kin.Pos,
		Angle: e.kin.Angle,
		Type:  e.typ,
		Point: point,
	})
	playSound(q, core.ChannelExplode, core.CueExplosion)
}

func defaultSetDamage(e *Enemy, power int, acc Accessor, q *event.EventQueue) DamageResult {
	if e.life > power {
		e.life -= power
		return DamageResult{}
	}
	point := e.CalcPoint(acc)
	e.life = 0
	explode(e, point, q)
	return DamageResult{Killed: true, Point: point}
}

func capturedFighterSetDamage(e *Enemy, power int, acc Accessor, q *event.EventQueue) DamageResult {
	result := defaultSetDamage(e, power, acc, q)
	if result.Killed {
		q.Push(event.EventCapturedFighterDestroyed, nil)
	}
	return result
}

// owlSetDamage turns an escorted Owl into a ghost and cancels any capture in progress
func owlSetDamage(e *Enemy, power int, acc Accessor, q *event.EventQueue) DamageResult {
	if e.life > power {
		e.life -= power
		playSound(q, core.ChannelExplode, core.CueOwlDamage)
		return DamageResult{}
	}

	point := e.CalcPoint(acc)
	e.life = 0
	killed := !e.hasLiveTroops(acc)

	switch e.capturing {
	case CapturingNone:
		captured := e.capturedSlot()
		if e.hasTroop(captured) && acc.EnemyAt(captured) != nil {
			q.Push(event.EventRecapturePlayer, &event.RecapturePlayerPayload{Index: captured})
		}
	case CapturingAttacking:
		q.Push(event.EventEndCaptureAttack, nil)
	case CapturingBeamTracting:
		q.Push(event.EventEscapeCapturing, nil)
	}
	e.capturing = CapturingNone
	if e.beam != nil {
		e.beam.CloseCapture()
	}

	acc.PauseEnemyShot(parameter.OwlDestroyShotWait)
	if point > 0 {
		explode(e, point, q)
	}
	return DamageResult{Killed: killed, Point: point}
}
