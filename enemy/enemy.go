package enemy

import (
	"fmt"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/physics"
	"github.com/lixenwraith/galangua/traj"
	"github.com/lixenwraith/galangua/vmath"
)

// State is the behavioral state of an enemy
type State uint8

const (
	StateNone State = iota
	StateAppearance
	StateMoveToFormation
	StateAssault
	StateFormation
	StateAttack
	StateTroop
)

var stateNames = [...]string{"None", "Appearance", "MoveToFormation", "Assault", "Formation", "Attack", "Troop"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// Phase is the sub-state of Attack and Assault
type Phase uint8

const (
	PhaseNone Phase = iota
	PhaseTraj
	PhaseBeeTraj
	PhaseCaptureSteer
	PhaseCaptureBeam
	PhaseCaptureGoOut
	PhaseCaptureStart
	PhaseCaptureCloseBeam
	PhaseCaptureDoneWait
	PhaseCaptureBack
	PhaseCapturePushUp
	PhaseAssaultSteer
	PhaseAssaultDive
)

// CapturingState tracks an Owl's involvement with the player's ship
type CapturingState uint8

const (
	CapturingNone CapturingState = iota
	CapturingAttacking
	CapturingBeamTracting
)

// Accessor is the world view an enemy reads while updating
type Accessor interface {
	traj.Accessor
	PlayerPos() vmath.Vec2I
	DualPlayerPos() (vmath.Vec2I, bool)
	CanPlayerCapture() bool
	IsPlayerCaptureCompleted() bool
	IsRush() bool
	// EnemyAt returns the live enemy at fi, nil when absent or disappeared
	EnemyAt(fi core.FormationIndex) *Enemy
	PauseEnemyShot(wait int)
	Rand() *vmath.FastRand
}

// Renderer draws opaque sprite keys at pixel positions
type Renderer interface {
	DrawSprite(name string, pos vmath.Vec2I)
	DrawSpriteRot(name string, pos vmath.Vec2I, angleDeg int)
}

// DamageResult reports the outcome of a hit
type DamageResult struct {
	Killed bool
	Point  int
}

// Enemy is a single enemy, owned by the stage arena at its formation index
type Enemy struct {
	typ   core.EnemyType
	state State
	phase Phase
	kin   core.Kinetic
	fi    core.FormationIndex
	life  int

	traj        *traj.Traj
	shotWait    int
	hasShotWait bool

	troops            []core.FormationIndex
	copyAngleToTroops bool
	capturing         CapturingState
	beam              *TractorBeam
	target            vmath.Vec2I

	count       int
	attackFrame int
	disappeared bool
}

// New creates an enemy of type typ in the None state
func New(typ core.EnemyType, pos vmath.Vec2I, angle, speed int, fi core.FormationIndex) *Enemy {
	return &Enemy{
		typ:               typ,
		kin:               core.Kinetic{Pos: pos, Angle: angle, Speed: speed},
		fi:                fi,
		life:              behaviors[typ].life,
		copyAngleToTroops: true,
	}
}

func (e *Enemy) Type() core.EnemyType                { return e.typ }
func (e *Enemy) State() State                        { return e.state }
func (e *Enemy) Phase() Phase                        { return e.phase }
func (e *Enemy) FormationIndex() core.FormationIndex { return e.fi }
func (e *Enemy) Life() int                           { return e.life }
func (e *Enemy) RawPos() vmath.Vec2I                 { return e.kin.Pos }
func (e *Enemy) Angle() int                          { return e.kin.Angle }
func (e *Enemy) Speed() int                          { return e.kin.Speed }
func (e *Enemy) CapturingState() CapturingState      { return e.capturing }
func (e *Enemy) TractorBeam() *TractorBeam           { return e.beam }
func (e *Enemy) IsDisappeared() bool                 { return e.disappeared }
func (e *Enemy) IsGhost() bool                       { return e.life <= 0 && !e.disappeared }

// Pos returns the position rounded to pixels
func (e *Enemy) Pos() vmath.Vec2I { return vmath.RoundUp(e.kin.Pos) }

// Troops returns a copy of the troop references
func (e *Enemy) Troops() []core.FormationIndex {
	return append([]core.FormationIndex(nil), e.troops...)
}

// SetPos moves the enemy without touching its troops
func (e *Enemy) SetPos(pos vmath.Vec2I) { e.kin.Pos = pos }

// SetAngle overrides the heading
func (e *Enemy) SetAngle(angle int) { e.kin.Angle = angle }

// SetState forces a state; Attack may only be entered through StartAttack
func (e *Enemy) SetState(s State) {
	if s == StateAttack {
		panic(fmt.Sprintf("illegal state: %v enemy %v set to %v through SetState", e.typ, e.fi, s))
	}
	e.state = s
	e.phase = PhaseNone
}

// MarkDisappeared flags the enemy for removal
func (e *Enemy) MarkDisappeared() { e.disappeared = true }

// SetAppearance starts an entry script
func (e *Enemy) SetAppearance(t *traj.Traj) {
	e.traj = t
	e.state = StateAppearance
	e.phase = PhaseTraj
}

// StartAttack breaks the enemy out of formation
func (e *Enemy) StartAttack(capture bool, acc Accessor, q *event.EventQueue) {
	behaviors[e.typ].setAttack(e, capture, acc, q)
}

// SetDamage applies power damage and reports kill and points
func (e *Enemy) SetDamage(power int, acc Accessor, q *event.EventQueue) DamageResult {
	return behaviors[e.typ].setDamage(e, power, acc, q)
}

// CalcPoint returns the score this enemy is worth right now
func (e *Enemy) CalcPoint(acc Accessor) int {
	return behaviors[e.typ].calcPoint(e, acc)
}

// Update advances the enemy one tick
func (e *Enemy) Update(acc Accessor, q *event.EventQueue) {
	prev := e.kin.Pos

	switch e.state {
	case StateAppearance:
		e.updateTrajectory(acc, q)
	case StateMoveToFormation:
		e.updateMoveToFormation(acc)
	case StateAssault:
		e.updateAssault()
	case StateFormation:
		e.kin.Pos = acc.FormationPos(e.fi)
		physics.DecayAngle(&e.kin, vmath.FullTurn/parameter.FormationAngleDecayDiv)
	case StateAttack:
		e.updateAttack(acc, q)
	}

	e.updateTroops(e.kin.Pos.Sub(prev), acc)

	if e.beam != nil {
		e.beam.Update()
	}

	if e.life <= 0 && !e.disappeared && !e.hasLiveTroops(acc) {
		e.disappeared = true
	}
}

// updateTrajectory runs the active script, returns false once it is exhausted
func (e *Enemy) updateTrajectory(acc Accessor, q *event.EventQueue) bool {
	t := e.traj
	if t == nil {
		e.SetState(StateMoveToFormation)
		return false
	}

	running := t.Update(acc)
	e.kin.Pos = t.Pos()
	e.kin.Angle = t.Angle()
	e.kin.Speed = t.Speed()
	e.kin.VAngle = t.VAngle()

	if wait, ok := t.IsShot(); ok {
		e.shotWait = wait
		e.hasShotWait = true
	}
	if e.hasShotWait {
		if e.shotWait > 0 {
			e.shotWait--
		} else {
			q.Push(event.EventEnemyShot, &event.EnemyShotPayload{Pos: e.kin.Pos})
			e.hasShotWait = false
		}
	}

	if running {
		return true
	}

	e.traj = nil
	e.hasShotWait = false
	if e.state == StateAppearance && e.fi.Y >= parameter.FormationYCount {
		e.startAssault(acc)
	} else {
		e.SetState(StateMoveToFormation)
	}
	return false
}

func (e *Enemy) updateMoveToFormation(acc Accessor) {
	if e.moveToFormation(acc) {
		e.capturing = CapturingNone
		e.releaseTroops(acc)
		e.SetToFormation()
	}
}

// moveToFormation steers toward the slot, returns true on arrival
func (e *Enemy) moveToFormation(acc Accessor) bool {
	target := acc.FormationPos(e.fi)
	if physics.Arrived(&e.kin, target) {
		e.kin.Pos = target
		e.kin.Speed = 0
		return true
	}

	limit := e.kin.Speed * parameter.MoveTurnLimitNum / parameter.MoveTurnLimitDen
	physics.SteerToward(&e.kin, target, limit)
	e.kin.VAngle = 0
	physics.Forward(&e.kin)
	return false
}

// SetToTroop hands motion over to a leader
func (e *Enemy) SetToTroop() {
	e.SetState(StateTroop)
	e.kin.VAngle = 0
}

// SetToFormation pins the enemy to its slot
func (e *Enemy) SetToFormation() {
	e.kin.Speed = 0
	e.kin.Angle = vmath.NormalizeAngle(e.kin.Angle)
	e.kin.VAngle = 0
	e.copyAngleToTroops = true
	if e.life <= 0 {
		e.disappeared = true
	}
	e.SetState(StateFormation)
}

// ReturnToFormation sends an independent enemy home at speed
func (e *Enemy) ReturnToFormation(speed int) {
	e.traj = nil
	e.kin.Speed = speed
	e.kin.VAngle = 0
	e.SetState(StateMoveToFormation)
}

// --- Troops ---

func (e *Enemy) addTroop(fi core.FormationIndex) bool {
	if len(e.troops) >= parameter.MaxTroops {
		return false
	}
	e.troops = append(e.troops, fi)
	return true
}

// chooseTroops takes formation neighbors as escorts
func (e *Enemy) chooseTroops(acc Accessor) {
	candidates := [parameter.MaxTroops]core.FormationIndex{
		e.fi.Neighbor(-1, 1),
		e.fi.Neighbor(1, 1),
		e.fi.Neighbor(0, -1),
	}
	e.troops = e.troops[:0]
	for _, fi := range candidates {
		if t := acc.EnemyAt(fi); t != nil && t.state == StateFormation {
			e.addTroop(fi)
			t.SetToTroop()
		}
	}
}

func (e *Enemy) updateTroops(delta vmath.Vec2I, acc Accessor) {
	for _, fi := range e.troops {
		t := acc.EnemyAt(fi)
		if t == nil || t.state != StateTroop {
			continue
		}
		t.kin.Pos = t.kin.Pos.Add(delta)
		if e.copyAngleToTroops {
			t.kin.Angle = e.kin.Angle
		}
	}
}

func (e *Enemy) releaseTroops(acc Accessor) {
	for _, fi := range e.troops {
		if t := acc.EnemyAt(fi); t != nil && t.state == StateTroop {
			t.SetToFormation()
		}
	}
	e.troops = nil
}

// removeDestroyedTroops drops references that no longer resolve
func (e *Enemy) removeDestroyedTroops(acc Accessor) {
	kept := e.troops[:0]
	for _, fi := range e.troops {
		if acc.EnemyAt(fi) != nil {
			kept = append(kept, fi)
		}
	}
	e.troops = kept
}

// capturedSlot is the slot a captured fighter occupies above this enemy
func (e *Enemy) capturedSlot() core.FormationIndex {
	return e.fi.Neighbor(0, -1)
}

// liveEscorts counts resolvable troops other than the captured fighter
func (e *Enemy) liveEscorts(acc Accessor) int {
	captured := e.capturedSlot()
	n := 0
	for _, fi := range e.troops {
		if fi != captured && acc.EnemyAt(fi) != nil {
			n++
		}
	}
	return n
}

func (e *Enemy) hasLiveTroops(acc Accessor) bool {
	return e.liveEscorts(acc) > 0
}

func (e *Enemy) hasTroop(fi core.FormationIndex) bool {
	for _, t := range e.troops {
		if t == fi {
			return true
		}
	}
	return false
}

// OrphanTroops returns troop references for the owner to release after removal
func (e *Enemy) OrphanTroops() []core.FormationIndex {
	return e.Troops()
}

// --- Drawing and collision ---

// CollBox returns the hit box in pixels, false for ghosts and removed enemies
func (e *Enemy) CollBox() (vmath.CollBox, bool) {
	if e.life <= 0 || e.disappeared {
		return vmath.CollBox{}, false
	}
	return vmath.CenteredBox(e.Pos(), parameter.EnemyCollisionSize, parameter.EnemyCollisionSize), true
}

// Draw renders the enemy and its beam, pat selects the animation frame
func (e *Enemy) Draw(r Renderer, pat int) {
	if e.life <= 0 || e.disappeared {
		return
	}
	name := behaviors[e.typ].spriteName(e, pat)
	pos := e.Pos().Sub(vmath.V(parameter.EnemySpriteHalf, parameter.EnemySpriteHalf))
	rot := vmath.QuantizeAngle(e.kin.Angle, parameter.EnemySpriteRotations)
	r.DrawSpriteRot(name, pos, rot*360/parameter.EnemySpriteRotations)

	if e.beam != nil {
		e.beam.Draw(r)
	}
}

func playSound(q *event.EventQueue, ch core.SoundChannel, cue core.SoundCue) {
	q.Push(event.EventSoundRequest, &event.SoundRequestPayload{Channel: ch, Cue: cue})
}
