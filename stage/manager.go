package stage

import (
	"fmt"
	"log"

	"github.com/lixenwraith/galangua/config"
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/enemy"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/formation"
	"github.com/lixenwraith/galangua/vmath"
)

// State is the stage progression state, it only moves forward
type State uint8

const (
	StateAppearance State = iota
	StateNormal
	StateRush
	StateCleared
)

var stateNames = [...]string{"Appearance", "Normal", "Rush", "Cleared"}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", s)
}

// nextState derives the progression state from the alive count
func nextState(cur State, alive, threshold int) State {
	next := cur
	switch {
	case alive == 0:
		next = StateCleared
	case alive <= threshold:
		next = StateRush
	}
	if next < cur {
		return cur
	}
	return next
}

// Player is the fighter collaborator, positions in fixed point
type Player interface {
	Pos() vmath.Vec2I
	DualPos() (vmath.Vec2I, bool)
	CanCapture() bool
	IsCaptureCompleted() bool
	CanCaptureAttack() bool
}

// Manager owns the enemies of a stage and orchestrates entry, attacks and progression
type Manager struct {
	player Player
	tuning *config.Tuning
	rng    *vmath.FastRand

	arena      *EnemyManager
	formation  *formation.Formation
	appearance *AppearanceManager
	attack     *AttackManager

	state State
	stage int
	queue *event.EventQueue
}

func NewManager(player Player, tuning *config.Tuning, rng *vmath.FastRand) *Manager {
	if tuning == nil {
		tuning = config.Default()
	}
	m := &Manager{
		player:     player,
		tuning:     tuning,
		rng:        rng,
		arena:      NewEnemyManager(),
		formation:  formation.New(),
		appearance: NewAppearanceManager(),
		attack:     NewAttackManager(tuning.Attack),
		queue:      event.NewEventQueue(),
	}
	m.StartNextStage(0, nil)
	return m
}

// StartNextStage resets the arena and every scheduler for stage
func (m *Manager) StartNextStage(stage int, capturedFighter *core.FormationIndex) {
	m.stage = stage
	m.arena.Clear()
	m.appearance.Restart(stage, capturedFighter)
	m.formation.Restart()
	m.attack.Restart(stage)
	m.state = StateAppearance
	m.queue.Consume()
	log.Printf("[Stage] start stage %d", stage)
}

// Update advances the stage one tick and forwards the tick's events to out
func (m *Manager) Update(out *event.EventQueue) {
	m.queue.SetFrame(out.Frame())

	m.updateAppearance(out)
	m.updateFormation()
	m.attack.Update(m.arena, m, m.player.CanCaptureAttack(), m.queue)
	m.arena.Update(m, m.queue)
	m.flush(out)
	m.checkStageState(out)
}

func (m *Manager) updateAppearance(out *event.EventQueue) {
	wasDone := m.appearance.Done()
	for _, e := range m.appearance.Update(m.arena.IsStationary()) {
		m.arena.Spawn(e)
	}
	if !wasDone && m.appearance.Done() {
		m.formation.DoneAppearance()
		m.setState(StateNormal, out)
	}
}

func (m *Manager) updateFormation() {
	wasSettled := m.formation.IsSettle()
	m.formation.Update()
	if !wasSettled && m.formation.IsSettle() {
		m.attack.SetEnable(true)
	}
}

// flush applies the internal effects of this tick's events, then forwards them
func (m *Manager) flush(out *event.EventQueue) {
	for _, ev := range m.queue.Consume() {
		switch ev.Type {
		case event.EventEnemyShot:
			if p, ok := ev.Payload.(*event.EnemyShotPayload); ok {
				m.spawnShot(p.Pos)
			}
		case event.EventSpawnCapturedFighter:
			if p, ok := ev.Payload.(*event.SpawnCapturedFighterPayload); ok {
				m.arena.SpawnCapturedFighter(p.Pos, p.Index)
			}
		}
		out.PushEvent(ev)
	}
}

func (m *Manager) spawnShot(pos vmath.Vec2I) {
	if m.arena.IsShotPaused() {
		return
	}
	targets := make([]vmath.Vec2I, 1, 2)
	targets[0] = m.player.Pos()
	if dual, ok := m.player.DualPos(); ok {
		targets = append(targets, dual)
	}
	m.arena.SpawnShot(pos, targets, m.tuning.ShotSpeed(m.stage), m.rng)
}

func (m *Manager) checkStageState(out *event.EventQueue) {
	if m.state == StateAppearance {
		return
	}
	m.setState(nextState(m.state, m.arena.AliveCount(), m.tuning.Stage.RushThreshold), out)
}

func (m *Manager) setState(s State, out *event.EventQueue) {
	if s == m.state {
		return
	}
	log.Printf("[Stage] %v -> %v", m.state, s)
	m.state = s
	out.Push(event.EventStageStateChanged, &event.StageStatePayload{State: int(s), Name: s.String()})
}

// Draw renders enemies, beams and enemy shots
func (m *Manager) Draw(r enemy.Renderer, pat int) {
	m.arena.Draw(r, pat)
}

// CheckCollision damages the first enemy hit by box, damage events go to out
func (m *Manager) CheckCollision(box vmath.CollBox, power int, out *event.EventQueue) CollisionResult {
	return m.arena.CheckCollision(box, power, m, out)
}

func (m *Manager) CheckShotCollision(box vmath.CollBox) bool {
	return m.arena.CheckShotCollision(box)
}

func (m *Manager) SpawnCapturedFighter(pos vmath.Vec2I, fi core.FormationIndex) bool {
	return m.arena.SpawnCapturedFighter(pos, fi)
}

func (m *Manager) RemoveEnemy(fi core.FormationIndex) bool {
	return m.arena.RemoveEnemy(fi)
}

// PauseAttack holds both the attack and the appearance schedules
func (m *Manager) PauseAttack(paused bool) {
	m.attack.Pause(paused)
	m.appearance.Pause(paused)
}

func (m *Manager) IsNoAttacker() bool { return m.attack.IsNoAttacker() }
func (m *Manager) State() State       { return m.state }
func (m *Manager) AliveCount() int    { return m.arena.AliveCount() }
func (m *Manager) Stage() int         { return m.stage }

// AllDestroyed reports a cleared stage with an empty arena
func (m *Manager) AllDestroyed() bool {
	return m.state == StateCleared && m.arena.AllDestroyed()
}

// --- enemy.Accessor ---

func (m *Manager) FormationPos(fi core.FormationIndex) vmath.Vec2I { return m.formation.Pos(fi) }
func (m *Manager) StageNo() int                                    { return m.stage }
func (m *Manager) PlayerPos() vmath.Vec2I                          { return m.player.Pos() }
func (m *Manager) DualPlayerPos() (vmath.Vec2I, bool)              { return m.player.DualPos() }
func (m *Manager) CanPlayerCapture() bool                          { return m.player.CanCapture() }
func (m *Manager) IsPlayerCaptureCompleted() bool                  { return m.player.IsCaptureCompleted() }
func (m *Manager) EnemyAt(fi core.FormationIndex) *enemy.Enemy     { return m.arena.EnemyAt(fi) }
func (m *Manager) PauseEnemyShot(wait int)                         { m.arena.PauseShot(wait) }
func (m *Manager) Rand() *vmath.FastRand                           { return m.rng }

// IsRush reports rush dives, off while attacks are paused so divers fly home
func (m *Manager) IsRush() bool {
	return m.state == StateRush && !m.attack.IsPaused()
}
