package stage

import (
	"log"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/enemy"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// orphanReturnSpeed is used for troops whose leader was removed
const orphanReturnSpeed = parameter.CaptureReturnSpeedNum * vmath.One / parameter.CaptureReturnSpeedDen

// CollisionResult reports the outcome of a player shot or body check
type CollisionResult struct {
	Hit    bool
	Killed bool
	Pos    vmath.Vec2I // pixels
	Type   core.EnemyType
	Point  int
}

// EnemyManager is the enemy arena, a dense array indexed by formation slot, plus the enemy shot pool
type EnemyManager struct {
	enemies   [parameter.MaxEnemyCount]*enemy.Enemy
	shots     [parameter.MaxEnemyShotCount]*Shot
	shotPause int
}

func NewEnemyManager() *EnemyManager {
	return &EnemyManager{}
}

// slotOf maps a formation index to its arena slot
func slotOf(fi core.FormationIndex) (int, bool) {
	if fi.X < 0 || fi.X >= parameter.FormationXCount ||
		fi.Y < 0 || fi.Y >= parameter.FormationYCount+parameter.AssaultRows {
		return 0, false
	}
	return fi.X + fi.Y*parameter.FormationXCount, true
}

// Clear empties the arena and the shot pool
func (em *EnemyManager) Clear() {
	em.enemies = [parameter.MaxEnemyCount]*enemy.Enemy{}
	em.shots = [parameter.MaxEnemyShotCount]*Shot{}
	em.shotPause = 0
}

// Spawn places e at its formation index, false when out of range or occupied
func (em *EnemyManager) Spawn(e *enemy.Enemy) bool {
	fi := e.FormationIndex()
	i, ok := slotOf(fi)
	if !ok {
		log.Printf("[Stage] spawn dropped: %v index %v out of range", e.Type(), fi)
		return false
	}
	if em.enemies[i] != nil {
		log.Printf("[Stage] spawn dropped: %v index %v occupied", e.Type(), fi)
		return false
	}
	em.enemies[i] = e
	return true
}

// SpawnCapturedFighter places the player's captured ship as a troop at fi
func (em *EnemyManager) SpawnCapturedFighter(pos vmath.Vec2I, fi core.FormationIndex) bool {
	e := enemy.New(core.EnemyCapturedFighter, pos, 0, 0, fi)
	e.SetToTroop()
	return em.Spawn(e)
}

// RemoveEnemy discards the enemy at fi, releasing its troops
func (em *EnemyManager) RemoveEnemy(fi core.FormationIndex) bool {
	i, ok := slotOf(fi)
	if !ok || em.enemies[i] == nil {
		return false
	}
	em.remove(i)
	return true
}

func (em *EnemyManager) remove(i int) {
	e := em.enemies[i]
	em.enemies[i] = nil
	for _, fi := range e.OrphanTroops() {
		if t := em.EnemyAt(fi); t != nil && t.State() == enemy.StateTroop {
			t.ReturnToFormation(orphanReturnSpeed)
		}
	}
}

// EnemyAt returns the live enemy at fi, nil when absent or disappeared
func (em *EnemyManager) EnemyAt(fi core.FormationIndex) *enemy.Enemy {
	i, ok := slotOf(fi)
	if !ok {
		return nil
	}
	e := em.enemies[i]
	if e == nil || e.IsDisappeared() {
		return nil
	}
	return e
}

// Update advances every enemy and shot one tick, then sweeps disappeared enemies
func (em *EnemyManager) Update(acc enemy.Accessor, q *event.EventQueue) {
	for _, e := range em.enemies {
		if e != nil && !e.IsDisappeared() {
			e.Update(acc, q)
		}
	}
	for i, e := range em.enemies {
		if e != nil && e.IsDisappeared() {
			em.remove(i)
		}
	}

	for i, s := range em.shots {
		if s == nil {
			continue
		}
		s.update()
		if s.outOfScreen() {
			em.shots[i] = nil
		}
	}
	if em.shotPause > 0 {
		em.shotPause--
	}
}

// ForEach visits every live enemy in slot order
func (em *EnemyManager) ForEach(fn func(e *enemy.Enemy)) {
	for _, e := range em.enemies {
		if e != nil && !e.IsDisappeared() {
			fn(e)
		}
	}
}

// AliveCount counts enemies that can still be shot, ghosts excluded
func (em *EnemyManager) AliveCount() int {
	n := 0
	for _, e := range em.enemies {
		if e != nil && !e.IsDisappeared() && e.Life() > 0 {
			n++
		}
	}
	return n
}

// AllDestroyed reports an empty arena
func (em *EnemyManager) AllDestroyed() bool {
	for _, e := range em.enemies {
		if e != nil {
			return false
		}
	}
	return true
}

// IsStationary reports that no enemy is still running an entry script
func (em *EnemyManager) IsStationary() bool {
	for _, e := range em.enemies {
		if e != nil && e.State() == enemy.StateAppearance {
			return false
		}
	}
	return true
}

// CheckCollision damages the first enemy overlapping box
func (em *EnemyManager) CheckCollision(box vmath.CollBox, power int, acc enemy.Accessor, q *event.EventQueue) CollisionResult {
	for i, e := range em.enemies {
		if e == nil {
			continue
		}
		eb, ok := e.CollBox()
		if !ok || !eb.Overlaps(box) {
			continue
		}

		pos := e.Pos()
		res := e.SetDamage(power, acc, q)
		if res.Killed {
			em.remove(i)
		}
		return CollisionResult{Hit: true, Killed: res.Killed, Pos: pos, Type: e.Type(), Point: res.Point}
	}
	return CollisionResult{}
}

// SpawnShot fires at one of targets chosen at random, false when the pool is full
func (em *EnemyManager) SpawnShot(pos vmath.Vec2I, targets []vmath.Vec2I, speed int, rng *vmath.FastRand) bool {
	if len(targets) == 0 {
		return false
	}
	for i, s := range em.shots {
		if s != nil {
			continue
		}
		target := targets[0]
		if len(targets) > 1 {
			target = targets[rng.Intn(len(targets))]
		}
		shot := newAimedShot(pos, target, speed)
		em.shots[i] = &shot
		return true
	}
	return false
}

// CheckShotCollision removes the first shot overlapping box
func (em *EnemyManager) CheckShotCollision(box vmath.CollBox) bool {
	for i, s := range em.shots {
		if s != nil && s.CollBox().Overlaps(box) {
			em.shots[i] = nil
			return true
		}
	}
	return false
}

// PauseShot suppresses new shots for wait ticks
func (em *EnemyManager) PauseShot(wait int) {
	em.shotPause = max(em.shotPause, wait)
}

func (em *EnemyManager) IsShotPaused() bool { return em.shotPause > 0 }

// ShotCount returns the number of shots in flight
func (em *EnemyManager) ShotCount() int {
	n := 0
	for _, s := range em.shots {
		if s != nil {
			n++
		}
	}
	return n
}

// Draw renders enemies under shots
func (em *EnemyManager) Draw(r enemy.Renderer, pat int) {
	for _, e := range em.enemies {
		if e != nil {
			e.Draw(r, pat)
		}
	}
	for _, s := range em.shots {
		if s != nil {
			s.draw(r)
		}
	}
}
