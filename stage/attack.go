package stage

import (
	"github.com/lixenwraith/galangua/config"
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/enemy"
	"github.com/lixenwraith/galangua/event"
)

// AttackManager picks formation enemies to dive at the player
type AttackManager struct {
	tuning    config.AttackTuning
	stage     int
	enable    bool
	paused    bool
	wait      int
	picks     int
	attackers []core.FormationIndex
	buf       []*enemy.Enemy
}

func NewAttackManager(tuning config.AttackTuning) *AttackManager {
	return &AttackManager{tuning: tuning}
}

// Restart disables attacks and resets the cadence for stage
func (am *AttackManager) Restart(stage int) {
	am.stage = stage
	am.enable = false
	am.paused = false
	am.wait = am.baseWait()
	am.picks = 0
	am.attackers = am.attackers[:0]
}

func (am *AttackManager) SetEnable(enable bool) { am.enable = enable }
func (am *AttackManager) Pause(paused bool)     { am.paused = paused }
func (am *AttackManager) IsPaused() bool        { return am.paused }

// IsNoAttacker reports that every dispatched attacker has returned or gone
func (am *AttackManager) IsNoAttacker() bool { return len(am.attackers) == 0 }

// Attackers returns the formation indices of enemies currently diving
func (am *AttackManager) Attackers() []core.FormationIndex {
	return append([]core.FormationIndex(nil), am.attackers...)
}

func (am *AttackManager) baseWait() int {
	return max(am.tuning.WaitMin, am.tuning.WaitBase-am.stage*am.tuning.WaitStageStep)
}

func (am *AttackManager) nextWait(acc enemy.Accessor) int {
	w := am.baseWait()
	if am.tuning.WaitRandom > 0 {
		w += acc.Rand().Intn(am.tuning.WaitRandom)
	}
	if acc.IsRush() {
		w /= am.tuning.RushDivisor
	}
	return w
}

// prune drops attackers that returned to formation or left the arena
func (am *AttackManager) prune(arena *EnemyManager) {
	kept := am.attackers[:0]
	for _, fi := range am.attackers {
		e := arena.EnemyAt(fi)
		if e == nil || e.State() == enemy.StateFormation {
			continue
		}
		kept = append(kept, fi)
	}
	am.attackers = kept
}

// Update runs one scheduling tick
// canCaptureAttack gates Owl capture dives on the player side, an Owl already holding a fighter never captures
func (am *AttackManager) Update(arena *EnemyManager, acc enemy.Accessor, canCaptureAttack bool, q *event.EventQueue) {
	am.prune(arena)
	if !am.enable || am.paused {
		return
	}
	if am.wait > 0 {
		am.wait--
		return
	}

	limit := am.tuning.MaxAttackers
	if acc.IsRush() {
		limit = am.tuning.RushMaxAttackers
	}
	if len(am.attackers) >= limit {
		return
	}

	candidates := am.buf[:0]
	owlCapturing := false
	arena.ForEach(func(e *enemy.Enemy) {
		if e.State() == enemy.StateFormation && e.Life() > 0 {
			candidates = append(candidates, e)
		}
		if e.Type() == core.EnemyOwl && e.CapturingState() != enemy.CapturingNone {
			owlCapturing = true
		}
	})
	am.buf = candidates[:0]
	if len(candidates) == 0 {
		return
	}

	am.picks++
	rng := acc.Rand()
	var target *enemy.Enemy
	capture := false
	if am.picks%am.tuning.CaptureCycle == 0 && canCaptureAttack && !owlCapturing {
		owls := make([]*enemy.Enemy, 0, 4)
		for _, e := range candidates {
			if e.Type() == core.EnemyOwl && arena.EnemyAt(e.FormationIndex().Neighbor(0, -1)) == nil {
				owls = append(owls, e)
			}
		}
		if len(owls) > 0 {
			target = owls[rng.Intn(len(owls))]
			capture = true
		}
	}
	if target == nil {
		target = candidates[rng.Intn(len(candidates))]
	}

	target.StartAttack(capture, acc, q)
	am.attackers = append(am.attackers, target.FormationIndex())
	am.wait = am.nextWait(acc)
}
