package enemy

import (
	"sort"

	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/formation"
	"github.com/lixenwraith/galangua/vmath"
)

// testWorld is a minimal arena implementing Accessor
type testWorld struct {
	enemies          map[core.FormationIndex]*Enemy
	formation        *formation.Formation
	player           vmath.Vec2I
	dual             *vmath.Vec2I
	canCapture       bool
	captureCompleted bool
	rush             bool
	stage            int
	shotPause        int
	frozen           bool
	rng              *vmath.FastRand
}

func newTestWorld() *testWorld {
	return &testWorld{
		enemies:   make(map[core.FormationIndex]*Enemy),
		formation: formation.New(),
		player:    vmath.PixelToFixed(112, 264),
		rng:       vmath.NewFastRand(7),
	}
}

func (w *testWorld) FormationPos(fi core.FormationIndex) vmath.Vec2I { return w.formation.Pos(fi) }
func (w *testWorld) StageNo() int                                    { return w.stage }
func (w *testWorld) PlayerPos() vmath.Vec2I                          { return w.player }
func (w *testWorld) CanPlayerCapture() bool                          { return w.canCapture }
func (w *testWorld) IsPlayerCaptureCompleted() bool                  { return w.captureCompleted }
func (w *testWorld) IsRush() bool                                    { return w.rush }
func (w *testWorld) PauseEnemyShot(wait int)                         { w.shotPause = wait }
func (w *testWorld) Rand() *vmath.FastRand                           { return w.rng }

func (w *testWorld) DualPlayerPos() (vmath.Vec2I, bool) {
	if w.dual == nil {
		return vmath.Vec2I{}, false
	}
	return *w.dual, true
}

func (w *testWorld) EnemyAt(fi core.FormationIndex) *Enemy {
	e := w.enemies[fi]
	if e == nil || e.disappeared {
		return nil
	}
	return e
}

// spawnInFormation places an enemy pinned to its slot
func (w *testWorld) spawnInFormation(typ core.EnemyType, fi core.FormationIndex) *Enemy {
	e := New(typ, w.formation.Pos(fi), 0, 0, fi)
	e.SetToFormation()
	w.enemies[fi] = e
	return e
}

// tick updates every enemy in index order, then sweeps disappeared ones
func (w *testWorld) tick(q *event.EventQueue) {
	keys := make([]core.FormationIndex, 0, len(w.enemies))
	for fi := range w.enemies {
		keys = append(keys, fi)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Y != keys[j].Y {
			return keys[i].Y < keys[j].Y
		}
		return keys[i].X < keys[j].X
	})
	if !w.frozen {
		w.formation.Update()
	}
	for _, fi := range keys {
		if e := w.enemies[fi]; e != nil && !e.disappeared {
			e.Update(w, q)
		}
	}
	for fi, e := range w.enemies {
		if e.disappeared {
			delete(w.enemies, fi)
		}
	}
	if w.shotPause > 0 {
		w.shotPause--
	}
}

func countEvents(events []event.GameEvent, t event.EventType) int {
	n := 0
	for _, ev := range events {
		if ev.Type == t {
			n++
		}
	}
	return n
}
