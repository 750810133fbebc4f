package enemy

import (
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/physics"
	"github.com/lixenwraith/galangua/vmath"
)

const assaultSideMargin = 16

// startAssault aims at a random live fighter instead of joining formation
func (e *Enemy) startAssault(acc Accessor) {
	target := acc.PlayerPos()
	if dual, ok := acc.DualPlayerPos(); ok && acc.Rand().Intn(2) == 1 {
		target = dual
	}
	e.target = target
	e.kin.VAngle = 0
	e.state = StateAssault
	e.phase = PhaseAssaultSteer
}

func (e *Enemy) updateAssault() {
	switch e.phase {
	case PhaseAssaultSteer:
		aligned := physics.SteerToward(&e.kin, e.target, parameter.AssaultTurnLimit*vmath.One)
		if aligned || e.kin.Pos.Y >= e.target.Y {
			e.phase = PhaseAssaultDive
		}
		physics.Forward(&e.kin)
	case PhaseAssaultDive:
		physics.Forward(&e.kin)
	}

	p := e.kin.Pos
	if p.Y >= exitY ||
		p.X < -assaultSideMargin*vmath.One ||
		p.X > (parameter.ScreenWidth+assaultSideMargin)*vmath.One {
		e.disappeared = true
	}
}
