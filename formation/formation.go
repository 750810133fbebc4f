package formation

import (
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// Formation holds the target position of every formation slot
// The grid swings sideways while enemies enter, settles once appearance ends, then breathes
type Formation struct {
	count          int
	swing          int
	offsetX        int
	doneAppearance bool
	settled        bool
	breath         int
	spread         int
}

func New() *Formation {
	f := &Formation{}
	f.Restart()
	return f
}

// Restart resets the grid to the entry swing
func (f *Formation) Restart() {
	*f = Formation{swing: parameter.FormationSwingAmplitude * vmath.One}
}

// DoneAppearance starts damping the entry swing
func (f *Formation) DoneAppearance() {
	f.doneAppearance = true
}

// IsSettle reports whether the swing has fully decayed
func (f *Formation) IsSettle() bool {
	return f.settled
}

// Update advances the grid animation one tick
func (f *Formation) Update() {
	f.count++

	if !f.settled {
		if f.doneAppearance {
			f.swing = f.swing * parameter.FormationSwingDecayNum / parameter.FormationSwingDecayDen
			if f.swing < vmath.One/4 {
				f.swing = 0
				f.settled = true
			}
		}
		phase := f.count * vmath.FullTurn / parameter.FormationSwingPeriod
		f.offsetX = vmath.Sin(phase) * f.swing / vmath.One
		return
	}

	f.offsetX = 0
	f.breath++
	half := parameter.FormationBreathPeriod / 2
	t := f.breath % parameter.FormationBreathPeriod
	if t > half {
		t = parameter.FormationBreathPeriod - t
	}
	f.spread = t * vmath.One / half
}

// Pos returns the current target of slot fi in fixed point
func (f *Formation) Pos(fi core.FormationIndex) vmath.Vec2I {
	col := 2*fi.X - (parameter.FormationXCount - 1)
	base := BasePos(fi)
	return vmath.Vec2I{
		X: base.X + f.offsetX + col*parameter.FormationBreathSpreadX*f.spread,
		Y: base.Y + fi.Y*parameter.FormationBreathSpreadY*f.spread,
	}
}

// BasePos returns the unanimated grid position of slot fi
func BasePos(fi core.FormationIndex) vmath.Vec2I {
	col := 2*fi.X - (parameter.FormationXCount - 1)
	return vmath.PixelToFixed(
		parameter.ScreenWidth/2+col*parameter.FormationSpacingX,
		parameter.FormationBaseY+fi.Y*parameter.FormationSpacingY,
	)
}
