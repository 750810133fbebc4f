package stage

import (
	"math"

	"github.com/lixenwraith/galangua/enemy"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// Shot is an aimed enemy bullet moving in a straight line
type Shot struct {
	pos vmath.Vec2I
	vel vmath.Vec2I
}

// newAimedShot points a shot from pos at target with the given speed, all in fixed point
func newAimedShot(pos, target vmath.Vec2I, speed int) Shot {
	d := target.Sub(pos)
	dist := math.Hypot(float64(d.X), float64(d.Y))
	if dist == 0 {
		return Shot{pos: pos, vel: vmath.V(0, speed)}
	}
	f := float64(speed) / dist
	return Shot{
		pos: pos,
		vel: vmath.V(int(math.Round(float64(d.X)*f)), int(math.Round(float64(d.Y)*f))),
	}
}

func (s *Shot) RawPos() vmath.Vec2I   { return s.pos }
func (s *Shot) Velocity() vmath.Vec2I { return s.vel }

// Pos returns the position rounded to pixels
func (s *Shot) Pos() vmath.Vec2I { return vmath.RoundUp(s.pos) }

func (s *Shot) update() {
	s.pos = s.pos.Add(s.vel)
}

func (s *Shot) outOfScreen() bool {
	p := s.Pos()
	m := parameter.EnemyShotMargin
	return p.X < -m || p.X > parameter.ScreenWidth+m ||
		p.Y < -m || p.Y > parameter.ScreenHeight+m
}

// CollBox spans the drawn bullet in pixels
func (s *Shot) CollBox() vmath.CollBox {
	p := s.Pos()
	return vmath.CollBox{
		Pos:  p.Sub(vmath.V(parameter.EnemyShotWidth, parameter.EnemyShotHeight)),
		Size: vmath.V(parameter.EnemyShotWidth, 2*parameter.EnemyShotHeight),
	}
}

func (s *Shot) draw(r enemy.Renderer) {
	r.DrawSprite("ene_shot", s.Pos().Sub(vmath.V(2, parameter.EnemyShotHeight)))
}
