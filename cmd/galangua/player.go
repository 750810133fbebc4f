package main

import (
	"log"

	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/render"
	"github.com/lixenwraith/galangua/vmath"
)

type playerState uint8

const (
	playerNormal playerState = iota
	// pulled up the beam
	playerCapturing
	// taken, waiting for the Owl to get home
	playerCaptured
	playerDead
)

// player is the fighter, it answers the stage's capture queries
type player struct {
	pos   vmath.Vec2I // fixed point
	state playerState
	dual  bool
	lives int

	captureTarget   vmath.Vec2I
	captureDone     bool
	captureAttacker bool // an Owl is on a capture dive
	spin            int
	respawnWait     int
}

func newPlayer() *player {
	p := &player{lives: parameter.PlayerLives}
	p.reset()
	return p
}

// reset puts a fresh single fighter at the bottom center
func (p *player) reset() {
	p.pos = vmath.PixelToFixed(parameter.ScreenWidth/2, parameter.PlayerY)
	p.state = playerNormal
	p.dual = false
	p.captureDone = false
	p.spin = 0
}

// --- stage.Player ---

func (p *player) Pos() vmath.Vec2I { return p.pos }

func (p *player) DualPos() (vmath.Vec2I, bool) {
	if !p.dual {
		return vmath.Vec2I{}, false
	}
	return p.pos.Add(vmath.PixelToFixed(parameter.DualFighterOffset, 0)), true
}

func (p *player) CanCapture() bool         { return p.state == playerNormal && !p.dual }
func (p *player) IsCaptureCompleted() bool { return p.captureDone }

func (p *player) CanCaptureAttack() bool {
	return p.state == playerNormal && !p.dual && !p.captureAttacker
}

// Alive reports a fighter in play that can shoot and be hit
func (p *player) Alive() bool { return p.state == playerNormal }

func (p *player) update(dx int) {
	switch p.state {
	case playerNormal:
		right := parameter.ScreenWidth - parameter.PlayerMargin
		if p.dual {
			right -= parameter.DualFighterOffset
		}
		x := vmath.ToInt(p.pos.X) + dx*parameter.PlayerSpeed
		p.pos.X = vmath.FromInt(vmath.Clamp(x, parameter.PlayerMargin, right))
	case playerCapturing:
		p.spin += parameter.PlayerCaptureSpin
		if p.captureDone {
			return
		}
		p.pos = approach(p.pos, p.captureTarget, vmath.FromInt(parameter.PlayerCapturePullSpeed))
		if p.pos == p.captureTarget {
			p.captureDone = true
		}
	case playerDead:
		if p.respawnWait > 0 {
			p.respawnWait--
		}
	}
}

// approach steps each axis of pos toward target by at most step
func approach(pos, target vmath.Vec2I, step int) vmath.Vec2I {
	d := target.Sub(pos)
	return pos.Add(vmath.V(
		vmath.Clamp(d.X, -step, step),
		vmath.Clamp(d.Y, -step, step),
	))
}

// hit loses one fighter, the dual partner goes first
func (p *player) hit() {
	if p.dual {
		p.dual = false
		return
	}
	p.kill()
}

func (p *player) kill() {
	p.state = playerDead
	p.respawnWait = parameter.PlayerRespawnWait
}

// endCapture closes a capture dive, a taken fighter is replaced without the respawn wait
func (p *player) endCapture() {
	p.captureAttacker = false
	p.captureDone = false
	if p.state == playerCaptured {
		p.kill()
		p.respawnWait = 0
	}
}

// canRespawn reports a finished respawn wait with stock left
func (p *player) canRespawn() bool {
	return p.state == playerDead && p.respawnWait == 0 && p.lives > 0
}

func (p *player) respawn() {
	p.lives--
	p.reset()
}

func (p *player) gameOver() bool {
	return p.state == playerDead && p.lives == 0
}

// collBoxes returns the hit boxes of every fighter in play
func (p *player) collBoxes() []vmath.CollBox {
	if p.state != playerNormal {
		return nil
	}
	boxes := []vmath.CollBox{vmath.CenteredBox(vmath.RoundUp(p.pos), parameter.PlayerCollisionSize, parameter.PlayerCollisionSize)}
	if pos, ok := p.DualPos(); ok {
		boxes = append(boxes, vmath.CenteredBox(vmath.RoundUp(pos), parameter.PlayerCollisionSize, parameter.PlayerCollisionSize))
	}
	return boxes
}

func (p *player) draw(r render.Renderer) {
	half := vmath.V(parameter.EnemySpriteHalf, parameter.EnemySpriteHalf)
	switch p.state {
	case playerNormal:
		r.DrawSprite("fighter", vmath.RoundUp(p.pos).Sub(half))
		if pos, ok := p.DualPos(); ok {
			r.DrawSprite("fighter", vmath.RoundUp(pos).Sub(half))
		}
	case playerCapturing:
		r.DrawSpriteRot("fighter", vmath.RoundUp(p.pos).Sub(half), p.spin)
	}
}

// captureHandler runs the player's side of the capture protocol
type captureHandler struct{}

func (captureHandler) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventBeginCaptureAttack,
		event.EventEndCaptureAttack,
		event.EventCapturePlayer,
		event.EventCapturePlayerCompleted,
		event.EventCaptureSequenceEnded,
		event.EventSpawnCapturedFighter,
		event.EventRecapturePlayer,
		event.EventEscapeCapturing,
		event.EventCapturedFighterDestroyed,
	}
}

func (captureHandler) HandleEvent(g *game, ev event.GameEvent) {
	p := g.player
	switch ev.Type {
	case event.EventBeginCaptureAttack:
		p.captureAttacker = true
	case event.EventEndCaptureAttack:
		// the Owl can be shot down after it took the fighter
		p.endCapture()
	case event.EventCapturePlayer:
		payload, ok := ev.Payload.(*event.CapturePlayerPayload)
		if !ok || p.state != playerNormal {
			return
		}
		p.state = playerCapturing
		p.captureTarget = payload.Pos
		p.captureDone = false
	case event.EventCapturePlayerCompleted:
		p.state = playerCaptured
	case event.EventCaptureSequenceEnded:
		p.endCapture()
	case event.EventSpawnCapturedFighter:
		if payload, ok := ev.Payload.(*event.SpawnCapturedFighterPayload); ok {
			fi := payload.Index
			g.captured = &fi
		}
	case event.EventRecapturePlayer:
		payload, ok := ev.Payload.(*event.RecapturePlayerPayload)
		if !ok {
			return
		}
		g.stage.RemoveEnemy(payload.Index)
		g.captured = nil
		if p.state == playerNormal {
			p.dual = true
		}
		log.Printf("[Player] recaptured fighter %v", payload.Index)
	case event.EventEscapeCapturing:
		p.state = playerNormal
		p.captureDone = false
		p.captureAttacker = false
		p.pos.Y = vmath.FromInt(parameter.PlayerY)
		p.spin = 0
	case event.EventCapturedFighterDestroyed:
		g.captured = nil
		log.Printf("[Player] captured fighter destroyed")
	}
}
