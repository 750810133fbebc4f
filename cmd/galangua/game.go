package main

import (
	"fmt"
	"log"

	"github.com/lixenwraith/galangua/audio"
	"github.com/lixenwraith/galangua/config"
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/render"
	"github.com/lixenwraith/galangua/stage"
	"github.com/lixenwraith/galangua/vmath"
)

// myShot is a player bullet, pos in pixels
type myShot struct {
	pos   vmath.Vec2I
	alive bool
}

func (s *myShot) collBox() vmath.CollBox {
	return vmath.CenteredBox(s.pos, parameter.MyShotWidth, parameter.MyShotHeight)
}

// input is one tick of player intent
type input struct {
	dx   int
	fire bool
}

// game wires the stage manager to the player, score and audio through one event queue
type game struct {
	stage  *stage.Manager
	player *player
	shots  [parameter.MaxMyShotCount * 2]myShot

	queue  *event.EventQueue
	router *event.Router[*game]

	frame    int64
	score    int
	hiScore  int
	captured *core.FormationIndex
	over     bool
}

func newGame(tuning *config.Tuning, rng *vmath.FastRand, sm *audio.SoundManager, hiScore int) *game {
	g := &game{
		player:  newPlayer(),
		queue:   event.NewEventQueue(),
		hiScore: hiScore,
	}
	g.stage = stage.NewManager(g.player, tuning, rng)

	g.router = event.NewRouter[*game](g.queue)
	g.router.Register(captureHandler{})
	g.router.Register(scoreHandler{})
	if sm != nil {
		g.router.Register(audio.NewSoundHandler[*game](sm))
	}
	return g
}

// update advances one tick: player, shots, stage, collisions, then event dispatch
func (g *game) update(in input) {
	g.frame++
	g.queue.SetFrame(g.frame)
	if g.over {
		return
	}

	g.player.update(in.dx)
	if in.fire {
		g.fire()
	}
	g.updateShots()

	g.stage.Update(g.queue)
	g.checkPlayerHit()
	g.router.DispatchAll(g)

	g.updateLife()
	if g.stage.AllDestroyed() {
		g.stage.StartNextStage(g.stage.Stage()+1, g.captured)
		g.captured = nil
	}
}

// fire launches one shot per fighter in play while the pool has room
func (g *game) fire() {
	if !g.player.Alive() {
		return
	}
	origins := []vmath.Vec2I{g.player.Pos()}
	if pos, ok := g.player.DualPos(); ok {
		origins = append(origins, pos)
	}
	if g.liveShots()+len(origins) > parameter.MaxMyShotCount*len(origins) {
		return
	}
	for _, o := range origins {
		for i := range g.shots {
			if !g.shots[i].alive {
				g.shots[i] = myShot{pos: vmath.RoundUp(o).Sub(vmath.V(0, parameter.MyShotHeight)), alive: true}
				break
			}
		}
	}
}

func (g *game) liveShots() int {
	n := 0
	for _, s := range g.shots {
		if s.alive {
			n++
		}
	}
	return n
}

func (g *game) updateShots() {
	for i := range g.shots {
		s := &g.shots[i]
		if !s.alive {
			continue
		}
		s.pos.Y -= parameter.MyShotSpeed
		if s.pos.Y < -parameter.MyShotHeight {
			s.alive = false
			continue
		}
		if res := g.stage.CheckCollision(s.collBox(), parameter.MyShotPower, g.queue); res.Hit {
			s.alive = false
		}
	}
}

func (g *game) checkPlayerHit() {
	for _, box := range g.player.collBoxes() {
		if g.stage.CheckShotCollision(box) {
			g.player.hit()
			return
		}
		if res := g.stage.CheckCollision(box, parameter.PlayerCrashPower, g.queue); res.Hit {
			g.player.hit()
			return
		}
	}
}

// updateLife replaces a lost fighter once the sky is clear, or ends the game
func (g *game) updateLife() {
	switch {
	case g.player.state != playerDead:
		g.stage.PauseAttack(g.player.state == playerCaptured || g.player.state == playerCapturing)
	case g.player.gameOver():
		g.over = true
		log.Printf("[Game] game over, score %d stage %d", g.score, g.stage.Stage())
	case g.player.canRespawn() && g.stage.IsNoAttacker():
		g.player.respawn()
	default:
		g.stage.PauseAttack(true)
	}
}

func (g *game) draw(r *render.TerminalRenderer) {
	r.Clear()
	pat := int(g.frame/parameter.SpritePatternPeriod) & 1
	g.stage.Draw(r, pat)
	g.player.draw(r)
	for _, s := range g.shots {
		if s.alive {
			r.DrawSprite("myshot", s.pos.Sub(vmath.V(2, parameter.MyShotHeight/2)))
		}
	}

	r.DrawText(0, 0, fmt.Sprintf("1UP %06d", g.score))
	r.DrawText(render.PlayfieldCols-13, 0, fmt.Sprintf("HIGH %06d", max(g.score, g.hiScore)))
	r.DrawText(0, render.PlayfieldRows-1, fmt.Sprintf("LIVES %d", g.player.lives))
	r.DrawText(render.PlayfieldCols-10, render.PlayfieldRows-1, fmt.Sprintf("STAGE %d", g.stage.Stage()+1))
	if g.over {
		r.DrawText(render.PlayfieldCols/2-4, render.PlayfieldRows/2, "GAME OVER")
	}
	r.Show()
}

// scoreHandler adds explosion points and logs stage transitions
type scoreHandler struct{}

func (scoreHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventEnemyExplosion, event.EventStageStateChanged}
}

func (scoreHandler) HandleEvent(g *game, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.EnemyExplosionPayload:
		g.score += p.Point
	case *event.StageStatePayload:
		log.Printf("[Game] stage %d %s", g.stage.Stage(), p.Name)
	}
}
