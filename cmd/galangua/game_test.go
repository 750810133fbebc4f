package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/galangua/config"
	"github.com/lixenwraith/galangua/core"
	"github.com/lixenwraith/galangua/enemy"
	"github.com/lixenwraith/galangua/event"
	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/stage"
	"github.com/lixenwraith/galangua/vmath"
)

func newTestGame() *game {
	return newGame(config.Default(), vmath.NewFastRand(1), nil, 0)
}

// dispatch pushes one event and routes it
func (g *game) dispatch(t event.EventType, payload any) {
	g.queue.Push(t, payload)
	g.router.DispatchAll(g)
}

// TestPlayerClampsToPlayfield verifies horizontal movement stops at the margins
func TestPlayerClampsToPlayfield(t *testing.T) {
	p := newPlayer()
	for i := 0; i < 200; i++ {
		p.update(-1)
	}
	assert.Equal(t, parameter.PlayerMargin, vmath.ToInt(p.Pos().X))

	p.dual = true
	for i := 0; i < 200; i++ {
		p.update(1)
	}
	assert.Equal(t, parameter.ScreenWidth-parameter.PlayerMargin-parameter.DualFighterOffset, vmath.ToInt(p.Pos().X))
}

// TestPlayerCaptureHandshake verifies the player's side of a capture from beam to respawn
func TestPlayerCaptureHandshake(t *testing.T) {
	g := newTestGame()
	p := g.player
	require.True(t, p.CanCapture())

	g.dispatch(event.EventBeginCaptureAttack, nil)
	assert.False(t, p.CanCaptureAttack(), "one capture dive at a time")

	target := vmath.PixelToFixed(parameter.ScreenWidth/2, parameter.CaptureTargetY+16)
	g.dispatch(event.EventCapturePlayer, &event.CapturePlayerPayload{Pos: target})
	require.Equal(t, playerCapturing, p.state)
	assert.Empty(t, p.collBoxes(), "a fighter in the beam cannot be hit")

	for i := 0; i < parameter.ScreenHeight && !p.IsCaptureCompleted(); i++ {
		p.update(0)
	}
	require.True(t, p.IsCaptureCompleted())
	assert.Equal(t, target, p.Pos())

	g.dispatch(event.EventCapturePlayerCompleted, nil)
	assert.Equal(t, playerCaptured, p.state)

	fi := core.FormationIndex{X: 4, Y: 0}
	g.dispatch(event.EventSpawnCapturedFighter, &event.SpawnCapturedFighterPayload{Pos: target, Index: fi})
	require.NotNil(t, g.captured)
	assert.Equal(t, fi, *g.captured)

	g.dispatch(event.EventCaptureSequenceEnded, nil)
	assert.True(t, p.canRespawn())
	assert.False(t, p.captureAttacker)

	p.respawn()
	assert.Equal(t, parameter.PlayerLives-1, p.lives)
	assert.True(t, p.CanCapture())
}

// TestPlayerEscapeCapturing verifies a beam broken mid pull returns the fighter to its row
func TestPlayerEscapeCapturing(t *testing.T) {
	g := newTestGame()
	p := g.player

	g.dispatch(event.EventCapturePlayer, &event.CapturePlayerPayload{Pos: vmath.PixelToFixed(100, 150)})
	for i := 0; i < 20; i++ {
		p.update(0)
	}
	g.dispatch(event.EventEscapeCapturing, nil)

	assert.Equal(t, playerNormal, p.state)
	assert.Equal(t, vmath.FromInt(parameter.PlayerY), p.Pos().Y)
	assert.False(t, p.IsCaptureCompleted())
}

// TestOwlLostAfterCapture verifies a fighter taken by an Owl that never gets home is replaced
func TestOwlLostAfterCapture(t *testing.T) {
	g := newTestGame()
	p := g.player

	g.dispatch(event.EventBeginCaptureAttack, nil)
	g.dispatch(event.EventCapturePlayer, &event.CapturePlayerPayload{Pos: p.Pos()})
	g.dispatch(event.EventCapturePlayerCompleted, nil)
	require.Equal(t, playerCaptured, p.state)

	g.dispatch(event.EventEndCaptureAttack, nil)
	assert.Equal(t, playerDead, p.state)
	assert.True(t, p.canRespawn())
	assert.False(t, p.captureAttacker)

	g.dispatch(event.EventCaptureSequenceEnded, nil)
	assert.Equal(t, playerDead, p.state, "a late sequence end is a no-op")
}

// TestEndCaptureAttackKeepsFreeFighter verifies a missed capture dive leaves the fighter in play
func TestEndCaptureAttackKeepsFreeFighter(t *testing.T) {
	g := newTestGame()
	g.dispatch(event.EventBeginCaptureAttack, nil)
	g.dispatch(event.EventEndCaptureAttack, nil)

	assert.Equal(t, playerNormal, g.player.state)
	assert.True(t, g.player.CanCaptureAttack())
}

// TestRespawnDuringRush verifies a fighter lost in rush is replaced once the divers return
func TestRespawnDuringRush(t *testing.T) {
	g := newTestGame()
	for ticks := 0; g.stage.State() == stage.StateAppearance; ticks++ {
		g.update(input{})
		require.Less(t, ticks, 10000, "appearance never finished")
	}

	kept := 0
	for y := 0; y < parameter.FormationYCount+parameter.AssaultRows; y++ {
		for x := 0; x < parameter.FormationXCount; x++ {
			fi := core.FormationIndex{X: x, Y: y}
			if g.stage.EnemyAt(fi) == nil {
				continue
			}
			if kept < 3 {
				kept++
				continue
			}
			g.stage.RemoveEnemy(fi)
		}
	}
	require.Equal(t, 3, kept)

	g.over = false
	g.player.lives = parameter.PlayerLives
	for ticks := 0; g.stage.State() != stage.StateRush; ticks++ {
		g.update(input{})
		require.Less(t, ticks, 100, "rush never started")
	}

	g.player.kill()
	respawned := false
	for ticks := 0; ticks < 20000 && !respawned; ticks++ {
		g.update(input{})
		respawned = g.player.state == playerNormal
	}
	assert.True(t, respawned, "fighter never respawned in rush")
	assert.Equal(t, parameter.PlayerLives-1, g.player.lives)
}

// TestRecaptureMakesDual verifies a freed fighter joins the player and leaves the arena
func TestRecaptureMakesDual(t *testing.T) {
	g := newTestGame()
	fi := core.FormationIndex{X: 4, Y: 0}
	require.True(t, g.stage.SpawnCapturedFighter(vmath.PixelToFixed(100, 40), fi))
	require.NotNil(t, g.stage.EnemyAt(fi))

	g.dispatch(event.EventRecapturePlayer, &event.RecapturePlayerPayload{Index: fi})

	assert.Nil(t, g.stage.EnemyAt(fi))
	assert.True(t, g.player.dual)
	assert.False(t, g.player.CanCapture())
	assert.Len(t, g.player.collBoxes(), 2)

	g.player.hit()
	assert.False(t, g.player.dual, "the partner is lost first")
	assert.Equal(t, playerNormal, g.player.state)
}

// TestScoreFromExplosions verifies explosion points accumulate
func TestScoreFromExplosions(t *testing.T) {
	g := newTestGame()
	g.dispatch(event.EventEnemyExplosion, &event.EnemyExplosionPayload{Type: core.EnemyBee, Point: 50})
	g.dispatch(event.EventEnemyExplosion, &event.EnemyExplosionPayload{Type: core.EnemyOwl, Point: 400})
	assert.Equal(t, 450, g.score)
}

// TestFireLimit verifies the shot pool caps live shots per fighter
func TestFireLimit(t *testing.T) {
	g := newTestGame()
	for i := 0; i < 5; i++ {
		g.fire()
	}
	assert.Equal(t, parameter.MaxMyShotCount, g.liveShots())

	g.player.hit()
	g.fire()
	assert.Equal(t, parameter.MaxMyShotCount, g.liveShots(), "dead fighters do not shoot")
}

// TestShotsLeaveScreen verifies shots expire off the top
func TestShotsLeaveScreen(t *testing.T) {
	g := newTestGame()
	g.fire()
	require.Equal(t, 1, g.liveShots())
	for i := 0; i < parameter.ScreenHeight/parameter.MyShotSpeed+2; i++ {
		g.updateShots()
	}
	assert.Zero(t, g.liveShots())
}

// TestGameOverAfterLastLife verifies the game ends when no stock remains
func TestGameOverAfterLastLife(t *testing.T) {
	g := newTestGame()
	g.player.lives = 0
	g.player.hit()
	g.update(input{})
	assert.True(t, g.over)
}

// TestControlsHoldDirection verifies one key press moves for the hold window
func TestControlsHoldDirection(t *testing.T) {
	var c controls
	require.True(t, c.handleEvent(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)))
	for i := 0; i < parameter.KeyHoldTicks; i++ {
		assert.Equal(t, -1, c.next().dx)
	}
	assert.Zero(t, c.next().dx)

	c.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	assert.True(t, c.next().fire)
	assert.False(t, c.next().fire)

	assert.False(t, c.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

var _ enemy.Renderer = (*recordingRenderer)(nil)

type recordingRenderer struct {
	names []string
}

func (r *recordingRenderer) DrawSprite(name string, _ vmath.Vec2I)           { r.names = append(r.names, name) }
func (r *recordingRenderer) DrawSpriteRot(name string, _ vmath.Vec2I, _ int) { r.names = append(r.names, name) }

// TestPlayerDraw verifies the fighter sprites drawn per state
func TestPlayerDraw(t *testing.T) {
	p := newPlayer()
	r := &recordingRenderer{}

	p.draw(r)
	assert.Equal(t, []string{"fighter"}, r.names)

	p.dual = true
	r.names = nil
	p.draw(r)
	assert.Equal(t, []string{"fighter", "fighter"}, r.names)

	p.state = playerCaptured
	r.names = nil
	p.draw(r)
	assert.Empty(t, r.names)
}
