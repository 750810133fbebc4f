package render

import "github.com/lixenwraith/galangua/vmath"

// Renderer draws opaque sprite keys at pixel positions
// Satisfied by TerminalRenderer and accepted wherever the core takes enemy.Renderer
type Renderer interface {
	DrawSprite(name string, pos vmath.Vec2I)
	DrawSpriteRot(name string, pos vmath.Vec2I, angleDeg int)
}
