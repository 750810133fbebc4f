package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galangua/parameter"
	"github.com/lixenwraith/galangua/vmath"
)

// Playfield size in cells
const (
	PlayfieldCols = parameter.ScreenWidth / CellWidth
	PlayfieldRows = parameter.ScreenHeight / CellHeight
)

// TerminalRenderer draws pixel space sprites onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	gameX  int
	gameY  int
	bg     tcell.Style
}

// NewTerminalRenderer creates a renderer with the playfield's top-left cell at gameX, gameY
func NewTerminalRenderer(screen tcell.Screen, gameX, gameY int) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		gameX:  gameX,
		gameY:  gameY,
		bg:     tcell.StyleDefault.Background(RgbBackground),
	}
}

// PixelToCell maps a pixel position to its playfield cell
func PixelToCell(p vmath.Vec2I) (col, row int) {
	return floorDiv(p.X, CellWidth), floorDiv(p.Y, CellHeight)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Clear paints the playfield background
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
	for y := 0; y < PlayfieldRows; y++ {
		for x := 0; x < PlayfieldCols; x++ {
			r.screen.SetContent(r.gameX+x, r.gameY+y, ' ', nil, r.bg)
		}
	}
}

func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// DrawSprite draws name with its top-left pixel at pos
func (r *TerminalRenderer) DrawSprite(name string, pos vmath.Vec2I) {
	s := lookupSprite(name)
	r.drawGlyphs(s, pos, []rune(s.glyphs))
}

// DrawSpriteRot draws name turned to angleDeg when the sprite has heading glyphs
func (r *TerminalRenderer) DrawSpriteRot(name string, pos vmath.Vec2I, angleDeg int) {
	s := lookupSprite(name)
	if g, ok := s.rotGlyph(angleDeg); ok {
		r.drawGlyphs(s, pos, []rune{g})
		return
	}
	r.drawGlyphs(s, pos, []rune(s.glyphs))
}

// drawGlyphs centers the glyph run on the sprite's center pixel
func (r *TerminalRenderer) drawGlyphs(s sprite, pos vmath.Vec2I, glyphs []rune) {
	center := vmath.V(pos.X+s.ox+s.w/2, pos.Y+s.h/2)
	col, row := PixelToCell(center)
	if row < 0 || row >= PlayfieldRows {
		return
	}
	style := r.bg.Foreground(s.color)
	start := col - len(glyphs)/2
	for i, g := range glyphs {
		x := start + i
		if x < 0 || x >= PlayfieldCols {
			continue
		}
		r.screen.SetContent(r.gameX+x, r.gameY+row, g, nil, style)
	}
}

// DrawText writes HUD text at a playfield cell, clipped to the playfield width
func (r *TerminalRenderer) DrawText(col, row int, text string) {
	style := r.bg.Foreground(RgbText)
	for i, ch := range []rune(text) {
		if col+i >= PlayfieldCols {
			return
		}
		r.screen.SetContent(r.gameX+col+i, r.gameY+row, ch, nil, style)
	}
}
