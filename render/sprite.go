package render

import "github.com/gdamore/tcell/v2"

// Pixel to cell scale of the playfield
const (
	CellWidth  = 4
	CellHeight = 8
)

// sprite maps an opaque sprite key to terminal glyphs
// w, h are the pixel extent and ox the anchor shift applied to the draw position
type sprite struct {
	glyphs string
	color  tcell.Color
	w, h   int
	ox     int
	rot    []rune // optional heading glyphs by 45 degree bucket, 0 is up
}

var fighterRot = []rune{'A', '/', '>', '\\', 'V', '/', '<', '\\'}

var sprites = map[string]sprite{
	"bee1":             {glyphs: "}{", color: RgbBee, w: 16, h: 16},
	"bee2":             {glyphs: "][", color: RgbBee, w: 16, h: 16},
	"butterfly1":       {glyphs: "{}", color: RgbButterfly, w: 16, h: 16},
	"butterfly2":       {glyphs: ")(", color: RgbButterfly, w: 16, h: 16},
	"owl1":             {glyphs: "MM", color: RgbOwl, w: 16, h: 16},
	"owl2":             {glyphs: "WW", color: RgbOwl, w: 16, h: 16},
	"owl_damaged1":     {glyphs: "MM", color: RgbOwlDamaged, w: 16, h: 16},
	"owl_damaged2":     {glyphs: "WW", color: RgbOwlDamaged, w: 16, h: 16},
	"captured_fighter": {glyphs: "A", color: RgbCaptured, w: 16, h: 16, rot: fighterRot},
	"fighter":          {glyphs: "A", color: RgbFighter, w: 16, h: 16, rot: fighterRot},
	"tractor_beam1":    {glyphs: "░░░░░░░░░░░░", color: RgbBeam, w: 48, h: 8, ox: -24},
	"tractor_beam2":    {glyphs: "▒▒▒▒▒▒▒▒▒▒▒▒", color: RgbBeamAlt, w: 48, h: 8, ox: -24},
	"ene_shot":         {glyphs: "|", color: RgbEnemyShot, w: 4, h: 8},
	"myshot":           {glyphs: "!", color: RgbMyShot, w: 4, h: 8},
}

var unknownSprite = sprite{glyphs: "?", color: RgbUnknown, w: 8, h: 8}

func lookupSprite(name string) sprite {
	if s, ok := sprites[name]; ok {
		return s
	}
	return unknownSprite
}

// rotGlyph picks the heading glyph for angleDeg, clockwise from up
func (s sprite) rotGlyph(angleDeg int) (rune, bool) {
	if len(s.rot) == 0 {
		return 0, false
	}
	n := len(s.rot)
	step := 360 / n
	i := ((angleDeg%360+360)%360 + step/2) / step % n
	return s.rot[i], true
}
