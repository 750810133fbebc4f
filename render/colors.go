package render

import "github.com/gdamore/tcell/v2"

// Sprite palette
var (
	RgbBackground = tcell.NewRGBColor(0, 0, 0)       // Black playfield
	RgbBee        = tcell.NewRGBColor(255, 220, 0)   // Yellow
	RgbButterfly  = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbOwl        = tcell.NewRGBColor(0, 200, 100)   // Green
	RgbOwlDamaged = tcell.NewRGBColor(150, 100, 255) // Purple after the first hit
	RgbFighter    = tcell.NewRGBColor(255, 255, 255) // White
	RgbCaptured   = tcell.NewRGBColor(255, 60, 60)   // Red tinted fighter
	RgbBeam       = tcell.NewRGBColor(80, 160, 255)  // Light blue
	RgbBeamAlt    = tcell.NewRGBColor(140, 200, 255) // Lighter blue for the alternate frame
	RgbEnemyShot  = tcell.NewRGBColor(255, 255, 255) // White
	RgbMyShot     = tcell.NewRGBColor(100, 220, 255) // Cyan
	RgbText       = tcell.NewRGBColor(220, 220, 220) // Light gray HUD text
	RgbUnknown    = tcell.NewRGBColor(255, 0, 255)   // Magenta for unmapped sprites
)
