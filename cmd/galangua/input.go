package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/galangua/parameter"
)

// controls turns terminal key presses into held directions
type controls struct {
	left  int
	right int
	fire  bool
	start bool
}

// handleEvent processes a tcell event and returns false if the game should exit
func (c *controls) handleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ, tcell.KeyEscape:
		return false
	case tcell.KeyLeft:
		c.left, c.right = parameter.KeyHoldTicks, 0
	case tcell.KeyRight:
		c.right, c.left = parameter.KeyHoldTicks, 0
	case tcell.KeyEnter:
		c.start = true
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ', 'z':
			c.fire = true
		case 'h', 'a':
			c.left, c.right = parameter.KeyHoldTicks, 0
		case 'l', 'd':
			c.right, c.left = parameter.KeyHoldTicks, 0
		case 'q':
			return false
		}
	}
	return true
}

// next consumes one tick of input
func (c *controls) next() input {
	in := input{fire: c.fire}
	switch {
	case c.left > 0:
		in.dx = -1
		c.left--
	case c.right > 0:
		in.dx = 1
		c.right--
	}
	c.fire = false
	return in
}
