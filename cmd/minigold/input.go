package main

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/minigold/parameter"
)

// Terminals report key presses and repeats but no releases,
// so an axis stays held while repeats keep arriving within this window
const axisHoldWindow = 150 * time.Millisecond

type action int

const (
	actionNone action = iota
	actionFire
	actionReset
	actionPause
	actionQuit
)

// axisHold turns key-repeat presses into a held axis value
type axisHold struct {
	value float64
	last  time.Time
}

func (a *axisHold) press(v float64, now time.Time) {
	a.value = v
	a.last = now
}

func (a *axisHold) read(now time.Time) float64 {
	if a.last.IsZero() || now.Sub(a.last) > axisHoldWindow {
		return 0
	}
	return a.value
}

// controller maps keys onto the MoveForward, MoveTurn and FireCannons bindings
type controller struct {
	axes map[string]*axisHold

	sentForward float64
	sentTurn    float64
}

func newController() *controller {
	return &controller{
		axes: map[string]*axisHold{
			parameter.BindingMoveForward: {},
			parameter.BindingMoveTurn:    {},
		},
	}
}

// handleKey updates held axes and returns the discrete action of the key, if any
func (c *controller) handleKey(ev *tcell.EventKey, now time.Time) action {
	return c.handleInput(ev.Key(), ev.Rune(), now)
}

func (c *controller) handleInput(key tcell.Key, r rune, now time.Time) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyUp:
		c.axes[parameter.BindingMoveForward].press(1, now)
		return actionNone
	case tcell.KeyDown:
		c.axes[parameter.BindingMoveForward].press(-1, now)
		return actionNone
	case tcell.KeyLeft:
		c.axes[parameter.BindingMoveTurn].press(-1, now)
		return actionNone
	case tcell.KeyRight:
		c.axes[parameter.BindingMoveTurn].press(1, now)
		return actionNone
	case tcell.KeyRune:
	default:
		return actionNone
	}

	switch r {
	case 'w', 'W':
		c.axes[parameter.BindingMoveForward].press(1, now)
	case 's', 'S':
		c.axes[parameter.BindingMoveForward].press(-1, now)
	case 'a', 'A':
		c.axes[parameter.BindingMoveTurn].press(-1, now)
	case 'd', 'D':
		c.axes[parameter.BindingMoveTurn].press(1, now)
	case ' ':
		return actionFire
	case 'r', 'R':
		return actionReset
	case 'p', 'P':
		return actionPause
	case 'q', 'Q':
		return actionQuit
	}
	return actionNone
}

// sample reads both axes and reports whether they should be sent to the pawn
// Non-zero axes are resent every sample so a freshly spawned pawn picks them up
func (c *controller) sample(now time.Time) (forward, turn float64, send bool) {
	forward = c.axes[parameter.BindingMoveForward].read(now)
	turn = c.axes[parameter.BindingMoveTurn].read(now)

	send = forward != c.sentForward || turn != c.sentTurn || forward != 0 || turn != 0
	c.sentForward, c.sentTurn = forward, turn
	return forward, turn, send
}
