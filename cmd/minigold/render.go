package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/status"
	"github.com/lixenwraith/minigold/vmath"
)

// World units per terminal cell; cells are about twice as tall as wide
const (
	unitsPerCol = 100.0
	unitsPerRow = 200.0
)

var (
	styleWater      = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleWall       = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorNavy)
	styleBody       = tcell.StyleDefault.Foreground(tcell.ColorOlive).Background(tcell.ColorNavy)
	styleShip       = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	stylePlayer     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorNavy).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorNavy)
	styleStatus     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Heading glyphs by 45 degree sector, starting at yaw 0 and turning clockwise on screen
var headingGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// view projects the top-down world onto the terminal, centered on a camera point
// World +X is screen right and +Y is screen down, so positive yaw turns clockwise
type view struct {
	screen tcell.Screen
	center vmath.Vec3F
}

func newView(screen tcell.Screen) *view {
	return &view{screen: screen}
}

// toCell maps a world position to a screen cell; the last row is reserved for the status bar
func (v *view) toCell(p vmath.Vec3F) (col, row int) {
	w, h := v.screen.Size()
	col = w/2 + int(math.Round((p.X-v.center.X)/unitsPerCol))
	row = (h-1)/2 + int(math.Round((p.Y-v.center.Y)/unitsPerRow))
	return col, row
}

func (v *view) put(col, row int, r rune, style tcell.Style) {
	w, h := v.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h-1 {
		return
	}
	v.screen.SetContent(col, row, r, nil, style)
}

func headingGlyph(yaw float64) rune {
	sector := int(math.Round(vmath.NormalizeAxis(yaw)/45)) % 8
	if sector < 0 {
		sector += 8
	}
	return headingGlyphs[sector]
}

// draw renders the world around player; caller must hold the world lock
// Returns the player position for the audio listener, ok false once the pawn is gone
func (v *view) draw(w *engine.World, player core.Entity, paused bool) (vmath.Vec3F, bool) {
	pt, alive := w.Components.Transform.GetComponent(player)
	if alive {
		v.center = pt.Position
	}

	v.screen.Fill(' ', styleWater)

	for _, e := range w.Components.Wall.GetAllEntities() {
		wall, _ := w.Components.Wall.GetComponent(e)
		c0, r0 := v.toCell(wall.Bounds.Min)
		c1, r1 := v.toCell(wall.Bounds.Max)
		for r := r0; r <= r1; r++ {
			for c := c0; c <= c1; c++ {
				v.put(c, r, '▒', styleWall)
			}
		}
	}

	for _, e := range w.Components.Body.GetAllEntities() {
		if t, ok := w.Components.Transform.GetComponent(e); ok {
			c, r := v.toCell(t.Position)
			v.put(c, r, '▣', styleBody)
		}
	}

	for _, e := range w.Components.Projectile.GetAllEntities() {
		if t, ok := w.Components.Transform.GetComponent(e); ok {
			c, r := v.toCell(t.Position)
			v.put(c, r, '•', styleProjectile)
		}
	}

	pawns := append(w.Components.Ship.GetAllEntities(), w.Components.Floating.GetAllEntities()...)
	for _, e := range pawns {
		t, ok := w.Components.Transform.GetComponent(e)
		if !ok {
			continue
		}
		style := styleShip
		if e == player {
			style = stylePlayer
		}
		c, r := v.toCell(t.Position)
		v.put(c, r, headingGlyph(t.Rotation.Yaw), style)
	}

	v.drawStatus(w, player, alive, paused)
	return pt.Position, alive
}

func (v *view) drawStatus(w *engine.World, player core.Entity, alive, paused bool) {
	width, h := v.screen.Size()
	row := h - 1

	hull := "SUNK - [r] restart"
	if hp, ok := w.Components.Health.GetComponent(player); ok {
		hull = fmt.Sprintf("HP %d/%d", hp.Health, hp.Max)
	} else if alive {
		hull = "floating"
	}
	if paused {
		hull += " PAUSED"
	}

	ints := w.Resources.Status.Ints
	line := fmt.Sprintf(" %s | shots %d hits %d dmg %d | proj %d | tick %.2fms | [w/s] move [a/d] turn [space] fire [p] pause [r] reset [q] quit",
		hull,
		ints.Get(status.KeyShipFired).Load(),
		ints.Get(status.KeyProjectileHits).Load(),
		ints.Get(status.KeyCombatDamage).Load(),
		ints.Get(status.KeyProjectileActive).Load(),
		w.Resources.Status.Floats.Get(status.KeyTickDuration).Get(),
	)

	col := 0
	for _, r := range line {
		if col >= width {
			break
		}
		v.screen.SetContent(col, row, r, nil, styleStatus)
		col++
	}
	for ; col < width; col++ {
		v.screen.SetContent(col, row, ' ', nil, styleStatus)
	}
}
