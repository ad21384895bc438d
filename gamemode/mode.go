// Package gamemode selects and spawns the controllable pawn of a match
package gamemode

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/minigold/core"
	"github.com/lixenwraith/minigold/engine"
	"github.com/lixenwraith/minigold/system"
	"github.com/lixenwraith/minigold/vmath"
)

// PawnClass identifies a controllable pawn variant
type PawnClass int

const (
	// PawnMinigold is the swept-collision ship with gun and health
	PawnMinigold PawnClass = iota

	// PawnFloating is the thrust-only hull without gun or health
	PawnFloating
)

// String returns the config name of the pawn class
func (p PawnClass) String() string {
	switch p {
	case PawnMinigold:
		return "minigold"
	case PawnFloating:
		return "floating"
	default:
		return fmt.Sprintf("pawn(%d)", int(p))
	}
}

// ParsePawnClass resolves a config name, empty selects the default
func ParsePawnClass(name string) (PawnClass, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "minigold", "ship":
		return PawnMinigold, nil
	case "floating", "shippawn":
		return PawnFloating, nil
	default:
		return PawnMinigold, fmt.Errorf("unknown pawn class %q", name)
	}
}

// Mode holds the match rules that decide what the player controls
type Mode struct {
	DefaultPawn PawnClass
}

// New returns the standard mode with the minigold ship as default pawn
func New() Mode {
	return Mode{DefaultPawn: PawnMinigold}
}

// SpawnPlayer creates the default pawn at position facing yaw
func (m Mode) SpawnPlayer(w *engine.World, position vmath.Vec3F, yaw float64) core.Entity {
	return m.Spawn(w, m.DefaultPawn, position, yaw)
}

// Spawn creates a pawn of the given class; unknown classes fall back to the minigold ship
func (m Mode) Spawn(w *engine.World, class PawnClass, position vmath.Vec3F, yaw float64) core.Entity {
	switch class {
	case PawnFloating:
		return system.SpawnFloating(w, position, yaw)
	default:
		return system.SpawnShip(w, position, yaw)
	}
}
