package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PlayerInputData stores the move vector and the jump level for this and
// the previous tick. The controller only sees the press edge.
type PlayerInputData struct {
	Move        math.Vec2
	JumpHeld    bool
	JumpWasHeld bool
}

// JumpJustPressed reports a press edge for the current tick.
func (p *PlayerInputData) JumpJustPressed() bool {
	return p.JumpHeld && !p.JumpWasHeld
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
