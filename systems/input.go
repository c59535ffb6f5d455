package systems

import (
	"github.com/automoto/doomerang-kinetics/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SetMoveInput writes the move vector the controller will read next tick.
func SetMoveInput(e *donburi.Entry, x, y float64) {
	input := components.PlayerInput.Get(e)
	input.Move = math.Vec2{X: x, Y: y}
}

// SetJumpHeld writes the jump button level. The press edge is derived when
// the controllers run.
func SetJumpHeld(e *donburi.Entry, held bool) {
	components.PlayerInput.Get(e).JumpHeld = held
}
