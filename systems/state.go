package systems

import (
	"math"

	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// runningThreshold is the horizontal speed below which a grounded body idles.
const runningThreshold = 0.1

func UpdateStates(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		body := components.Body.Get(e)
		contacts := components.Contacts.Get(e)
		state := components.State.Get(e)

		next := deriveState(ctrl, body.RigidBody, contacts.Feet)
		state.PreviousState = state.CurrentState
		if next == state.CurrentState {
			state.StateTimer++
			return
		}
		state.CurrentState = next
		state.StateTimer = 0
	})
}

func deriveState(ctrl *components.ControllerData, body *components.RigidBody, grounded bool) cfg.StateID {
	switch {
	case ctrl.Character.Locomotion.Clinging():
		return cfg.StateWallCling
	case ctrl.Character.Jump.ZeroGravityActive():
		return cfg.StateFloat
	case !grounded && body.LinearVelocity.Y > 0:
		return cfg.StateJump
	case !grounded:
		return cfg.StateFall
	case math.Abs(body.LinearVelocity.X) >= runningThreshold:
		return cfg.StateRunning
	default:
		return cfg.StateIdle
	}
}
