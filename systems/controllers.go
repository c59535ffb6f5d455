package systems

import (
	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/automoto/doomerang-kinetics/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateControllers runs one controller tick per player from the latest
// input and contacts.
func UpdateControllers(ecs *ecs.ECS) {
	dt := cfg.World.DeltaTime()

	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		ctrl := components.Controller.Get(e)
		input := components.PlayerInput.Get(e)
		contacts := components.Contacts.Get(e)

		ctrl.LastForce, ctrl.LastJump = ctrl.Character.Tick(controller.Input{
			Move: input.Move,
			Jump: input.JumpJustPressed(),
		}, *contacts, dt)
		input.JumpWasHeld = input.JumpHeld

		if dir := gamemath.Sign(input.Move.X); dir != 0 {
			components.Player.Get(e).FacingX = float64(dir)
		}
	})
}
