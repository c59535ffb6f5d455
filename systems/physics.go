package systems

import (
	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdatePhysics integrates accumulated forces and scaled gravity into
// velocity, then clears the force accumulator.
func UpdatePhysics(ecs *ecs.ECS) {
	dt := cfg.World.DeltaTime()

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.RigidBody == nil {
			return
		}

		ax := body.Force.X / body.Mass
		ay := body.Force.Y/body.Mass + cfg.World.Gravity*body.Gravity

		body.LinearVelocity.X += ax * dt
		body.LinearVelocity.Y += ay * dt
		body.Force = math.Vec2{}
	})
}
