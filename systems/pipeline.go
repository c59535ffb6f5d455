package systems

import "github.com/yohamta/donburi/ecs"

// AddSimulationSystems registers the fixed-step pipeline in order: contacts
// feed the controllers, controllers feed integration, integration feeds
// collision.
func AddSimulationSystems(e *ecs.ECS) {
	e.AddSystem(UpdateContacts)
	e.AddSystem(UpdateControllers)
	e.AddSystem(UpdatePhysics)
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateRespawns)
	e.AddSystem(UpdateStates)
}
