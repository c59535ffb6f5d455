package systems

import (
	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/automoto/doomerang-kinetics/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

// UpdateRespawns returns players that fell below the world to their spawn.
func UpdateRespawns(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Y <= float64(cfg.World.Height) {
			return
		}
		player := components.Player.Get(e)
		player.Deaths++
		logger.Info("player fell out of the world", zap.Int("deaths", player.Deaths))
		RespawnPlayer(e)
	})
}

// RespawnPlayer moves the player back to its spawn point and resets the
// controller and body.
func RespawnPlayer(e *donburi.Entry) {
	player := components.Player.Get(e)
	components.Object.Get(e).MoveTo(player.SpawnX, player.SpawnY)

	components.Controller.Get(e).Character.Respawn()
	components.Body.Get(e).Force = math.Vec2{}
	components.Contacts.SetValue(e, controller.Contacts{})
	components.State.SetValue(e, components.StateData{CurrentState: cfg.StateIdle, PreviousState: cfg.StateIdle})
}
