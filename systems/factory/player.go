package factory

import (
	"fmt"

	"github.com/automoto/doomerang-kinetics/archetypes"
	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/automoto/doomerang-kinetics/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a controllable body at (x, y) in resolv pixels, with
// its three contact probes, using the package-wide tuning.
func CreatePlayer(ecs *ecs.ECS, x, y float64, opts ...controller.Option) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.World.BodyWidth, cfg.World.BodyHeight
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	body := components.NewRigidBody(cfg.World.Mass, cfg.Movement.BaseGravityScale)
	components.Body.SetValue(player, components.BodyData{RigidBody: body})

	character, err := controller.NewCharacter(cfg.Movement, cfg.Jump, body, opts...)
	if err != nil {
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("create player controller: %w", err)
	}
	components.Controller.SetValue(player, components.ControllerData{Character: character})

	probes := newProbes(w, h, cfg.World.ProbeThickness)
	probes.Align(obj, cfg.World.ProbeThickness)
	components.Probes.SetValue(player, probes)

	components.Player.SetValue(player, components.PlayerData{
		FacingX: cfg.DirectionRight,
		SpawnX:  x,
		SpawnY:  y,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.StateIdle,
		PreviousState: cfg.StateIdle,
	})

	addToSpace(ecs, obj, probes.Feet, probes.LeftArm, probes.RightArm)

	return player, nil
}

func newProbes(w, h, thickness float64) components.ProbesData {
	probe := func(pw, ph float64) *resolv.Object {
		o := resolv.NewObject(0, 0, pw, ph, tags.ResolvProbe)
		o.SetShape(resolv.NewRectangle(0, 0, pw, ph))
		return o
	}
	return components.ProbesData{
		Feet:     probe(w-2*thickness, thickness),
		LeftArm:  probe(thickness, h-2*thickness),
		RightArm: probe(thickness, h-2*thickness),
	}
}
