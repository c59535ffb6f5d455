package components

import (
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingX float64 // -1 or 1
	SpawnX  float64
	SpawnY  float64
	Deaths  int
}

var Player = donburi.NewComponentType[PlayerData]()

// ControllerData carries the kinetic controller and its last tick output.
type ControllerData struct {
	Character *controller.Character
	LastForce float64
	LastJump  controller.JumpKind
}

var Controller = donburi.NewComponentType[ControllerData]()
