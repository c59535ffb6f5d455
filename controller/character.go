package controller

import (
	"github.com/automoto/doomerang-kinetics/config"
	math2 "github.com/yohamta/donburi/features/math"
)

// Input is one tick of player intent. Jump is a press edge, not a held level.
type Input struct {
	Move math2.Vec2
	Jump bool
}

// Character drives a Locomotion and a Jump over one shared body.
type Character struct {
	Locomotion *Locomotion
	Jump       *Jump

	body             Body
	baseGravityScale float64
}

func NewCharacter(movement config.MovementConfig, jump config.JumpConfig, body Body, opts ...Option) (*Character, error) {
	if err := config.CheckGravityScales(movement, jump); err != nil {
		return nil, err
	}
	loco, err := NewLocomotion(movement, body, opts...)
	if err != nil {
		return nil, err
	}
	j, err := NewJump(jump, body, opts...)
	if err != nil {
		return nil, err
	}
	return &Character{
		Locomotion:       loco,
		Jump:             j,
		body:             body,
		baseGravityScale: movement.BaseGravityScale,
	}, nil
}

// Tick runs locomotion, then the jump press if any, then the jump timers.
// The press goes after locomotion so a wall cling cannot cancel the kick off.
func (c *Character) Tick(in Input, contacts Contacts, dt float64) (force float64, kind JumpKind) {
	force = c.Locomotion.Tick(in.Move, contacts, dt)
	kind = JumpNone
	if in.Jump {
		kind = c.Jump.OnJumpTriggered(contacts)
	}
	c.Jump.Tick(contacts, dt)
	return force, kind
}

// Respawn resets both controllers and puts the body back at rest with the
// base gravity scale.
func (c *Character) Respawn() {
	c.Locomotion.Reset()
	c.Jump.Reset()
	c.body.SetVelocity(math2.Vec2{})
	c.body.SetGravityScale(c.baseGravityScale)
}
