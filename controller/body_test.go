package controller

import (
	"github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/curve"
	math2 "github.com/yohamta/donburi/features/math"
)

type testBody struct {
	velocity math2.Vec2
	gravity  float64
	mass     float64
	force    math2.Vec2
}

func newTestBody() *testBody {
	return &testBody{mass: 1}
}

func (b *testBody) Velocity() math2.Vec2          { return b.velocity }
func (b *testBody) SetVelocity(v math2.Vec2)      { b.velocity = v }
func (b *testBody) GravityScale() float64         { return b.gravity }
func (b *testBody) SetGravityScale(scale float64) { b.gravity = scale }

func (b *testBody) AddForce(f math2.Vec2) {
	b.force.X += f.X
	b.force.Y += f.Y
}

func (b *testBody) AddImpulse(i math2.Vec2) {
	b.velocity.X += i.X / b.mass
	b.velocity.Y += i.Y / b.mass
}

// flatMovement uses a constant curve of 1 so forces are easy to predict.
func flatMovement() config.MovementConfig {
	m := config.Movement
	m.Curve = config.CurveConfig{Keys: []curve.Keyframe{{Time: 0, Value: 1}}}
	m.ClingInputThreshold = 0.99
	return m
}

func referenceJump() config.JumpConfig {
	j := config.Jump
	j.JumpSpeed = 5
	j.WallJumpCooldown = 0.2
	j.KickOffForce = 1
	j.ApexBoostMagnitude = 5
	j.ZeroGravityDuration = 0.15
	j.BaseGravityScale = 2
	return j
}

var (
	airborne  = Contacts{}
	grounded  = Contacts{Feet: true}
	leftWall  = Contacts{LeftArm: true}
	rightWall = Contacts{RightArm: true}
)

func right() math2.Vec2 { return math2.Vec2{X: 1} }
func left() math2.Vec2  { return math2.Vec2{X: -1} }
