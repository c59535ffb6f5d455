package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// RigidBody is the velocity/gravity record shared by the controllers and the
// physics systems. Velocity is y-up in physics units per second.
type RigidBody struct {
	LinearVelocity math.Vec2
	Gravity        float64   // Gravity scale
	Mass           float64
	Force          math.Vec2 // Accumulated until the next UpdatePhysics
}

func NewRigidBody(mass, gravityScale float64) *RigidBody {
	if mass <= 0 {
		mass = 1
	}
	return &RigidBody{Mass: mass, Gravity: gravityScale}
}

func (b *RigidBody) Velocity() math.Vec2 {
	return b.LinearVelocity
}

func (b *RigidBody) SetVelocity(v math.Vec2) {
	b.LinearVelocity = v
}

func (b *RigidBody) GravityScale() float64 {
	return b.Gravity
}

func (b *RigidBody) SetGravityScale(scale float64) {
	b.Gravity = scale
}

func (b *RigidBody) AddForce(f math.Vec2) {
	b.Force.X += f.X
	b.Force.Y += f.Y
}

func (b *RigidBody) AddImpulse(i math.Vec2) {
	b.LinearVelocity.X += i.X / b.Mass
	b.LinearVelocity.Y += i.Y / b.Mass
}

// BodyData holds the body by pointer so the controller's reference survives
// archetype storage moves.
type BodyData struct {
	*RigidBody
}

var Body = donburi.NewComponentType[BodyData]()
