package controller

import "github.com/yohamta/donburi/features/math"

// Body is the rigid body surface the controllers mutate. The physics layer
// owns integration; the controllers only accumulate forces, apply impulses
// or overwrite velocity and gravity scale.
type Body interface {
	Velocity() math.Vec2
	SetVelocity(v math.Vec2)
	GravityScale() float64
	SetGravityScale(scale float64)
	// AddForce accumulates a continuous force for the next integration step.
	AddForce(f math.Vec2)
	// AddImpulse changes velocity immediately by impulse / mass.
	AddImpulse(i math.Vec2)
}
