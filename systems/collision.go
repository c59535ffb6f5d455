package systems

import (
	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/gamemath"
	"github.com/automoto/doomerang-kinetics/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSlop absorbs float error when deciding whether a solid is ahead.
const contactSlop = 0.001

// UpdateCollisions moves each body's resolv object by its velocity and stops
// it against solids. Velocity is y-up; resolv space is y-down.
func UpdateCollisions(ecs *ecs.ECS) {
	scale := cfg.World.DeltaTime() * cfg.World.PixelsPerUnit

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		obj := components.Object.Get(e)

		// Never move further than one cell per tick so Check cannot skip a solid
		maxStep := float64(cfg.World.CellSize)
		resolveHorizontalCollision(body.RigidBody, obj.Object, gamemath.ClampSpeed(body.LinearVelocity.X*scale, maxStep))
		resolveVerticalCollision(body.RigidBody, obj.Object, gamemath.ClampSpeed(-body.LinearVelocity.Y*scale, maxStep))
		obj.Update()
	})
}

// resolveHorizontalCollision handles horizontal movement and wall collision
func resolveHorizontalCollision(body *components.RigidBody, object *resolv.Object, dx float64) {
	if dx == 0 {
		return
	}

	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			// Only solids sharing our vertical span can block sideways motion
			if object.Y+object.H <= solid.Y || object.Y >= solid.Y+solid.H {
				continue
			}
			if limited, hit := limitMove(dx, check.ContactWithObject(solid).X()); hit {
				dx = limited
				body.LinearVelocity.X = 0
			}
		}
	}

	object.X += dx
}

// resolveVerticalCollision handles falling onto floors and hitting ceilings
func resolveVerticalCollision(body *components.RigidBody, object *resolv.Object, dy float64) {
	if dy == 0 {
		return
	}

	if check := object.Check(0, dy, tags.ResolvSolid); check != nil {
		for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
			if object.X+object.W <= solid.X || object.X >= solid.X+solid.W {
				continue
			}
			if limited, hit := limitMove(dy, check.ContactWithObject(solid).Y()); hit {
				dy = limited
				body.LinearVelocity.Y = 0
			}
		}
	}

	object.Y += dy
}

// limitMove shortens move to contact when the contact lies ahead and closer
// than the full move. Contacts behind the mover are ignored.
func limitMove(move, contact float64) (float64, bool) {
	if move > 0 {
		if contact < -contactSlop || contact >= move {
			return move, false
		}
		return max(contact, 0), true
	}
	if contact > contactSlop || contact <= move {
		return move, false
	}
	return min(contact, 0), true
}
