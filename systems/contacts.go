package systems

import (
	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/automoto/doomerang-kinetics/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateContacts moves each probe to its body and records which probes
// overlap a solid. Must run BEFORE UpdateControllers.
func UpdateContacts(ecs *ecs.ECS) {
	components.Probes.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		probes := components.Probes.Get(e)
		probes.Align(obj.Object, cfg.World.ProbeThickness)

		components.Contacts.SetValue(e, controller.Contacts{
			Feet:     touchingSolid(probes.Feet),
			LeftArm:  touchingSolid(probes.LeftArm),
			RightArm: touchingSolid(probes.RightArm),
		})
	})
}

// touchingSolid narrows resolv's cell query down to real overlap.
func touchingSolid(probe *resolv.Object) bool {
	if probe == nil {
		return false
	}
	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if overlaps(probe, solid) {
			return true
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}
