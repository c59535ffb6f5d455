package components

import (
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ProbesData holds the contact probes that follow a body. A nil probe never
// reports contact.
type ProbesData struct {
	Feet     *resolv.Object
	LeftArm  *resolv.Object
	RightArm *resolv.Object
}

// Align places the probes around the body: feet under the bottom edge, arms
// outside each side, inset so corners do not register as walls or floor.
func (p *ProbesData) Align(body *resolv.Object, thickness float64) {
	inset := thickness
	place(p.Feet, body.X+inset, body.Y+body.H)
	place(p.LeftArm, body.X-thickness, body.Y+inset)
	place(p.RightArm, body.X+body.W, body.Y+inset)
}

func place(probe *resolv.Object, x, y float64) {
	if probe == nil {
		return
	}
	probe.X = x
	probe.Y = y
	probe.Update()
}

var Probes = donburi.NewComponentType[ProbesData]()

var Contacts = donburi.NewComponentType[controller.Contacts]()
