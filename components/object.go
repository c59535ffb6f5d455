package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData links an entity to its resolv object. Positions are y-down
// pixels with the origin at the top-left of the course.
type ObjectData struct {
	*resolv.Object
}

// MoveTo teleports the object and refreshes its cells in the space.
func (o ObjectData) MoveTo(x, y float64) {
	o.X = x
	o.Y = y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
