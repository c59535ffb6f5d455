package controller

// Contacts is the per-tick probe state reported by the collision layer.
// A missing probe is reported as false.
type Contacts struct {
	Feet     bool
	LeftArm  bool
	RightArm bool
}

func (c Contacts) Grounded() bool {
	return c.Feet
}

func (c Contacts) TouchingWall() bool {
	return c.LeftArm || c.RightArm
}

// CanJump reports whether any probe touches ground.
func (c Contacts) CanJump() bool {
	return c.Feet || c.LeftArm || c.RightArm
}
