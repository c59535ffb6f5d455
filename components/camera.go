package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view center in resolv pixels.
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
}

// Offset is the translation from world pixels to screen pixels.
func (c *CameraData) Offset(viewW, viewH int) (float64, float64) {
	return float64(viewW)/2 - c.Position.X, float64(viewH)/2 - c.Position.Y
}

var Camera = donburi.NewComponentType[CameraData]()
