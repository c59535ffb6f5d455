package systems

import (
	"math"

	"github.com/automoto/doomerang-kinetics/components"
	"github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the camera toward the player, leading in the direction
// of travel, and keeps the view inside the course bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	body := components.Body.Get(playerEntry)

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(body.LinearVelocity.X) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.FacingX * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX, targetY := clampView(
		playerObject.X+playerObject.W/2+camera.LookAheadX,
		playerObject.Y+playerObject.H/2,
	)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampView keeps a view centered on (x, y) inside the course. A course
// smaller than the view is centered instead.
func clampView(x, y float64) (float64, float64) {
	return clampAxis(x, float64(config.Camera.ViewWidth), float64(config.World.Width)),
		clampAxis(y, float64(config.Camera.ViewHeight), float64(config.World.Height))
}

func clampAxis(center, view, level float64) float64 {
	if level <= view {
		return level / 2
	}
	return math.Max(view/2, math.Min(level-view/2, center))
}
