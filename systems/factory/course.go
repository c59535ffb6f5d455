package factory

import (
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/automoto/doomerang-kinetics/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// BuildCourse creates the collision space, one wall per solid rectangle and
// the player at the course spawn. It returns the player entry.
func BuildCourse(ecs *ecs.ECS, course *leveldata.Course, opts ...controller.Option) (*donburi.Entry, error) {
	CreateSpace(ecs, course.MapWidth, course.MapHeight, cfg.World.CellSize, cfg.World.CellSize)

	for _, r := range course.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	return CreatePlayer(ecs, course.Spawn.X, course.Spawn.Y, opts...)
}
