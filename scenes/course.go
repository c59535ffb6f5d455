package scenes

import (
	"image/color"
	"io/fs"
	"sync"

	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/controller"
	"github.com/automoto/doomerang-kinetics/leveldata"
	"github.com/automoto/doomerang-kinetics/systems"
	"github.com/automoto/doomerang-kinetics/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// eventLogSize is how many controller events the HUD keeps.
const eventLogSize = 6

// CourseScene runs one course: input is polled each frame and fed to the
// player, then the simulation pipeline advances one fixed step.
type CourseScene struct {
	ecs    *ecs.ECS
	player *donburi.Entry
	course *leveldata.Course

	fsys   fs.FS
	path   string
	logger *zap.Logger

	events []controller.Event
	once   sync.Once
}

func NewCourseScene(fsys fs.FS, path string, logger *zap.Logger) *CourseScene {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseScene{fsys: fsys, path: path, logger: logger}
}

func (cs *CourseScene) Update() {
	cs.once.Do(cs.configure)

	frame := pollInput()
	systems.SetMoveInput(cs.player, frame.Move.X, frame.Move.Y)
	systems.SetJumpHeld(cs.player, frame.Pressed[ActionJump])

	if frame.Triggered[ActionRespawn] {
		systems.RespawnPlayer(cs.player)
	}
	if frame.Triggered[ActionSaveTuning] {
		if err := systems.SaveTuning(cfg.DefaultTuning()); err == nil {
			cs.logger.Info("tuning saved")
		}
	}

	cs.ecs.Update()
}

func (cs *CourseScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if cs.ecs == nil {
		return
	}
	cs.ecs.Draw(screen)
}

func (cs *CourseScene) configure() {
	course, err := leveldata.LoadCourse(cs.fsys, cs.path)
	if err != nil {
		panic("failed to load course: " + err.Error())
	}
	cs.course = course

	// The world bounds follow the course so falling off the map respawns.
	cfg.World.Width = course.MapWidth
	cfg.World.Height = course.MapHeight

	cs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.AddSimulationSystems(cs.ecs)
	cs.ecs.AddSystem(systems.UpdateCamera)

	cs.ecs.AddRenderer(cfg.Default, drawCourse)
	cs.ecs.AddRenderer(cfg.Default, cs.drawHUD)

	player, err := factory.BuildCourse(cs.ecs, course,
		controller.WithLogger(cs.logger),
		controller.WithObserver(cs.recordEvent),
	)
	if err != nil {
		panic("failed to build course: " + err.Error())
	}
	cs.player = player
	factory.CreateCamera(cs.ecs, course.Spawn.X, course.Spawn.Y)

	cs.logger.Info("course loaded",
		zap.String("course", course.Name),
		zap.Int("solids", len(course.SolidRects)),
		zap.Float64("spawnX", course.Spawn.X),
		zap.Float64("spawnY", course.Spawn.Y),
	)
}

func (cs *CourseScene) recordEvent(ev controller.Event) {
	cs.events = append(cs.events, ev)
	if len(cs.events) > eventLogSize {
		cs.events = cs.events[len(cs.events)-eventLogSize:]
	}
}
