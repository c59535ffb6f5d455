package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/doomerang-kinetics/components"
	cfg "github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	wallColor    = color.RGBA{100, 100, 100, 255}
	probeIdle    = color.RGBA{0, 255, 255, 255}
	probeContact = color.RGBA{255, 220, 0, 255}
)

var stateColors = map[cfg.StateID]color.RGBA{
	cfg.StateIdle:      {0, 0, 255, 255},
	cfg.StateRunning:   {40, 120, 255, 255},
	cfg.StateJump:      {40, 220, 40, 255},
	cfg.StateFall:      {220, 120, 40, 255},
	cfg.StateWallCling: {220, 40, 220, 255},
	cfg.StateFloat:     {255, 255, 255, 255},
}

// view translates world pixels to screen pixels.
type view struct {
	screen     *ebiten.Image
	camX, camY float64
}

func (v view) fill(x, y, w, h float64, c color.Color) {
	vector.FillRect(v.screen, float32(x+v.camX), float32(y+v.camY), float32(w), float32(h), c, false)
}

func drawCourse(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	v := view{screen: screen}
	v.camX, v.camY = components.Camera.Get(cameraEntry).Offset(screen.Bounds().Dx(), screen.Bounds().Dy())

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		v.fill(o.X, o.Y, o.W, o.H, wallColor)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		state := components.State.Get(e)
		v.fill(o.X, o.Y, o.W, o.H, stateColors[state.CurrentState])

		// Facing marker
		facing := components.Player.Get(e).FacingX
		cx := o.X + o.W/2 + facing*o.W/4
		v.fill(cx-2, o.Y+6, 4, 4, color.White)

		probes := components.Probes.Get(e)
		contacts := components.Contacts.Get(e)
		drawProbe(v, probes.Feet, contacts.Feet)
		drawProbe(v, probes.LeftArm, contacts.LeftArm)
		drawProbe(v, probes.RightArm, contacts.RightArm)
	})
}

func drawProbe(v view, probe *resolv.Object, touching bool) {
	if probe == nil {
		return
	}
	c := probeIdle
	if touching {
		c = probeContact
	}
	v.fill(probe.X, probe.Y, probe.W, probe.H, c)
}

func (cs *CourseScene) drawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if cs.player == nil || !cs.player.Valid() {
		return
	}

	body := components.Body.Get(cs.player)
	ctrl := components.Controller.Get(cs.player)
	state := components.State.Get(cs.player)
	player := components.Player.Get(cs.player)
	loco := ctrl.Character.Locomotion.State()
	jump := ctrl.Character.Jump.State()

	var b strings.Builder
	fmt.Fprintf(&b, "%s  state=%s (%d ticks)  deaths=%d  FPS=%0.0f\n",
		cs.course.Name, state.CurrentState, state.StateTimer, player.Deaths, ebiten.ActualFPS())
	fmt.Fprintf(&b, "vel=(%.2f, %.2f)  gravity=%.2f  force=%.2f\n", body.LinearVelocity.X, body.LinearVelocity.Y, body.Gravity, ctrl.LastForce)
	fmt.Fprintf(&b, "moveTime=%.2f  lastDir=%d  cling=%t\n", loco.TimeMovingHorizontally, loco.LastMoveDirection, ctrl.Character.Locomotion.Clinging())
	fmt.Fprintf(&b, "wallCooldown=%.2f  apexUsed=%t  zeroG=%.2f\n", jump.WallJumpCooldownRemaining, jump.ApexBoostConsumed, jump.ZeroGravityTimeRemaining)
	for _, ev := range cs.events {
		fmt.Fprintf(&b, "  %s vx=%.2f dir=%d\n", ev.Kind, ev.Velocity, ev.Direction)
	}
	b.WriteString("arrows/stick move  space jump  R respawn  F5 save tuning")

	ebitenutil.DebugPrintAt(screen, b.String(), 4, 4)
}
