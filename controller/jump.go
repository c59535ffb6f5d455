package controller

import (
	"math"

	"github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
)

// JumpKind reports which branch a jump press took.
type JumpKind int

const (
	JumpNone JumpKind = iota
	JumpGround
	JumpWallLeftArm
	JumpWallRightArm
)

func (k JumpKind) String() string {
	switch k {
	case JumpGround:
		return "ground"
	case JumpWallLeftArm:
		return "wall_left_arm"
	case JumpWallRightArm:
		return "wall_right_arm"
	default:
		return "none"
	}
}

// JumpState holds the jump timers and the apex boost latch.
type JumpState struct {
	WallJumpCooldownRemaining float64
	// ApexBoostConsumed is cleared only by a new jump unless
	// JumpConfig.ResetApexOnLanding is set.
	ApexBoostConsumed        bool
	ZeroGravityTimeRemaining float64
	GravityScaleBeforeZeroG  float64
	ZeroGravityActive        bool
}

// Jump applies jump impulses on press edges and runs the apex boost window.
type Jump struct {
	cfg   config.JumpConfig
	body  Body
	state JumpState
	opts  options
}

func NewJump(cfg config.JumpConfig, body Body, opts ...Option) (*Jump, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Jump{
		cfg:  cfg,
		body: body,
		opts: newOptions(opts),
	}, nil
}

// OnJumpTriggered handles one press edge. An arm contact always takes the
// wall jump branch, even with the feet grounded. Without any contact nothing
// changes.
func (j *Jump) OnJumpTriggered(c Contacts) JumpKind {
	if !c.CanJump() {
		return JumpNone
	}

	if c.TouchingWall() && j.WallJumpReady() {
		if c.LeftArm {
			j.wallJump(-1)
			return JumpWallLeftArm
		}
		j.wallJump(1)
		return JumpWallRightArm
	}

	// Reached with an arm contact only while an enforced cooldown is running.
	if !c.Feet {
		return JumpNone
	}

	v := j.body.Velocity()
	v.Y = j.cfg.JumpSpeed
	j.body.SetVelocity(v)
	j.state.ApexBoostConsumed = false
	j.opts.emit(Event{Kind: EventGroundJump, Velocity: v.X})
	return JumpGround
}

func (j *Jump) wallJump(direction int) {
	j.body.SetGravityScale(j.cfg.BaseGravityScale)
	j.body.SetVelocity(math2.Vec2{
		X: j.cfg.KickOffForce * float64(direction),
		Y: j.cfg.JumpSpeed,
	})
	j.state.WallJumpCooldownRemaining = j.cfg.WallJumpCooldown
	j.state.ApexBoostConsumed = false
	j.opts.emit(Event{Kind: EventWallJump, Velocity: j.cfg.KickOffForce * float64(direction), Direction: direction})
}

// Tick advances the cooldown and zero gravity timers and fires the apex
// boost the first time the body starts falling after a jump.
func (j *Jump) Tick(c Contacts, dt float64) {
	if !gamemath.ValidStep(dt) {
		return
	}

	j.state.WallJumpCooldownRemaining = gamemath.CountDown(j.state.WallJumpCooldownRemaining, dt)
	j.advanceZeroGravity(dt)

	if c.Grounded() {
		if j.cfg.ResetApexOnLanding {
			j.state.ApexBoostConsumed = false
		}
		return
	}

	if !j.state.ApexBoostConsumed && j.body.Velocity().Y < 0 {
		j.apexBoost()
	}
}

func (j *Jump) advanceZeroGravity(dt float64) {
	if !j.state.ZeroGravityActive {
		return
	}

	j.state.ZeroGravityTimeRemaining = gamemath.CountDown(j.state.ZeroGravityTimeRemaining, dt)
	if j.state.ZeroGravityTimeRemaining > 0 {
		// Held against any other writer for the whole window.
		j.body.SetGravityScale(0)
		return
	}

	j.state.ZeroGravityActive = false
	j.body.SetGravityScale(j.state.GravityScaleBeforeZeroG)
	j.opts.emit(Event{Kind: EventZeroGravityEnd, Velocity: j.body.Velocity().X})
}

func (j *Jump) apexBoost() {
	j.state.ApexBoostConsumed = true

	vx := j.body.Velocity().X
	direction := 0
	if math.Abs(vx) > j.cfg.ApexVelocityThreshold {
		direction = gamemath.Sign(vx)
		j.body.AddImpulse(math2.Vec2{X: j.cfg.ApexBoostMagnitude * float64(direction)})
	}

	if j.cfg.ZeroGravityDuration > 0 {
		// A restart keeps the scale captured by the window already running.
		if !j.state.ZeroGravityActive {
			j.state.GravityScaleBeforeZeroG = j.body.GravityScale()
		}
		j.body.SetGravityScale(0)
		j.state.ZeroGravityTimeRemaining = j.cfg.ZeroGravityDuration
		j.state.ZeroGravityActive = true
	}

	j.opts.emit(Event{Kind: EventApexBoost, Velocity: vx, Direction: direction})
}

func (j *Jump) State() JumpState {
	return j.state
}

// WallJumpReady reports whether a wall jump may start. It is always true
// unless JumpConfig.EnforceWallJumpCooldown is set.
func (j *Jump) WallJumpReady() bool {
	return !j.cfg.EnforceWallJumpCooldown || j.state.WallJumpCooldownRemaining == 0
}

func (j *Jump) ZeroGravityActive() bool {
	return j.state.ZeroGravityActive
}

// Reset clears all timers and the apex latch. A running zero gravity window
// is dropped without restoring the body; callers reset the body themselves.
func (j *Jump) Reset() {
	j.state = JumpState{}
}
