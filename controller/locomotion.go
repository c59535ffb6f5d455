package controller

import (
	"errors"
	"math"

	"github.com/automoto/doomerang-kinetics/config"
	"github.com/automoto/doomerang-kinetics/curve"
	"github.com/automoto/doomerang-kinetics/gamemath"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

var ErrNilBody = errors.New("controller: nil body")

// curveSamples is how finely a new acceleration curve is checked for dips.
const curveSamples = 64

// LocomotionState is the ramp-up bookkeeping carried between ticks.
type LocomotionState struct {
	TimeMovingHorizontally float64
	LastMoveDirection      int
}

// Locomotion turns horizontal input into a force on the body, following an
// acceleration curve that restarts whenever the input direction reverses.
// Pressing into a wall while airborne clings instead.
type Locomotion struct {
	cfg      config.MovementConfig
	curve    curve.Curve
	body     Body
	state    LocomotionState
	clinging bool
	opts     options
}

// NewLocomotion validates cfg and sets the body's gravity scale to the
// configured base.
func NewLocomotion(cfg config.MovementConfig, body Body, opts ...Option) (*Locomotion, error) {
	if body == nil {
		return nil, ErrNilBody
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c, err := cfg.Curve.Build()
	if err != nil {
		return nil, err
	}

	o := newOptions(opts)
	if !curve.IsMonotonic(c, curveSamples) {
		o.logger.Warn("acceleration curve is not monotonic", zap.Int("samples", curveSamples))
	}

	body.SetGravityScale(cfg.BaseGravityScale)

	return &Locomotion{
		cfg:   cfg,
		curve: c,
		body:  body,
		opts:  o,
	}, nil
}

// Tick runs one locomotion step and returns the horizontal force applied.
func (l *Locomotion) Tick(move math2.Vec2, c Contacts, dt float64) float64 {
	if !gamemath.ValidStep(dt) {
		return 0
	}

	grounded := c.Grounded()
	if !grounded && l.pushingIntoWall(move.X, c) {
		l.cling()
		return 0
	}
	if l.clinging {
		l.release()
	}

	return l.accelerate(move.X, grounded, dt)
}

func (l *Locomotion) pushingIntoWall(x float64, c Contacts) bool {
	// Left arm pairs with pushing right and vice versa.
	threshold := l.cfg.ClingInputThreshold
	if c.LeftArm && x > 0 && x >= threshold {
		return true
	}
	return c.RightArm && x < 0 && -x >= threshold
}

func (l *Locomotion) cling() {
	l.body.SetGravityScale(0)
	l.body.SetVelocity(math2.Vec2{})
	if !l.clinging {
		l.clinging = true
		l.opts.emit(Event{Kind: EventWallCling})
	}
}

func (l *Locomotion) release() {
	l.clinging = false
	l.body.SetGravityScale(l.cfg.BaseGravityScale)
	l.opts.emit(Event{Kind: EventWallRelease, Velocity: l.body.Velocity().X})
}

func (l *Locomotion) accelerate(x float64, grounded bool, dt float64) float64 {
	dir := gamemath.Sign(x)
	if dir != 0 && dir != l.state.LastMoveDirection {
		l.state.TimeMovingHorizontally = 0
	}

	normalized := 1.0
	if l.cfg.MaxCurveTime > 0 {
		l.state.TimeMovingHorizontally = math.Min(l.state.TimeMovingHorizontally+dt, l.cfg.MaxCurveTime)
		normalized = l.state.TimeMovingHorizontally / l.cfg.MaxCurveTime
	} else {
		l.state.TimeMovingHorizontally = 0
	}
	curveValue := l.curve.Evaluate(normalized)

	diff := x*l.cfg.MaxSpeedX - l.body.Velocity().X
	accel := l.cfg.AirAccel
	if grounded {
		accel = l.cfg.GroundAccel
	}

	// A negative curve sample would make Pow return NaN for fractional exponents.
	base := math.Max(math.Abs(diff)*curveValue*accel, 0)
	magnitude := gamemath.ClampSpeed(math.Pow(base, l.cfg.VelocityExponent), l.cfg.ForceClampMagnitude)
	force := magnitude * float64(gamemath.Sign(diff))
	if force != 0 {
		l.body.AddForce(math2.Vec2{X: force})
	}

	if math.Abs(x) > gamemath.Epsilon {
		l.state.LastMoveDirection = dir
	} else {
		l.state.LastMoveDirection = 0
	}

	return force
}

func (l *Locomotion) State() LocomotionState {
	return l.state
}

// Clinging reports whether the last tick held the body against a wall.
func (l *Locomotion) Clinging() bool {
	return l.clinging
}

// Reset returns the controller to its spawn state.
func (l *Locomotion) Reset() {
	l.state = LocomotionState{}
	l.clinging = false
}
