package config

import (
	"errors"
	"fmt"

	"github.com/automoto/doomerang-kinetics/curve"
	"github.com/automoto/doomerang-kinetics/gamemath"
)

var ErrInvalidConfig = errors.New("invalid config")

// CurveConfig describes an acceleration profile. Keys win over Ease when set.
type CurveConfig struct {
	Ease string           `yaml:"ease,omitempty"`
	From float64          `yaml:"from"`
	To   float64          `yaml:"to"`
	Keys []curve.Keyframe `yaml:"keys,omitempty"`
}

// Build turns the description into an evaluable curve.
func (c CurveConfig) Build() (curve.Curve, error) {
	if len(c.Keys) > 0 {
		return curve.NewSampled(c.Keys...)
	}
	name := c.Ease
	if name == "" {
		name = "linear"
	}
	fn, ok := curve.EaseByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown ease %q: %w", c.Ease, ErrInvalidConfig)
	}
	return curve.NewEased(fn, c.From, c.To), nil
}

// MovementConfig contains horizontal locomotion tuning
type MovementConfig struct {
	MaxSpeedX           float64     `yaml:"maxSpeedX"`
	GroundAccel         float64     `yaml:"groundAccel"`
	AirAccel            float64     `yaml:"airAccel"`
	Curve               CurveConfig `yaml:"curve"`
	MaxCurveTime        float64     `yaml:"maxCurveTime"` // Seconds to reach the end of the curve; <= 0 pins the curve at 1.0
	VelocityExponent    float64     `yaml:"velocityExponent"`
	ForceClampMagnitude float64     `yaml:"forceClampMagnitude"`
	BaseGravityScale    float64     `yaml:"baseGravityScale"`    // Restored when a wall cling ends
	ClingInputThreshold float64     `yaml:"clingInputThreshold"` // Minimum |move.x| that counts as pushing into a wall
}

// JumpConfig contains jump, wall jump and apex boost tuning
type JumpConfig struct {
	JumpSpeed             float64 `yaml:"jumpSpeed"`
	WallJumpCooldown      float64 `yaml:"wallJumpCooldown"`
	KickOffForce          float64 `yaml:"kickOffForce"`
	ApexBoostMagnitude    float64 `yaml:"apexBoostMagnitude"`
	ZeroGravityDuration   float64 `yaml:"zeroGravityDuration"`
	BaseGravityScale      float64 `yaml:"baseGravityScale"`
	ApexVelocityThreshold float64 `yaml:"apexVelocityThreshold"` // |velocity.x| above which the apex impulse is applied

	// Off by default. The cooldown timer always runs; this makes it block wall jumps.
	EnforceWallJumpCooldown bool `yaml:"enforceWallJumpCooldown"`
	// Off by default. When set, landing re-arms the apex boost.
	ResetApexOnLanding bool `yaml:"resetApexOnLanding"`
}

// WorldConfig contains the simulation harness settings
type WorldConfig struct {
	TickRate       int     `yaml:"tickRate"`      // Fixed steps per second
	Gravity        float64 `yaml:"gravity"`       // Units/s^2, y-up (negative pulls down)
	PixelsPerUnit  float64 `yaml:"pixelsPerUnit"` // Physics units to resolv pixels
	Mass           float64 `yaml:"mass"`
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	CellSize       int     `yaml:"cellSize"`
	BodyWidth      float64 `yaml:"bodyWidth"`
	BodyHeight     float64 `yaml:"bodyHeight"`
	ProbeThickness float64 `yaml:"probeThickness"`
}

// DeltaTime is the fixed step length in seconds.
func (w WorldConfig) DeltaTime() float64 {
	if w.TickRate <= 0 {
		return 0
	}
	return 1 / float64(w.TickRate)
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	ViewWidth               int     // Logical screen size in pixels
	ViewHeight              int
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum |velocity.x| to update look-ahead
}

// Global configuration instances
var Movement MovementConfig
var Jump JumpConfig
var World WorldConfig
var Camera CameraConfig

func init() {
	// Movement Config
	Movement = MovementConfig{
		MaxSpeedX:   15.0,
		GroundAccel: 0.4,
		AirAccel:    0.1,
		Curve: CurveConfig{
			Ease: "outQuad",
			From: 0.3,
			To:   1.0,
		},
		MaxCurveTime:        1.0,
		VelocityExponent:    1.0,
		ForceClampMagnitude: 30.0,
		BaseGravityScale:    2.0,
		ClingInputThreshold: 0.99, // Digital input only, analog drift must not cling
	}

	// Jump Config
	Jump = JumpConfig{
		JumpSpeed:             5.0,
		WallJumpCooldown:      0.2,
		KickOffForce:          1.0,
		ApexBoostMagnitude:    5.0,
		ZeroGravityDuration:   0.15,
		BaseGravityScale:      2.0,
		ApexVelocityThreshold: gamemath.Epsilon,
	}

	// World Config
	World = WorldConfig{
		TickRate:       60,
		Gravity:        -9.81,
		PixelsPerUnit:  32.0,
		Mass:           1.0,
		Width:          640,
		Height:         360,
		CellSize:       16,
		BodyWidth:      14,
		BodyHeight:     28,
		ProbeThickness: 2,
	}

	Camera = CameraConfig{
		ViewWidth:               640,
		ViewHeight:              360,
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 1.0,
	}
}

// Validate checks the movement tuning. MaxCurveTime <= 0 is accepted.
func (m MovementConfig) Validate() error {
	fields := map[string]float64{
		"maxSpeedX":           m.MaxSpeedX,
		"groundAccel":         m.GroundAccel,
		"airAccel":            m.AirAccel,
		"forceClampMagnitude": m.ForceClampMagnitude,
		"baseGravityScale":    m.BaseGravityScale,
		"clingInputThreshold": m.ClingInputThreshold,
	}
	if err := nonNegative("movement", fields); err != nil {
		return err
	}
	if !gamemath.IsFinite(m.MaxCurveTime) {
		return fmt.Errorf("movement.maxCurveTime is not finite: %w", ErrInvalidConfig)
	}
	if !gamemath.IsFinite(m.VelocityExponent) || m.VelocityExponent <= 0 {
		return fmt.Errorf("movement.velocityExponent must be > 0, got %g: %w", m.VelocityExponent, ErrInvalidConfig)
	}
	if _, err := m.Curve.Build(); err != nil {
		return fmt.Errorf("movement.curve: %w", err)
	}
	return nil
}

// Validate checks the jump tuning.
func (j JumpConfig) Validate() error {
	return nonNegative("jump", map[string]float64{
		"jumpSpeed":             j.JumpSpeed,
		"wallJumpCooldown":      j.WallJumpCooldown,
		"kickOffForce":          j.KickOffForce,
		"apexBoostMagnitude":    j.ApexBoostMagnitude,
		"zeroGravityDuration":   j.ZeroGravityDuration,
		"baseGravityScale":      j.BaseGravityScale,
		"apexVelocityThreshold": j.ApexVelocityThreshold,
	})
}

// Validate checks the simulation harness settings.
func (w WorldConfig) Validate() error {
	if w.TickRate <= 0 {
		return fmt.Errorf("world.tickRate must be > 0, got %d: %w", w.TickRate, ErrInvalidConfig)
	}
	if w.Mass <= 0 || !gamemath.IsFinite(w.Mass) {
		return fmt.Errorf("world.mass must be > 0, got %g: %w", w.Mass, ErrInvalidConfig)
	}
	if w.PixelsPerUnit <= 0 || !gamemath.IsFinite(w.PixelsPerUnit) {
		return fmt.Errorf("world.pixelsPerUnit must be > 0, got %g: %w", w.PixelsPerUnit, ErrInvalidConfig)
	}
	if w.Width <= 0 || w.Height <= 0 || w.CellSize <= 0 {
		return fmt.Errorf("world dimensions must be > 0: %w", ErrInvalidConfig)
	}
	if !gamemath.IsFinite(w.Gravity) {
		return fmt.Errorf("world.gravity is not finite: %w", ErrInvalidConfig)
	}
	return nonNegative("world", map[string]float64{
		"bodyWidth":      w.BodyWidth,
		"bodyHeight":     w.BodyHeight,
		"probeThickness": w.ProbeThickness,
	})
}

// CheckGravityScales rejects movement and jump sections that disagree on the
// base gravity scale. Cling release restores one and a wall jump sets the other.
func CheckGravityScales(m MovementConfig, j JumpConfig) error {
	if m.BaseGravityScale != j.BaseGravityScale {
		return fmt.Errorf("movement.baseGravityScale %g and jump.baseGravityScale %g differ: %w",
			m.BaseGravityScale, j.BaseGravityScale, ErrInvalidConfig)
	}
	return nil
}

func nonNegative(section string, fields map[string]float64) error {
	for name, v := range fields {
		if !gamemath.IsFinite(v) || v < 0 {
			return fmt.Errorf("%s.%s must be a finite value >= 0, got %g: %w", section, name, v, ErrInvalidConfig)
		}
	}
	return nil
}
