package controller

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-kinetics/config"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

func newJump(t *testing.T, cfg config.JumpConfig, opts ...Option) (*Jump, *testBody) {
	t.Helper()
	body := newTestBody()
	body.gravity = cfg.BaseGravityScale
	j, err := NewJump(cfg, body, opts...)
	require.NoError(t, err)
	return j, body
}

func TestJumpTrigger(t *testing.T) {
	t.Run("no contact is a no-op", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: 2, Y: -1}
		before := j.State()

		require.Equal(t, JumpNone, j.OnJumpTriggered(Contacts{}))
		require.Equal(t, math2.Vec2{X: 2, Y: -1}, body.velocity)
		require.Equal(t, before, j.State())
	})

	t.Run("ground jump keeps horizontal velocity", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: 3, Y: 0}

		require.Equal(t, JumpGround, j.OnJumpTriggered(grounded))
		require.Equal(t, math2.Vec2{X: 3, Y: 5}, body.velocity)
		require.Zero(t, j.State().WallJumpCooldownRemaining)
	})

	t.Run("left arm kicks negative", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.gravity = 0

		require.Equal(t, JumpWallLeftArm, j.OnJumpTriggered(leftWall))
		require.Equal(t, math2.Vec2{X: -1, Y: 5}, body.velocity)
		require.Equal(t, 0.2, j.State().WallJumpCooldownRemaining)
		require.Equal(t, 2.0, body.gravity)
	})

	t.Run("right arm kicks positive", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		require.Equal(t, JumpWallRightArm, j.OnJumpTriggered(rightWall))
		require.Equal(t, math2.Vec2{X: 1, Y: 5}, body.velocity)
	})

	t.Run("wall jump wins over ground", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		kind := j.OnJumpTriggered(Contacts{Feet: true, LeftArm: true})
		require.Equal(t, JumpWallLeftArm, kind)
		require.Equal(t, math2.Vec2{X: -1, Y: 5}, body.velocity)
	})

	t.Run("left arm checked first", func(t *testing.T) {
		j, _ := newJump(t, referenceJump())
		require.Equal(t, JumpWallLeftArm, j.OnJumpTriggered(Contacts{LeftArm: true, RightArm: true}))
	})

	t.Run("emits events", func(t *testing.T) {
		var got []Event
		j, _ := newJump(t, referenceJump(), WithObserver(func(e Event) { got = append(got, e) }))
		j.OnJumpTriggered(grounded)
		j.OnJumpTriggered(rightWall)
		require.Len(t, got, 2)
		require.Equal(t, EventGroundJump, got[0].Kind)
		require.Equal(t, EventWallJump, got[1].Kind)
		require.Equal(t, 1, got[1].Direction)
	})
}

func TestWallJumpCooldown(t *testing.T) {
	t.Run("counts down and floors at zero", func(t *testing.T) {
		j, _ := newJump(t, referenceJump())
		j.OnJumpTriggered(leftWall)
		j.Tick(grounded, 0.05)
		require.InDelta(t, 0.15, j.State().WallJumpCooldownRemaining, 1e-9)
		for i := 0; i < 10; i++ {
			j.Tick(grounded, 0.05)
		}
		require.Zero(t, j.State().WallJumpCooldownRemaining)
	})

	t.Run("does not gate by default", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		j.OnJumpTriggered(leftWall)
		require.True(t, j.WallJumpReady())
		require.Equal(t, JumpWallRightArm, j.OnJumpTriggered(rightWall))
		require.Equal(t, 1.0, body.velocity.X)
	})

	for _, tt := range []struct {
		name string
		dt   float64
	}{
		{"NaN delta leaves the timer alone", math.NaN()},
		{"infinite delta leaves the timer alone", math.Inf(1)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			cfg := referenceJump()
			cfg.EnforceWallJumpCooldown = true
			j, _ := newJump(t, cfg)
			j.OnJumpTriggered(leftWall)

			j.Tick(grounded, tt.dt)
			require.Equal(t, 0.2, j.State().WallJumpCooldownRemaining)

			j.Tick(grounded, 0.25)
			require.Zero(t, j.State().WallJumpCooldownRemaining)
			require.True(t, j.WallJumpReady())
		})
	}

	t.Run("gates when enforced", func(t *testing.T) {
		cfg := referenceJump()
		cfg.EnforceWallJumpCooldown = true
		j, _ := newJump(t, cfg)

		require.Equal(t, JumpWallLeftArm, j.OnJumpTriggered(leftWall))
		require.False(t, j.WallJumpReady())
		require.Equal(t, JumpNone, j.OnJumpTriggered(rightWall))
		// A grounded press still jumps from the floor.
		require.Equal(t, JumpGround, j.OnJumpTriggered(Contacts{Feet: true, RightArm: true}))

		j.Tick(grounded, 0.25)
		require.True(t, j.WallJumpReady())
		require.Equal(t, JumpWallRightArm, j.OnJumpTriggered(rightWall))
	})
}

func TestApexBoost(t *testing.T) {
	t.Run("fires once per jump", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: 2, Y: -0.5}

		j.Tick(airborne, 0.01)
		require.True(t, j.State().ApexBoostConsumed)
		require.True(t, j.ZeroGravityActive())
		require.Equal(t, 0.15, j.State().ZeroGravityTimeRemaining)
		require.Equal(t, 0.0, body.gravity)
		require.InDelta(t, 7.0, body.velocity.X, 1e-9)

		j.Tick(airborne, 0.01)
		require.InDelta(t, 7.0, body.velocity.X, 1e-9)
		require.InDelta(t, 0.14, j.State().ZeroGravityTimeRemaining, 1e-9)

		// A new jump re-arms the boost.
		j.OnJumpTriggered(leftWall)
		require.False(t, j.State().ApexBoostConsumed)
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)
		require.True(t, j.State().ApexBoostConsumed)
		require.InDelta(t, -6.0, body.velocity.X, 1e-9)
	})

	t.Run("impulse follows negative velocity", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: -3, Y: -1}
		j.Tick(airborne, 0.01)
		require.InDelta(t, -8.0, body.velocity.X, 1e-9)
	})

	t.Run("no impulse when nearly still", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: 0.005, Y: -1}
		j.Tick(airborne, 0.01)
		require.Equal(t, 0.005, body.velocity.X)
		require.True(t, j.ZeroGravityActive())
	})

	t.Run("not while rising", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: 2, Y: 1}
		j.Tick(airborne, 0.01)
		require.False(t, j.State().ApexBoostConsumed)
	})

	t.Run("skipped when grounded", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity = math2.Vec2{X: 2, Y: -1}
		j.Tick(grounded, 0.01)
		require.False(t, j.State().ApexBoostConsumed)
		require.Equal(t, 2.0, body.gravity)
	})

	t.Run("landing keeps latch by default", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)
		j.Tick(grounded, 0.01)
		require.True(t, j.State().ApexBoostConsumed)
	})

	t.Run("landing re-arms when configured", func(t *testing.T) {
		cfg := referenceJump()
		cfg.ResetApexOnLanding = true
		j, body := newJump(t, cfg)
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)
		j.Tick(grounded, 0.01)
		require.False(t, j.State().ApexBoostConsumed)
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity.Y = -1
		j.Tick(airborne, 0)
		require.Equal(t, JumpState{}, j.State())
	})

	t.Run("no window without duration", func(t *testing.T) {
		cfg := referenceJump()
		cfg.ZeroGravityDuration = 0
		j, body := newJump(t, cfg)
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)
		require.True(t, j.State().ApexBoostConsumed)
		require.False(t, j.ZeroGravityActive())
		require.Equal(t, 2.0, body.gravity)
	})
}

func TestZeroGravityWindow(t *testing.T) {
	t.Run("restores captured scale", func(t *testing.T) {
		var events []EventKind
		j, body := newJump(t, referenceJump(), WithObserver(func(e Event) { events = append(events, e.Kind) }))
		body.gravity = 0.5
		body.velocity.Y = -1

		j.Tick(airborne, 0.05)
		require.Equal(t, 0.5, j.State().GravityScaleBeforeZeroG)
		require.Equal(t, 0.0, body.gravity)

		j.Tick(airborne, 0.05)
		j.Tick(airborne, 0.05)
		require.Equal(t, 0.0, body.gravity)
		j.Tick(airborne, 0.05)
		require.False(t, j.ZeroGravityActive())
		require.Zero(t, j.State().ZeroGravityTimeRemaining)
		require.Equal(t, 0.5, body.gravity)
		require.Equal(t, []EventKind{EventApexBoost, EventZeroGravityEnd}, events)
	})

	t.Run("held against other writers", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)

		j.OnJumpTriggered(rightWall)
		require.Equal(t, 2.0, body.gravity)
		j.Tick(airborne, 0.01)
		require.Equal(t, 0.0, body.gravity)
	})

	t.Run("restart keeps first capture", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)

		j.OnJumpTriggered(leftWall)
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)
		require.Equal(t, 0.15, j.State().ZeroGravityTimeRemaining)
		require.Equal(t, 2.0, j.State().GravityScaleBeforeZeroG)

		for i := 0; i < 20; i++ {
			j.Tick(airborne, 0.01)
		}
		require.Equal(t, 2.0, body.gravity)
	})

	t.Run("reset", func(t *testing.T) {
		j, body := newJump(t, referenceJump())
		body.velocity.Y = -1
		j.Tick(airborne, 0.01)
		j.Reset()
		require.Equal(t, JumpState{}, j.State())
	})
}

func TestEndToEndWallJump(t *testing.T) {
	j, body := newJump(t, referenceJump())
	j.OnJumpTriggered(Contacts{LeftArm: true})
	require.Equal(t, math2.Vec2{X: -1, Y: 5}, body.velocity)
	require.Equal(t, 0.2, j.State().WallJumpCooldownRemaining)
}
