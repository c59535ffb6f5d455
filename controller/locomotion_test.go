package controller

import (
	"math"
	"testing"

	"github.com/automoto/doomerang-kinetics/curve"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newLocomotion(t *testing.T, mutate func(*testBody)) (*Locomotion, *testBody) {
	t.Helper()
	body := newTestBody()
	l, err := NewLocomotion(flatMovement(), body)
	require.NoError(t, err)
	if mutate != nil {
		mutate(body)
	}
	return l, body
}

func TestNewLocomotion(t *testing.T) {
	t.Run("sets base gravity", func(t *testing.T) {
		_, body := newLocomotion(t, nil)
		require.Equal(t, 2.0, body.gravity)
	})

	t.Run("nil body", func(t *testing.T) {
		_, err := NewLocomotion(flatMovement(), nil)
		require.ErrorIs(t, err, ErrNilBody)
	})

	t.Run("invalid config", func(t *testing.T) {
		m := flatMovement()
		m.VelocityExponent = 0
		_, err := NewLocomotion(m, newTestBody())
		require.Error(t, err)
	})
}

func TestLocomotionForce(t *testing.T) {
	t.Run("ground acceleration", func(t *testing.T) {
		l, body := newLocomotion(t, nil)
		force := l.Tick(right(), grounded, 0.1)
		// |15 - 0| * 1 * 0.4
		require.InDelta(t, 6.0, force, 1e-9)
		require.InDelta(t, 6.0, body.force.X, 1e-9)
		require.Zero(t, body.force.Y)
	})

	t.Run("air acceleration", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		require.InDelta(t, 1.5, l.Tick(right(), airborne, 0.1), 1e-9)
	})

	t.Run("brakes toward target", func(t *testing.T) {
		l, _ := newLocomotion(t, func(b *testBody) { b.velocity.X = 10 })
		// target 0, diff -10
		require.InDelta(t, -4.0, l.Tick(math2.Vec2{}, grounded, 0.1), 1e-9)
	})

	t.Run("clamped", func(t *testing.T) {
		m := flatMovement()
		m.VelocityExponent = 2
		body := newTestBody()
		l, err := NewLocomotion(m, body)
		require.NoError(t, err)
		// (15 * 0.4)^2 = 36 -> 30
		require.InDelta(t, 30.0, l.Tick(right(), grounded, 0.1), 1e-9)
		require.InDelta(t, -30.0, l.Tick(left(), grounded, 0.1), 1e-9)
	})

	t.Run("no force at target speed", func(t *testing.T) {
		l, body := newLocomotion(t, func(b *testBody) { b.velocity.X = 15 })
		require.Zero(t, l.Tick(right(), grounded, 0.1))
		require.Zero(t, body.force.X)
	})

	t.Run("unnormalized input is not clamped", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		require.InDelta(t, 12.0, l.Tick(math2.Vec2{X: 2}, grounded, 0.1), 1e-9)
	})
}

func TestLocomotionRamp(t *testing.T) {
	t.Run("direction reversal resets ramp", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		for i := 0; i < 5; i++ {
			l.Tick(right(), grounded, 0.1)
		}
		require.InDelta(t, 0.5, l.State().TimeMovingHorizontally, 1e-9)
		require.Equal(t, 1, l.State().LastMoveDirection)

		l.Tick(left(), grounded, 0.1)
		require.InDelta(t, 0.1, l.State().TimeMovingHorizontally, 1e-9)
		require.Equal(t, -1, l.State().LastMoveDirection)
	})

	t.Run("releasing input keeps ramp but clears direction", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		l.Tick(right(), grounded, 0.1)
		l.Tick(math2.Vec2{}, grounded, 0.1)
		require.Equal(t, 0, l.State().LastMoveDirection)
		require.InDelta(t, 0.2, l.State().TimeMovingHorizontally, 1e-9)

		// Same direction after a release still counts as a new press.
		l.Tick(right(), grounded, 0.1)
		require.InDelta(t, 0.1, l.State().TimeMovingHorizontally, 1e-9)
	})

	t.Run("input inside dead zone", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		l.Tick(math2.Vec2{X: 0.005}, grounded, 0.1)
		require.Equal(t, 0, l.State().LastMoveDirection)
	})

	t.Run("curve time is clamped", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		for i := 0; i < 100; i++ {
			l.Tick(right(), grounded, 0.1)
			require.LessOrEqual(t, l.State().TimeMovingHorizontally, 1.0)
		}
		require.Equal(t, 1.0, l.State().TimeMovingHorizontally)
	})

	t.Run("curve scales force", func(t *testing.T) {
		m := flatMovement()
		m.Curve.Keys = nil
		m.Curve.Ease = "linear"
		m.Curve.From = 0
		m.Curve.To = 1
		body := newTestBody()
		l, err := NewLocomotion(m, body)
		require.NoError(t, err)
		// normalized time 0.5 -> multiplier 0.5
		require.InDelta(t, 3.0, l.Tick(right(), grounded, 0.5), 1e-6)
	})

	t.Run("non positive curve time", func(t *testing.T) {
		m := flatMovement()
		m.MaxCurveTime = 0
		m.Curve.Keys = nil
		m.Curve.Ease = "linear"
		m.Curve.From = 0
		m.Curve.To = 1
		body := newTestBody()
		l, err := NewLocomotion(m, body)
		require.NoError(t, err)
		// evaluated at 1.0
		require.InDelta(t, 6.0, l.Tick(right(), grounded, 0.1), 1e-6)
		require.Zero(t, l.State().TimeMovingHorizontally)
	})

	t.Run("zero delta is a no-op", func(t *testing.T) {
		l, body := newLocomotion(t, nil)
		require.Zero(t, l.Tick(right(), grounded, 0))
		require.Zero(t, l.Tick(right(), grounded, -1))
		require.Equal(t, LocomotionState{}, l.State())
		require.Zero(t, body.force.X)
	})

	for _, tt := range []struct {
		name string
		dt   float64
	}{
		{"NaN delta is a no-op", math.NaN()},
		{"infinite delta is a no-op", math.Inf(1)},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := flatMovement()
			m.Curve.Keys = []curve.Keyframe{{Time: 0, Value: 0.3}, {Time: 1, Value: 1}}
			body := newTestBody()
			l, err := NewLocomotion(m, body)
			require.NoError(t, err)

			require.NotPanics(t, func() { l.Tick(right(), grounded, tt.dt) })
			require.Equal(t, LocomotionState{}, l.State())
			require.Zero(t, body.force.X)

			// The ramp still works afterwards.
			require.InDelta(t, 0.65*6.0, l.Tick(right(), grounded, 0.5), 1e-9)
		})
	}
}

func TestLocomotionCurveWarning(t *testing.T) {
	build := func(keys ...curve.Keyframe) *observer.ObservedLogs {
		core, logs := observer.New(zap.WarnLevel)
		m := flatMovement()
		m.Curve.Keys = keys
		_, err := NewLocomotion(m, newTestBody(), WithLogger(zap.New(core)))
		require.NoError(t, err)
		return logs
	}

	t.Run("rising curve", func(t *testing.T) {
		logs := build(curve.Keyframe{Time: 0, Value: 0.3}, curve.Keyframe{Time: 1, Value: 1})
		require.Zero(t, logs.Len())
	})

	t.Run("curve with a dip", func(t *testing.T) {
		logs := build(
			curve.Keyframe{Time: 0, Value: 0.3},
			curve.Keyframe{Time: 0.5, Value: 1},
			curve.Keyframe{Time: 1, Value: 0.6},
		)
		require.Equal(t, 1, logs.FilterMessage("acceleration curve is not monotonic").Len())
	})
}

func TestLocomotionWallCling(t *testing.T) {
	t.Run("left arm while pushing right", func(t *testing.T) {
		l, body := newLocomotion(t, func(b *testBody) { b.velocity = math2.Vec2{X: 3, Y: -4} })
		require.Zero(t, l.Tick(right(), leftWall, 0.1))
		require.True(t, l.Clinging())
		require.Equal(t, 0.0, body.gravity)
		require.Equal(t, math2.Vec2{}, body.velocity)
		require.Zero(t, body.force.X)
	})

	t.Run("right arm while pushing left", func(t *testing.T) {
		l, body := newLocomotion(t, func(b *testBody) { b.velocity.Y = -2 })
		l.Tick(left(), rightWall, 0.1)
		require.True(t, l.Clinging())
		require.Equal(t, 0.0, body.gravity)
	})

	t.Run("wrong direction moves normally", func(t *testing.T) {
		l, body := newLocomotion(t, nil)
		force := l.Tick(left(), leftWall, 0.1)
		require.False(t, l.Clinging())
		require.InDelta(t, -1.5, force, 1e-9)
		require.Equal(t, 2.0, body.gravity)
	})

	t.Run("grounded never clings", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		l.Tick(right(), Contacts{Feet: true, LeftArm: true}, 0.1)
		require.False(t, l.Clinging())
	})

	t.Run("analog input below threshold", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		l.Tick(math2.Vec2{X: 0.5}, leftWall, 0.1)
		require.False(t, l.Clinging())
	})

	t.Run("release restores base gravity", func(t *testing.T) {
		var events []EventKind
		body := newTestBody()
		l, err := NewLocomotion(flatMovement(), body, WithObserver(func(e Event) { events = append(events, e.Kind) }))
		require.NoError(t, err)

		l.Tick(right(), leftWall, 0.1)
		l.Tick(right(), leftWall, 0.1)
		require.Equal(t, 0.0, body.gravity)

		l.Tick(right(), airborne, 0.1)
		require.False(t, l.Clinging())
		require.Equal(t, 2.0, body.gravity)
		require.Equal(t, []EventKind{EventWallCling, EventWallRelease}, events)
	})

	t.Run("gravity left alone when not clinging", func(t *testing.T) {
		l, body := newLocomotion(t, func(b *testBody) { b.gravity = 0 })
		l.Tick(right(), airborne, 0.1)
		require.Equal(t, 0.0, body.gravity)
	})

	t.Run("reset", func(t *testing.T) {
		l, _ := newLocomotion(t, nil)
		l.Tick(right(), leftWall, 0.1)
		l.Reset()
		require.False(t, l.Clinging())
		require.Equal(t, LocomotionState{}, l.State())
	})
}
