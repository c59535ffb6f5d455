package controller

import (
	"go.uber.org/zap"
)

// EventKind identifies a discrete controller transition.
type EventKind int

const (
	EventGroundJump EventKind = iota
	EventWallJump
	EventApexBoost
	EventZeroGravityEnd
	EventWallCling
	EventWallRelease
)

func (k EventKind) String() string {
	switch k {
	case EventGroundJump:
		return "ground_jump"
	case EventWallJump:
		return "wall_jump"
	case EventApexBoost:
		return "apex_boost"
	case EventZeroGravityEnd:
		return "zero_gravity_end"
	case EventWallCling:
		return "wall_cling"
	case EventWallRelease:
		return "wall_release"
	default:
		return "unknown"
	}
}

// Event is delivered to observers synchronously from inside a tick.
type Event struct {
	Kind     EventKind
	Velocity float64 // Horizontal velocity at the time of the event
	// Direction is the wall jump kick sign or the apex impulse sign, 0 otherwise.
	Direction int
}

type options struct {
	logger   *zap.Logger
	observer func(Event)
}

type Option func(*options)

// WithLogger sets the logger used for debug-level transition logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithObserver registers a callback for controller events.
func WithObserver(fn func(Event)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o *options) emit(e Event) {
	if ce := o.logger.Check(zap.DebugLevel, "controller event"); ce != nil {
		ce.Write(
			zap.Stringer("kind", e.Kind),
			zap.Float64("vx", e.Velocity),
			zap.Int("dir", e.Direction),
		)
	}
	if o.observer != nil {
		o.observer(e)
	}
}
