// Package curve provides acceleration profiles: functions from normalized
// elapsed movement time in [0,1] to an acceleration multiplier.
package curve

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/automoto/doomerang-kinetics/gamemath"
	"github.com/tanema/gween/ease"
)

var ErrInvalidCurve = errors.New("invalid curve")

// Curve maps normalized time to a multiplier. Implementations clamp t to [0,1].
type Curve interface {
	Evaluate(t float64) float64
}

// Eased drives the profile from From to To along a gween easing function.
type Eased struct {
	Fn   ease.TweenFunc
	From float64
	To   float64
}

// NewEased returns an eased profile. A nil fn falls back to ease.Linear.
func NewEased(fn ease.TweenFunc, from, to float64) Eased {
	if fn == nil {
		fn = ease.Linear
	}
	return Eased{Fn: fn, From: from, To: to}
}

func (e Eased) Evaluate(t float64) float64 {
	t = unit(t)
	return float64(e.Fn(float32(t), float32(e.From), float32(e.To-e.From), 1))
}

// Keyframe is a single sampled point of a profile.
type Keyframe struct {
	Time  float64 `yaml:"time"`
	Value float64 `yaml:"value"`
}

// Sampled interpolates linearly between keyframes. Outside the first and
// last key the boundary value is held.
type Sampled struct {
	keys []Keyframe
}

// NewSampled validates and copies keys. Keys are sorted by time; duplicate
// times are rejected.
func NewSampled(keys ...Keyframe) (*Sampled, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("sampled curve has no keys: %w", ErrInvalidCurve)
	}

	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })

	for i, k := range sorted {
		if !gamemath.IsFinite(k.Time) || !gamemath.IsFinite(k.Value) {
			return nil, fmt.Errorf("key %d is not finite: %w", i, ErrInvalidCurve)
		}
		if i > 0 && k.Time == sorted[i-1].Time {
			return nil, fmt.Errorf("duplicate key time %g: %w", k.Time, ErrInvalidCurve)
		}
	}

	return &Sampled{keys: sorted}, nil
}

func (s *Sampled) Evaluate(t float64) float64 {
	t = unit(t)
	keys := s.keys
	if t <= keys[0].Time {
		return keys[0].Value
	}
	last := keys[len(keys)-1]
	if t >= last.Time {
		return last.Value
	}

	// First key strictly after t; guaranteed 1 <= i < len(keys).
	i := sort.Search(len(keys), func(i int) bool { return keys[i].Time > t })
	a, b := keys[i-1], keys[i]
	frac := (t - a.Time) / (b.Time - a.Time)
	return a.Value + (b.Value-a.Value)*frac
}

// IsMonotonic reports whether c never decreases across n samples.
func IsMonotonic(c Curve, n int) bool {
	prev := math.Inf(-1)
	for i := 0; i < n; i++ {
		v := c.Evaluate(float64(i) / float64(n-1))
		if v < prev {
			return false
		}
		prev = v
	}
	return true
}

// unit clamps t to [0,1]. NaN maps to 0.
func unit(t float64) float64 {
	if math.IsNaN(t) {
		return 0
	}
	return gamemath.Clamp(t, 0, 1)
}
