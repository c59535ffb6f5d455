package gamemath

import "math"

const (
	// Epsilon is the dead zone used for input direction and velocity sign checks.
	Epsilon = 0.01
	// TimerEpsilon is the remainder below which a countdown is considered expired.
	TimerEpsilon = 1e-9
)

// Sign returns -1, 0 or 1. Zero (and NaN) map to 0.
func Sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Clamp constrains v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// CountDown subtracts dt from remaining and floors the result at 0.
func CountDown(remaining, dt float64) float64 {
	remaining -= dt
	if remaining < TimerEpsilon {
		return 0
	}
	return remaining
}

// ValidStep reports whether dt can advance a simulation: positive and finite.
func ValidStep(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 1)
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
