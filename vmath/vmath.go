package vmath

import (
	"math"
)

// Epsilon is the default tolerance for degeneracy checks
const Epsilon = 1e-9

// --- Scalars ---

// Clamp returns v limited to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampZeroToOne returns v limited to [0, 1]
func ClampZeroToOne(v float64) float64 {
	return Clamp(v, 0, 1)
}

// ClampInt returns v limited to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp performs linear interpolation between a and b, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns the fraction of v within [a, b], zero-safe
func InverseLerp(a, b, v float64) float64 {
	d := b - a
	if d == 0 {
		return 0
	}
	return (v - a) / d
}

// RangeMap maps v from [inStart, inEnd] to [outStart, outEnd]
func RangeMap(v, inStart, inEnd, outStart, outEnd float64) float64 {
	return Lerp(outStart, outEnd, InverseLerp(inStart, inEnd, v))
}

// FloorToInt rounds toward negative infinity
func FloorToInt(v float64) int {
	return int(math.Floor(v))
}

// NearlyZero reports |v| <= Epsilon
func NearlyZero(v float64) bool {
	return math.Abs(v) <= Epsilon
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}
