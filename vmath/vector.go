package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 and Vec3 are float64 vectors shared by every package in the module
type (
	Vec2 = mgl64.Vec2
	Vec3 = mgl64.Vec3
)

// Zero vectors
var (
	Zero2 = Vec2{}
	Zero3 = Vec3{}
)

// --- 2D ---

// Normalize2 returns unit vector, zero-safe (mgl64 divides by zero)
func Normalize2(v Vec2) Vec2 {
	lenSq := v.Dot(v)
	if lenSq <= Epsilon*Epsilon {
		return Vec2{}
	}
	inv := 1 / math.Sqrt(lenSq)
	return Vec2{v[0] * inv, v[1] * inv}
}

// LenSq2 returns squared length without sqrt
func LenSq2(v Vec2) float64 {
	return v.Dot(v)
}

// DistSq2 returns squared distance between a and b
func DistSq2(a, b Vec2) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Dist2 returns Euclidean distance between a and b
func Dist2(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// ProjectOnto2 returns the component of v along onto, zero if onto is degenerate
func ProjectOnto2(v, onto Vec2) Vec2 {
	lenSq := onto.Dot(onto)
	if lenSq <= Epsilon*Epsilon {
		return Vec2{}
	}
	return onto.Mul(v.Dot(onto) / lenSq)
}

// Perpendicular2 returns vector rotated 90° counter-clockwise
func Perpendicular2(v Vec2) Vec2 {
	return Vec2{-v[1], v[0]}
}

// ClampLength2 limits vector to maxLen while preserving direction
func ClampLength2(v Vec2, maxLen float64) Vec2 {
	lenSq := v.Dot(v)
	if lenSq <= maxLen*maxLen || lenSq == 0 {
		return v
	}
	return v.Mul(maxLen / math.Sqrt(lenSq))
}

// FromPolarDegrees builds a vector of given length pointing at degrees (0 = +X, CCW)
func FromPolarDegrees(degrees, length float64) Vec2 {
	rad := DegToRad(degrees)
	return Vec2{math.Cos(rad) * length, math.Sin(rad) * length}
}

// OrientationDegrees returns the heading of v, 0 for the zero vector
func OrientationDegrees(v Vec2) float64 {
	if v[0] == 0 && v[1] == 0 {
		return 0
	}
	return RadToDeg(math.Atan2(v[1], v[0]))
}

// Lerp2 interpolates component-wise
func Lerp2(a, b Vec2, t float64) Vec2 {
	return Vec2{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t)}
}

// Cross2 returns the z component of the 3D cross product
func Cross2(a, b Vec2) float64 {
	return a[0]*b[1] - a[1]*b[0]
}

// --- 3D ---

// Normalize3 returns unit vector, zero-safe
func Normalize3(v Vec3) Vec3 {
	lenSq := v.Dot(v)
	if lenSq <= Epsilon*Epsilon {
		return Vec3{}
	}
	inv := 1 / math.Sqrt(lenSq)
	return Vec3{v[0] * inv, v[1] * inv, v[2] * inv}
}

// DistSq3 returns squared distance between a and b
func DistSq3(a, b Vec3) float64 {
	d := b.Sub(a)
	return d.Dot(d)
}

// Lerp3 interpolates component-wise
func Lerp3(a, b Vec3, t float64) Vec3 {
	return Vec3{Lerp(a[0], b[0], t), Lerp(a[1], b[1], t), Lerp(a[2], b[2], t)}
}

// XY drops the z component
func XY(v Vec3) Vec2 {
	return Vec2{v[0], v[1]}
}
