package vmath

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Quat is a float64 rotation quaternion
type Quat = mgl64.Quat

var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}
)

// EulerAngles holds yaw (about Z), pitch (about Y), roll (about X) in degrees
type EulerAngles struct {
	Yaw, Pitch, Roll float64
}

// Quaternion composes yaw, then pitch, then roll in the yawed/pitched frame: qz * qy * qx
func (e EulerAngles) Quaternion() Quat {
	qz := mgl64.QuatRotate(DegToRad(e.Yaw), AxisZ)
	qy := mgl64.QuatRotate(DegToRad(e.Pitch), AxisY)
	qx := mgl64.QuatRotate(DegToRad(e.Roll), AxisX)
	return qz.Mul(qy).Mul(qx).Normalize()
}

// Basis returns the rotated I, J, K axes
func (e EulerAngles) Basis() (i, j, k Vec3) {
	q := e.Quaternion()
	return q.Rotate(AxisX), q.Rotate(AxisY), q.Rotate(AxisZ)
}

// QuatMode selects a quaternion interpolation scheme
type QuatMode int

const (
	QuatLerp QuatMode = iota
	QuatNlerpShortest
	QuatSlerpShortest
	QuatNlerpFull
	QuatSlerpFull
	QuatModeCount
)

var quatModeNames = [QuatModeCount]string{
	"Lerp",
	"Nlerp (shortest)",
	"Slerp (shortest)",
	"Nlerp (full path)",
	"Slerp (full path)",
}

func (m QuatMode) String() string {
	if m < 0 || m >= QuatModeCount {
		return "Unknown"
	}
	return quatModeNames[m]
}

// InterpolateQuat blends a toward b by t under the given mode
// Lerp is unnormalized; shortest variants flip b into a's hemisphere first
func InterpolateQuat(mode QuatMode, a, b Quat, t float64) Quat {
	switch mode {
	case QuatLerp:
		return mgl64.QuatLerp(a, b, t)
	case QuatNlerpShortest:
		return mgl64.QuatNlerp(a, shortestTarget(a, b), t)
	case QuatSlerpShortest:
		return mgl64.QuatSlerp(a, shortestTarget(a, b), t)
	case QuatNlerpFull:
		return mgl64.QuatNlerp(a, b, t)
	case QuatSlerpFull:
		return mgl64.QuatSlerp(a, b, t)
	}
	return a
}

// SlerpShortest interpolates along the shorter arc
func SlerpShortest(a, b Quat, t float64) Quat {
	return mgl64.QuatSlerp(a, shortestTarget(a, b), t)
}

func shortestTarget(a, b Quat) Quat {
	if a.Dot(b) < 0 {
		return b.Scale(-1)
	}
	return b
}
