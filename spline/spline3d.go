package spline

import (
	"fmt"

	"github.com/lixenwraith/geomlab/vmath"
)

type (
	Spline2D = Spline[vmath.Vec2]
	Point2D  = Point[vmath.Vec2]
)

// Spline3D adds per-point rotation and scale channels to a 3D curve
// Channel entries missing for a point read as identity rotation and unit scale
type Spline3D struct {
	*Spline[vmath.Vec3]
	rotations []vmath.Quat
	scales    []vmath.Vec3
}

var unitScale = vmath.Vec3{1, 1, 1}

func NewSpline3D() *Spline3D {
	return &Spline3D{Spline: New[vmath.Vec3]()}
}

// AddPoint appends a point with identity rotation and unit scale
func (s *Spline3D) AddPoint(p Point[vmath.Vec3]) error {
	if err := s.Spline.AddPoint(p); err != nil {
		return err
	}
	s.rotations = append(s.rotations, vmath.Quat{W: 1})
	s.scales = append(s.scales, unitScale)
	return nil
}

func (s *Spline3D) Clear() {
	s.Spline.Clear()
	s.rotations = s.rotations[:0]
	s.scales = s.scales[:0]
}

// SetFromCatmullRom refits positions and resets every channel
func (s *Spline3D) SetFromCatmullRom(positions []vmath.Vec3, loop bool) error {
	if err := s.Spline.SetFromCatmullRom(positions, loop); err != nil {
		return err
	}
	s.rotations = s.rotations[:0]
	s.scales = s.scales[:0]
	for range s.points {
		s.rotations = append(s.rotations, vmath.Quat{W: 1})
		s.scales = append(s.scales, unitScale)
	}
	return nil
}

// SetRotationAt sets point i's orientation from Euler angles
func (s *Spline3D) SetRotationAt(i int, e vmath.EulerAngles) error {
	return s.SetQuaternionAt(i, e.Quaternion())
}

func (s *Spline3D) SetQuaternionAt(i int, q vmath.Quat) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrPointIndexOutOfRange, i)
	}
	s.growChannels()
	s.rotations[i] = q.Normalize()
	return nil
}

func (s *Spline3D) SetScaleAt(i int, scale vmath.Vec3) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrPointIndexOutOfRange, i)
	}
	s.growChannels()
	s.scales[i] = scale
	return nil
}

func (s *Spline3D) growChannels() {
	for len(s.rotations) < len(s.points) {
		s.rotations = append(s.rotations, vmath.Quat{W: 1})
	}
	for len(s.scales) < len(s.points) {
		s.scales = append(s.scales, unitScale)
	}
}

func (s *Spline3D) rotationAt(i int) vmath.Quat {
	if i < len(s.rotations) {
		return s.rotations[i]
	}
	return vmath.Quat{W: 1}
}

func (s *Spline3D) scaleAt(i int) vmath.Vec3 {
	if i < len(s.scales) {
		return s.scales[i]
	}
	return unitScale
}

// QuaternionAtInputKey slerps along the shorter arc between the bracketing points
func (s *Spline3D) QuaternionAtInputKey(key float64) vmath.Quat {
	seg, t := s.locate(key)
	return vmath.SlerpShortest(s.rotationAt(seg), s.rotationAt(seg+1), t)
}

// ScaleAtInputKey linearly interpolates scale between the bracketing points
func (s *Spline3D) ScaleAtInputKey(key float64) vmath.Vec3 {
	seg, t := s.locate(key)
	return vmath.Lerp3(s.scaleAt(seg), s.scaleAt(seg+1), t)
}
