// Package spline implements piecewise cubic Bezier splines with Catmull-Rom
// construction and a lazily rebuilt arc-length table.
package spline

import (
	"errors"
	"fmt"
	"sort"
)

// DefaultSubdivisions is the per-segment sample count used for arc length
const DefaultSubdivisions = 64

var (
	ErrTooFewPoints         = errors.New("spline needs at least 2 points")
	ErrKeysNotIncreasing    = errors.New("spline input keys must be strictly increasing")
	ErrPointIndexOutOfRange = errors.New("spline point index out of range")
)

// Vector is satisfied by mgl64.Vec2 and mgl64.Vec3
type Vector[V any] interface {
	Add(V) V
	Sub(V) V
	Mul(float64) V
	Len() float64
}

// Point is a control point; guides are absolute Bezier handle positions
type Point[V Vector[V]] struct {
	InputKey  float64
	Position  V
	PrevGuide V
	NextGuide V
}

// NewPoint creates a point whose guides sit on the point itself, making adjacent segments straight
func NewPoint[V Vector[V]](key float64, pos V) Point[V] {
	return Point[V]{InputKey: key, Position: pos, PrevGuide: pos, NextGuide: pos}
}

// PointFromNextGuide mirrors nextGuide through pos to keep the tangent continuous
func PointFromNextGuide[V Vector[V]](key float64, pos, nextGuide V) Point[V] {
	return Point[V]{InputKey: key, Position: pos, PrevGuide: pos.Mul(2).Sub(nextGuide), NextGuide: nextGuide}
}

// PointFromPrevGuide mirrors prevGuide through pos to keep the tangent continuous
func PointFromPrevGuide[V Vector[V]](key float64, pos, prevGuide V) Point[V] {
	return Point[V]{InputKey: key, Position: pos, PrevGuide: prevGuide, NextGuide: pos.Mul(2).Sub(prevGuide)}
}

// Spline is an ordered list of control points evaluated as consecutive cubic Bezier segments
// Every mutator invalidates the arc-length table; queries rebuild it on demand
type Spline[V Vector[V]] struct {
	points       []Point[V]
	subdivisions int

	// Cumulative arc length and input key per sample, valid while tableValid
	cumLength  []float64
	sampleKeys []float64
	tableValid bool
}

// New returns an empty spline, queries panic until it holds 2 points
func New[V Vector[V]]() *Spline[V] {
	return &Spline[V]{subdivisions: DefaultSubdivisions}
}

// NewFromPoints validates and copies points
func NewFromPoints[V Vector[V]](points []Point[V]) (*Spline[V], error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}
	s := New[V]()
	for _, p := range points {
		if err := s.AddPoint(p); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewCatmullRom fits a spline through positions with keys 0, 1, 2, ...
func NewCatmullRom[V Vector[V]](positions []V, loop bool) (*Spline[V], error) {
	s := New[V]()
	if err := s.SetFromCatmullRom(positions, loop); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Spline[V]) invalidate() {
	s.tableValid = false
}

// AddPoint appends p, its key must exceed the last key
func (s *Spline[V]) AddPoint(p Point[V]) error {
	if n := len(s.points); n > 0 && p.InputKey <= s.points[n-1].InputKey {
		return fmt.Errorf("%w: %g after %g", ErrKeysNotIncreasing, p.InputKey, s.points[n-1].InputKey)
	}
	s.points = append(s.points, p)
	s.invalidate()
	return nil
}

// Clear removes all points
func (s *Spline[V]) Clear() {
	s.points = s.points[:0]
	s.invalidate()
}

// SetFromCatmullRom replaces the points with a fit through positions
// Interior velocities are central differences (P[i+1]-P[i-1])/2; open ends use the one-sided difference
// A looped spline closes back to the first position with an extra point
func (s *Spline[V]) SetFromCatmullRom(positions []V, loop bool) error {
	n := len(positions)
	if n < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, n)
	}

	s.points = s.points[:0]
	for i, pos := range positions {
		var vel V
		switch {
		case loop:
			vel = positions[(i+1)%n].Sub(positions[(i-1+n)%n]).Mul(0.5)
		case i == 0:
			vel = positions[1].Sub(positions[0])
		case i == n-1:
			vel = positions[n-1].Sub(positions[n-2])
		default:
			vel = positions[i+1].Sub(positions[i-1]).Mul(0.5)
		}
		s.points = append(s.points, Point[V]{
			InputKey:  float64(i),
			Position:  pos,
			PrevGuide: pos.Sub(vel.Mul(1.0 / 3)),
			NextGuide: pos.Add(vel.Mul(1.0 / 3)),
		})
	}
	if loop {
		closing := s.points[0]
		closing.InputKey = float64(n)
		s.points = append(s.points, closing)
	}
	s.invalidate()
	return nil
}

// SetSubdivisionsPerSegment sets the arc-length sampling density, minimum 1
func (s *Spline[V]) SetSubdivisionsPerSegment(n int) {
	if n < 1 {
		n = 1
	}
	if n != s.subdivisions {
		s.subdivisions = n
		s.invalidate()
	}
}

func (s *Spline[V]) SubdivisionsPerSegment() int {
	return s.subdivisions
}

// SetPosition moves point i and its guides by the same offset
func (s *Spline[V]) SetPosition(i int, pos V) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrPointIndexOutOfRange, i)
	}
	p := &s.points[i]
	delta := pos.Sub(p.Position)
	p.Position = pos
	p.PrevGuide = p.PrevGuide.Add(delta)
	p.NextGuide = p.NextGuide.Add(delta)
	s.invalidate()
	return nil
}

// SetGuides replaces the Bezier handles of point i
func (s *Spline[V]) SetGuides(i int, prev, next V) error {
	if i < 0 || i >= len(s.points) {
		return fmt.Errorf("%w: %d", ErrPointIndexOutOfRange, i)
	}
	s.points[i].PrevGuide = prev
	s.points[i].NextGuide = next
	s.invalidate()
	return nil
}

// Points returns a copy of the control points
func (s *Spline[V]) Points() []Point[V] {
	out := make([]Point[V], len(s.points))
	copy(out, s.points)
	return out
}

func (s *Spline[V]) NumPoints() int {
	return len(s.points)
}

// NumSegments is one less than the point count, 0 for an invalid spline
func (s *Spline[V]) NumSegments() int {
	if len(s.points) < 2 {
		return 0
	}
	return len(s.points) - 1
}

// Valid reports whether the spline can be queried
func (s *Spline[V]) Valid() bool {
	return len(s.points) >= 2
}

func (s *Spline[V]) mustBeValid() {
	if len(s.points) < 2 {
		panic(fmt.Sprintf("spline: query with %d points", len(s.points)))
	}
}

func (s *Spline[V]) FirstKey() float64 {
	s.mustBeValid()
	return s.points[0].InputKey
}

func (s *Spline[V]) LastKey() float64 {
	s.mustBeValid()
	return s.points[len(s.points)-1].InputKey
}

// locate clamps key into the spline domain and returns its segment and local parameter
func (s *Spline[V]) locate(key float64) (int, float64) {
	s.mustBeValid()
	last := len(s.points) - 1
	if key <= s.points[0].InputKey {
		return 0, 0
	}
	if key >= s.points[last].InputKey {
		return last - 1, 1
	}
	seg := sort.Search(last, func(i int) bool {
		return s.points[i+1].InputKey >= key
	})
	k0, k1 := s.points[seg].InputKey, s.points[seg+1].InputKey
	return seg, (key - k0) / (k1 - k0)
}

func (s *Spline[V]) segmentPosition(seg int, t float64) V {
	a, b := s.points[seg], s.points[seg+1]
	u := 1 - t
	return a.Position.Mul(u * u * u).
		Add(a.NextGuide.Mul(3 * u * u * t)).
		Add(b.PrevGuide.Mul(3 * u * t * t)).
		Add(b.Position.Mul(t * t * t))
}

// PositionAtInputKey evaluates the curve, keys outside the domain clamp to the ends
func (s *Spline[V]) PositionAtInputKey(key float64) V {
	seg, t := s.locate(key)
	return s.segmentPosition(seg, t)
}

// TangentAtInputKey is the analytic derivative with respect to the input key
func (s *Spline[V]) TangentAtInputKey(key float64) V {
	seg, t := s.locate(key)
	a, b := s.points[seg], s.points[seg+1]
	u := 1 - t
	d := a.NextGuide.Sub(a.Position).Mul(3 * u * u).
		Add(b.PrevGuide.Sub(a.NextGuide).Mul(6 * u * t)).
		Add(b.Position.Sub(b.PrevGuide).Mul(3 * t * t))
	return d.Mul(1 / (b.InputKey - a.InputKey))
}

// PositionsWithSubdivisions appends n uniform samples per segment plus the final point to out
func (s *Spline[V]) PositionsWithSubdivisions(out []V, n int) []V {
	s.mustBeValid()
	if n < 1 {
		n = 1
	}
	step := 1 / float64(n)
	for seg := 0; seg < len(s.points)-1; seg++ {
		for j := 0; j < n; j++ {
			out = append(out, s.segmentPosition(seg, float64(j)*step))
		}
	}
	return append(out, s.points[len(s.points)-1].Position)
}

func (s *Spline[V]) buildTable() {
	if s.tableValid {
		return
	}
	s.mustBeValid()

	n := s.subdivisions
	total := (len(s.points)-1)*n + 1
	if cap(s.cumLength) < total {
		s.cumLength = make([]float64, 0, total)
		s.sampleKeys = make([]float64, 0, total)
	}
	s.cumLength = s.cumLength[:0]
	s.sampleKeys = s.sampleKeys[:0]

	var prev V
	length := 0.0
	for seg := 0; seg < len(s.points)-1; seg++ {
		k0, k1 := s.points[seg].InputKey, s.points[seg+1].InputKey
		for j := 0; j < n; j++ {
			t := float64(j) / float64(n)
			pos := s.segmentPosition(seg, t)
			if len(s.cumLength) > 0 {
				length += pos.Sub(prev).Len()
			}
			prev = pos
			s.cumLength = append(s.cumLength, length)
			s.sampleKeys = append(s.sampleKeys, k0+(k1-k0)*t)
		}
	}
	lastPoint := s.points[len(s.points)-1]
	length += lastPoint.Position.Sub(prev).Len()
	s.cumLength = append(s.cumLength, length)
	s.sampleKeys = append(s.sampleKeys, lastPoint.InputKey)

	s.tableValid = true
}

// Length is the sampled arc length
func (s *Spline[V]) Length() float64 {
	s.buildTable()
	return s.cumLength[len(s.cumLength)-1]
}

// InputKeyAtDistance maps arc length to input key by interpolating the sampled table
// Non-decreasing in distance; 0 maps to the first key and Length to the last
func (s *Spline[V]) InputKeyAtDistance(distance float64) float64 {
	s.buildTable()
	last := len(s.cumLength) - 1
	if distance <= 0 {
		return s.sampleKeys[0]
	}
	if distance >= s.cumLength[last] {
		return s.sampleKeys[last]
	}
	i := sort.SearchFloat64s(s.cumLength, distance)
	d0, d1 := s.cumLength[i-1], s.cumLength[i]
	k0, k1 := s.sampleKeys[i-1], s.sampleKeys[i]
	if d1 <= d0 {
		return k1
	}
	return k0 + (k1-k0)*(distance-d0)/(d1-d0)
}
