// Package geometry provides 2D and 3D shape value types and pure queries:
// nearest point, containment, pairwise overlap and ray intersection.
// Every query is deterministic and defined for degenerate shapes.
package geometry

import (
	"github.com/lixenwraith/geomlab/vmath"
)

type Vec2 = vmath.Vec2

// Shape2 is the closed set of 2D shapes supporting point queries
type Shape2 interface {
	NearestPoint(p Vec2) Vec2
	IsPointInside(p Vec2) bool
	shape2()
}

// Disc2 is a filled circle
type Disc2 struct {
	Center Vec2
	Radius float64
}

// AABB2 is an axis-aligned rectangle
type AABB2 struct {
	Mins, Maxs Vec2
}

// OBB2 is an oriented rectangle; IBasis is unit length, J basis is its CCW perpendicular
type OBB2 struct {
	Center   Vec2
	IBasis   Vec2
	HalfDims Vec2
}

// Capsule2 is the set of points within Radius of the Start-End segment
type Capsule2 struct {
	Start, End Vec2
	Radius     float64
}

// LineSegment2 is a zero-area segment
type LineSegment2 struct {
	Start, End Vec2
}

// InfiniteLine2 is the unbounded line through A and B
type InfiniteLine2 struct {
	A, B Vec2
}

// Triangle2 is a filled triangle of either winding
type Triangle2 struct {
	A, B, C Vec2
}

func (Disc2) shape2()         {}
func (AABB2) shape2()         {}
func (OBB2) shape2()          {}
func (Capsule2) shape2()      {}
func (LineSegment2) shape2()  {}
func (InfiniteLine2) shape2() {}
func (Triangle2) shape2()     {}

// --- Disc2 ---

func (d Disc2) IsPointInside(p Vec2) bool {
	return vmath.DistSq2(d.Center, p) <= d.Radius*d.Radius
}

func (d Disc2) NearestPoint(p Vec2) Vec2 {
	if d.IsPointInside(p) {
		return p
	}
	return d.Center.Add(vmath.Normalize2(p.Sub(d.Center)).Mul(d.Radius))
}

// --- AABB2 ---

// NewAABB2FromCenter builds a box from its center and half dimensions
func NewAABB2FromCenter(center, halfDims Vec2) AABB2 {
	return AABB2{Mins: center.Sub(halfDims), Maxs: center.Add(halfDims)}
}

func (b AABB2) Center() Vec2 {
	return b.Mins.Add(b.Maxs).Mul(0.5)
}

func (b AABB2) HalfDims() Vec2 {
	return b.Maxs.Sub(b.Mins).Mul(0.5)
}

func (b AABB2) IsPointInside(p Vec2) bool {
	return p[0] >= b.Mins[0] && p[0] <= b.Maxs[0] && p[1] >= b.Mins[1] && p[1] <= b.Maxs[1]
}

func (b AABB2) NearestPoint(p Vec2) Vec2 {
	return Vec2{
		vmath.Clamp(p[0], b.Mins[0], b.Maxs[0]),
		vmath.Clamp(p[1], b.Mins[1], b.Maxs[1]),
	}
}

// --- OBB2 ---

func (o OBB2) JBasis() Vec2 {
	return vmath.Perpendicular2(o.IBasis)
}

// ToLocal expresses a world point in the box frame
func (o OBB2) ToLocal(p Vec2) Vec2 {
	d := p.Sub(o.Center)
	return Vec2{d.Dot(o.IBasis), d.Dot(o.JBasis())}
}

// ToWorld maps a box-frame point back to world space
func (o OBB2) ToWorld(local Vec2) Vec2 {
	return o.Center.Add(o.IBasis.Mul(local[0])).Add(o.JBasis().Mul(local[1]))
}

// ToWorldDir rotates a box-frame direction into world space
func (o OBB2) ToWorldDir(local Vec2) Vec2 {
	return o.IBasis.Mul(local[0]).Add(o.JBasis().Mul(local[1]))
}

// Corners returns the four corners counter-clockwise from (-x,-y)
func (o OBB2) Corners() [4]Vec2 {
	hx, hy := o.HalfDims[0], o.HalfDims[1]
	return [4]Vec2{
		o.ToWorld(Vec2{-hx, -hy}),
		o.ToWorld(Vec2{hx, -hy}),
		o.ToWorld(Vec2{hx, hy}),
		o.ToWorld(Vec2{-hx, hy}),
	}
}

func (o OBB2) IsPointInside(p Vec2) bool {
	l := o.ToLocal(p)
	return l[0] >= -o.HalfDims[0] && l[0] <= o.HalfDims[0] && l[1] >= -o.HalfDims[1] && l[1] <= o.HalfDims[1]
}

func (o OBB2) NearestPoint(p Vec2) Vec2 {
	if o.IsPointInside(p) {
		return p
	}
	l := o.ToLocal(p)
	l[0] = vmath.Clamp(l[0], -o.HalfDims[0], o.HalfDims[0])
	l[1] = vmath.Clamp(l[1], -o.HalfDims[1], o.HalfDims[1])
	return o.ToWorld(l)
}

// --- Capsule2 ---

func (c Capsule2) Bone() LineSegment2 {
	return LineSegment2{Start: c.Start, End: c.End}
}

func (c Capsule2) IsPointInside(p Vec2) bool {
	return vmath.DistSq2(c.Bone().NearestPoint(p), p) <= c.Radius*c.Radius
}

func (c Capsule2) NearestPoint(p Vec2) Vec2 {
	onBone := c.Bone().NearestPoint(p)
	if vmath.DistSq2(onBone, p) <= c.Radius*c.Radius {
		return p
	}
	return onBone.Add(vmath.Normalize2(p.Sub(onBone)).Mul(c.Radius))
}

// --- LineSegment2 ---

// IsPointInside is always false, segments have no area
func (LineSegment2) IsPointInside(Vec2) bool {
	return false
}

func (s LineSegment2) NearestPoint(p Vec2) Vec2 {
	d := s.End.Sub(s.Start)
	lenSq := d.Dot(d)
	if lenSq <= vmath.Epsilon*vmath.Epsilon {
		return s.Start
	}
	t := vmath.ClampZeroToOne(p.Sub(s.Start).Dot(d) / lenSq)
	return s.Start.Add(d.Mul(t))
}

// --- InfiniteLine2 ---

func (InfiniteLine2) IsPointInside(Vec2) bool {
	return false
}

func (l InfiniteLine2) NearestPoint(p Vec2) Vec2 {
	return l.A.Add(vmath.ProjectOnto2(p.Sub(l.A), l.B.Sub(l.A)))
}

// --- Triangle2 ---

// IsPointInside accepts boundary points; zero-area triangles contain nothing
func (t Triangle2) IsPointInside(p Vec2) bool {
	if vmath.NearlyZero(vmath.Cross2(t.B.Sub(t.A), t.C.Sub(t.A))) {
		return false
	}
	d1 := vmath.Cross2(t.B.Sub(t.A), p.Sub(t.A))
	d2 := vmath.Cross2(t.C.Sub(t.B), p.Sub(t.B))
	d3 := vmath.Cross2(t.A.Sub(t.C), p.Sub(t.C))
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func (t Triangle2) NearestPoint(p Vec2) Vec2 {
	if t.IsPointInside(p) {
		return p
	}
	best := LineSegment2{t.A, t.B}.NearestPoint(p)
	bestSq := vmath.DistSq2(best, p)
	for _, e := range [2]LineSegment2{{t.B, t.C}, {t.C, t.A}} {
		q := e.NearestPoint(p)
		if d := vmath.DistSq2(q, p); d < bestSq {
			best, bestSq = q, d
		}
	}
	return best
}
