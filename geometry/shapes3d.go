package geometry

import (
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

type Vec3 = vmath.Vec3

// Shape3 is the closed set of 3D test shapes; overlap dispatch switches over it exhaustively
type Shape3 interface {
	NearestPoint(p Vec3) Vec3
	IsPointInside(p Vec3) bool
	Raycast(ray Ray3) RaycastResult3D
	Center() Vec3
	shape3()
}

// Sphere3 is a filled ball
type Sphere3 struct {
	Pos    Vec3
	Radius float64
}

// AABB3 is an axis-aligned box
type AABB3 struct {
	Mins, Maxs Vec3
}

// OBB3 is an oriented box with orthonormal I, J, K basis
type OBB3 struct {
	Pos      Vec3
	I, J, K  Vec3
	HalfDims Vec3
}

// ZCylinder3 is an upright cylinder spanning [MinZ, MaxZ]
type ZCylinder3 struct {
	CenterXY   Vec2
	Radius     float64
	MinZ, MaxZ float64
}

// Plane3 is the set of points p with dot(p, Normal) == Dist; Normal is unit length
type Plane3 struct {
	Normal Vec3
	Dist   float64
}

func (Sphere3) shape3()    {}
func (AABB3) shape3()      {}
func (OBB3) shape3()       {}
func (ZCylinder3) shape3() {}
func (Plane3) shape3()     {}

// --- Sphere3 ---

func (s Sphere3) Center() Vec3 { return s.Pos }

func (s Sphere3) IsPointInside(p Vec3) bool {
	return vmath.DistSq3(s.Pos, p) <= s.Radius*s.Radius
}

func (s Sphere3) NearestPoint(p Vec3) Vec3 {
	if s.IsPointInside(p) {
		return p
	}
	return s.Pos.Add(vmath.Normalize3(p.Sub(s.Pos)).Mul(s.Radius))
}

// --- AABB3 ---

// NewAABB3FromCenter builds a box from its center and half dimensions
func NewAABB3FromCenter(center, halfDims Vec3) AABB3 {
	return AABB3{Mins: center.Sub(halfDims), Maxs: center.Add(halfDims)}
}

func (b AABB3) Center() Vec3 {
	return b.Mins.Add(b.Maxs).Mul(0.5)
}

func (b AABB3) HalfDims() Vec3 {
	return b.Maxs.Sub(b.Mins).Mul(0.5)
}

func (b AABB3) IsPointInside(p Vec3) bool {
	for i := 0; i < 3; i++ {
		if p[i] < b.Mins[i] || p[i] > b.Maxs[i] {
			return false
		}
	}
	return true
}

func (b AABB3) NearestPoint(p Vec3) Vec3 {
	return Vec3{
		vmath.Clamp(p[0], b.Mins[0], b.Maxs[0]),
		vmath.Clamp(p[1], b.Mins[1], b.Maxs[1]),
		vmath.Clamp(p[2], b.Mins[2], b.Maxs[2]),
	}
}

// --- OBB3 ---

// NewOBB3 orients a box by Euler angles
func NewOBB3(center, halfDims Vec3, orientation vmath.EulerAngles) OBB3 {
	i, j, k := orientation.Basis()
	return OBB3{Pos: center, I: i, J: j, K: k, HalfDims: halfDims}
}

func (o OBB3) Center() Vec3 { return o.Pos }

func (o OBB3) ToLocal(p Vec3) Vec3 {
	d := p.Sub(o.Pos)
	return Vec3{d.Dot(o.I), d.Dot(o.J), d.Dot(o.K)}
}

func (o OBB3) ToWorld(local Vec3) Vec3 {
	return o.Pos.Add(o.ToWorldDir(local))
}

func (o OBB3) ToWorldDir(local Vec3) Vec3 {
	return o.I.Mul(local[0]).Add(o.J.Mul(local[1])).Add(o.K.Mul(local[2]))
}

func (o OBB3) localBox() AABB3 {
	return AABB3{Mins: o.HalfDims.Mul(-1), Maxs: o.HalfDims}
}

func (o OBB3) IsPointInside(p Vec3) bool {
	return o.localBox().IsPointInside(o.ToLocal(p))
}

func (o OBB3) NearestPoint(p Vec3) Vec3 {
	if o.IsPointInside(p) {
		return p
	}
	return o.ToWorld(o.localBox().NearestPoint(o.ToLocal(p)))
}

// --- ZCylinder3 ---

func (c ZCylinder3) Center() Vec3 {
	return Vec3{c.CenterXY[0], c.CenterXY[1], (c.MinZ + c.MaxZ) * 0.5}
}

func (c ZCylinder3) disc() Disc2 {
	return Disc2{Center: c.CenterXY, Radius: c.Radius}
}

func (c ZCylinder3) IsPointInside(p Vec3) bool {
	return p[2] >= c.MinZ && p[2] <= c.MaxZ && c.disc().IsPointInside(vmath.XY(p))
}

func (c ZCylinder3) NearestPoint(p Vec3) Vec3 {
	xy := c.disc().NearestPoint(vmath.XY(p))
	return Vec3{xy[0], xy[1], vmath.Clamp(p[2], c.MinZ, c.MaxZ)}
}

// --- Plane3 ---

// Center returns the point on the plane closest to the origin
func (pl Plane3) Center() Vec3 {
	return pl.Normal.Mul(pl.Dist)
}

// Altitude is the signed distance of p above the plane
func (pl Plane3) Altitude(p Vec3) float64 {
	return p.Dot(pl.Normal) - pl.Dist
}

// IsPointInside is always false, planes have no volume
func (Plane3) IsPointInside(Vec3) bool {
	return false
}

func (pl Plane3) NearestPoint(p Vec3) Vec3 {
	return p.Sub(pl.Normal.Mul(pl.Altitude(p)))
}

// cornerExtent is the projection radius of a box with given axes and half dims onto n
func cornerExtent(n Vec3, axes [3]Vec3, half Vec3) float64 {
	return half[0]*math.Abs(n.Dot(axes[0])) +
		half[1]*math.Abs(n.Dot(axes[1])) +
		half[2]*math.Abs(n.Dot(axes[2]))
}
