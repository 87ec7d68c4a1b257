package geometry

import (
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

// --- 2D pairs ---

func DoDiscsOverlap(a, b Disc2) bool {
	r := a.Radius + b.Radius
	return vmath.DistSq2(a.Center, b.Center) <= r*r
}

func DoAABBsOverlap2(a, b AABB2) bool {
	return a.Mins[0] <= b.Maxs[0] && a.Maxs[0] >= b.Mins[0] &&
		a.Mins[1] <= b.Maxs[1] && a.Maxs[1] >= b.Mins[1]
}

func DoDiscOverlapAABB2(d Disc2, b AABB2) bool {
	return d.IsPointInside(b.NearestPoint(d.Center))
}

func DoDiscOverlapOBB2(d Disc2, o OBB2) bool {
	return d.IsPointInside(o.NearestPoint(d.Center))
}

func DoDiscOverlapCapsule2(d Disc2, c Capsule2) bool {
	r := d.Radius + c.Radius
	return vmath.DistSq2(c.Bone().NearestPoint(d.Center), d.Center) <= r*r
}

// Overlap2 reports whether two 2D shapes intersect, symmetric in its arguments
// Only disc pairs and AABB/AABB are defined; every other pair reports false
func Overlap2(a, b Shape2) bool {
	if _, ok := b.(Disc2); ok {
		a, b = b, a
	}
	switch sa := a.(type) {
	case Disc2:
		switch sb := b.(type) {
		case Disc2:
			return DoDiscsOverlap(sa, sb)
		case AABB2:
			return DoDiscOverlapAABB2(sa, sb)
		case OBB2:
			return DoDiscOverlapOBB2(sa, sb)
		case Capsule2:
			return DoDiscOverlapCapsule2(sa, sb)
		}
	case AABB2:
		if sb, ok := b.(AABB2); ok {
			return DoAABBsOverlap2(sa, sb)
		}
	}
	return false
}

// --- 3D pairs ---

func DoSpheresOverlap(a, b Sphere3) bool {
	r := a.Radius + b.Radius
	return vmath.DistSq3(a.Pos, b.Pos) <= r*r
}

func DoSphereOverlapAABB3(s Sphere3, b AABB3) bool {
	return s.IsPointInside(b.NearestPoint(s.Pos))
}

func DoSphereOverlapZCylinder(s Sphere3, c ZCylinder3) bool {
	return s.IsPointInside(c.NearestPoint(s.Pos))
}

func DoSphereOverlapOBB3(s Sphere3, o OBB3) bool {
	return s.IsPointInside(o.NearestPoint(s.Pos))
}

func DoSphereOverlapPlane(s Sphere3, pl Plane3) bool {
	return math.Abs(pl.Altitude(s.Pos)) <= s.Radius
}

func DoAABBsOverlap3(a, b AABB3) bool {
	for i := 0; i < 3; i++ {
		if a.Mins[i] > b.Maxs[i] || a.Maxs[i] < b.Mins[i] {
			return false
		}
	}
	return true
}

func DoZCylinderOverlapAABB3(c ZCylinder3, b AABB3) bool {
	if c.MinZ > b.Maxs[2] || c.MaxZ < b.Mins[2] {
		return false
	}
	return DoDiscOverlapAABB2(c.disc(), AABB2{Mins: vmath.XY(b.Mins), Maxs: vmath.XY(b.Maxs)})
}

func DoZCylindersOverlap(a, b ZCylinder3) bool {
	if a.MinZ > b.MaxZ || a.MaxZ < b.MinZ {
		return false
	}
	return DoDiscsOverlap(a.disc(), b.disc())
}

// DoAABB3OverlapPlane tests the extremal corner pair against the plane
func DoAABB3OverlapPlane(b AABB3, pl Plane3) bool {
	r := cornerExtent(pl.Normal, [3]Vec3{vmath.AxisX, vmath.AxisY, vmath.AxisZ}, b.HalfDims())
	return math.Abs(pl.Altitude(b.Center())) <= r
}

func DoOBB3OverlapPlane(o OBB3, pl Plane3) bool {
	r := cornerExtent(pl.Normal, [3]Vec3{o.I, o.J, o.K}, o.HalfDims)
	return math.Abs(pl.Altitude(o.Pos)) <= r
}

// shapeRank orders the variants so each unordered pair has one canonical form
func shapeRank(s Shape3) int {
	switch s.(type) {
	case Sphere3:
		return 0
	case AABB3:
		return 1
	case ZCylinder3:
		return 2
	case OBB3:
		return 3
	case Plane3:
		return 4
	}
	return 5
}

// Overlap3 reports whether two 3D shapes intersect, symmetric in its arguments
// OBB/OBB, OBB/AABB, OBB/cylinder, cylinder/plane and plane/plane are not defined and report false
func Overlap3(a, b Shape3) bool {
	if shapeRank(a) > shapeRank(b) {
		a, b = b, a
	}
	switch sa := a.(type) {
	case Sphere3:
		switch sb := b.(type) {
		case Sphere3:
			return DoSpheresOverlap(sa, sb)
		case AABB3:
			return DoSphereOverlapAABB3(sa, sb)
		case ZCylinder3:
			return DoSphereOverlapZCylinder(sa, sb)
		case OBB3:
			return DoSphereOverlapOBB3(sa, sb)
		case Plane3:
			return DoSphereOverlapPlane(sa, sb)
		}
	case AABB3:
		switch sb := b.(type) {
		case AABB3:
			return DoAABBsOverlap3(sa, sb)
		case ZCylinder3:
			return DoZCylinderOverlapAABB3(sb, sa)
		case OBB3:
			return false
		case Plane3:
			return DoAABB3OverlapPlane(sa, sb)
		}
	case ZCylinder3:
		switch sb := b.(type) {
		case ZCylinder3:
			return DoZCylindersOverlap(sa, sb)
		case OBB3, Plane3:
			return false
		}
	case OBB3:
		switch sb := b.(type) {
		case OBB3:
			return false
		case Plane3:
			return DoOBB3OverlapPlane(sa, sb)
		}
	case Plane3:
		return false
	}
	return false
}
