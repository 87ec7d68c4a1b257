package geometry

import (
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

// Ray3 is a bounded 3D ray; Forward is unit length or zero
type Ray3 struct {
	Start     Vec3
	Forward   Vec3
	MaxLength float64
}

func NewRay3(start, dir Vec3, maxLength float64) Ray3 {
	return Ray3{Start: start, Forward: vmath.Normalize3(dir), MaxLength: maxLength}
}

func (r Ray3) At(dist float64) Vec3 {
	return r.Start.Add(r.Forward.Mul(dist))
}

func (r Ray3) degenerate() bool {
	return r.Forward.Dot(r.Forward) < 0.5 || r.MaxLength < 0
}

type RaycastResult3D struct {
	Ray          Ray3
	DidImpact    bool
	ImpactDist   float64
	ImpactPos    Vec3
	ImpactNormal Vec3
}

func miss3(ray Ray3) RaycastResult3D {
	return RaycastResult3D{Ray: ray}
}

func hit3(ray Ray3, dist float64, normal Vec3) RaycastResult3D {
	return RaycastResult3D{
		Ray:          ray,
		DidImpact:    true,
		ImpactDist:   dist,
		ImpactPos:    ray.At(dist),
		ImpactNormal: normal,
	}
}

func startInside3(ray Ray3) RaycastResult3D {
	return RaycastResult3D{
		Ray:          ray,
		DidImpact:    true,
		ImpactPos:    ray.Start,
		ImpactNormal: ray.Forward.Mul(-1),
	}
}

// RaycastNearest3D returns the closest hit across shapes and its index, -1 on miss
func RaycastNearest3D(ray Ray3, shapes []Shape3) (RaycastResult3D, int) {
	best := miss3(ray)
	bestIdx := -1
	for i, s := range shapes {
		r := s.Raycast(ray)
		if r.DidImpact && (!best.DidImpact || r.ImpactDist < best.ImpactDist) {
			best, bestIdx = r, i
		}
	}
	return best, bestIdx
}

func (s Sphere3) Raycast(ray Ray3) RaycastResult3D {
	if ray.degenerate() {
		return miss3(ray)
	}
	if s.IsPointInside(ray.Start) {
		return startInside3(ray)
	}

	toCenter := s.Pos.Sub(ray.Start)
	along := toCenter.Dot(ray.Forward)
	acrossSq := toCenter.Dot(toCenter) - along*along
	rSq := s.Radius * s.Radius
	if acrossSq >= rSq {
		return miss3(ray)
	}
	dist := along - math.Sqrt(rSq-acrossSq)
	if dist < 0 || dist > ray.MaxLength {
		return miss3(ray)
	}
	return hit3(ray, dist, vmath.Normalize3(ray.At(dist).Sub(s.Pos)))
}

func (b AABB3) Raycast(ray Ray3) RaycastResult3D {
	if ray.degenerate() {
		return miss3(ray)
	}
	if b.IsPointInside(ray.Start) {
		return startInside3(ray)
	}
	dist, axis, ok := slabs(ray.Start[:], ray.Forward[:], b.Mins[:], b.Maxs[:], ray.MaxLength)
	if !ok {
		return miss3(ray)
	}
	var normal Vec3
	normal[axis] = -math.Copysign(1, ray.Forward[axis])
	return hit3(ray, dist, normal)
}

func (o OBB3) Raycast(ray Ray3) RaycastResult3D {
	if ray.degenerate() {
		return miss3(ray)
	}
	if o.IsPointInside(ray.Start) {
		return startInside3(ray)
	}
	local := Ray3{
		Start:     o.ToLocal(ray.Start),
		Forward:   Vec3{ray.Forward.Dot(o.I), ray.Forward.Dot(o.J), ray.Forward.Dot(o.K)},
		MaxLength: ray.MaxLength,
	}
	r := o.localBox().Raycast(local)
	if !r.DidImpact {
		return miss3(ray)
	}
	return hit3(ray, r.ImpactDist, o.ToWorldDir(r.ImpactNormal))
}

// Raycast hits the plane from either side; normal faces the ray origin
func (pl Plane3) Raycast(ray Ray3) RaycastResult3D {
	if ray.degenerate() {
		return miss3(ray)
	}
	denom := ray.Forward.Dot(pl.Normal)
	if vmath.NearlyZero(denom) {
		return miss3(ray)
	}
	alt := pl.Altitude(ray.Start)
	dist := -alt / denom
	if dist < 0 || dist > ray.MaxLength {
		return miss3(ray)
	}
	normal := pl.Normal
	if alt < 0 {
		normal = normal.Mul(-1)
	}
	return hit3(ray, dist, normal)
}

// Raycast combines the end caps with a 2D disc cast of the side wall
func (c ZCylinder3) Raycast(ray Ray3) RaycastResult3D {
	if ray.degenerate() {
		return miss3(ray)
	}
	if c.IsPointInside(ray.Start) {
		return startInside3(ray)
	}

	best := miss3(ray)
	consider := func(dist float64, normal Vec3) {
		if dist < 0 || dist > ray.MaxLength {
			return
		}
		if !best.DidImpact || dist < best.ImpactDist {
			best = hit3(ray, dist, normal)
		}
	}

	// Caps, only the one facing the ray origin
	if ray.Forward[2] != 0 {
		capZ, capNormal := c.MinZ, -1.0
		if ray.Start[2] > c.MaxZ {
			capZ, capNormal = c.MaxZ, 1.0
		}
		if ray.Start[2] < c.MinZ || ray.Start[2] > c.MaxZ {
			dist := (capZ - ray.Start[2]) / ray.Forward[2]
			if dist >= 0 && c.disc().IsPointInside(vmath.XY(ray.At(dist))) {
				consider(dist, Vec3{0, 0, capNormal})
			}
		}
	}

	// Side wall, only when starting outside the infinite column
	fwdXY := vmath.XY(ray.Forward)
	if lenXY := fwdXY.Len(); lenXY > vmath.Epsilon && !c.disc().IsPointInside(vmath.XY(ray.Start)) {
		flat := Ray2{Start: vmath.XY(ray.Start), Forward: fwdXY.Mul(1 / lenXY), MaxLength: ray.MaxLength * lenXY}
		if r := c.disc().Raycast(flat); r.DidImpact {
			dist := r.ImpactDist / lenXY
			z := ray.Start[2] + ray.Forward[2]*dist
			if z >= c.MinZ && z <= c.MaxZ {
				consider(dist, Vec3{r.ImpactNormal[0], r.ImpactNormal[1], 0})
			}
		}
	}

	return best
}
