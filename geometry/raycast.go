package geometry

import (
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

// Ray2 is a bounded 2D ray; Forward is unit length or zero
type Ray2 struct {
	Start     Vec2
	Forward   Vec2
	MaxLength float64
}

// NewRay2 normalizes dir, a zero dir yields a ray that never hits
func NewRay2(start, dir Vec2, maxLength float64) Ray2 {
	return Ray2{Start: start, Forward: vmath.Normalize2(dir), MaxLength: maxLength}
}

// NewRay2Between casts from start toward end with length |end-start|
func NewRay2Between(start, end Vec2) Ray2 {
	d := end.Sub(start)
	return Ray2{Start: start, Forward: vmath.Normalize2(d), MaxLength: d.Len()}
}

func (r Ray2) End() Vec2 {
	return r.At(r.MaxLength)
}

func (r Ray2) At(dist float64) Vec2 {
	return r.Start.Add(r.Forward.Mul(dist))
}

func (r Ray2) degenerate() bool {
	return r.Forward.Dot(r.Forward) < 0.5 || r.MaxLength < 0
}

// RaycastResult2D is zeroed apart from Ray when DidImpact is false
type RaycastResult2D struct {
	Ray          Ray2
	DidImpact    bool
	ImpactDist   float64
	ImpactPos    Vec2
	ImpactNormal Vec2
}

func miss2(ray Ray2) RaycastResult2D {
	return RaycastResult2D{Ray: ray}
}

func hit2(ray Ray2, dist float64, normal Vec2) RaycastResult2D {
	return RaycastResult2D{
		Ray:          ray,
		DidImpact:    true,
		ImpactDist:   dist,
		ImpactPos:    ray.At(dist),
		ImpactNormal: normal,
	}
}

// startInside2 is the shared result for rays beginning within a filled shape
func startInside2(ray Ray2) RaycastResult2D {
	return RaycastResult2D{
		Ray:          ray,
		DidImpact:    true,
		ImpactPos:    ray.Start,
		ImpactNormal: ray.Forward.Mul(-1),
	}
}

// Raycaster2 is implemented by every 2D shape that supports ray intersection
type Raycaster2 interface {
	Raycast(ray Ray2) RaycastResult2D
}

// RaycastNearest2D returns the closest hit across targets and its index, -1 on miss
func RaycastNearest2D(ray Ray2, targets []Raycaster2) (RaycastResult2D, int) {
	best := miss2(ray)
	bestIdx := -1
	for i, t := range targets {
		r := t.Raycast(ray)
		if r.DidImpact && (!best.DidImpact || r.ImpactDist < best.ImpactDist) {
			best, bestIdx = r, i
		}
	}
	return best, bestIdx
}

// Raycast intersects the disc boundary by projecting its center onto the ray
func (d Disc2) Raycast(ray Ray2) RaycastResult2D {
	if ray.degenerate() {
		return miss2(ray)
	}
	if d.IsPointInside(ray.Start) {
		return startInside2(ray)
	}

	toCenter := d.Center.Sub(ray.Start)
	along := toCenter.Dot(ray.Forward)
	across := toCenter.Dot(vmath.Perpendicular2(ray.Forward))
	if math.Abs(across) >= d.Radius {
		return miss2(ray)
	}
	if along < -d.Radius || along > ray.MaxLength+d.Radius {
		return miss2(ray)
	}

	dist := along - math.Sqrt(d.Radius*d.Radius-across*across)
	if dist < 0 || dist > ray.MaxLength {
		return miss2(ray)
	}
	pos := ray.At(dist)
	return hit2(ray, dist, vmath.Normalize2(pos.Sub(d.Center)))
}

// Raycast intersects the segment; parallel and zero-length segments miss
func (s LineSegment2) Raycast(ray Ray2) RaycastResult2D {
	if ray.degenerate() {
		return miss2(ray)
	}
	r := ray.Forward.Mul(ray.MaxLength)
	e := s.End.Sub(s.Start)
	denom := vmath.Cross2(r, e)
	if vmath.NearlyZero(denom) {
		return miss2(ray)
	}

	toStart := s.Start.Sub(ray.Start)
	t := vmath.Cross2(toStart, e) / denom
	u := vmath.Cross2(toStart, r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return miss2(ray)
	}

	normal := vmath.Normalize2(vmath.Perpendicular2(e))
	if normal.Dot(ray.Forward) > 0 {
		normal = normal.Mul(-1)
	}
	return hit2(ray, t*ray.MaxLength, normal)
}

// Raycast uses the slab method
func (b AABB2) Raycast(ray Ray2) RaycastResult2D {
	if ray.degenerate() {
		return miss2(ray)
	}
	if b.IsPointInside(ray.Start) {
		return startInside2(ray)
	}
	dist, axis, ok := slabs(ray.Start[:], ray.Forward[:], b.Mins[:], b.Maxs[:], ray.MaxLength)
	if !ok {
		return miss2(ray)
	}
	var normal Vec2
	normal[axis] = -math.Copysign(1, ray.Forward[axis])
	return hit2(ray, dist, normal)
}

// Raycast transforms the ray into the box frame and reuses the AABB slab test
func (o OBB2) Raycast(ray Ray2) RaycastResult2D {
	if ray.degenerate() {
		return miss2(ray)
	}
	local := Ray2{
		Start:     o.ToLocal(ray.Start),
		Forward:   Vec2{ray.Forward.Dot(o.IBasis), ray.Forward.Dot(o.JBasis())},
		MaxLength: ray.MaxLength,
	}
	box := AABB2{Mins: o.HalfDims.Mul(-1), Maxs: o.HalfDims}
	r := box.Raycast(local)
	if !r.DidImpact {
		return miss2(ray)
	}
	if r.ImpactDist == 0 {
		return startInside2(ray)
	}
	return hit2(ray, r.ImpactDist, o.ToWorldDir(r.ImpactNormal))
}

// Raycast takes the nearest of the two end discs and the two side segments
func (c Capsule2) Raycast(ray Ray2) RaycastResult2D {
	if ray.degenerate() {
		return miss2(ray)
	}
	if c.IsPointInside(ray.Start) {
		return startInside2(ray)
	}
	if c.Radius == 0 {
		return c.Bone().Raycast(ray)
	}

	parts := []Raycaster2{
		Disc2{Center: c.Start, Radius: c.Radius},
		Disc2{Center: c.End, Radius: c.Radius},
	}
	if offset := vmath.Perpendicular2(vmath.Normalize2(c.End.Sub(c.Start))).Mul(c.Radius); offset != vmath.Zero2 {
		parts = append(parts,
			LineSegment2{Start: c.Start.Add(offset), End: c.End.Add(offset)},
			LineSegment2{Start: c.Start.Sub(offset), End: c.End.Sub(offset)},
		)
	}
	r, _ := RaycastNearest2D(ray, parts)
	return r
}

// slabs intersects a ray starting outside the box with its per-axis slabs
// Returns entry distance and the axis of the entered face
func slabs(start, fwd, mins, maxs []float64, maxLen float64) (float64, int, bool) {
	tEnter, tExit := math.Inf(-1), math.Inf(1)
	enterAxis := -1

	for i := range start {
		if fwd[i] == 0 {
			if start[i] < mins[i] || start[i] > maxs[i] {
				return 0, 0, false
			}
			continue
		}
		inv := 1 / fwd[i]
		t0 := (mins[i] - start[i]) * inv
		t1 := (maxs[i] - start[i]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tEnter {
			tEnter, enterAxis = t0, i
		}
		if t1 < tExit {
			tExit = t1
		}
	}

	if enterAxis < 0 || tEnter > tExit || tEnter < 0 || tEnter > maxLen {
		return 0, 0, false
	}
	return tEnter, enterAxis, true
}
