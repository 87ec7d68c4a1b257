package navigation

import (
	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/vmath"
)

// FastVoxelRaycast walks the cells a ray crosses and stops at the first solid one
// fwd must be unit length. A ray starting in a solid cell hits immediately with normal -fwd.
// On a miss ImpactDist is set to length so callers can compare it against a sight range
func (g *TileGrid) FastVoxelRaycast(start, fwd vmath.Vec2, length float64) geometry.RaycastResult2D {
	ray := geometry.Ray2{Start: start, Forward: fwd, MaxLength: length}

	t := vmath.NewGridTraverser(start, fwd, g.Origin, g.CellSize)
	if g.IsSolid(t.Pos()) {
		return geometry.RaycastResult2D{
			Ray:          ray,
			DidImpact:    true,
			ImpactPos:    start,
			ImpactNormal: fwd.Mul(-1),
		}
	}

	for t.NextDist() <= length {
		t.Step()
		if g.IsSolid(t.Pos()) {
			n := t.Normal()
			return geometry.RaycastResult2D{
				Ray:          ray,
				DidImpact:    true,
				ImpactDist:   t.Dist(),
				ImpactPos:    ray.At(t.Dist()),
				ImpactNormal: vmath.Vec2{float64(n.X), float64(n.Y)},
			}
		}
	}

	return geometry.RaycastResult2D{Ray: ray, ImpactDist: length}
}
