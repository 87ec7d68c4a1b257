package physics

import (
	"github.com/lixenwraith/geomlab/vmath"
)

// PushDiscOutOfPoint moves the disc center along point->center until the point lies on its edge
// Contact is closed: a point exactly on the edge counts and yields a zero-length push
// Returns false when the point lies outside the disc, or the center sits exactly on it
func PushDiscOutOfPoint(center *vmath.Vec2, radius float64, point vmath.Vec2) bool {
	disp := center.Sub(point)
	distSq := disp.Dot(disp)
	if distSq > radius*radius || distSq == 0 {
		return false
	}
	dist := disp.Len()
	*center = center.Add(disp.Mul((radius - dist) / dist))
	return true
}

// PushDiscsApart separates two overlapping discs along the center axis, each moving half the overlap
// Touching discs count as overlapping, matching geometry.DoDiscsOverlap
// Returns false when the discs are apart or share a center
func PushDiscsApart(a *vmath.Vec2, aRadius float64, b *vmath.Vec2, bRadius float64) bool {
	disp := b.Sub(*a)
	sum := aRadius + bRadius
	distSq := disp.Dot(disp)
	if distSq > sum*sum || distSq == 0 {
		return false
	}
	dist := disp.Len()
	push := disp.Mul(0.5 * (sum - dist) / dist)
	*a = a.Sub(push)
	*b = b.Add(push)
	return true
}

// BounceDiscOffFixedPoint separates a mobile disc from an immovable point, then reflects the
// normal velocity component scaled by elasticity if the disc was moving toward the point
func BounceDiscOffFixedPoint(center, velocity *vmath.Vec2, radius float64, fixed vmath.Vec2, elasticity float64) bool {
	original := *center
	if !PushDiscOutOfPoint(center, radius, fixed) {
		return false
	}

	disp := fixed.Sub(original)
	if velocity.Mul(-1).Dot(disp) < 0 {
		normal := vmath.ProjectOnto2(*velocity, disp)
		*velocity = velocity.Sub(normal.Mul(1 + elasticity))
	}
	return true
}

// BounceDiscOffEachOther separates two mobile discs, then if they were converging exchanges
// their normal velocity components scaled by elasticity. Tangential components are kept
func BounceDiscOffEachOther(aCenter, bCenter *vmath.Vec2, aRadius, bRadius float64, aVel, bVel *vmath.Vec2, elasticity float64) bool {
	origA, origB := *aCenter, *bCenter
	if !PushDiscsApart(aCenter, aRadius, bCenter, bRadius) {
		return false
	}

	disp := origB.Sub(origA)
	if bVel.Sub(*aVel).Dot(disp) < 0 {
		aNormal := vmath.ProjectOnto2(*aVel, disp)
		bNormal := vmath.ProjectOnto2(*bVel, disp)
		*aVel = aVel.Sub(aNormal).Add(bNormal.Mul(elasticity))
		*bVel = bVel.Sub(bNormal).Add(aNormal.Mul(elasticity))
	}
	return true
}
