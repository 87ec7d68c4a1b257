package physics

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/vmath"
)

// Ball is a mobile disc
type Ball struct {
	Center   vmath.Vec2
	Velocity vmath.Vec2
	Radius   float64
	Color    colorful.Color
}

// Bumper is a fixed collider. Implemented only by DiscBumper, CapsuleBumper and OBBBumper
type Bumper interface {
	Center() vmath.Vec2
	BoundingRadius() float64
	Elasticity() float64
	bumper()
}

type DiscBumper struct {
	Shape geometry.Disc2
	E     float64
}

type CapsuleBumper struct {
	Shape geometry.Capsule2
	E     float64

	boundingRadius float64
}

type OBBBumper struct {
	Shape geometry.OBB2
	E     float64

	boundingRadius float64
}

func (DiscBumper) bumper()    {}
func (CapsuleBumper) bumper() {}
func (OBBBumper) bumper()     {}

func NewDiscBumper(center vmath.Vec2, radius, elasticity float64) DiscBumper {
	return DiscBumper{Shape: geometry.Disc2{Center: center, Radius: radius}, E: elasticity}
}

// NewCapsuleBumper builds a capsule centered on center with its bone from center-halfOffset to center+halfOffset
func NewCapsuleBumper(center, halfOffset vmath.Vec2, radius, elasticity float64) CapsuleBumper {
	return CapsuleBumper{
		Shape:          geometry.Capsule2{Start: center.Sub(halfOffset), End: center.Add(halfOffset), Radius: radius},
		E:              elasticity,
		boundingRadius: radius + halfOffset.Len(),
	}
}

func NewOBBBumper(center, iBasis, halfDims vmath.Vec2, elasticity float64) OBBBumper {
	return OBBBumper{
		Shape:          geometry.OBB2{Center: center, IBasis: vmath.Normalize2(iBasis), HalfDims: halfDims},
		E:              elasticity,
		boundingRadius: halfDims.Len(),
	}
}

func (b DiscBumper) Center() vmath.Vec2      { return b.Shape.Center }
func (b DiscBumper) BoundingRadius() float64 { return b.Shape.Radius }
func (b DiscBumper) Elasticity() float64     { return b.E }

func (b CapsuleBumper) Center() vmath.Vec2      { return vmath.Lerp2(b.Shape.Start, b.Shape.End, 0.5) }
func (b CapsuleBumper) BoundingRadius() float64 { return b.boundingRadius }
func (b CapsuleBumper) Elasticity() float64     { return b.E }

func (b OBBBumper) Center() vmath.Vec2      { return b.Shape.Center }
func (b OBBBumper) BoundingRadius() float64 { return b.boundingRadius }
func (b OBBBumper) Elasticity() float64     { return b.E }

// contact reduces a bumper to the fixed point nearest the ball and the radius the ball is inflated by
func contact(b Bumper, p vmath.Vec2) (vmath.Vec2, float64) {
	switch b := b.(type) {
	case DiscBumper:
		return b.Shape.Center, b.Shape.Radius
	case CapsuleBumper:
		return b.Shape.Bone().NearestPoint(p), b.Shape.Radius
	case OBBBumper:
		return b.Shape.NearestPoint(p), 0
	default:
		panic(fmt.Sprintf("physics: unknown bumper %T", b))
	}
}

// BounceBallOffBumper resolves a ball against one bumper after a bounding-disc early reject
// Combined elasticity is the product of bumper and ball elasticity
func BounceBallOffBumper(b Bumper, ball *Ball, ballElasticity float64) bool {
	bound := geometry.Disc2{Center: b.Center(), Radius: b.BoundingRadius()}
	if !geometry.DoDiscsOverlap(bound, geometry.Disc2{Center: ball.Center, Radius: ball.Radius}) {
		return false
	}
	e := b.Elasticity() * ballElasticity
	if o, ok := b.(OBBBumper); ok && o.Shape.IsPointInside(ball.Center) {
		BounceDiscOutOfOBB(o.Shape, &ball.Center, &ball.Velocity, ball.Radius, e)
		return true
	}
	fixed, extra := contact(b, ball.Center)
	return BounceDiscOffFixedPoint(&ball.Center, &ball.Velocity, ball.Radius+extra, fixed, e)
}

// BounceDiscOutOfOBB resolves a disc whose center ended inside the box. The disc leaves through
// the face of least penetration and its velocity is reflected off that face if heading inward
func BounceDiscOutOfOBB(o geometry.OBB2, center, velocity *vmath.Vec2, radius, elasticity float64) {
	local := o.ToLocal(*center)
	axis, side := 0, 1.0
	best := math.Inf(1)
	for i := range 2 {
		for _, s := range [2]float64{-1, 1} {
			if depth := o.HalfDims[i] - s*local[i]; depth < best {
				best, axis, side = depth, i, s
			}
		}
	}

	var dir vmath.Vec2
	dir[axis] = side
	normal := o.ToWorldDir(dir)
	local[axis] = side * o.HalfDims[axis]
	*center = o.ToWorld(local).Add(normal.Mul(radius))

	if vn := velocity.Dot(normal); vn < 0 {
		*velocity = velocity.Sub(normal.Mul((1 + elasticity) * vn))
	}
}
