package render

import (
	"math"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/vmath"
)

// DiscSides is the triangle fan resolution for discs and rings
const DiscSides = 32

func (b *VertexBuffer) AddTriangle2D(p0, p1, p2 vmath.Vec2, color RGBA8) {
	b.AddTriangle3D(to3(p0), to3(p1), to3(p2), color)
}

// AddDisc2D appends a triangle fan, UV maps the disc into the unit square
func (b *VertexBuffer) AddDisc2D(center vmath.Vec2, radius float64, color RGBA8) {
	b.AddGradientDisc2D(center, radius, color, color)
}

// AddGradientDisc2D fades from inner at the center to outer at the rim
func (b *VertexBuffer) AddGradientDisc2D(center vmath.Vec2, radius float64, inner, outer RGBA8) {
	if radius <= 0 {
		return
	}
	step := 360.0 / DiscSides
	for i := 0; i < DiscSides; i++ {
		d0 := vmath.FromPolarDegrees(step*float64(i), 1)
		d1 := vmath.FromPolarDegrees(step*float64(i+1), 1)
		b.Verts = append(b.Verts,
			Vertex{Pos: to3(center), Color: inner, UV: vmath.Vec2{0.5, 0.5}},
			Vertex{Pos: to3(center.Add(d0.Mul(radius))), Color: outer, UV: vmath.Vec2{0.5 + 0.5*d0[0], 0.5 + 0.5*d0[1]}},
			Vertex{Pos: to3(center.Add(d1.Mul(radius))), Color: outer, UV: vmath.Vec2{0.5 + 0.5*d1[0], 0.5 + 0.5*d1[1]}},
		)
	}
}

// AddRing2D draws an annulus of the given thickness centered on radius
func (b *VertexBuffer) AddRing2D(center vmath.Vec2, radius, thickness float64, color RGBA8) {
	inner := math.Max(radius-thickness*0.5, 0)
	outer := radius + thickness*0.5
	step := 360.0 / DiscSides
	for i := 0; i < DiscSides; i++ {
		d0 := vmath.FromPolarDegrees(step*float64(i), 1)
		d1 := vmath.FromPolarDegrees(step*float64(i+1), 1)
		b.AddQuad3D(
			to3(center.Add(d0.Mul(inner))),
			to3(center.Add(d0.Mul(outer))),
			to3(center.Add(d1.Mul(outer))),
			to3(center.Add(d1.Mul(inner))),
			color,
		)
	}
}

func (b *VertexBuffer) AddAABB2D(box geometry.AABB2, color RGBA8) {
	b.AddQuad3D(
		to3(box.Mins),
		to3(vmath.Vec2{box.Maxs[0], box.Mins[1]}),
		to3(box.Maxs),
		to3(vmath.Vec2{box.Mins[0], box.Maxs[1]}),
		color,
	)
}

func (b *VertexBuffer) AddOBB2D(box geometry.OBB2, color RGBA8) {
	c := box.Corners()
	b.AddQuad3D(to3(c[0]), to3(c[1]), to3(c[2]), to3(c[3]), color)
}

// AddCapsule2D draws the bone rectangle and a half-disc fan at each end
func (b *VertexBuffer) AddCapsule2D(capsule geometry.Capsule2, color RGBA8) {
	if capsule.Radius <= 0 {
		return
	}
	dir := vmath.Normalize2(capsule.End.Sub(capsule.Start))
	if dir == vmath.Zero2 {
		b.AddDisc2D(capsule.Start, capsule.Radius, color)
		return
	}
	side := vmath.Perpendicular2(dir).Mul(capsule.Radius)
	b.AddQuad3D(
		to3(capsule.Start.Sub(side)),
		to3(capsule.End.Sub(side)),
		to3(capsule.End.Add(side)),
		to3(capsule.Start.Add(side)),
		color,
	)

	heading := vmath.OrientationDegrees(dir)
	b.addHalfDisc(capsule.End, capsule.Radius, heading-90, color)
	b.addHalfDisc(capsule.Start, capsule.Radius, heading+90, color)
}

func (b *VertexBuffer) addHalfDisc(center vmath.Vec2, radius, startDegrees float64, color RGBA8) {
	sides := DiscSides / 2
	step := 180.0 / float64(sides)
	for i := 0; i < sides; i++ {
		p0 := center.Add(vmath.FromPolarDegrees(startDegrees+step*float64(i), radius))
		p1 := center.Add(vmath.FromPolarDegrees(startDegrees+step*float64(i+1), radius))
		b.AddTriangle2D(center, p0, p1, color)
	}
}

// AddLineSegment2D draws a quad of the given thickness, nothing for a zero-length segment
func (b *VertexBuffer) AddLineSegment2D(start, end vmath.Vec2, thickness float64, color RGBA8) {
	dir := vmath.Normalize2(end.Sub(start))
	if dir == vmath.Zero2 {
		return
	}
	side := vmath.Perpendicular2(dir).Mul(thickness * 0.5)
	b.AddQuad3D(to3(start.Sub(side)), to3(end.Sub(side)), to3(end.Add(side)), to3(start.Add(side)), color)
}

// AddLineStrip2D joins consecutive points with segments
func (b *VertexBuffer) AddLineStrip2D(points []vmath.Vec2, thickness float64, color RGBA8) {
	for i := 1; i < len(points); i++ {
		b.AddLineSegment2D(points[i-1], points[i], thickness, color)
	}
}

// AddArrow2D draws a shaft from tail to tip with a triangular head of length headSize
func (b *VertexBuffer) AddArrow2D(tail, tip vmath.Vec2, headSize, thickness float64, color RGBA8) {
	dir := vmath.Normalize2(tip.Sub(tail))
	if dir == vmath.Zero2 {
		return
	}
	b.AddLineSegment2D(tail, tip, thickness, color)
	back := tip.Sub(dir.Mul(headSize))
	side := vmath.Perpendicular2(dir).Mul(headSize * 0.5)
	b.AddTriangle2D(tip, back.Add(side), back.Sub(side), color)
}
