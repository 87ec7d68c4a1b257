package render

import (
	"math"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/vmath"
)

// Face shading so flat-colored solids keep readable edges
const (
	shadeTop    = 1.0
	shadeBottom = 0.55
	shadeX      = 0.85
	shadeY      = 0.7
)

// addBox emits six faces from a corner function indexed by 0/1 per axis
func (b *VertexBuffer) addBox(corner func(ix, iy, iz int) vmath.Vec3, color RGBA8) {
	// -X, +X
	b.AddQuad3D(corner(0, 1, 0), corner(0, 0, 0), corner(0, 0, 1), corner(0, 1, 1), color.Scale(shadeX))
	b.AddQuad3D(corner(1, 0, 0), corner(1, 1, 0), corner(1, 1, 1), corner(1, 0, 1), color.Scale(shadeX))
	// -Y, +Y
	b.AddQuad3D(corner(0, 0, 0), corner(1, 0, 0), corner(1, 0, 1), corner(0, 0, 1), color.Scale(shadeY))
	b.AddQuad3D(corner(1, 1, 0), corner(0, 1, 0), corner(0, 1, 1), corner(1, 1, 1), color.Scale(shadeY))
	// -Z, +Z
	b.AddQuad3D(corner(0, 1, 0), corner(1, 1, 0), corner(1, 0, 0), corner(0, 0, 0), color.Scale(shadeBottom))
	b.AddQuad3D(corner(0, 0, 1), corner(1, 0, 1), corner(1, 1, 1), corner(0, 1, 1), color.Scale(shadeTop))
}

func (b *VertexBuffer) AddAABB3D(box geometry.AABB3, color RGBA8) {
	b.addBox(func(ix, iy, iz int) vmath.Vec3 {
		pick := func(i, axis int) float64 {
			if i == 0 {
				return box.Mins[axis]
			}
			return box.Maxs[axis]
		}
		return vmath.Vec3{pick(ix, 0), pick(iy, 1), pick(iz, 2)}
	}, color)
}

func (b *VertexBuffer) AddOBB3D(box geometry.OBB3, color RGBA8) {
	h := box.HalfDims
	b.addBox(func(ix, iy, iz int) vmath.Vec3 {
		sign := func(i int) float64 { return float64(2*i - 1) }
		return box.ToWorld(vmath.Vec3{sign(ix) * h[0], sign(iy) * h[1], sign(iz) * h[2]})
	}, color)
}

// AddSphere3D appends a latitude/longitude sphere
func (b *VertexBuffer) AddSphere3D(sphere geometry.Sphere3, color RGBA8, slices, stacks int) {
	if slices < 3 || stacks < 2 || sphere.Radius <= 0 {
		return
	}
	point := func(i, j int) vmath.Vec3 {
		yaw := 2 * math.Pi * float64(i) / float64(slices)
		pitch := math.Pi*float64(j)/float64(stacks) - math.Pi/2
		return sphere.Pos.Add(vmath.Vec3{
			math.Cos(pitch) * math.Cos(yaw),
			math.Cos(pitch) * math.Sin(yaw),
			math.Sin(pitch),
		}.Mul(sphere.Radius))
	}
	for j := 0; j < stacks; j++ {
		shade := vmath.RangeMap(float64(j), 0, float64(stacks-1), shadeBottom, shadeTop)
		c := color.Scale(shade)
		for i := 0; i < slices; i++ {
			b.AddQuad3D(point(i, j), point(i+1, j), point(i+1, j+1), point(i, j+1), c)
		}
	}
}

// AddZCylinder3D appends both caps and the side wall
func (b *VertexBuffer) AddZCylinder3D(cyl geometry.ZCylinder3, color RGBA8, slices int) {
	if slices < 3 || cyl.Radius <= 0 {
		return
	}
	bottomCenter := vmath.Vec3{cyl.CenterXY[0], cyl.CenterXY[1], cyl.MinZ}
	topCenter := vmath.Vec3{cyl.CenterXY[0], cyl.CenterXY[1], cyl.MaxZ}
	rim := func(i int, z float64) vmath.Vec3 {
		d := vmath.FromPolarDegrees(360*float64(i)/float64(slices), cyl.Radius)
		return vmath.Vec3{cyl.CenterXY[0] + d[0], cyl.CenterXY[1] + d[1], z}
	}
	for i := 0; i < slices; i++ {
		b.AddTriangle3D(topCenter, rim(i, cyl.MaxZ), rim(i+1, cyl.MaxZ), color.Scale(shadeTop))
		b.AddTriangle3D(bottomCenter, rim(i+1, cyl.MinZ), rim(i, cyl.MinZ), color.Scale(shadeBottom))
		b.AddQuad3D(rim(i, cyl.MinZ), rim(i+1, cyl.MinZ), rim(i+1, cyl.MaxZ), rim(i, cyl.MaxZ), color.Scale(shadeX))
	}
}

// AddPlane3D draws a square patch of the plane around its closest point to the origin
func (b *VertexBuffer) AddPlane3D(plane geometry.Plane3, halfSize float64, color RGBA8) {
	n := vmath.Normalize3(plane.Normal)
	if n == vmath.Zero3 {
		return
	}
	ref := vmath.AxisZ
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = vmath.AxisX
	}
	u := vmath.Normalize3(ref.Cross(n)).Mul(halfSize)
	v := n.Cross(u)
	c := plane.Center()
	b.AddQuad3D(c.Sub(u).Sub(v), c.Add(u).Sub(v), c.Add(u).Add(v), c.Sub(u).Add(v), color)
}

// AddLineSegment3D draws two crossed quads along the segment so it shows from any side
func (b *VertexBuffer) AddLineSegment3D(start, end vmath.Vec3, thickness float64, color RGBA8) {
	dir := vmath.Normalize3(end.Sub(start))
	if dir == vmath.Zero3 {
		return
	}
	ref := vmath.AxisZ
	if math.Abs(dir.Dot(ref)) > 0.9 {
		ref = vmath.AxisX
	}
	u := vmath.Normalize3(dir.Cross(ref)).Mul(thickness * 0.5)
	v := vmath.Normalize3(dir.Cross(u)).Mul(thickness * 0.5)
	b.AddQuad3D(start.Sub(u), end.Sub(u), end.Add(u), start.Add(u), color)
	b.AddQuad3D(start.Sub(v), end.Sub(v), end.Add(v), start.Add(v), color)
}

// AddLineStrip3D joins consecutive points with segments
func (b *VertexBuffer) AddLineStrip3D(points []vmath.Vec3, thickness float64, color RGBA8) {
	for i := 1; i < len(points); i++ {
		b.AddLineSegment3D(points[i-1], points[i], thickness, color)
	}
}

// AddBasis3D draws the rotated i, j, k axes in red, green and blue
func (b *VertexBuffer) AddBasis3D(origin vmath.Vec3, rot vmath.Quat, length, thickness float64) {
	b.AddLineSegment3D(origin, origin.Add(rot.Rotate(vmath.AxisX).Mul(length)), thickness, Red)
	b.AddLineSegment3D(origin, origin.Add(rot.Rotate(vmath.AxisY).Mul(length)), thickness, Green)
	b.AddLineSegment3D(origin, origin.Add(rot.Rotate(vmath.AxisZ).Mul(length)), thickness, Blue)
}

// AddArrow3D draws a shaft with a four-sided pyramid head of length headSize
func (b *VertexBuffer) AddArrow3D(tail, tip vmath.Vec3, headSize, thickness float64, color RGBA8) {
	dir := vmath.Normalize3(tip.Sub(tail))
	if dir == vmath.Zero3 {
		return
	}
	back := tip.Sub(dir.Mul(headSize))
	b.AddLineSegment3D(tail, back, thickness, color)

	ref := vmath.AxisZ
	if math.Abs(dir.Dot(ref)) > 0.9 {
		ref = vmath.AxisX
	}
	u := vmath.Normalize3(dir.Cross(ref)).Mul(headSize * 0.4)
	v := vmath.Normalize3(dir.Cross(u)).Mul(headSize * 0.4)
	ring := [4]vmath.Vec3{back.Add(u), back.Add(v), back.Sub(u), back.Sub(v)}
	for i := range ring {
		b.AddTriangle3D(ring[i], ring[(i+1)%4], tip, color)
	}
}

// boxEdges pairs corner indices (bit 0 x, bit 1 y, bit 2 z) along the twelve box edges
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

func (b *VertexBuffer) addWireBox(corner func(ix, iy, iz int) vmath.Vec3, thickness float64, color RGBA8) {
	at := func(i int) vmath.Vec3 { return corner(i&1, (i>>1)&1, (i>>2)&1) }
	for _, e := range boxEdges {
		b.AddLineSegment3D(at(e[0]), at(e[1]), thickness, color)
	}
}

// AddOBB3DWire draws the twelve edges of box
func (b *VertexBuffer) AddOBB3DWire(box geometry.OBB3, thickness float64, color RGBA8) {
	h := box.HalfDims
	b.addWireBox(func(ix, iy, iz int) vmath.Vec3 {
		sign := func(i int) float64 { return float64(2*i - 1) }
		return box.ToWorld(vmath.Vec3{sign(ix) * h[0], sign(iy) * h[1], sign(iz) * h[2]})
	}, thickness, color)
}

// AddTransformedBox3D draws an axis-aligned local box moved by rotation, scale and translation
func (b *VertexBuffer) AddTransformedBox3D(mins, maxs vmath.Vec3, pos vmath.Vec3, rot vmath.Quat, scale vmath.Vec3, color RGBA8) {
	b.addBox(func(ix, iy, iz int) vmath.Vec3 {
		local := vmath.Vec3{
			vmath.Lerp(mins[0], maxs[0], float64(ix)),
			vmath.Lerp(mins[1], maxs[1], float64(iy)),
			vmath.Lerp(mins[2], maxs[2], float64(iz)),
		}
		local = vmath.Vec3{local[0] * scale[0], local[1] * scale[1], local[2] * scale[2]}
		return pos.Add(rot.Rotate(local))
	}, color)
}
