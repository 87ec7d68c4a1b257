package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/geomlab/vmath"
)

// Vertex is one triangle corner
type Vertex struct {
	Pos   vmath.Vec3
	Color RGBA8
	UV    vmath.Vec2
}

// Camera maps world positions to clip space
type Camera struct {
	ViewProj mgl64.Mat4
}

// OrthoCamera views the XY rectangle [mins, maxs]
func OrthoCamera(mins, maxs vmath.Vec2) Camera {
	return Camera{ViewProj: mgl64.Ortho(mins[0], maxs[0], mins[1], maxs[1], -1, 1)}
}

// PerspectiveCamera looks from eye at target, fovY in degrees
func PerspectiveCamera(eye, target, up vmath.Vec3, fovY, aspect, near, far float64) Camera {
	proj := mgl64.Perspective(mgl64.DegToRad(fovY), aspect, near, far)
	return Camera{ViewProj: proj.Mul4(mgl64.LookAtV(eye, target, up))}
}

// Project returns normalized device coordinates, false when the point is behind the eye
func (c Camera) Project(p vmath.Vec3) (vmath.Vec3, bool) {
	clip := c.ViewProj.Mul4x1(p.Vec4(1))
	if clip[3] <= vmath.Epsilon {
		return vmath.Vec3{}, false
	}
	return clip.Vec3().Mul(1 / clip[3]), true
}

// VertexBuffer collects triangle lists; every three vertices form one triangle
type VertexBuffer struct {
	Verts  []Vertex
	Camera Camera
}

func NewVertexBuffer(capacity int) *VertexBuffer {
	return &VertexBuffer{
		Verts:  make([]Vertex, 0, capacity),
		Camera: Camera{ViewProj: mgl64.Ident4()},
	}
}

// Reset drops vertices but keeps capacity
func (b *VertexBuffer) Reset() {
	b.Verts = b.Verts[:0]
}

func (b *VertexBuffer) NumTriangles() int {
	return len(b.Verts) / 3
}

// AddTriangle3D appends one triangle with UVs at the unit triangle corners
func (b *VertexBuffer) AddTriangle3D(p0, p1, p2 vmath.Vec3, color RGBA8) {
	b.Verts = append(b.Verts,
		Vertex{Pos: p0, Color: color, UV: vmath.Vec2{0, 0}},
		Vertex{Pos: p1, Color: color, UV: vmath.Vec2{1, 0}},
		Vertex{Pos: p2, Color: color, UV: vmath.Vec2{0, 1}},
	)
}

// AddQuad3D appends bl, br, tr, tl as two triangles with a unit UV square
func (b *VertexBuffer) AddQuad3D(bl, br, tr, tl vmath.Vec3, color RGBA8) {
	b.Verts = append(b.Verts,
		Vertex{Pos: bl, Color: color, UV: vmath.Vec2{0, 0}},
		Vertex{Pos: br, Color: color, UV: vmath.Vec2{1, 0}},
		Vertex{Pos: tr, Color: color, UV: vmath.Vec2{1, 1}},
		Vertex{Pos: bl, Color: color, UV: vmath.Vec2{0, 0}},
		Vertex{Pos: tr, Color: color, UV: vmath.Vec2{1, 1}},
		Vertex{Pos: tl, Color: color, UV: vmath.Vec2{0, 1}},
	)
}

func to3(p vmath.Vec2) vmath.Vec3 {
	return vmath.Vec3{p[0], p[1], 0}
}

// Unproject maps normalized device coordinates back to world space
// z selects depth in NDC: -1 near plane, 1 far plane, 0 for orthographic XY views
func (c Camera) Unproject(ndc vmath.Vec3) vmath.Vec3 {
	inv := c.ViewProj.Inv()
	w := inv.Mul4x1(ndc.Vec4(1))
	if vmath.NearlyZero(w[3]) {
		return w.Vec3()
	}
	return w.Vec3().Mul(1 / w[3])
}
