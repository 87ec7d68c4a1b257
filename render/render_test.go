package render

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/navigation"
	"github.com/lixenwraith/geomlab/vmath"
)

func TestVertexCounts(t *testing.T) {
	tests := []struct {
		name string
		add  func(b *VertexBuffer)
		want int
	}{
		{"disc", func(b *VertexBuffer) { b.AddDisc2D(vmath.Vec2{}, 5, White) }, 3 * DiscSides},
		{"zero disc", func(b *VertexBuffer) { b.AddDisc2D(vmath.Vec2{}, 0, White) }, 0},
		{"ring", func(b *VertexBuffer) { b.AddRing2D(vmath.Vec2{}, 5, 1, White) }, 6 * DiscSides},
		{"aabb", func(b *VertexBuffer) {
			b.AddAABB2D(geometry.AABB2{Maxs: vmath.Vec2{1, 1}}, White)
		}, 6},
		{"obb", func(b *VertexBuffer) {
			b.AddOBB2D(geometry.OBB2{IBasis: vmath.Vec2{1, 0}, HalfDims: vmath.Vec2{1, 2}}, White)
		}, 6},
		{"capsule", func(b *VertexBuffer) {
			b.AddCapsule2D(geometry.Capsule2{End: vmath.Vec2{10, 0}, Radius: 2}, White)
		}, 6 + 3*DiscSides},
		{"zero segment", func(b *VertexBuffer) { b.AddLineSegment2D(vmath.Vec2{1, 1}, vmath.Vec2{1, 1}, 2, White) }, 0},
		{"arrow", func(b *VertexBuffer) { b.AddArrow2D(vmath.Vec2{}, vmath.Vec2{10, 0}, 2, 1, White) }, 9},
		{"strip", func(b *VertexBuffer) {
			b.AddLineStrip2D([]vmath.Vec2{{0, 0}, {1, 0}, {1, 1}}, 0.1, White)
		}, 12},
		{"sphere", func(b *VertexBuffer) {
			b.AddSphere3D(geometry.Sphere3{Radius: 1}, White, 8, 4)
		}, 8 * 4 * 6},
		{"aabb3", func(b *VertexBuffer) {
			b.AddAABB3D(geometry.AABB3{Maxs: vmath.Vec3{1, 1, 1}}, White)
		}, 36},
		{"cylinder", func(b *VertexBuffer) {
			b.AddZCylinder3D(geometry.ZCylinder3{Radius: 1, MaxZ: 2}, White, 8)
		}, 8 * 12},
		{"basis", func(b *VertexBuffer) {
			b.AddBasis3D(vmath.Vec3{}, vmath.Quat{W: 1}, 1, 0.1)
		}, 3 * 12},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewVertexBuffer(0)
			tt.add(b)
			assert.Len(t, b.Verts, tt.want)
			assert.Zero(t, len(b.Verts)%3)
		})
	}
}

func TestDiscVerticesOnRim(t *testing.T) {
	b := NewVertexBuffer(0)
	center := vmath.Vec2{3, 4}
	b.AddDisc2D(center, 5, Orange)
	for _, v := range b.Verts {
		d := vmath.Dist2(center, vmath.XY(v.Pos))
		require.True(t, d < 1e-9 || (d > 5-1e-9 && d < 5+1e-9), "distance %g", d)
		require.Equal(t, Orange, v.Color)
		require.GreaterOrEqual(t, v.UV[0], -1e-12)
		require.LessOrEqual(t, v.UV[0], 1+1e-12)
	}
}

func TestOBB3DCornersMatchShape(t *testing.T) {
	box := geometry.NewOBB3(vmath.Vec3{1, 2, 3}, vmath.Vec3{1, 2, 0.5}, vmath.EulerAngles{Yaw: 30, Pitch: 10})
	b := NewVertexBuffer(0)
	b.AddOBB3D(box, White)
	for _, v := range b.Verts {
		l := box.ToLocal(v.Pos)
		require.InDelta(t, 1.0, math.Abs(l[0]), 1e-9)
		require.InDelta(t, 2.0, math.Abs(l[1]), 1e-9)
		require.InDelta(t, 0.5, math.Abs(l[2]), 1e-9)
	}
}

func TestColor(t *testing.T) {
	assert.Equal(t, RGBA8{128, 0, 128, 255}, RGBA8{0, 0, 255, 255}.Blend(RGBA8{255, 0, 0, 255}, 0.5))
	assert.Equal(t, Black, Black.Blend(White, 0))
	assert.Equal(t, White, Black.Over(White))
	assert.Equal(t, Black, Black.Over(White.WithAlpha(0)))

	red := FromZeroToOne(0)
	green := FromZeroToOne(1)
	assert.InDelta(t, 255, int(red.R), 1)
	assert.InDelta(t, 0, int(red.G), 1)
	assert.InDelta(t, 255, int(green.G), 1)
	assert.InDelta(t, 0, int(green.R), 1)

	assert.Equal(t, RGBA8{50, 100, 128, 255}, Lerp(Black, RGBA8{100, 200, 255, 255}, 0.5))
	assert.Equal(t, RGBA8{50, 100, 150, 255}, RGBA8{50, 20, 150, 0}.Max(RGBA8{10, 100, 0, 255}))
}

func TestHeatMapColors(t *testing.T) {
	grid, err := navigation.NewTileGrid(vmath.IntVec2{X: 3, Y: 1}, 10, vmath.Vec2{})
	require.NoError(t, err)
	heat := &navigation.TileHeatMap{Dims: grid.Dims, Values: []float64{0, navigation.HeatSpecial, 10}}

	b := NewVertexBuffer(0)
	b.AddHeatMap(grid, heat, DefaultHeatGradient)
	require.Len(t, b.Verts, 18)

	low, special, high := b.Verts[0].Color, b.Verts[6].Color, b.Verts[12].Color
	assert.InDelta(t, 0, int(low.R), 1)
	assert.Equal(t, WallBlue, special)
	assert.InDelta(t, 255, int(high.G), 1)

	mins, maxs := grid.TileBounds(2, 0)
	assert.Equal(t, vmath.Vec3{mins[0], mins[1], 0}, b.Verts[12].Pos)
	assert.Equal(t, vmath.Vec3{maxs[0], maxs[1], 0}, b.Verts[14].Pos)
}

func TestVectorFieldSkipsZero(t *testing.T) {
	grid, err := navigation.NewTileGrid(vmath.IntVec2{X: 2, Y: 1}, 10, vmath.Vec2{})
	require.NoError(t, err)
	field, err := navigation.NewTileVectorField(grid.Dims)
	require.NoError(t, err)
	field.Values[0] = vmath.Vec2{1, 0}

	b := NewVertexBuffer(0)
	b.AddVectorField(grid, field, Yellow)
	assert.Len(t, b.Verts, 9)
}

func TestCameraProjection(t *testing.T) {
	ortho := OrthoCamera(vmath.Vec2{0, 0}, vmath.Vec2{10, 20})
	p, ok := ortho.Project(vmath.Vec3{0, 0, 0})
	require.True(t, ok)
	assert.True(t, p.ApproxEqualThreshold(vmath.Vec3{-1, -1, 0}, 1e-12))
	p, _ = ortho.Project(vmath.Vec3{10, 20, 0})
	assert.True(t, p.ApproxEqualThreshold(vmath.Vec3{1, 1, 0}, 1e-12))

	persp := PerspectiveCamera(vmath.Vec3{-10, 0, 0}, vmath.Vec3{}, vmath.AxisZ, 60, 2, 0.1, 100)
	p, ok = persp.Project(vmath.Vec3{})
	require.True(t, ok)
	assert.InDelta(t, 0, p[0], 1e-9)
	assert.InDelta(t, 0, p[1], 1e-9)
	_, ok = persp.Project(vmath.Vec3{-20, 0, 0})
	assert.False(t, ok, "behind the eye")
}

func TestRasterCoverage(t *testing.T) {
	r := NewRaster(10, 10)
	b := NewVertexBuffer(0)
	b.Camera = OrthoCamera(vmath.Vec2{0, 0}, vmath.Vec2{10, 10})
	b.AddAABB2D(geometry.AABB2{Maxs: vmath.Vec2{10, 10}}, White)
	b.AddAABB2D(geometry.AABB2{Maxs: vmath.Vec2{5, 10}}, Red)
	b.AddAABB2D(geometry.AABB2{Mins: vmath.Vec2{5, 9}, Maxs: vmath.Vec2{10, 10}}, Blue.WithAlpha(0))
	r.Draw(b)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			c, touched := r.At(x, y)
			require.True(t, touched)
			if x < 5 {
				require.Equal(t, Red, c, "cell %d,%d", x, y)
			} else {
				require.Equal(t, White, c, "cell %d,%d", x, y)
			}
		}
	}

	r.Clear()
	b.Reset()
	b.AddAABB2D(geometry.AABB2{Mins: vmath.Vec2{0, 9}, Maxs: vmath.Vec2{10, 10}}, Green)
	r.Draw(b)
	_, top := r.At(3, 0)
	_, bottom := r.At(3, 9)
	assert.True(t, top, "world top maps to row 0")
	assert.False(t, bottom)

	c, touched := r.At(-1, 0)
	assert.False(t, touched)
	assert.Equal(t, Background, c)
}

func TestRasterDepth(t *testing.T) {
	r := NewRaster(4, 4)
	b := NewVertexBuffer(0)
	b.Camera = PerspectiveCamera(vmath.Vec3{0, 0, 10}, vmath.Vec3{}, vmath.AxisY, 90, 1, 0.1, 100)
	near := geometry.AABB3{Mins: vmath.Vec3{-50, -50, 1}, Maxs: vmath.Vec3{50, 50, 1.5}}
	far := geometry.AABB3{Mins: vmath.Vec3{-50, -50, -2}, Maxs: vmath.Vec3{50, 50, -1}}
	b.AddAABB3D(near, Red)
	b.AddAABB3D(far, Blue)
	r.Draw(b)

	c, touched := r.At(2, 2)
	require.True(t, touched)
	assert.Equal(t, Red.Scale(shadeTop), c, "nearer top face wins regardless of order")
}

func TestRasterResize(t *testing.T) {
	r := NewRaster(4, 4)
	r.Resize(8, 2)
	assert.Equal(t, 8, r.Width())
	assert.Equal(t, 2, r.Height())
	_, touched := r.At(7, 1)
	assert.False(t, touched)
}

func TestCameraUnproject(t *testing.T) {
	ortho := OrthoCamera(vmath.Vec2{0, 0}, vmath.Vec2{1600, 800})
	w := ortho.Unproject(vmath.Vec3{0, 0, 0})
	assert.InDelta(t, 800, w[0], 1e-9)
	assert.InDelta(t, 400, w[1], 1e-9)
	w = ortho.Unproject(vmath.Vec3{-1, 1, 0})
	assert.InDelta(t, 0, w[0], 1e-9)
	assert.InDelta(t, 800, w[1], 1e-9)

	persp := PerspectiveCamera(vmath.Vec3{-10, 2, 3}, vmath.Vec3{}, vmath.AxisZ, 60, 2, 0.1, 100)
	p := vmath.Vec3{1, -2, 0.5}
	ndc, ok := persp.Project(p)
	require.True(t, ok)
	back := persp.Unproject(ndc)
	assert.True(t, back.ApproxEqualThreshold(p, 1e-6), "%v", back)
}

func TestDivergingGradient(t *testing.T) {
	g := ExposureGradient
	assert.Equal(t, Yellow, g.Color(navigation.HeatSpecial, -5, 5))

	pivot := g.Color(0, -5, 5)
	assert.InDelta(t, 70, int(pivot.R), 1)
	assert.Zero(t, pivot.G)

	top := g.Color(5, -5, 5)
	assert.InDelta(t, 255, int(top.R), 1)

	nearHidden := g.Color(-0.0001, -5, 5)
	assert.InDelta(t, 233, int(nearHidden.G), 2)
	assert.InDelta(t, 233, int(nearHidden.B), 2)

	deep := g.Color(-5, -5, 5)
	assert.InDelta(t, 0, int(deep.R), 1)
	assert.InDelta(t, 255, int(deep.B), 1)

	// out-of-range values clamp to the ends
	assert.Equal(t, deep, g.Color(-50, -5, 5))
}

func TestArrowAndWire3D(t *testing.T) {
	b := NewVertexBuffer(0)
	b.AddArrow3D(vmath.Vec3{}, vmath.Vec3{0, 0, 1}, 0.2, 0.02, White)
	assert.Len(t, b.Verts, 12+4*3)

	b.Reset()
	b.AddArrow3D(vmath.Vec3{1, 1, 1}, vmath.Vec3{1, 1, 1}, 0.2, 0.02, White)
	assert.Empty(t, b.Verts)

	box := geometry.NewOBB3(vmath.Vec3{}, vmath.Vec3{1, 1, 1}, vmath.EulerAngles{Yaw: 45})
	b.AddOBB3DWire(box, 0.01, White)
	assert.Len(t, b.Verts, 12*12)
}

func TestGridLines(t *testing.T) {
	grid, err := navigation.NewTileGrid(vmath.IntVec2{X: 3, Y: 2}, 10, vmath.Vec2{5, 5})
	require.NoError(t, err)
	b := NewVertexBuffer(0)
	b.AddGridLines(grid, 1, DarkGrey)
	assert.Len(t, b.Verts, (4+3)*6)
}
