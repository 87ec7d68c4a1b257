package geometry

import (
	"math"
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/geomlab/vmath"
)

const eps = 1e-9

func shapes2() map[string]Shape2 {
	return map[string]Shape2{
		"disc":      Disc2{Center: Vec2{10, 5}, Radius: 3},
		"aabb":      AABB2{Mins: Vec2{-2, -1}, Maxs: Vec2{4, 6}},
		"obb":       OBB2{Center: Vec2{1, 1}, IBasis: vmath.FromPolarDegrees(30, 1), HalfDims: Vec2{4, 2}},
		"capsule":   Capsule2{Start: Vec2{0, 0}, End: Vec2{8, 3}, Radius: 1.5},
		"segment":   LineSegment2{Start: Vec2{-5, 2}, End: Vec2{5, -2}},
		"line":      InfiniteLine2{A: Vec2{0, 1}, B: Vec2{2, 2}},
		"triangle":  Triangle2{A: Vec2{0, 0}, B: Vec2{6, 0}, C: Vec2{2, 5}},
		"zero-disc": Disc2{Center: Vec2{1, 1}},
		"point-seg": LineSegment2{Start: Vec2{3, 3}, End: Vec2{3, 3}},
		"flat-tri":  Triangle2{A: Vec2{0, 0}, B: Vec2{1, 1}, C: Vec2{2, 2}},
	}
}

func TestNearestPoint2Idempotent(t *testing.T) {
	r := vmath.NewRand(7)
	for name, s := range shapes2() {
		for i := 0; i < 200; i++ {
			p := Vec2{r.FloatInRange(-20, 20), r.FloatInRange(-20, 20)}
			n := s.NearestPoint(p)
			nn := s.NearestPoint(n)
			require.True(t, n.ApproxEqualThreshold(nn, 1e-7), "%s: %v -> %v -> %v", name, p, n, nn)
			require.False(t, math.IsNaN(n[0]) || math.IsNaN(n[1]), name)
		}
	}
}

func TestInsideImpliesNearestIsSelf(t *testing.T) {
	r := vmath.NewRand(11)
	for name, s := range shapes2() {
		for i := 0; i < 500; i++ {
			p := Vec2{r.FloatInRange(-10, 15), r.FloatInRange(-10, 15)}
			if s.IsPointInside(p) {
				require.Equal(t, p, s.NearestPoint(p), name)
			}
		}
	}
}

func TestZeroAreaShapesContainNothing(t *testing.T) {
	assert.False(t, LineSegment2{Start: Vec2{0, 0}, End: Vec2{1, 0}}.IsPointInside(Vec2{0.5, 0}))
	assert.False(t, InfiniteLine2{A: Vec2{0, 0}, B: Vec2{1, 0}}.IsPointInside(Vec2{7, 0}))
	assert.False(t, Triangle2{A: Vec2{1, 1}, B: Vec2{1, 1}, C: Vec2{1, 1}}.IsPointInside(Vec2{5, 5}))
}

func TestNearestPoint2Cases(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape2
		in    Vec2
		want  Vec2
	}{
		{"disc outside", Disc2{Center: Vec2{0, 0}, Radius: 2}, Vec2{5, 0}, Vec2{2, 0}},
		{"aabb corner", AABB2{Mins: Vec2{0, 0}, Maxs: Vec2{1, 1}}, Vec2{3, -2}, Vec2{1, 0}},
		{"obb rotated", OBB2{IBasis: Vec2{0, 1}, HalfDims: Vec2{2, 1}}, Vec2{0, 5}, Vec2{0, 2}},
		{"capsule side", Capsule2{Start: Vec2{0, 0}, End: Vec2{10, 0}, Radius: 1}, Vec2{5, 4}, Vec2{5, 1}},
		{"capsule cap", Capsule2{Start: Vec2{0, 0}, End: Vec2{10, 0}, Radius: 1}, Vec2{13, 0}, Vec2{11, 0}},
		{"segment clamp", LineSegment2{Start: Vec2{0, 0}, End: Vec2{2, 0}}, Vec2{-3, 1}, Vec2{0, 0}},
		{"line unclamped", InfiniteLine2{A: Vec2{0, 0}, B: Vec2{2, 0}}, Vec2{-3, 1}, Vec2{-3, 0}},
		{"triangle edge", Triangle2{A: Vec2{0, 0}, B: Vec2{4, 0}, C: Vec2{0, 4}}, Vec2{2, -3}, Vec2{2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.shape.NearestPoint(tt.in)
			assert.True(t, got.ApproxEqualThreshold(tt.want, eps), "got %v want %v", got, tt.want)
		})
	}
}

func TestOverlap2(t *testing.T) {
	d := Disc2{Center: Vec2{0, 0}, Radius: 1}
	assert.True(t, Overlap2(d, Disc2{Center: Vec2{2, 0}, Radius: 1}))
	assert.False(t, Overlap2(d, Disc2{Center: Vec2{2.01, 0}, Radius: 1}))
	assert.True(t, Overlap2(AABB2{Mins: Vec2{0.5, 0.5}, Maxs: Vec2{3, 3}}, d))
	assert.True(t, Overlap2(Capsule2{Start: Vec2{-5, 1.5}, End: Vec2{5, 1.5}, Radius: 0.6}, d))
	assert.True(t, Overlap2(AABB2{Maxs: Vec2{1, 1}}, AABB2{Mins: Vec2{1, 1}, Maxs: Vec2{2, 2}}))

	// Undefined pairs never interact
	c := Capsule2{Start: Vec2{0, 0}, End: Vec2{1, 0}, Radius: 1}
	assert.False(t, Overlap2(c, c))
}

func TestDiscRaycast(t *testing.T) {
	d := Disc2{Center: Vec2{10, 0}, Radius: 2}

	r := d.Raycast(NewRay2(Vec2{0, 0}, Vec2{1, 0}, 100))
	require.True(t, r.DidImpact)
	assert.InDelta(t, 8.0, r.ImpactDist, eps)
	assert.True(t, r.ImpactNormal.ApproxEqualThreshold(Vec2{-1, 0}, eps))

	r = d.Raycast(NewRay2(Vec2{10, 1}, Vec2{0, 1}, 100))
	require.True(t, r.DidImpact)
	assert.Zero(t, r.ImpactDist)
	assert.Equal(t, Vec2{10, 1}, r.ImpactPos)
	assert.True(t, r.ImpactNormal.ApproxEqualThreshold(Vec2{0, -1}, eps))

	assert.False(t, d.Raycast(NewRay2(Vec2{0, 0}, Vec2{-1, 0}, 100)).DidImpact, "behind")
	assert.False(t, d.Raycast(NewRay2(Vec2{0, 0}, Vec2{}, 100)).DidImpact, "zero direction")
}

func TestRaycastMonotonicity(t *testing.T) {
	targets := map[string]Raycaster2{
		"disc":    Disc2{Center: Vec2{10, 1}, Radius: 2},
		"segment": LineSegment2{Start: Vec2{6, -5}, End: Vec2{9, 5}},
		"aabb":    AABB2{Mins: Vec2{7, -3}, Maxs: Vec2{9, 3}},
		"obb":     OBB2{Center: Vec2{10, 0}, IBasis: vmath.FromPolarDegrees(20, 1), HalfDims: Vec2{2, 3}},
		"capsule": Capsule2{Start: Vec2{10, -4}, End: Vec2{12, 4}, Radius: 1},
	}
	for name, target := range targets {
		t.Run(name, func(t *testing.T) {
			dir := Vec2{1, 0.1}
			full := target.Raycast(NewRay2(Vec2{0, 0}, dir, 100))
			require.True(t, full.DidImpact)
			require.LessOrEqual(t, full.ImpactDist, 100.0)
			assert.InDelta(t, 1.0, full.ImpactNormal.Len(), 1e-9)
			assert.Less(t, full.ImpactNormal.Dot(full.Ray.Forward), 0.0)

			at := target.Raycast(NewRay2(Vec2{0, 0}, dir, full.ImpactDist+1e-6))
			assert.True(t, at.DidImpact)
			assert.InDelta(t, full.ImpactDist, at.ImpactDist, 1e-6)

			short := target.Raycast(NewRay2(Vec2{0, 0}, dir, full.ImpactDist-1e-6))
			assert.False(t, short.DidImpact)
		})
	}
}

func TestSegmentRaycastParallelMisses(t *testing.T) {
	s := LineSegment2{Start: Vec2{0, 1}, End: Vec2{10, 1}}
	assert.False(t, s.Raycast(NewRay2(Vec2{0, 0}, Vec2{1, 0}, 50)).DidImpact)
	assert.False(t, LineSegment2{Start: Vec2{5, 0}, End: Vec2{5, 0}}.Raycast(NewRay2(Vec2{0, 0}, Vec2{1, 0}, 50)).DidImpact)
}

func TestZeroRadiusCapsuleRaycastsAsBone(t *testing.T) {
	c := Capsule2{Start: Vec2{0, -1}, End: Vec2{0, 1}}
	ray := NewRay2(Vec2{-5, 0}, Vec2{1, 0}, 50)

	want := c.Bone().Raycast(ray)
	require.True(t, want.DidImpact)
	got := c.Raycast(ray)
	require.True(t, got.DidImpact)
	assert.InDelta(t, 5, got.ImpactDist, eps)
	assert.Equal(t, want, got)
}

func TestRaycastNearest2D(t *testing.T) {
	targets := []Raycaster2{
		Disc2{Center: Vec2{20, 0}, Radius: 1},
		Disc2{Center: Vec2{10, 0}, Radius: 1},
		AABB2{Mins: Vec2{30, -1}, Maxs: Vec2{31, 1}},
	}
	r, idx := RaycastNearest2D(NewRay2(Vec2{}, Vec2{1, 0}, 100), targets)
	require.True(t, r.DidImpact)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 9.0, r.ImpactDist, eps)

	_, idx = RaycastNearest2D(NewRay2(Vec2{}, Vec2{0, 1}, 100), targets)
	assert.Equal(t, -1, idx)
}

// --- 3D ---

func shapes3() map[string]Shape3 {
	return map[string]Shape3{
		"sphere":   Sphere3{Pos: Vec3{1, 2, 3}, Radius: 2},
		"aabb":     AABB3{Mins: Vec3{-1, -2, -3}, Maxs: Vec3{1, 2, 3}},
		"obb":      NewOBB3(Vec3{2, 0, 1}, Vec3{1, 2, 0.5}, vmath.EulerAngles{Yaw: 30, Pitch: 15, Roll: 60}),
		"cylinder": ZCylinder3{CenterXY: Vec2{0, 1}, Radius: 1.5, MinZ: -1, MaxZ: 2},
		"plane":    Plane3{Normal: vmath.Normalize3(Vec3{1, 1, 1}), Dist: 2},
	}
}

func TestNearestPoint3Idempotent(t *testing.T) {
	r := vmath.NewRand(3)
	for name, s := range shapes3() {
		for i := 0; i < 200; i++ {
			p := Vec3{r.FloatInRange(-8, 8), r.FloatInRange(-8, 8), r.FloatInRange(-8, 8)}
			n := s.NearestPoint(p)
			require.True(t, n.ApproxEqualThreshold(s.NearestPoint(n), 1e-7), name)
			if s.IsPointInside(p) {
				require.Equal(t, p, n, name)
			}
		}
	}
}

// sdfx distance fields agree with the nearest-point distance for outside points
func TestNearestPoint3MatchesSDF(t *testing.T) {
	box, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	require.NoError(t, err)
	cyl, err := sdf.Cylinder3D(4, 1.5, 0)
	require.NoError(t, err)
	ball, err := sdf.Sphere3D(2)
	require.NoError(t, err)

	oracles := []struct {
		name  string
		field sdf.SDF3
		shape Shape3
	}{
		{"box", box, AABB3{Mins: Vec3{-1, -2, -3}, Maxs: Vec3{1, 2, 3}}},
		{"cylinder", cyl, ZCylinder3{Radius: 1.5, MinZ: -2, MaxZ: 2}},
		{"sphere", ball, Sphere3{Radius: 2}},
	}

	r := vmath.NewRand(5)
	for _, o := range oracles {
		for i := 0; i < 300; i++ {
			p := Vec3{r.FloatInRange(-6, 6), r.FloatInRange(-6, 6), r.FloatInRange(-6, 6)}
			if o.shape.IsPointInside(p) {
				continue
			}
			want := o.field.Evaluate(v3.Vec{X: p[0], Y: p[1], Z: p[2]})
			got := o.shape.NearestPoint(p).Sub(p).Len()
			require.InDelta(t, want, got, 1e-6, "%s at %v", o.name, p)
		}
	}
}

func TestOverlap3Symmetric(t *testing.T) {
	r := vmath.NewRand(9)
	for i := 0; i < 100; i++ {
		jitter := Vec3{r.FloatInRange(-3, 3), r.FloatInRange(-3, 3), r.FloatInRange(-3, 3)}
		list := []Shape3{
			Sphere3{Pos: jitter, Radius: 1},
			AABB3{Mins: Vec3{-1, -1, -1}, Maxs: Vec3{1, 1, 1}},
			ZCylinder3{CenterXY: vmath.XY(jitter.Mul(-1)), Radius: 1, MinZ: -1, MaxZ: 1},
			NewOBB3(jitter.Mul(0.5), Vec3{1, 1, 1}, vmath.EulerAngles{Yaw: 45}),
			Plane3{Normal: vmath.AxisZ, Dist: jitter[2]},
		}
		for _, a := range list {
			for _, b := range list {
				require.Equal(t, Overlap3(a, b), Overlap3(b, a), "%T/%T", a, b)
			}
		}
	}
}

func TestOverlap3Pairs(t *testing.T) {
	unit := AABB3{Mins: Vec3{-1, -1, -1}, Maxs: Vec3{1, 1, 1}}
	tests := []struct {
		name string
		a, b Shape3
		want bool
	}{
		{"sphere/sphere touching", Sphere3{Radius: 1}, Sphere3{Pos: Vec3{2, 0, 0}, Radius: 1}, true},
		{"sphere/aabb corner miss", Sphere3{Pos: Vec3{2, 2, 2}, Radius: 1.5}, unit, false},
		{"sphere/aabb face hit", Sphere3{Pos: Vec3{2, 0, 0}, Radius: 1.5}, unit, true},
		{"sphere/plane", Sphere3{Pos: Vec3{0, 0, 3}, Radius: 1}, Plane3{Normal: vmath.AxisZ, Dist: 2.5}, true},
		{"sphere/cylinder", Sphere3{Pos: Vec3{0, 0, 3}, Radius: 0.9}, ZCylinder3{Radius: 1, MinZ: 0, MaxZ: 2}, false},
		{"aabb/aabb", unit, AABB3{Mins: Vec3{0.5, 0.5, 0.5}, Maxs: Vec3{3, 3, 3}}, true},
		{"aabb/plane above", unit, Plane3{Normal: vmath.AxisZ, Dist: 1.5}, false},
		{"aabb/tilted plane", unit, Plane3{Normal: vmath.Normalize3(Vec3{1, 1, 1}), Dist: 1.7}, true},
		{"cylinder/aabb", ZCylinder3{CenterXY: Vec2{1.5, 0}, Radius: 0.6, MinZ: 0, MaxZ: 1}, unit, true},
		{"cylinder/cylinder z gap", ZCylinder3{Radius: 1, MinZ: 0, MaxZ: 1}, ZCylinder3{Radius: 1, MinZ: 1.1, MaxZ: 2}, false},
		{"obb/plane", NewOBB3(Vec3{0, 0, 1.2}, Vec3{1, 1, 1}, vmath.EulerAngles{Pitch: 45}), Plane3{Normal: vmath.AxisZ}, true},
		{"obb/obb undefined", NewOBB3(Vec3{}, Vec3{1, 1, 1}, vmath.EulerAngles{}), NewOBB3(Vec3{}, Vec3{1, 1, 1}, vmath.EulerAngles{}), false},
		{"cylinder/plane undefined", ZCylinder3{Radius: 1, MaxZ: 1}, Plane3{Normal: vmath.AxisZ, Dist: 0.5}, false},
		{"plane/plane undefined", Plane3{Normal: vmath.AxisZ}, Plane3{Normal: vmath.AxisX}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlap3(tt.a, tt.b))
		})
	}
}

func TestRaycast3Monotonicity(t *testing.T) {
	start := Vec3{-10, 0.3, 0.2}
	for name, s := range shapes3() {
		t.Run(name, func(t *testing.T) {
			dir := s.Center().Sub(start)
			full := s.Raycast(NewRay3(start, dir, 100))
			require.True(t, full.DidImpact)
			assert.LessOrEqual(t, full.ImpactDist, 100.0)
			assert.InDelta(t, 1.0, full.ImpactNormal.Len(), 1e-9)
			assert.Less(t, full.ImpactNormal.Dot(full.Ray.Forward), 0.0)

			short := s.Raycast(NewRay3(start, dir, full.ImpactDist-1e-6))
			assert.False(t, short.DidImpact)
		})
	}
}

func TestRaycast3Cases(t *testing.T) {
	cyl := ZCylinder3{Radius: 1, MinZ: 0, MaxZ: 2}

	top := cyl.Raycast(NewRay3(Vec3{0, 0, 5}, Vec3{0, 0, -1}, 10))
	require.True(t, top.DidImpact)
	assert.InDelta(t, 3.0, top.ImpactDist, eps)
	assert.Equal(t, Vec3{0, 0, 1}, top.ImpactNormal)

	side := cyl.Raycast(NewRay3(Vec3{-5, 0, 1}, Vec3{1, 0, 0}, 10))
	require.True(t, side.DidImpact)
	assert.InDelta(t, 4.0, side.ImpactDist, eps)

	over := cyl.Raycast(NewRay3(Vec3{-5, 0, 3}, Vec3{1, 0, 0}, 10))
	assert.False(t, over.DidImpact)

	inside := Sphere3{Radius: 1}.Raycast(NewRay3(Vec3{}, Vec3{0, 1, 0}, 5))
	require.True(t, inside.DidImpact)
	assert.Zero(t, inside.ImpactDist)
	assert.Equal(t, Vec3{0, -1, 0}, inside.ImpactNormal)

	parallel := Plane3{Normal: vmath.AxisZ}.Raycast(NewRay3(Vec3{0, 0, 1}, Vec3{1, 0, 0}, 100))
	assert.False(t, parallel.DidImpact)

	below := Plane3{Normal: vmath.AxisZ}.Raycast(NewRay3(Vec3{0, 0, -2}, Vec3{0, 0, 1}, 100))
	require.True(t, below.DidImpact)
	assert.Equal(t, Vec3{0, 0, -1}, below.ImpactNormal)
}

func TestRaycastNearest3D(t *testing.T) {
	list := []Shape3{
		Sphere3{Pos: Vec3{10, 0, 0}, Radius: 1},
		AABB3{Mins: Vec3{4, -1, -1}, Maxs: Vec3{5, 1, 1}},
	}
	r, idx := RaycastNearest3D(NewRay3(Vec3{}, Vec3{1, 0, 0}, 50), list)
	require.True(t, r.DidImpact)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 4.0, r.ImpactDist, eps)
}
