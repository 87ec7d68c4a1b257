package navigation

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/vmath"
)

func mustGrid(t *testing.T, w, h int, cell float64, origin vmath.Vec2) *TileGrid {
	t.Helper()
	g, err := NewTileGrid(vmath.IntVec2{X: w, Y: h}, cell, origin)
	require.NoError(t, err)
	return g
}

func TestInvalidDimensions(t *testing.T) {
	_, err := NewTileGrid(vmath.IntVec2{X: 0, Y: 3}, 1, vmath.Vec2{})
	require.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewTileGrid(vmath.IntVec2{X: 3, Y: 3}, 0, vmath.Vec2{})
	require.ErrorIs(t, err, ErrInvalidDimensions)
	_, err = NewTileHeatMap(vmath.IntVec2{X: -1, Y: 1}, 0)
	require.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestTileCoordsAndCenters(t *testing.T) {
	g := mustGrid(t, 50, 25, 28, vmath.Vec2{100, 50})
	assert.Equal(t, vmath.IntVec2{X: 0, Y: 0}, g.TileCoords(vmath.Vec2{100, 50}))
	assert.Equal(t, vmath.IntVec2{X: -1, Y: 0}, g.TileCoords(vmath.Vec2{99.9, 60}))
	assert.Equal(t, vmath.Vec2{114, 64}, g.TileCenter(0, 0))
	assert.Equal(t, vmath.IntVec2{X: 3, Y: 7}, g.TileCoords(g.TileCenter(3, 7)))
	assert.False(t, g.IsSolid(-1, 0), "out of bounds is open")
}

func TestSpreadHeatThreeByTwo(t *testing.T) {
	h, err := NewTileHeatMap(vmath.IntVec2{X: 3, Y: 2}, HeatSpecial)
	require.NoError(t, err)
	h.Set(0, 0, 0)

	passes := h.SpreadHeat(0, 1, nil)
	assert.Equal(t, []float64{0, 1, 2, 1, 2, 3}, h.Values)
	// Levels 0..3 each find cells, level 4 finds none
	assert.Equal(t, 5, passes)
}

func TestSpreadHeatRespectsSolids(t *testing.T) {
	g := mustGrid(t, 3, 3, 1, vmath.Vec2{})
	g.SetSolid(1, 0, true)
	g.SetSolid(1, 1, true)

	h, err := NewTileHeatMap(g.Dims, HeatSpecial)
	require.NoError(t, err)
	h.Set(0, 0, 0)
	h.SpreadHeat(0, 1, g.IsSolid)

	assert.Equal(t, HeatSpecial, h.At(1, 0), "solid cell untouched")
	assert.Equal(t, HeatSpecial, h.At(1, 1), "solid cell untouched")
	assert.Equal(t, 2.0, h.At(0, 2))
	assert.Equal(t, 3.0, h.At(1, 2))
	assert.Equal(t, 6.0, h.At(2, 0), "path goes around the wall")
}

func TestSpreadHeatDecreasing(t *testing.T) {
	h, err := NewTileHeatMap(vmath.IntVec2{X: 4, Y: 1}, -10)
	require.NoError(t, err)
	h.Set(0, 0, 5)
	h.SpreadHeat(5, -1, nil)
	assert.Equal(t, []float64{5, 4, 3, 2}, h.Values)
}

func TestRangeExcluding(t *testing.T) {
	h := &TileHeatMap{Dims: vmath.IntVec2{X: 4, Y: 1}, Values: []float64{HeatSpecial, 3, -1, 7}}
	lo, hi := h.RangeExcluding(HeatSpecial)
	assert.Equal(t, -1.0, lo)
	assert.Equal(t, 7.0, hi)
}

func TestFlowFieldCornerAvoidance(t *testing.T) {
	g := mustGrid(t, 3, 3, 1, vmath.Vec2{})
	for _, c := range []vmath.IntVec2{{X: 1, Y: 0}, {X: 1, Y: 2}, {X: 0, Y: 1}, {X: 2, Y: 1}} {
		g.SetSolid(c.X, c.Y, true)
	}

	// Corners are strictly lower than the center, but reachable only through solid orthogonals
	h := &TileHeatMap{Dims: g.Dims, Values: []float64{
		0, HeatSpecial, 0,
		HeatSpecial, 5, HeatSpecial,
		0, HeatSpecial, 0,
	}}
	f := BuildFlowField(h, g.IsSolid)
	assert.Equal(t, vmath.Vec2{}, f.At(1, 1))
}

func TestFlowFieldDiagonalAllowedWithOpenFlank(t *testing.T) {
	g := mustGrid(t, 3, 3, 1, vmath.Vec2{})
	g.SetSolid(2, 1, true) // east blocked, north open

	h := &TileHeatMap{Dims: g.Dims, Values: []float64{
		9, 9, 9,
		9, 5, HeatSpecial,
		9, 9, 0,
	}}
	f := BuildFlowField(h, g.IsSolid)
	want := vmath.Normalize2(vmath.Vec2{1, 1})
	assert.True(t, f.At(1, 1).ApproxEqualThreshold(want, 1e-12))
}

func TestFlowFieldSteepestDescent(t *testing.T) {
	g := mustGrid(t, 3, 3, 1, vmath.Vec2{})
	c, err := NewFlowFieldCache(g, 0)
	require.NoError(t, err)
	require.True(t, c.Update([]vmath.IntVec2{{X: 2, Y: 2}}))

	assert.Equal(t, []float64{4, 3, 2, 3, 2, 1, 2, 1, 0}, c.Distance.Values)
	assert.True(t, c.Direction(1, 1).ApproxEqualThreshold(vmath.Normalize2(vmath.Vec2{1, 1}), 1e-12))
	assert.Equal(t, vmath.Vec2{}, c.Direction(2, 2), "goal is a minimum")
	// First strictly lowest neighbour wins; north comes before east
	assert.Equal(t, vmath.Vec2{0, 1}, c.Direction(2, 0))
}

func TestSampleBilinearBoundaryRule(t *testing.T) {
	g := mustGrid(t, 2, 2, 10, vmath.Vec2{})
	f, err := NewTileVectorField(g.Dims)
	require.NoError(t, err)
	for i := range f.Values {
		f.Values[i] = vmath.Vec2{1, 0}
	}

	inside := f.SampleBilinear(g, vmath.Vec2{10, 10})
	assert.True(t, inside.ApproxEqualThreshold(vmath.Vec2{1, 0}, 1e-12))

	corner := f.SampleBilinear(g, vmath.Vec2{-5, -5})
	assert.True(t, corner.ApproxEqualThreshold(vmath.Normalize2(vmath.Vec2{1, 1}), 1e-12), "corner %v", corner)

	topRight := f.SampleBilinear(g, vmath.Vec2{25, 25})
	assert.True(t, topRight.ApproxEqualThreshold(vmath.Normalize2(vmath.Vec2{-1, -1}), 1e-12))

	leftEdge := f.SampleBilinear(g, vmath.Vec2{-5, 15})
	assert.True(t, leftEdge.ApproxEqualThreshold(vmath.Vec2{1, 0}, 1e-12))

	bottomEdge := f.SampleBilinear(g, vmath.Vec2{5, -5})
	assert.True(t, bottomEdge.ApproxEqualThreshold(vmath.Vec2{0, 1}, 1e-12), "edge row points inward")

	assert.Equal(t, vmath.Vec2{}, f.SampleBilinear(g, vmath.Vec2{-50, 15}), "far off grid")
	assert.Equal(t, vmath.Vec2{0, 1}, f.safeValue(0, -1))
	assert.Equal(t, vmath.Vec2{0, -1}, f.safeValue(1, 2))
	assert.Equal(t, vmath.Vec2{-1, 0}, f.safeValue(2, 0))
}

// bruteVoxelRaycast tests every solid cell as a box and keeps the nearest entry
func bruteVoxelRaycast(g *TileGrid, start, fwd vmath.Vec2, length float64) geometry.RaycastResult2D {
	ray := geometry.Ray2{Start: start, Forward: fwd, MaxLength: length}
	best := geometry.RaycastResult2D{Ray: ray, ImpactDist: length}
	for y := 0; y < g.Dims.Y; y++ {
		for x := 0; x < g.Dims.X; x++ {
			if !g.IsSolid(x, y) {
				continue
			}
			mins, maxs := g.TileBounds(x, y)
			r := geometry.AABB2{Mins: mins, Maxs: maxs}.Raycast(ray)
			if r.DidImpact && (!best.DidImpact || r.ImpactDist < best.ImpactDist) {
				best = r
			}
		}
	}
	return best
}

func TestFastVoxelRaycastMatchesBruteForce(t *testing.T) {
	g := mustGrid(t, 12, 9, 1.5, vmath.Vec2{-3, 2})
	rng := vmath.NewRand(1234)
	g.RandomizeSolids(rng, 0.25)

	size := g.WorldSize()
	hits, misses, startSolid := 0, 0, 0
	for i := 0; i < 2000; i++ {
		start := vmath.Vec2{
			g.Origin[0] + rng.FloatInRange(-2, size[0]+2),
			g.Origin[1] + rng.FloatInRange(-2, size[1]+2),
		}
		fwd := vmath.FromPolarDegrees(rng.FloatInRange(0, 360), 1)
		length := rng.FloatInRange(0, 15)

		got := g.FastVoxelRaycast(start, fwd, length)
		want := bruteVoxelRaycast(g, start, fwd, length)

		require.Equal(t, want.DidImpact, got.DidImpact, "ray %d start=%v fwd=%v len=%g", i, start, fwd, length)
		require.InDelta(t, want.ImpactDist, got.ImpactDist, 1e-9, "ray %d", i)
		if got.DidImpact {
			require.True(t, want.ImpactNormal.ApproxEqualThreshold(got.ImpactNormal, 1e-9), "ray %d normal", i)
			require.LessOrEqual(t, got.ImpactDist, length)
			hits++
			if got.ImpactDist == 0 {
				startSolid++
			}
		} else {
			misses++
		}
	}
	assert.Positive(t, hits)
	assert.Positive(t, misses)
	assert.Positive(t, startSolid)
}

func TestFastVoxelRaycastCases(t *testing.T) {
	g := mustGrid(t, 5, 5, 1, vmath.Vec2{})
	g.SetSolid(3, 2, true)

	r := g.FastVoxelRaycast(vmath.Vec2{0.5, 2.5}, vmath.Vec2{1, 0}, 10)
	require.True(t, r.DidImpact)
	assert.InDelta(t, 2.5, r.ImpactDist, 1e-12)
	assert.Equal(t, vmath.Vec2{-1, 0}, r.ImpactNormal)
	assert.True(t, r.ImpactPos.ApproxEqualThreshold(vmath.Vec2{3, 2.5}, 1e-12))

	short := g.FastVoxelRaycast(vmath.Vec2{0.5, 2.5}, vmath.Vec2{1, 0}, 2.4)
	assert.False(t, short.DidImpact)
	assert.Equal(t, 2.4, short.ImpactDist)

	inside := g.FastVoxelRaycast(vmath.Vec2{3.2, 2.2}, vmath.Vec2{0, 1}, 10)
	require.True(t, inside.DidImpact)
	assert.Zero(t, inside.ImpactDist)
	assert.Equal(t, vmath.Vec2{3.2, 2.2}, inside.ImpactPos)
	assert.True(t, inside.ImpactNormal.ApproxEqualThreshold(vmath.Vec2{0, -1}, 1e-12))

	zero := g.FastVoxelRaycast(vmath.Vec2{0.5, 0.5}, vmath.Vec2{}, 3)
	assert.False(t, zero.DidImpact)
	assert.False(t, math.IsNaN(zero.ImpactDist))
}

func TestExposureLine(t *testing.T) {
	g := mustGrid(t, 4, 1, 10, vmath.Vec2{})
	e, err := NewExposureMap(g.Dims, 12)
	require.NoError(t, err)
	e.Workers = 2

	require.NoError(t, e.Compute(context.Background(), g, []vmath.Vec2{{5, 5}}))
	assert.Equal(t, []float64{2, 1, 0, -1}, e.Heat.Values)
}

func TestExposureWall(t *testing.T) {
	g := mustGrid(t, 5, 1, 10, vmath.Vec2{})
	g.SetSolid(2, 0, true)
	e, err := NewExposureMap(g.Dims, 1000)
	require.NoError(t, err)

	require.NoError(t, e.Compute(context.Background(), g, []vmath.Vec2{{5, 5}}))
	assert.Equal(t, []float64{HeatExposed, HeatExposed, HeatSpecial, HeatSpecialNeg, HeatSpecialNeg}, e.Heat.Values)
	assert.False(t, e.IsVisible(g, []vmath.Vec2{{5, 5}}, vmath.Vec2{45, 5}))
	assert.True(t, e.IsVisible(g, []vmath.Vec2{{5, 5}}, vmath.Vec2{15, 5}))
}

func TestExposureOpenGridHasNoNegatives(t *testing.T) {
	g := mustGrid(t, 6, 6, 10, vmath.Vec2{})
	e, err := NewExposureMap(g.Dims, 1000)
	require.NoError(t, err)

	require.NoError(t, e.Compute(context.Background(), g, []vmath.Vec2{{30, 30}}))
	for i, v := range e.Heat.Values {
		require.Equal(t, HeatExposed, v, "cell %d", i)
	}
}

func TestExposureCancelled(t *testing.T) {
	g := mustGrid(t, 6, 6, 10, vmath.Vec2{})
	e, err := NewExposureMap(g.Dims, 1000)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, e.Compute(ctx, g, []vmath.Vec2{{30, 30}}), context.Canceled)
}

func TestFlowFieldCacheRecompute(t *testing.T) {
	g := mustGrid(t, 4, 4, 1, vmath.Vec2{})
	c, err := NewFlowFieldCache(g, 3)
	require.NoError(t, err)
	goals := []vmath.IntVec2{{X: 0, Y: 0}}

	require.True(t, c.Update(goals), "first update computes")
	require.False(t, c.Update(goals), "unchanged fingerprint")

	g.SetSolid(1, 1, true)
	require.True(t, c.Update(goals), "solid layout changed")
	assert.Equal(t, HeatSpecial, c.Distance.At(1, 1))

	require.True(t, c.Update([]vmath.IntVec2{{X: 3, Y: 3}}), "goal set changed")
	assert.Equal(t, []vmath.IntVec2{{X: 3, Y: 3}}, c.LastGoals)

	c.MarkDirty()
	goals = c.LastGoals
	assert.False(t, c.Update(goals))
	assert.False(t, c.Update(goals))
	assert.True(t, c.Update(goals), "dirty request honoured after throttle")
}

func TestActorsFollowFieldAndTeleport(t *testing.T) {
	g := mustGrid(t, 5, 1, 10, vmath.Vec2{})
	c, err := NewFlowFieldCache(g, 0)
	require.NoError(t, err)
	goals := []vmath.IntVec2{{X: 4, Y: 0}}
	starts := []vmath.IntVec2{{X: 0, Y: 0}}
	require.True(t, c.Update(goals))

	rng := vmath.NewRand(3)
	a, ok := SpawnActor(g, starts, rng, 50, 80)
	require.True(t, ok)
	assert.Equal(t, vmath.Vec2{5, 5}, a.Position)

	before := a.Position[0]
	a.Advance(c, 0.1)
	assert.Greater(t, a.Position[0], before)
	assert.InDelta(t, 0.0, a.OrientationDegrees, 1e-9)

	actors := []FlowActor{{Position: g.TileCenter(4, 0).Add(vmath.Vec2{1, 0})}, {Position: vmath.Vec2{25, 5}}}
	moved := TeleportArrived(g, actors, starts, goals, 3.5, rng)
	assert.Equal(t, 1, moved)
	assert.Equal(t, g.TileCenter(0, 0), actors[0].Position)
	assert.Equal(t, vmath.Vec2{25, 5}, actors[1].Position)

	_, ok = SpawnActor(g, nil, rng, 50, 80)
	assert.False(t, ok)
	assert.Zero(t, TeleportArrived(g, actors, nil, goals, 100, rng))
}
