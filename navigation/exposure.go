package navigation

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/geomlab/vmath"
)

// ExposureMap scores each open cell by how far it is from cells hidden from every sentinel
// Exposed cells hold positive distances from the nearest hidden cell, hidden cells bordering
// exposure hold 0 and deeper hidden cells hold HeatSpecialNeg. Solid cells hold HeatSpecial
type ExposureMap struct {
	Heat       *TileHeatMap
	SightRange float64

	// Row fan-out width for the raycast pass, <=0 uses GOMAXPROCS
	Workers int
}

func NewExposureMap(dims vmath.IntVec2, sightRange float64) (*ExposureMap, error) {
	heat, err := NewTileHeatMap(dims, HeatUnexposed)
	if err != nil {
		return nil, err
	}
	return &ExposureMap{Heat: heat, SightRange: sightRange}, nil
}

// Compute rebuilds the map for the given sentinels
// Rows are raycast in parallel; each worker writes only its own row so output is deterministic
func (e *ExposureMap) Compute(ctx context.Context, grid *TileGrid, sentinels []vmath.Vec2) error {
	if grid.Dims != e.Heat.Dims {
		return fmt.Errorf("%w: grid %v does not match exposure map %v", ErrInvalidDimensions, grid.Dims, e.Heat.Dims)
	}
	e.Heat.SetAll(HeatUnexposed)

	workers := e.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for y := 0; y < grid.Dims.Y; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			e.computeRow(grid, sentinels, y)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("exposure raycast: %w", err)
	}

	e.Heat.SpreadHeat(HeatUnexposed, 1, grid.IsSolid)
	for i, v := range e.Heat.Values {
		if v == HeatUnexposed {
			e.Heat.Values[i] = HeatSpecialNeg
		}
	}
	e.Heat.SpreadHeat(HeatUnexposed+1, -1, grid.IsSolid)
	return nil
}

func (e *ExposureMap) computeRow(grid *TileGrid, sentinels []vmath.Vec2, y int) {
	for x := 0; x < grid.Dims.X; x++ {
		idx := e.Heat.Index(x, y)
		if grid.IsSolid(x, y) {
			e.Heat.Values[idx] = HeatSpecial
			continue
		}
		center := grid.TileCenter(x, y)
		for _, s := range sentinels {
			disp := center.Sub(s)
			r := grid.FastVoxelRaycast(s, vmath.Normalize2(disp), disp.Len())
			if !r.DidImpact && r.ImpactDist <= e.SightRange {
				e.Heat.Values[idx] = HeatExposed
				break
			}
		}
	}
}

// IsVisible reports whether any sentinel has an unobstructed line to pos within sight range
func (e *ExposureMap) IsVisible(grid *TileGrid, sentinels []vmath.Vec2, pos vmath.Vec2) bool {
	for _, s := range sentinels {
		disp := pos.Sub(s)
		r := grid.FastVoxelRaycast(s, vmath.Normalize2(disp), disp.Len())
		if !r.DidImpact && r.ImpactDist <= e.SightRange {
			return true
		}
	}
	return false
}
