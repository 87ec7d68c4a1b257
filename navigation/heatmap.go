package navigation

import (
	"fmt"
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

// Heat sentinels shared by the distance and exposure fields
const (
	HeatSpecial    = 999999.0 // unreached; solid cells holding it are shielded by the SolidChecker
	HeatExit       = 0.0
	HeatUnexposed  = 0.0
	HeatExposed    = 10000.0
	HeatSpecialNeg = -1.0 // lower bound of the reverse exposure spread
)

// TileHeatMap is a row-major scalar field over grid cells
type TileHeatMap struct {
	Dims   vmath.IntVec2
	Values []float64
}

// NewTileHeatMap fills every cell with initial
func NewTileHeatMap(dims vmath.IntVec2, initial float64) (*TileHeatMap, error) {
	if dims.X <= 0 || dims.Y <= 0 {
		return nil, fmt.Errorf("%w: dims=%v", ErrInvalidDimensions, dims)
	}
	h := &TileHeatMap{Dims: dims, Values: make([]float64, dims.Area())}
	h.SetAll(initial)
	return h, nil
}

func (h *TileHeatMap) NumTiles() int {
	return len(h.Values)
}

func (h *TileHeatMap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < h.Dims.X && y < h.Dims.Y
}

func (h *TileHeatMap) Index(x, y int) int {
	return x + h.Dims.X*y
}

// At returns the value at (x,y); out-of-bounds coordinates clamp to the nearest edge cell
func (h *TileHeatMap) At(x, y int) float64 {
	x = vmath.ClampInt(x, 0, h.Dims.X-1)
	y = vmath.ClampInt(y, 0, h.Dims.Y-1)
	return h.Values[h.Index(x, y)]
}

// Set ignores out-of-bounds coordinates
func (h *TileHeatMap) Set(x, y int, v float64) {
	if h.InBounds(x, y) {
		h.Values[h.Index(x, y)] = v
	}
}

func (h *TileHeatMap) SetAll(v float64) {
	for i := range h.Values {
		h.Values[i] = v
	}
}

// RangeExcluding returns min and max over values not equal to special, (0,0) if none remain
func (h *TileHeatMap) RangeExcluding(special float64) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range h.Values {
		if v == special {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}

// Four-connected neighbour order used by spreading
var spreadDirs = [4]vmath.IntVec2{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// SpreadHeat relaxes the field level by level from cells holding startValue
// Each pass scans the whole grid for cells equal to the current level and writes level+step into
// 4-connected neighbours that are not solid and hold a worse value (greater when step > 0, smaller
// when step < 0). The level then advances by step; spreading stops after a pass finds no cell at the
// current level. Cost is O(levels * cells). Returns the number of passes performed
func (h *TileHeatMap) SpreadHeat(startValue, step float64, isSolid SolidChecker) int {
	if step == 0 {
		return 0
	}
	increasing := step > 0
	level := startValue
	passes := 0

	for spreading := true; spreading; level += step {
		spreading = false
		passes++
		next := level + step

		for y := 0; y < h.Dims.Y; y++ {
			for x := 0; x < h.Dims.X; x++ {
				if h.Values[h.Index(x, y)] != level {
					continue
				}
				spreading = true

				for _, d := range spreadDirs {
					nx, ny := x+d.X, y+d.Y
					if !h.InBounds(nx, ny) {
						continue
					}
					if isSolid != nil && isSolid(nx, ny) {
						continue
					}
					ni := h.Index(nx, ny)
					if increasing && h.Values[ni] <= next {
						continue
					}
					if !increasing && h.Values[ni] >= next {
						continue
					}
					h.Values[ni] = next
				}
			}
		}
	}
	return passes
}
