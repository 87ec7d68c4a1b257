package navigation

import (
	"fmt"
	"math"

	"github.com/lixenwraith/geomlab/vmath"
)

// Neighbour order for flow derivation: cardinals first, then diagonals
// Index: N=0, S=1, E=2, W=3, NE=4, NW=5, SW=6, SE=7 (+Y is north)
var DirVectors = [8]vmath.IntVec2{
	{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0},
	{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1},
}

// Flanking cardinal indices per diagonal; a diagonal is unreachable when both are impassable
var diagonalFlanks = [4][2]int{
	{0, 2}, // NE: N, E
	{0, 3}, // NW: N, W
	{1, 3}, // SW: S, W
	{1, 2}, // SE: S, E
}

// TileVectorField stores one direction per cell, row-major
type TileVectorField struct {
	Dims   vmath.IntVec2
	Values []vmath.Vec2
}

func NewTileVectorField(dims vmath.IntVec2) (*TileVectorField, error) {
	if dims.X <= 0 || dims.Y <= 0 {
		return nil, fmt.Errorf("%w: dims=%v", ErrInvalidDimensions, dims)
	}
	return &TileVectorField{Dims: dims, Values: make([]vmath.Vec2, dims.Area())}, nil
}

func (f *TileVectorField) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Dims.X && y < f.Dims.Y
}

// At returns the stored direction, zero out of bounds
func (f *TileVectorField) At(x, y int) vmath.Vec2 {
	if !f.InBounds(x, y) {
		return vmath.Vec2{}
	}
	return f.Values[x+f.Dims.X*y]
}

// BuildFlowField derives a steepest-descent direction per cell from a completed distance field
// Out-of-bounds or solid cardinals are impassable. Diagonals are skipped when both flanking
// cardinals are impassable so flow never cuts through a solid corner. Only strictly descending
// neighbours are chosen; minima and unreachable cells get the zero vector
func BuildFlowField(distance *TileHeatMap, isSolid SolidChecker) *TileVectorField {
	f := &TileVectorField{Dims: distance.Dims, Values: make([]vmath.Vec2, distance.NumTiles())}
	f.Rebuild(distance, isSolid)
	return f
}

// Rebuild recomputes directions in place, dims must match distance
func (f *TileVectorField) Rebuild(distance *TileHeatMap, isSolid SolidChecker) {
	if f.Dims != distance.Dims {
		panic(fmt.Sprintf("navigation: vector field %v does not match heat map %v", f.Dims, distance.Dims))
	}
	blocked := func(x, y int) bool {
		return !distance.InBounds(x, y) || (isSolid != nil && isSolid(x, y))
	}

	for y := 0; y < f.Dims.Y; y++ {
		for x := 0; x < f.Dims.X; x++ {
			current := distance.Values[distance.Index(x, y)]
			best := -1
			minDelta := 0.0

			var impassable [4]bool
			for i := 0; i < 4; i++ {
				nx, ny := x+DirVectors[i].X, y+DirVectors[i].Y
				if blocked(nx, ny) {
					impassable[i] = true
					continue
				}
				if delta := distance.Values[distance.Index(nx, ny)] - current; delta < minDelta {
					best, minDelta = i, delta
				}
			}

			for i := 4; i < 8; i++ {
				flank := diagonalFlanks[i-4]
				if impassable[flank[0]] && impassable[flank[1]] {
					continue
				}
				nx, ny := x+DirVectors[i].X, y+DirVectors[i].Y
				if !distance.InBounds(nx, ny) {
					continue
				}
				if delta := distance.Values[distance.Index(nx, ny)] - current; delta < minDelta {
					best, minDelta = i, delta
				}
			}

			var dir vmath.Vec2
			if best >= 0 {
				dir = vmath.Normalize2(DirVectors[best].ToVec2())
			}
			f.Values[x+f.Dims.X*y] = dir
		}
	}
}

// safeValue applies the off-grid boundary rule: corners point diagonally inward,
// edges point axis-aligned inward, anything further out is zero
func (f *TileVectorField) safeValue(x, y int) vmath.Vec2 {
	if f.InBounds(x, y) {
		return f.Values[x+f.Dims.X*y]
	}
	w, h := f.Dims.X, f.Dims.Y
	inX := x >= 0 && x < w
	inY := y >= 0 && y < h

	var dx, dy float64
	switch {
	case x == -1:
		dx = 1
	case x == w:
		dx = -1
	case !inX:
		return vmath.Vec2{}
	}
	switch {
	case y == -1:
		dy = 1
	case y == h:
		dy = -1
	case !inY:
		return vmath.Vec2{}
	}
	return vmath.Normalize2(vmath.Vec2{dx, dy})
}

// SampleBilinear blends the four cell directions surrounding a world position and normalizes
// Positions up to one cell off the grid use the boundary rule so actors steer back inward
func (f *TileVectorField) SampleBilinear(grid *TileGrid, world vmath.Vec2) vmath.Vec2 {
	p := world.Sub(grid.Origin).Mul(1 / grid.CellSize).Sub(vmath.Vec2{0.5, 0.5})
	fx, fy := math.Floor(p[0]), math.Floor(p[1])
	x0, y0 := int(fx), int(fy)
	tx, ty := p[0]-fx, p[1]-fy

	bl := f.safeValue(x0, y0)
	br := f.safeValue(x0+1, y0)
	tl := f.safeValue(x0, y0+1)
	tr := f.safeValue(x0+1, y0+1)

	bottom := vmath.Lerp2(bl, br, tx)
	top := vmath.Lerp2(tl, tr, tx)
	return vmath.Normalize2(vmath.Lerp2(bottom, top, ty))
}
