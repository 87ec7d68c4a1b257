package navigation

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/geomlab/vmath"
)

var ErrInvalidDimensions = errors.New("grid dimensions and cell size must be positive")

// SolidChecker returns true if the cell blocks propagation, out-of-bounds cells are never solid
type SolidChecker func(x, y int) bool

// TileGrid places a width x height grid of square cells in world space and tracks solid cells
// Cell (0,0) has its min corner at Origin
type TileGrid struct {
	Dims     vmath.IntVec2
	CellSize float64
	Origin   vmath.Vec2

	solid []bool
}

// NewTileGrid creates an all-open grid
func NewTileGrid(dims vmath.IntVec2, cellSize float64, origin vmath.Vec2) (*TileGrid, error) {
	if dims.X <= 0 || dims.Y <= 0 || !(cellSize > 0) {
		return nil, fmt.Errorf("%w: dims=%v cell=%g", ErrInvalidDimensions, dims, cellSize)
	}
	return &TileGrid{
		Dims:     dims,
		CellSize: cellSize,
		Origin:   origin,
		solid:    make([]bool, dims.Area()),
	}, nil
}

// NumTiles returns width*height
func (g *TileGrid) NumTiles() int {
	return len(g.solid)
}

func (g *TileGrid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Dims.X && y < g.Dims.Y
}

// Index is row-major x + width*y
func (g *TileGrid) Index(x, y int) int {
	return x + g.Dims.X*y
}

// IsSolid is the grid's SolidChecker
func (g *TileGrid) IsSolid(x, y int) bool {
	return g.InBounds(x, y) && g.solid[g.Index(x, y)]
}

// SetSolid ignores out-of-bounds coordinates
func (g *TileGrid) SetSolid(x, y int, solid bool) {
	if g.InBounds(x, y) {
		g.solid[g.Index(x, y)] = solid
	}
}

func (g *TileGrid) ClearSolids() {
	clear(g.solid)
}

// RandomizeSolids marks each cell solid with probability p
func (g *TileGrid) RandomizeSolids(rng *vmath.Rand, p float64) {
	for i := range g.solid {
		g.solid[i] = rng.Chance(p)
	}
}

// Solids exposes the backing solid flags, row-major
func (g *TileGrid) Solids() []bool {
	return g.solid
}

// TileCoords returns the cell containing a world position, possibly out of bounds
func (g *TileGrid) TileCoords(world vmath.Vec2) vmath.IntVec2 {
	return vmath.IntVec2{
		X: vmath.FloorToInt((world[0] - g.Origin[0]) / g.CellSize),
		Y: vmath.FloorToInt((world[1] - g.Origin[1]) / g.CellSize),
	}
}

// TileCenter returns the world position of a cell center
func (g *TileGrid) TileCenter(x, y int) vmath.Vec2 {
	return vmath.Vec2{
		(float64(x)+0.5)*g.CellSize + g.Origin[0],
		(float64(y)+0.5)*g.CellSize + g.Origin[1],
	}
}

// TileBounds returns the world-space min and max corners of a cell
func (g *TileGrid) TileBounds(x, y int) (vmath.Vec2, vmath.Vec2) {
	mins := vmath.Vec2{float64(x)*g.CellSize + g.Origin[0], float64(y)*g.CellSize + g.Origin[1]}
	return mins, mins.Add(vmath.Vec2{g.CellSize, g.CellSize})
}

// WorldSize returns the grid extent in world units
func (g *TileGrid) WorldSize() vmath.Vec2 {
	return vmath.Vec2{float64(g.Dims.X) * g.CellSize, float64(g.Dims.Y) * g.CellSize}
}
