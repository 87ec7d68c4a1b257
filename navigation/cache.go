package navigation

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/lixenwraith/geomlab/vmath"
)

// FlowFieldCache owns a distance field and flow field for one grid and rebuilds them when
// the solid layout or goal set changes
type FlowFieldCache struct {
	Grid     *TileGrid
	Distance *TileHeatMap
	Flow     *TileVectorField

	// Recomputation throttling
	LastGoals              []vmath.IntVec2
	TicksSinceCompute      int
	MinTicksBetweenCompute int

	// PendingUpdate latches true on MarkDirty, cleared after compute
	PendingUpdate bool
	Valid         bool

	fingerprint uint64
	scratch     []byte
}

// NewFlowFieldCache creates a cache that computes on its first Update
func NewFlowFieldCache(grid *TileGrid, minTicks int) (*FlowFieldCache, error) {
	dist, err := NewTileHeatMap(grid.Dims, HeatSpecial)
	if err != nil {
		return nil, err
	}
	flow, err := NewTileVectorField(grid.Dims)
	if err != nil {
		return nil, err
	}
	return &FlowFieldCache{
		Grid:                   grid,
		Distance:               dist,
		Flow:                   flow,
		LastGoals:              make([]vmath.IntVec2, 0, 8),
		TicksSinceCompute:      minTicks, // Allow immediate first compute
		MinTicksBetweenCompute: minTicks,
		PendingUpdate:          true,
	}, nil
}

// Fingerprint hashes grid dimensions, solid layout and goals
func (c *FlowFieldCache) Fingerprint(goals []vmath.IntVec2) uint64 {
	buf := c.scratch[:0]
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.Grid.Dims.X))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(c.Grid.Dims.Y))
	for _, s := range c.Grid.Solids() {
		if s {
			buf = append(buf, 1)
		} else {
			buf = append(buf, 0)
		}
	}
	for _, g := range goals {
		buf = binary.LittleEndian.AppendUint32(buf, uint32(g.X))
		buf = binary.LittleEndian.AppendUint32(buf, uint32(g.Y))
	}
	c.scratch = buf
	return xxhash.Sum64(buf)
}

// Update recomputes when the fingerprint changed, or when a MarkDirty request has waited
// MinTicksBetweenCompute ticks. Returns true if the fields were recomputed this tick
func (c *FlowFieldCache) Update(goals []vmath.IntVec2) bool {
	c.TicksSinceCompute++

	if fp := c.Fingerprint(goals); fp != c.fingerprint {
		c.PendingUpdate = true
		c.TicksSinceCompute = c.MinTicksBetweenCompute
		c.fingerprint = fp
	}

	if (c.PendingUpdate && c.TicksSinceCompute >= c.MinTicksBetweenCompute) || !c.Valid {
		c.Recompute(goals)
		return true
	}
	return false
}

// Recompute seeds goals with HeatExit, spreads distance and rebuilds the flow field
func (c *FlowFieldCache) Recompute(goals []vmath.IntVec2) {
	c.Distance.SetAll(HeatSpecial)
	for _, g := range goals {
		c.Distance.Set(g.X, g.Y, HeatExit)
	}
	c.Distance.SpreadHeat(HeatExit, 1, c.Grid.IsSolid)
	c.Flow.Rebuild(c.Distance, c.Grid.IsSolid)

	c.LastGoals = append(c.LastGoals[:0], goals...)
	c.TicksSinceCompute = 0
	c.PendingUpdate = false
	c.Valid = true
}

// MarkDirty forces recomputation on next eligible tick
func (c *FlowFieldCache) MarkDirty() {
	c.PendingUpdate = true
}

// Direction returns the cached flow direction, zero out of bounds
func (c *FlowFieldCache) Direction(x, y int) vmath.Vec2 {
	return c.Flow.At(x, y)
}

// Sample steers a world position using bilinear interpolation of the cached field
func (c *FlowFieldCache) Sample(world vmath.Vec2) vmath.Vec2 {
	return c.Flow.SampleBilinear(c.Grid, world)
}
