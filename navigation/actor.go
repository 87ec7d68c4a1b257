package navigation

import (
	"github.com/lixenwraith/geomlab/vmath"
)

// FlowActor is steered along a flow field
type FlowActor struct {
	Position           vmath.Vec2
	Speed              float64
	OrientationDegrees float64
}

// Advance moves the actor along the sampled direction for dt seconds
func (a *FlowActor) Advance(cache *FlowFieldCache, dt float64) {
	dir := cache.Sample(a.Position)
	a.Position = a.Position.Add(dir.Mul(a.Speed * dt))
	a.OrientationDegrees = vmath.OrientationDegrees(dir)
}

// SpawnActor places an actor at a random start tile center; ok is false with no starts
func SpawnActor(grid *TileGrid, starts []vmath.IntVec2, rng *vmath.Rand, minSpeed, maxSpeed float64) (FlowActor, bool) {
	if len(starts) == 0 {
		return FlowActor{}, false
	}
	s := starts[rng.Intn(len(starts))]
	return FlowActor{
		Position: grid.TileCenter(s.X, s.Y),
		Speed:    rng.FloatInRange(minSpeed, maxSpeed),
	}, true
}

// TeleportArrived moves actors within endRadius of any goal center back to a random start
// Returns the number of actors moved; no-op without starts
func TeleportArrived(grid *TileGrid, actors []FlowActor, starts, goals []vmath.IntVec2, endRadius float64, rng *vmath.Rand) int {
	if len(starts) == 0 {
		return 0
	}
	moved := 0
	rSq := endRadius * endRadius
	for i := range actors {
		for _, g := range goals {
			if vmath.DistSq2(grid.TileCenter(g.X, g.Y), actors[i].Position) <= rSq {
				s := starts[rng.Intn(len(starts))]
				actors[i].Position = grid.TileCenter(s.X, s.Y)
				moved++
				break
			}
		}
	}
	return moved
}
