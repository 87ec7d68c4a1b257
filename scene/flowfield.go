package scene

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/navigation"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// FlowField2D steers actors from start tiles toward goal tiles along a cached flow field
// Primary toggles a start under the pointer, secondary a goal, toggle flips a wall
type FlowField2D struct {
	log *zap.Logger
	rng *vmath.Rand
	cfg config.FlowFieldConfig
	cam render.Camera

	grid   *navigation.TileGrid
	cache  *navigation.FlowFieldCache
	starts []vmath.IntVec2
	goals  []vmath.IntVec2
	actors []navigation.FlowActor
}

func NewFlowField2D(log *zap.Logger, rng *vmath.Rand, cfg config.FlowFieldConfig) (*FlowField2D, error) {
	grid, err := newGrid(cfg.GridConfig)
	if err != nil {
		return nil, fmt.Errorf("flow field scene: %w", err)
	}
	cache, err := navigation.NewFlowFieldCache(grid, cfg.RecomputeTicks)
	if err != nil {
		return nil, fmt.Errorf("flow field scene: %w", err)
	}
	s := &FlowField2D{
		log:   log,
		rng:   rng,
		cfg:   cfg,
		cam:   screenCamera(),
		grid:  grid,
		cache: cache,
	}
	s.Randomize()
	return s, nil
}

func (s *FlowField2D) Name() string { return "FlowField2D" }

// Randomize rerolls walls, then seeds one start, one goal and a crowd of actors
func (s *FlowField2D) Randomize() {
	s.grid.RandomizeSolids(s.rng, s.cfg.SolidProbability)
	s.starts = s.starts[:0]
	s.goals = s.goals[:0]
	s.actors = s.actors[:0]

	if start, ok := randomOpenTile(s.grid, s.rng); ok {
		s.starts = append(s.starts, start)
	}
	if goal, ok := randomOpenTile(s.grid, s.rng); ok {
		s.goals = append(s.goals, goal)
	}
	for range parameter.NavFlowActorCount {
		s.spawn()
	}
	s.cache.MarkDirty()
	s.log.Debug("flow field randomized",
		zap.Int("starts", len(s.starts)), zap.Int("goals", len(s.goals)), zap.Int("actors", len(s.actors)))
}

// randomOpenTile samples up to NumTiles cells for a non-solid one
func randomOpenTile(grid *navigation.TileGrid, rng *vmath.Rand) (vmath.IntVec2, bool) {
	for range grid.NumTiles() {
		c := vmath.IntVec2{X: rng.Intn(grid.Dims.X), Y: rng.Intn(grid.Dims.Y)}
		if !grid.IsSolid(c.X, c.Y) {
			return c, true
		}
	}
	return vmath.IntVec2{}, false
}

func (s *FlowField2D) spawn() {
	if a, ok := navigation.SpawnActor(s.grid, s.starts, s.rng, s.cfg.ActorSpeedMin, s.cfg.ActorSpeedMax); ok {
		s.actors = append(s.actors, a)
	}
}

// toggleTile adds c to list when absent, removes it otherwise
func toggleTile(list []vmath.IntVec2, c vmath.IntVec2) []vmath.IntVec2 {
	if i := slices.Index(list, c); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return append(list, c)
}

func (s *FlowField2D) Update(dt float64, in input.Frame) {
	if p, ok := pointerWorld(s.cam, in); ok {
		c := s.grid.TileCoords(p)
		if s.grid.InBounds(c.X, c.Y) {
			switch {
			case in.JustPressed(input.Primary) && !s.grid.IsSolid(c.X, c.Y):
				s.starts = toggleTile(s.starts, c)
			case in.JustPressed(input.Secondary) && !s.grid.IsSolid(c.X, c.Y):
				s.goals = toggleTile(s.goals, c)
			case in.JustPressed(input.Toggle):
				s.grid.SetSolid(c.X, c.Y, !s.grid.IsSolid(c.X, c.Y))
				s.cache.MarkDirty()
			}
		}
	}

	if in.JustPressed(input.Spawn) || in.IsHeld(input.Burst) {
		s.spawn()
	}
	if in.JustPressed(input.Mode) {
		s.actors = s.actors[:0]
	}

	if s.cache.Update(s.goals) {
		s.log.Debug("flow field recomputed", zap.Int("goals", len(s.goals)))
	}
	if len(s.goals) == 0 {
		return
	}
	for i := range s.actors {
		s.actors[i].Advance(s.cache, dt)
	}
	endRadius := parameter.NavFlowEndRadiusScale * s.grid.CellSize
	navigation.TeleportArrived(s.grid, s.actors, s.starts, s.goals, endRadius, s.rng)
}

func (s *FlowField2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.cam
	cell := s.grid.CellSize

	buf.AddHeatMap(s.grid, s.cache.Distance, render.DefaultHeatGradient)
	buf.AddSolidTiles(s.grid, render.WallBlue)
	buf.AddGridLines(s.grid, parameter.FlowGridLineScale*cell, render.DarkGrey)
	buf.AddVectorField(s.grid, s.cache.Flow, render.Grey)

	for _, c := range s.starts {
		buf.AddRing2D(s.grid.TileCenter(c.X, c.Y), parameter.NavFlowStartRadiusScale*cell, parameter.FlowGridLineScale*cell*2, render.Green)
	}
	for _, c := range s.goals {
		buf.AddDisc2D(s.grid.TileCenter(c.X, c.Y), parameter.NavFlowEndRadiusScale*cell, render.Red)
	}

	for _, a := range s.actors {
		buf.AddDisc2D(a.Position, parameter.FlowActorRadiusScale*cell, render.LightBlue)
		tip := a.Position.Add(vmath.FromPolarDegrees(a.OrientationDegrees, cell*0.5))
		buf.AddArrow2D(a.Position, tip, parameter.FlowArrowSizeScale*cell, parameter.FlowArrowWidthScale*cell, render.Orange)
	}
}
