package scene

import (
	"context"
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

// ExposureAvoidance2D shows how exposed each cell is to a set of sentinels
// Primary adds a sentinel, or removes the one under the pointer; toggle flips a wall
type ExposureAvoidance2D struct {
	log *zap.Logger
	rng *vmath.Rand
	cfg config.ExposureConfig
	cam render.Camera

	grid      *navigation.TileGrid
	exposure  *navigation.ExposureMap
	sentinels []vmath.Vec2
}

func NewExposureAvoidance2D(log *zap.Logger, rng *vmath.Rand, cfg config.ExposureConfig) (*ExposureAvoidance2D, error) {
	grid, err := newGrid(cfg.GridConfig)
	if err != nil {
		return nil, fmt.Errorf("exposure scene: %w", err)
	}
	exposure, err := navigation.NewExposureMap(grid.Dims, cfg.SightRange)
	if err != nil {
		return nil, fmt.Errorf("exposure scene: %w", err)
	}
	exposure.Workers = cfg.Workers

	s := &ExposureAvoidance2D{
		log:      log,
		rng:      rng,
		cfg:      cfg,
		cam:      screenCamera(),
		grid:     grid,
		exposure: exposure,
	}
	s.Randomize()
	return s, nil
}

func (s *ExposureAvoidance2D) Name() string { return "ExposureAvoidance2D" }

// Randomize rerolls walls and places one sentinel on an open cell
func (s *ExposureAvoidance2D) Randomize() {
	s.grid.RandomizeSolids(s.rng, s.cfg.SolidProbability)
	s.sentinels = s.sentinels[:0]
	if c, ok := randomOpenTile(s.grid, s.rng); ok {
		s.sentinels = append(s.sentinels, s.grid.TileCenter(c.X, c.Y))
	}
	s.recompute()
}

func (s *ExposureAvoidance2D) recompute() {
	if err := s.exposure.Compute(context.Background(), s.grid, s.sentinels); err != nil {
		s.log.Error("exposure compute failed", zap.Error(err))
		return
	}
	s.log.Debug("exposure recomputed", zap.Int("sentinels", len(s.sentinels)))
}

func (s *ExposureAvoidance2D) Update(dt float64, in input.Frame) {
	p, ok := pointerWorld(s.cam, in)
	if !ok {
		return
	}
	c := s.grid.TileCoords(p)
	switch {
	case in.JustPressed(input.Primary):
		s.toggleSentinel(p)
		s.recompute()
	case in.JustPressed(input.Toggle) && s.grid.InBounds(c.X, c.Y):
		s.grid.SetSolid(c.X, c.Y, !s.grid.IsSolid(c.X, c.Y))
		s.recompute()
	}
}

// toggleSentinel removes the first sentinel within click radius of p, otherwise adds one at p
func (s *ExposureAvoidance2D) toggleSentinel(p vmath.Vec2) {
	r := parameter.NavExposureClickRadius
	i := slices.IndexFunc(s.sentinels, func(q vmath.Vec2) bool { return vmath.DistSq2(p, q) <= r*r })
	if i >= 0 {
		s.sentinels = slices.Delete(s.sentinels, i, i+1)
		return
	}
	s.sentinels = append(s.sentinels, p)
}

func (s *ExposureAvoidance2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.cam
	buf.AddDivergingHeatMap(s.grid, s.exposure.Heat, render.ExposureGradient)
	buf.AddGridLines(s.grid, parameter.FlowGridLineScale*s.grid.CellSize, render.Black)
	for _, p := range s.sentinels {
		buf.AddRing2D(p, s.exposure.SightRange, 2, render.White.WithAlpha(96))
		buf.AddDisc2D(p, parameter.ExposureSentinelRadius, render.Green)
	}
}
