package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/navigation"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// FastVoxelRaycast2D casts a ray through a tile grid, highlighting every traversed cell
type FastVoxelRaycast2D struct {
	log  *zap.Logger
	rng  *vmath.Rand
	cfg  config.GridConfig
	cam  render.Camera
	grid *navigation.TileGrid

	handles rayHandles
}

func NewFastVoxelRaycast2D(log *zap.Logger, rng *vmath.Rand, cfg config.GridConfig) (*FastVoxelRaycast2D, error) {
	grid, err := newGrid(cfg)
	if err != nil {
		return nil, fmt.Errorf("voxel scene: %w", err)
	}
	s := &FastVoxelRaycast2D{
		log:  log,
		rng:  rng,
		cfg:  cfg,
		cam:  screenCamera(),
		grid: grid,
		handles: rayHandles{
			Start: vmath.Vec2{parameter.VoxelStartX, parameter.VoxelStartY},
			End:   vmath.Vec2{parameter.VoxelEndX, parameter.VoxelEndY},
		},
	}
	s.Randomize()
	return s, nil
}

// newGrid builds a tile grid from its config section
func newGrid(cfg config.GridConfig) (*navigation.TileGrid, error) {
	return navigation.NewTileGrid(vmath.IntVec2{X: cfg.Width, Y: cfg.Height}, cfg.CellSize, vmath.Vec2{cfg.OriginX, cfg.OriginY})
}

func (s *FastVoxelRaycast2D) Name() string { return "FastVoxelRaycast2D" }

func (s *FastVoxelRaycast2D) Randomize() {
	s.grid.RandomizeSolids(s.rng, s.cfg.SolidProbability)
	s.log.Debug("voxel grid randomized", zap.Float64("solid_probability", s.cfg.SolidProbability))
}

func (s *FastVoxelRaycast2D) Update(dt float64, in input.Frame) {
	s.handles.update(dt, in, s.cam)
	if p, ok := pointerWorld(s.cam, in); ok && in.JustPressed(input.Toggle) {
		if c := s.grid.TileCoords(p); s.grid.InBounds(c.X, c.Y) {
			s.grid.SetSolid(c.X, c.Y, !s.grid.IsSolid(c.X, c.Y))
		}
	}
}

// Cast runs the voxel raycast between the handles
func (s *FastVoxelRaycast2D) Cast() geometry.RaycastResult2D {
	disp := s.handles.End.Sub(s.handles.Start)
	return s.grid.FastVoxelRaycast(s.handles.Start, vmath.Normalize2(disp), disp.Len())
}

func (s *FastVoxelRaycast2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.cam
	res := s.Cast()

	for y := 0; y < s.grid.Dims.Y; y++ {
		for x := 0; x < s.grid.Dims.X; x++ {
			color := render.DarkGrey
			if s.grid.IsSolid(x, y) {
				color = render.WallBlue
			}
			mins, maxs := s.grid.TileBounds(x, y)
			buf.AddAABB2D(geometry.AABB2{Mins: mins, Maxs: maxs}, color)
		}
	}

	// Cells the ray enters up to the impact or its full length
	reach := res.ImpactDist
	t := vmath.NewGridTraverser(res.Ray.Start, res.Ray.Forward, s.grid.Origin, s.grid.CellSize)
	for {
		if x, y := t.Pos(); s.grid.InBounds(x, y) {
			mins, maxs := s.grid.TileBounds(x, y)
			buf.AddAABB2D(geometry.AABB2{Mins: mins, Maxs: maxs}, render.LightBlue.WithAlpha(96))
		}
		if res.Ray.Forward == vmath.Zero2 || t.NextDist() > reach {
			break
		}
		t.Step()
	}

	buf.AddGridLines(s.grid, 1, render.Black)
	drawRay2D(buf, res)
}
