package scene

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/config"
	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// Raycast2D casts one ray against many discs, segments and boxes and reports the nearest hit
type Raycast2D struct {
	log *zap.Logger
	rng *vmath.Rand
	cfg config.RaycastConfig
	cam render.Camera

	discs    []geometry.Disc2
	segments []geometry.LineSegment2
	boxes    []geometry.AABB2
	targets  []geometry.Raycaster2

	handles rayHandles
}

func NewRaycast2D(log *zap.Logger, rng *vmath.Rand, cfg config.RaycastConfig) *Raycast2D {
	s := &Raycast2D{
		log: log,
		rng: rng,
		cfg: cfg,
		cam: screenCamera(),
		handles: rayHandles{
			Start: vmath.Vec2{parameter.RaycastStartX, parameter.RaycastStartY},
			End:   vmath.Vec2{parameter.RaycastEndX, parameter.RaycastEndY},
		},
	}
	s.Randomize()
	return s
}

func (s *Raycast2D) Name() string { return "Raycast2D" }

func (s *Raycast2D) Randomize() {
	h := parameter.ScreenHeight
	screen := geometry.AABB2{Maxs: screenSize}

	s.discs = s.discs[:0]
	for range s.cfg.Discs {
		s.discs = append(s.discs, geometry.Disc2{
			Center: randomInBox(s.rng, screen),
			Radius: s.rng.FloatInRange(parameter.RaycastDiscRadiusMinScale, parameter.RaycastDiscRadiusMaxScale) * h * 0.5,
		})
	}

	s.segments = s.segments[:0]
	for range s.cfg.Segments {
		start := randomInBox(s.rng, screen)
		length := s.rng.FloatInRange(parameter.RaycastSegmentLengthMin, parameter.RaycastSegmentLengthMax) * h
		s.segments = append(s.segments, geometry.LineSegment2{
			Start: start,
			End:   start.Add(vmath.FromPolarDegrees(s.rng.FloatInRange(0, 360), length)),
		})
	}

	s.boxes = s.boxes[:0]
	for range s.cfg.Boxes {
		half := vmath.Vec2{
			s.rng.FloatInRange(parameter.RaycastBoxSizeMin, parameter.RaycastBoxSizeMax) * h * 0.5,
			s.rng.FloatInRange(parameter.RaycastBoxSizeMin, parameter.RaycastBoxSizeMax) * h * 0.5,
		}
		s.boxes = append(s.boxes, geometry.NewAABB2FromCenter(randomInBox(s.rng, screen), half))
	}

	s.targets = s.targets[:0]
	for _, d := range s.discs {
		s.targets = append(s.targets, d)
	}
	for _, seg := range s.segments {
		s.targets = append(s.targets, seg)
	}
	for _, b := range s.boxes {
		s.targets = append(s.targets, b)
	}
	s.log.Debug("raycast targets randomized",
		zap.Int("discs", len(s.discs)), zap.Int("segments", len(s.segments)), zap.Int("boxes", len(s.boxes)))
}

func (s *Raycast2D) Update(dt float64, in input.Frame) {
	s.handles.update(dt, in, s.cam)
}

// Cast returns the nearest hit of the current ray and the index of the hit target, -1 on a miss
func (s *Raycast2D) Cast() (geometry.RaycastResult2D, int) {
	return geometry.RaycastNearest2D(geometry.NewRay2Between(s.handles.Start, s.handles.End), s.targets)
}

func (s *Raycast2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.cam
	res, hit := s.Cast()

	color := func(i int) render.RGBA8 {
		if i == hit {
			return render.LightBlue
		}
		return render.DarkBlue
	}
	i := 0
	for _, d := range s.discs {
		buf.AddDisc2D(d.Center, d.Radius, color(i))
		i++
	}
	for _, seg := range s.segments {
		buf.AddLineSegment2D(seg.Start, seg.End, parameter.LineThickness, color(i))
		i++
	}
	for _, b := range s.boxes {
		buf.AddAABB2D(b, color(i))
		i++
	}

	drawRay2D(buf, res)
}
