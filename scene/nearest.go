package scene

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// NearestPoint2D places one of each 2D shape and shows the nearest point on each to a movable reference point
type NearestPoint2D struct {
	log *zap.Logger
	rng *vmath.Rand
	cam render.Camera

	shapes []geometry.Shape2
	point  vmath.Vec2
}

func NewNearestPoint2D(log *zap.Logger, rng *vmath.Rand) *NearestPoint2D {
	s := &NearestPoint2D{
		log:   log,
		rng:   rng,
		cam:   screenCamera(),
		point: screenSize.Mul(0.5),
	}
	s.Randomize()
	return s
}

func (s *NearestPoint2D) Name() string { return "NearestPoint2D" }

func (s *NearestPoint2D) Randomize() {
	h := parameter.ScreenHeight
	at := func() vmath.Vec2 {
		return randomScreenPoint(s.rng, parameter.NearestBoxCenterMin, parameter.NearestBoxCenterMax)
	}
	halfBox := func() vmath.Vec2 {
		return vmath.Vec2{
			s.rng.FloatInRange(parameter.NearestBoxSizeMin, parameter.NearestBoxSizeMax) * parameter.ScreenWidth,
			s.rng.FloatInRange(parameter.NearestBoxSizeMin, parameter.NearestBoxSizeMax) * h,
		}
	}
	angle := func() float64 { return s.rng.FloatInRange(0, 360) }

	disc := geometry.Disc2{
		Center: at(),
		Radius: s.rng.FloatInRange(parameter.NearestDiscRadiusMin, parameter.NearestDiscRadiusMax) * h,
	}
	box := geometry.NewAABB2FromCenter(at(), halfBox())
	obb := geometry.OBB2{Center: at(), IBasis: vmath.FromPolarDegrees(angle(), 1), HalfDims: halfBox()}

	capCenter := at()
	capHalf := vmath.FromPolarDegrees(angle(), s.rng.FloatInRange(parameter.NearestCapsuleHalfMin, parameter.NearestCapsuleHalfMax)*h)
	capsule := geometry.Capsule2{
		Start:  capCenter.Sub(capHalf),
		End:    capCenter.Add(capHalf),
		Radius: s.rng.FloatInRange(parameter.NearestCapsuleRadiusMin, parameter.NearestCapsuleRadiusMax) * h,
	}

	segCenter := at()
	segHalf := vmath.FromPolarDegrees(angle(), s.rng.FloatInRange(parameter.NearestSegmentHalfMin, parameter.NearestSegmentHalfMax)*h)
	segment := geometry.LineSegment2{Start: segCenter.Sub(segHalf), End: segCenter.Add(segHalf)}

	anchor := randomScreenPoint(s.rng, parameter.NearestLineAnchorMin, parameter.NearestLineAnchorMax)
	line := geometry.InfiniteLine2{A: anchor, B: anchor.Add(vmath.FromPolarDegrees(angle(), h))}

	triCenter := at()
	triRadius := s.rng.FloatInRange(parameter.NearestTriangleRadiusMin, parameter.NearestTriangleRadiusMax) * h
	base := angle()
	tri := geometry.Triangle2{
		A: triCenter.Add(vmath.FromPolarDegrees(base, triRadius)),
		B: triCenter.Add(vmath.FromPolarDegrees(base+120, triRadius)),
		C: triCenter.Add(vmath.FromPolarDegrees(base+240, triRadius)),
	}

	s.shapes = []geometry.Shape2{disc, box, obb, capsule, segment, line, tri}
	s.log.Debug("nearest point shapes randomized", zap.Int("shapes", len(s.shapes)))
}

func (s *NearestPoint2D) Update(dt float64, in input.Frame) {
	intent := vmath.ClampLength2(in.Move().Add(in.Pan()), 1)
	s.point = s.point.Add(intent.Mul(parameter.HandleMoveSpeed * dt))
	if p, ok := pointerWorld(s.cam, in); ok && in.IsHeld(input.Primary) {
		s.point = p
	}
}

// Nearest returns the nearest point on every shape and the index of the closest one
func (s *NearestPoint2D) Nearest() ([]vmath.Vec2, int) {
	points := make([]vmath.Vec2, len(s.shapes))
	best := -1
	bestSq := 0.0
	for i, shape := range s.shapes {
		points[i] = shape.NearestPoint(s.point)
		if d := vmath.DistSq2(points[i], s.point); best < 0 || d < bestSq {
			best, bestSq = i, d
		}
	}
	return points, best
}

func (s *NearestPoint2D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.cam

	for _, shape := range s.shapes {
		color := render.DarkBlue
		if shape.IsPointInside(s.point) {
			color = render.LightBlue
		}
		drawShape2D(buf, shape, color)
	}

	points, best := s.Nearest()
	for i, p := range points {
		color := render.Orange
		if i == best {
			color = render.Green
		}
		buf.AddLineSegment2D(s.point, p, 1, render.White.WithAlpha(64))
		buf.AddDisc2D(p, parameter.NearestPointRadius, color)
	}
	buf.AddDisc2D(s.point, parameter.PointRadius, render.White)
}

func drawShape2D(buf *render.VertexBuffer, shape geometry.Shape2, color render.RGBA8) {
	switch sh := shape.(type) {
	case geometry.Disc2:
		buf.AddDisc2D(sh.Center, sh.Radius, color)
	case geometry.AABB2:
		buf.AddAABB2D(sh, color)
	case geometry.OBB2:
		buf.AddOBB2D(sh, color)
	case geometry.Capsule2:
		buf.AddCapsule2D(sh, color)
	case geometry.LineSegment2:
		buf.AddLineSegment2D(sh.Start, sh.End, parameter.LineThickness, color)
	case geometry.InfiniteLine2:
		dir := vmath.Normalize2(sh.B.Sub(sh.A)).Mul(parameter.NearestLineHalfSpan)
		buf.AddLineSegment2D(sh.A.Sub(dir), sh.A.Add(dir), parameter.LineThickness, color)
	case geometry.Triangle2:
		buf.AddTriangle2D(sh.A, sh.B, sh.C, color)
	}
}
