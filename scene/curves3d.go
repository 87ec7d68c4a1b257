package scene

import (
	"cmp"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/spline"
	"github.com/lixenwraith/geomlab/vmath"
)

// Curves3D flies a box along a looped 3D spline, interpolating its rotation and scale channels
type Curves3D struct {
	log *zap.Logger
	rng *vmath.Rand

	player player3
	bounds geometry.AABB3
	curve  *spline.Spline3D
	time   float64
}

func NewCurves3D(log *zap.Logger, rng *vmath.Rand) *Curves3D {
	s := &Curves3D{
		log: log,
		rng: rng,
		player: player3{
			Pos:    vmath.Vec3{parameter.Curves3DPlayerX, parameter.Curves3DPlayerY, parameter.Curves3DPlayerZ},
			Orient: vmath.EulerAngles{Pitch: parameter.Curves3DPlayerPitch},
		},
		bounds: geometry.AABB3{Maxs: vmath.Vec3{parameter.Curves3DBoxSizeX, parameter.Curves3DBoxSizeY, parameter.Curves3DBoxSizeZ}},
		curve:  spline.NewSpline3D(),
	}
	s.Randomize()
	return s
}

func (s *Curves3D) Name() string { return "Curves3D" }

func (s *Curves3D) Randomize() {
	n := s.rng.IntInRange(parameter.Curves3DPointsMin, parameter.Curves3DPointsMax)
	positions := make([]vmath.Vec3, n)
	for i := range positions {
		for axis := range 3 {
			positions[i][axis] = s.rng.FloatInRange(s.bounds.Mins[axis], s.bounds.Maxs[axis])
		}
	}
	slices.SortFunc(positions, func(a, b vmath.Vec3) int { return cmp.Compare(a[0], b[0]) })

	if err := s.curve.SetFromCatmullRom(positions, true); err != nil {
		s.log.Error("3D spline fit failed", zap.Error(err))
		return
	}

	lo, hi := parameter.Curves3DScaleMin, parameter.Curves3DScaleMax
	rotations := make([]vmath.EulerAngles, n)
	scales := make([]vmath.Vec3, n)
	for i := range n {
		rotations[i] = vmath.EulerAngles{
			Yaw:   s.rng.FloatInRange(0, 360),
			Pitch: s.rng.FloatInRange(-parameter.Curves3DPitchLimit, parameter.Curves3DPitchLimit),
			Roll:  s.rng.FloatInRange(0, 360),
		}
		scales[i] = vmath.Vec3{s.rng.FloatInRange(lo, hi), s.rng.FloatInRange(lo, hi), s.rng.FloatInRange(lo, hi)}
	}
	// The closing point of the loop repeats the first
	for i := range s.curve.NumPoints() {
		_ = s.curve.SetRotationAt(i, rotations[i%n])
		_ = s.curve.SetScaleAt(i, scales[i%n])
	}
	s.log.Debug("3D spline randomized", zap.Int("points", n))
}

func (s *Curves3D) Update(dt float64, in input.Frame) {
	s.time += dt
	s.player.update(dt, in, vmath.ClampLength2(in.Aim().Add(in.Pan()), 1))
}

// Key is the current input key of the moving model
func (s *Curves3D) Key() float64 {
	return s.curve.FirstKey() + math.Mod(s.time*parameter.Curves3DFrequency, float64(s.curve.NumSegments()))
}

func (s *Curves3D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.player.Camera()

	center := s.bounds.Center()
	buf.AddOBB3DWire(geometry.NewOBB3(center, s.bounds.HalfDims(), vmath.EulerAngles{}), parameter.Curves3DStripWidth*0.5, render.DarkGrey)

	buf.AddLineStrip3D(s.curve.PositionsWithSubdivisions(nil, parameter.Curves3DSubdivisions), parameter.Curves3DStripWidth, render.DarkBlue)
	for _, p := range s.curve.Points() {
		buf.AddSphere3D(geometry.Sphere3{Pos: p.Position, Radius: parameter.Curves3DPointRadius}, render.Orange, 8, 4)
	}

	key := s.Key()
	pos := s.curve.PositionAtInputKey(key)
	rot := s.curve.QuaternionAtInputKey(key)
	scale := s.curve.ScaleAtInputKey(key)
	h := parameter.Curves3DModelHalf
	buf.AddTransformedBox3D(vmath.Vec3{-h, -h, -h}, vmath.Vec3{h, h, h}, pos, rot, scale, render.White)
	buf.AddBasis3D(pos, rot, h*3, parameter.Curves3DStripWidth*0.5)
}
