package scene

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// Quaternion3D interpolates a chain of random orientations with every quaternion mode side by side
type Quaternion3D struct {
	log *zap.Logger
	rng *vmath.Rand

	player player3
	keys   []vmath.Quat
	time   float64
}

func NewQuaternion3D(log *zap.Logger, rng *vmath.Rand) *Quaternion3D {
	s := &Quaternion3D{
		log: log,
		rng: rng,
		player: player3{
			Pos:    vmath.Vec3{parameter.QuatPlayerX, parameter.QuatPlayerY, parameter.QuatPlayerZ},
			Orient: vmath.EulerAngles{Yaw: parameter.QuatPlayerYaw, Pitch: parameter.QuatPlayerPitch},
		},
		keys: make([]vmath.Quat, parameter.QuatKeyCount),
	}
	s.Randomize()
	return s
}

func (s *Quaternion3D) Name() string { return "Quaternion3D" }

func (s *Quaternion3D) Randomize() {
	r := func() float64 { return s.rng.FloatInRange(-1, 1) }
	for i := range s.keys {
		q := vmath.Quat{W: r(), V: vmath.Vec3{r(), r(), r()}}
		if q.Len() < vmath.Epsilon {
			q = vmath.Quat{W: 1}
		}
		s.keys[i] = q.Normalize()
	}
	s.log.Debug("quaternion keys randomized", zap.Int("keys", len(s.keys)))
}

func (s *Quaternion3D) Update(dt float64, in input.Frame) {
	s.time += dt
	s.player.update(dt, in, vmath.ClampLength2(in.Aim().Add(in.Pan()), 1))
}

// Segment returns the active key pair index and the fraction between them
func (s *Quaternion3D) Segment() (int, float64) {
	key := math.Mod(s.time*parameter.QuatTimeScale, float64(len(s.keys)-1))
	i := int(key)
	return i, key - float64(i)
}

// Orientation interpolates the active key pair with mode
func (s *Quaternion3D) Orientation(mode vmath.QuatMode) vmath.Quat {
	i, t := s.Segment()
	return vmath.InterpolateQuat(mode, s.keys[i], s.keys[i+1], t)
}

// axisOf returns the normalized vector part, the rotation axis up to sign
func axisOf(q vmath.Quat) vmath.Vec3 {
	return vmath.Normalize3(q.V)
}

func (s *Quaternion3D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.player.Camera()

	i, _ := s.Segment()
	start, end := s.keys[i], s.keys[i+1]
	h := parameter.QuatBoxHalf
	length := parameter.QuatAxisLength
	head := parameter.QuatAxisRadius * 4

	for mode := vmath.QuatMode(0); mode < vmath.QuatModeCount; mode++ {
		pos := vmath.AxisX.Mul(parameter.QuatModelStride * float64(mode+1))
		q := s.Orientation(mode)
		if q.Len() > vmath.Epsilon {
			q = q.Normalize()
		}
		buf.AddTransformedBox3D(vmath.Vec3{0, -h, -h}, vmath.Vec3{length, h, h}, pos, q, vmath.Vec3{1, 1, 1}, render.White)

		buf.AddArrow3D(pos, pos.Add(axisOf(start).Mul(length)), head, parameter.QuatAxisRadius, render.Green)
		buf.AddArrow3D(pos, pos.Add(axisOf(end).Mul(length)), head, parameter.QuatAxisRadius, render.Blue)
		buf.AddArrow3D(pos, pos.Add(axisOf(q).Mul(length)), head, parameter.QuatAxisRadius, render.Cyan)
	}
}
