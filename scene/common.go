package scene

import (
	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

var screenSize = vmath.Vec2{parameter.ScreenWidth, parameter.ScreenHeight}

// screenCamera views the whole 2D world
func screenCamera() render.Camera {
	return render.OrthoCamera(vmath.Zero2, screenSize)
}

// pointerWorld maps the frame pointer through cam onto the z=0 plane
func pointerWorld(cam render.Camera, in input.Frame) (vmath.Vec2, bool) {
	if !in.HasPointer {
		return vmath.Vec2{}, false
	}
	return vmath.XY(cam.Unproject(vmath.Vec3{in.Pointer[0], in.Pointer[1], 0})), true
}

// randomScreenPoint returns a point whose coordinates are uniform fractions [lo, hi) of the screen
func randomScreenPoint(rng *vmath.Rand, lo, hi float64) vmath.Vec2 {
	return vmath.Vec2{
		rng.FloatInRange(lo, hi) * parameter.ScreenWidth,
		rng.FloatInRange(lo, hi) * parameter.ScreenHeight,
	}
}

// randomInBox returns a uniform point inside box
func randomInBox(rng *vmath.Rand, box geometry.AABB2) vmath.Vec2 {
	uv := rng.UV()
	return vmath.Vec2{
		vmath.Lerp(box.Mins[0], box.Maxs[0], uv[0]),
		vmath.Lerp(box.Mins[1], box.Maxs[1], uv[1]),
	}
}

// rayHandles is a start/end pair driven by keys and mouse
// ESDF moves the start, IJKL the end, arrows both; primary/secondary buttons drag start/end
type rayHandles struct {
	Start, End vmath.Vec2
}

func (h *rayHandles) update(dt float64, in input.Frame, cam render.Camera) {
	speed := parameter.HandleMoveSpeed * dt
	pan := in.Pan()
	h.Start = h.Start.Add(vmath.ClampLength2(in.Move().Add(pan), 1).Mul(speed))
	h.End = h.End.Add(vmath.ClampLength2(in.Aim().Add(pan), 1).Mul(speed))

	if p, ok := pointerWorld(cam, in); ok {
		if in.IsHeld(input.Primary) {
			h.Start = p
		}
		if in.IsHeld(input.Secondary) {
			h.End = p
		}
	}
}

// drawRay2D shows a raycast: a full green arrow on a miss, otherwise a red arrow to the impact,
// a dim remainder, the impact point and its normal
func drawRay2D(buf *render.VertexBuffer, res geometry.RaycastResult2D) {
	end := res.Ray.End()
	if !res.DidImpact {
		buf.AddArrow2D(res.Ray.Start, end, parameter.ArrowSize, parameter.ArrowThickness, render.Green)
		return
	}
	buf.AddArrow2D(res.Ray.Start, end, parameter.ArrowSize, parameter.ArrowThickness, render.DarkGrey)
	buf.AddArrow2D(res.Ray.Start, res.ImpactPos, parameter.ArrowSize, parameter.ArrowThickness, render.Red)
	buf.AddDisc2D(res.ImpactPos, parameter.NearestPointRadius, render.White)
	buf.AddArrow2D(res.ImpactPos, res.ImpactPos.Add(res.ImpactNormal.Mul(parameter.NormalArrowLength)),
		parameter.ArrowSize*0.5, parameter.ArrowThickness, render.Yellow)
}

// player3 is a free-flying 3D viewpoint, X forward and Z up at zero yaw and pitch
type player3 struct {
	Pos    vmath.Vec3
	Orient vmath.EulerAngles
}

// update turns by look (+X right, +Y up) and moves with ESDF plus rise/sink, on the horizontal plane
func (p *player3) update(dt float64, in input.Frame, look vmath.Vec2) {
	turn := parameter.CameraTurnRate * dt
	p.Orient.Yaw -= look[0] * turn
	p.Orient.Pitch = vmath.Clamp(p.Orient.Pitch-look[1]*turn, -parameter.CameraMaxPitch, parameter.CameraMaxPitch)

	f := vmath.FromPolarDegrees(p.Orient.Yaw, 1)
	forward := vmath.Vec3{f[0], f[1], 0}
	left := vmath.Vec3{-f[1], f[0], 0}

	move := in.Move()
	intent := forward.Mul(move[1]).Sub(left.Mul(move[0])).Add(vmath.AxisZ.Mul(in.Axis(input.Sink, input.Rise)))
	if l := intent.Len(); l > 1 {
		intent = intent.Mul(1 / l)
	}
	p.Pos = p.Pos.Add(intent.Mul(parameter.CameraMoveSpeed * dt))
}

// Forward is the view direction
func (p *player3) Forward() vmath.Vec3 {
	i, _, _ := p.Orient.Basis()
	return i
}

func (p *player3) Camera() render.Camera {
	return render.PerspectiveCamera(p.Pos, p.Pos.Add(p.Forward()), vmath.AxisZ,
		parameter.CameraFovY, parameter.CameraAspect, parameter.CameraNear, parameter.CameraFar)
}
