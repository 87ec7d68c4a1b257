package scene

import (
	"math"

	"go.uber.org/zap"

	"github.com/lixenwraith/geomlab/geometry"
	"github.com/lixenwraith/geomlab/input"
	"github.com/lixenwraith/geomlab/parameter"
	"github.com/lixenwraith/geomlab/render"
	"github.com/lixenwraith/geomlab/vmath"
)

// shape3Entry is one placed 3D shape; wire shapes draw translucent or as edges
type shape3Entry struct {
	Shape  geometry.Shape3
	Wire   bool
	Orient vmath.EulerAngles // OBB3 only, rebuilt on rotation
}

// Shapes3D tests nearest point, overlap and raycast across the 3D shape set
// Spawn locks the ray in place, primary grabs or releases the hit shape,
// aim keys rotate a grabbed box
type Shapes3D struct {
	log *zap.Logger
	rng *vmath.Rand

	player  player3
	entries []shape3Entry

	ray        geometry.Ray3
	rayLocked  bool
	grabbed    int
	grabOffset vmath.Vec3 // shape center in the player's view frame
	time       float64
}

func NewShapes3D(log *zap.Logger, rng *vmath.Rand) *Shapes3D {
	s := &Shapes3D{
		log: log,
		rng: rng,
		player: player3{
			Pos:    vmath.Vec3{parameter.Shapes3DPlayerX, parameter.Shapes3DPlayerY, parameter.Shapes3DPlayerZ},
			Orient: vmath.EulerAngles{Yaw: parameter.Shapes3DPlayerYaw},
		},
	}
	s.Randomize()
	s.ray = geometry.NewRay3(s.player.Pos, s.player.Forward(), parameter.Shapes3DRayLength)
	return s
}

func (s *Shapes3D) Name() string { return "TestShapes3D" }

func (s *Shapes3D) Randomize() {
	size := parameter.Shapes3DSceneSize
	at := func() vmath.Vec3 {
		return vmath.Vec3{s.rng.FloatInRange(-size, size), s.rng.FloatInRange(-size, size), s.rng.FloatInRange(-size, size)}
	}
	half := func() vmath.Vec3 {
		lo, hi := parameter.Shapes3DBoxHalfMin, parameter.Shapes3DBoxHalfMax
		return vmath.Vec3{s.rng.FloatInRange(lo, hi), s.rng.FloatInRange(lo, hi), s.rng.FloatInRange(lo, hi)}
	}

	s.entries = s.entries[:0]
	for range parameter.Shapes3DCountPerKind {
		for _, wire := range []bool{false, true} {
			s.entries = append(s.entries, shape3Entry{
				Shape: geometry.Sphere3{Pos: at(), Radius: s.rng.FloatInRange(parameter.Shapes3DSphereRadiusMin, parameter.Shapes3DSphereRadiusMax)},
				Wire:  wire,
			})
			s.entries = append(s.entries, shape3Entry{Shape: geometry.NewAABB3FromCenter(at(), half()), Wire: wire})

			c := at()
			h := s.rng.FloatInRange(parameter.Shapes3DCylHalfMin, parameter.Shapes3DCylHalfMax)
			s.entries = append(s.entries, shape3Entry{
				Shape: geometry.ZCylinder3{
					CenterXY: vmath.XY(c),
					Radius:   s.rng.FloatInRange(parameter.Shapes3DCylRadiusMin, parameter.Shapes3DCylRadiusMax),
					MinZ:     c[2] - h,
					MaxZ:     c[2] + h,
				},
				Wire: wire,
			})

			orient := vmath.EulerAngles{Yaw: s.rng.FloatInRange(-180, 180), Pitch: s.rng.FloatInRange(-90, 90)}
			s.entries = append(s.entries, shape3Entry{Shape: geometry.NewOBB3(at(), half(), orient), Wire: wire, Orient: orient})
		}
	}

	normal, _, _ := vmath.EulerAngles{Yaw: s.rng.FloatInRange(-180, 180), Pitch: s.rng.FloatInRange(-90, 90)}.Basis()
	s.entries = append(s.entries, shape3Entry{Shape: geometry.Plane3{
		Normal: normal,
		Dist:   s.rng.FloatInRange(-parameter.Shapes3DPlaneDistMax, parameter.Shapes3DPlaneDistMax),
	}})

	s.grabbed = -1
	s.log.Debug("3D shapes randomized", zap.Int("shapes", len(s.entries)))
}

// Shapes returns the placed shapes in draw order
func (s *Shapes3D) Shapes() []geometry.Shape3 {
	out := make([]geometry.Shape3, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Shape
	}
	return out
}

// toView expresses a world displacement in the player's forward/left/up frame
func (s *Shapes3D) toView(d vmath.Vec3) vmath.Vec3 {
	i, j, k := s.player.Orient.Basis()
	return vmath.Vec3{d.Dot(i), d.Dot(j), d.Dot(k)}
}

func (s *Shapes3D) fromView(v vmath.Vec3) vmath.Vec3 {
	i, j, k := s.player.Orient.Basis()
	return i.Mul(v[0]).Add(j.Mul(v[1])).Add(k.Mul(v[2]))
}

func (s *Shapes3D) Update(dt float64, in input.Frame) {
	s.time += dt

	look := in.Pan()
	if s.grabbed >= 0 {
		if _, ok := s.entries[s.grabbed].Shape.(geometry.OBB3); ok {
			s.rotateGrabbed(in)
		} else {
			look = look.Add(in.Aim())
		}
	} else {
		look = look.Add(in.Aim())
	}
	s.player.update(dt, in, vmath.ClampLength2(look, 1))

	if in.JustPressed(input.Spawn) {
		s.rayLocked = !s.rayLocked
	}
	if !s.rayLocked {
		s.ray = geometry.NewRay3(s.player.Pos, s.player.Forward(), parameter.Shapes3DRayLength)
	}

	if in.JustPressed(input.Primary) {
		if s.grabbed >= 0 {
			s.grabbed = -1
		} else if res, idx := geometry.RaycastNearest3D(s.ray, s.Shapes()); res.DidImpact {
			s.grabbed = idx
			s.grabOffset = s.toView(s.entries[idx].Shape.Center().Sub(s.player.Pos))
			s.log.Debug("shape grabbed", zap.Int("index", idx))
		}
	}

	if s.grabbed >= 0 {
		e := &s.entries[s.grabbed]
		target := s.player.Pos.Add(s.fromView(s.grabOffset))
		e.Shape = translate3(e.Shape, target.Sub(e.Shape.Center()))
	}
}

// rotateGrabbed turns a grabbed box in fixed steps; mode resets its orientation
func (s *Shapes3D) rotateGrabbed(in input.Frame) {
	e := &s.entries[s.grabbed]
	obb := e.Shape.(geometry.OBB3)
	step := parameter.Shapes3DRotateStep
	press := func(neg, pos input.Control) float64 {
		v := 0.0
		if in.JustPressed(neg) {
			v--
		}
		if in.JustPressed(pos) {
			v++
		}
		return v * step
	}
	e.Orient.Yaw += press(input.AimRight, input.AimLeft)
	e.Orient.Pitch += press(input.AimUp, input.AimDown)
	e.Orient.Roll += press(input.RollNegative, input.RollPositive)
	if in.JustPressed(input.Mode) {
		e.Orient = vmath.EulerAngles{}
	}
	e.Shape = geometry.NewOBB3(obb.Pos, obb.HalfDims, e.Orient)
}

// translate3 moves a shape by d; a plane moves along its normal only
func translate3(shape geometry.Shape3, d vmath.Vec3) geometry.Shape3 {
	switch sh := shape.(type) {
	case geometry.Sphere3:
		sh.Pos = sh.Pos.Add(d)
		return sh
	case geometry.AABB3:
		sh.Mins, sh.Maxs = sh.Mins.Add(d), sh.Maxs.Add(d)
		return sh
	case geometry.OBB3:
		sh.Pos = sh.Pos.Add(d)
		return sh
	case geometry.ZCylinder3:
		sh.CenterXY = sh.CenterXY.Add(vmath.XY(d))
		sh.MinZ += d[2]
		sh.MaxZ += d[2]
		return sh
	case geometry.Plane3:
		sh.Dist += d.Dot(sh.Normal)
		return sh
	}
	return shape
}

// Overlaps flags every shape overlapping at least one other
func (s *Shapes3D) Overlaps() []bool {
	out := make([]bool, len(s.entries))
	for i := range s.entries {
		for j := i + 1; j < len(s.entries); j++ {
			if geometry.Overlap3(s.entries[i].Shape, s.entries[j].Shape) {
				out[i], out[j] = true, true
			}
		}
	}
	return out
}

func (s *Shapes3D) Render(buf *render.VertexBuffer) {
	buf.Camera = s.player.Camera()

	shapes := s.Shapes()
	res, hit := geometry.RaycastNearest3D(s.ray, shapes)
	overlaps := s.Overlaps()
	pulse := 1 - 0.5*math.Abs(math.Sin(2*s.time))

	for i, e := range s.entries {
		color := render.White
		if e.Wire {
			color = render.DarkBlue
		}
		switch {
		case i == s.grabbed:
			color = render.Red
		case i == hit:
			color = render.LightBlue
		}
		if overlaps[i] {
			color = render.Lerp(render.Black, color, pulse)
		}
		drawShape3D(buf, e, color)
	}

	// Nearest points from the ray start
	best, bestSq := -1, 0.0
	nearest := make([]vmath.Vec3, len(shapes))
	for i, sh := range shapes {
		nearest[i] = sh.NearestPoint(s.ray.Start)
		if d := vmath.DistSq3(nearest[i], s.ray.Start); best < 0 || d < bestSq {
			best, bestSq = i, d
		}
	}
	for i, p := range nearest {
		color := render.Orange
		if i == best {
			color = render.Green
		}
		buf.AddSphere3D(geometry.Sphere3{Pos: p, Radius: parameter.Shapes3DPointRadius}, color, 8, 4)
	}

	head, thick := parameter.Shapes3DArrowHead, parameter.Shapes3DArrowThickness
	if res.DidImpact {
		buf.AddSphere3D(geometry.Sphere3{Pos: res.ImpactPos, Radius: parameter.Shapes3DPointRadius}, render.White, 8, 4)
		buf.AddArrow3D(res.ImpactPos, res.ImpactPos.Add(res.ImpactNormal.Mul(parameter.Shapes3DNormalLength)), head, thick, render.Yellow)
		if s.rayLocked {
			buf.AddArrow3D(s.ray.Start, s.ray.At(s.ray.MaxLength), head, thick, render.DarkGrey)
			buf.AddArrow3D(s.ray.Start, res.ImpactPos, head, thick*1.5, render.Red)
		}
	} else if s.rayLocked {
		buf.AddArrow3D(s.ray.Start, s.ray.At(s.ray.MaxLength), head, thick, render.Green)
	}
}

func drawShape3D(buf *render.VertexBuffer, e shape3Entry, color render.RGBA8) {
	if e.Wire {
		color = color.WithAlpha(parameter.Shapes3DDimAlpha)
	}
	thick := parameter.Shapes3DArrowThickness
	switch sh := e.Shape.(type) {
	case geometry.Sphere3:
		buf.AddSphere3D(sh, color, parameter.Shapes3DSphereSlices, parameter.Shapes3DSphereStacks)
	case geometry.AABB3:
		if e.Wire {
			buf.AddOBB3DWire(geometry.NewOBB3(sh.Center(), sh.HalfDims(), vmath.EulerAngles{}), thick, color.WithAlpha(255))
			return
		}
		buf.AddAABB3D(sh, color)
	case geometry.OBB3:
		if e.Wire {
			buf.AddOBB3DWire(sh, thick, color.WithAlpha(255))
			return
		}
		buf.AddOBB3D(sh, color)
	case geometry.ZCylinder3:
		buf.AddZCylinder3D(sh, color, parameter.Shapes3DCylinderSides)
	case geometry.Plane3:
		buf.AddPlane3D(sh, parameter.Shapes3DSceneSize, color.WithAlpha(parameter.Shapes3DDimAlpha))
		c := sh.Center()
		buf.AddSphere3D(geometry.Sphere3{Pos: c, Radius: parameter.Shapes3DPlaneMarker}, render.DarkGrey, 8, 4)
		buf.AddArrow3D(c, c.Add(sh.Normal), parameter.Shapes3DArrowHead, thick, render.Blue)
	}
}
